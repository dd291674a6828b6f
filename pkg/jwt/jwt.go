// Package jwt issues and verifies the HS256 token pair used for API
// authentication: a short-lived access token carrying user identity and
// role, and an opaque-to-the-client refresh token whose digest keys the
// server-side session.
package jwt

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "hosteldesk"

var errInvalidClaims = errors.New("token carries unexpected claims")

// AccessClaims is the payload of an access token.
type AccessClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies the token pair. Access and refresh tokens
// use distinct secrets so one can never stand in for the other.
type Manager struct {
	accessKey     []byte
	refreshKey    []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewManager creates a Manager from the two signing secrets and their
// token lifetimes.
func NewManager(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) *Manager {
	return &Manager{
		accessKey:     []byte(accessSecret),
		refreshKey:    []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// GenerateAccessToken signs an access token for the given user.
func (m *Manager) GenerateAccessToken(userID uuid.UUID, email, role string) (string, error) {
	claims := AccessClaims{
		UserID:           userID,
		Email:            email,
		Role:             role,
		RegisteredClaims: m.registeredClaims(userID, m.accessExpiry),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.accessKey)
}

// GenerateRefreshToken signs a refresh token carrying only the user ID
// in the subject.
func (m *Manager) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	claims := m.registeredClaims(userID, m.refreshExpiry)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.refreshKey)
}

// ValidateAccessToken verifies signature, expiry and issuer, returning
// the embedded claims.
func (m *Manager) ValidateAccessToken(tokenString string) (*AccessClaims, error) {
	token, err := m.parse(tokenString, &AccessClaims{}, m.accessKey)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok {
		return nil, errInvalidClaims
	}
	return claims, nil
}

// ValidateRefreshToken verifies a refresh token and extracts the user ID
// from its subject.
func (m *Manager) ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	token, err := m.parse(tokenString, &jwt.RegisteredClaims{}, m.refreshKey)
	if err != nil {
		return uuid.Nil, err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, errInvalidClaims
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("token subject is not a user ID: %w", err)
	}
	return userID, nil
}

// GetAccessExpiry returns the access token lifetime.
func (m *Manager) GetAccessExpiry() time.Duration {
	return m.accessExpiry
}

// GetRefreshExpiry returns the refresh token lifetime.
func (m *Manager) GetRefreshExpiry() time.Duration {
	return m.refreshExpiry
}

// HashToken returns the SHA-256 hex digest of the provided token string.
// Refresh tokens are stored in the session store under this digest rather
// than in the clear.
func (m *Manager) HashToken(token string) (string, error) {
	if token == "" {
		return "", errors.New("token is empty")
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:]), nil
}

func (m *Manager) registeredClaims(userID uuid.UUID, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (m *Manager) parse(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return token, nil
}
