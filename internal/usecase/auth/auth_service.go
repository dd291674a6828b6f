package auth

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
	"github.com/hosteldesk/hosteldesk/internal/infrastructure/cache"
	usecaseErrors "github.com/hosteldesk/hosteldesk/internal/usecase/errors"
	"github.com/hosteldesk/hosteldesk/pkg/jwt"
)

const sessionKeyPrefix = "session:"

// AuthService handles email/password authentication and session management.
// Refresh-token sessions live in the injected key-value store under the
// token's SHA-256 digest.
type AuthService struct {
	userRepo   repositories.UserRepository
	sessions   cache.Store
	jwtManager *jwt.Manager
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	sessions cache.Store,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtManager: jwtManager,
	}
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	User         *entities.User `json:"user"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	ExpiresIn    int64          `json:"expires_in"`
}

// Login verifies credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := user.CheckPassword(password); err != nil {
		return nil, usecaseErrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, usecaseErrors.ErrUserNotActive
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.storeSession(ctx, refreshToken, user); err != nil {
		return nil, err
	}

	// Non-fatal bookkeeping
	_ = s.userRepo.UpdateLastLogin(ctx, user.ID)

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// RegisterInput represents input for creating an account
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     entities.UserRole
	Faculty  string
	Batch    string
}

// Register creates a new account. Accounts are provisioned by the warden's
// office, so the caller must already hold the admin role.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, usecaseErrors.ErrEmailAlreadyUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	user, err := entities.NewUser(input.Email, input.Name, input.Password, input.Role)
	if err != nil {
		return nil, err
	}
	user.Faculty = input.Faculty
	user.Batch = input.Batch

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	key, err := s.sessionKey(refreshToken)
	if err != nil {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	stored, ok, err := s.sessions.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, usecaseErrors.ErrSessionNotFound
	}
	if stored != userID.String() {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		return nil, usecaseErrors.ErrUserNotActive
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// Logout revokes the session behind a refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	key, err := s.sessionKey(refreshToken)
	if err != nil {
		return usecaseErrors.ErrTokenInvalid
	}
	if err := s.sessions.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ValidateSession validates an access token and resolves the caller.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		return nil, usecaseErrors.ErrUserNotActive
	}

	return user, nil
}

func (s *AuthService) storeSession(ctx context.Context, refreshToken string, user *entities.User) error {
	key, err := s.sessionKey(refreshToken)
	if err != nil {
		return err
	}
	ttl := s.jwtManager.GetRefreshExpiry()
	if err := s.sessions.Set(ctx, key, user.ID.String(), ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *AuthService) sessionKey(refreshToken string) (string, error) {
	digest, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return "", err
	}
	return sessionKeyPrefix + digest, nil
}
