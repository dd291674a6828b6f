package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/infrastructure/cache"
	usecaseErrors "github.com/hosteldesk/hosteldesk/internal/usecase/errors"
	"github.com/hosteldesk/hosteldesk/pkg/jwt"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*entities.User
	byEmail map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	if user, ok := r.byID[userID]; ok {
		user.UpdateLastLogin()
	}
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entities.User, error) {
	var out []*entities.User
	for _, user := range r.byID {
		out = append(out, user)
	}
	return out, nil
}

func newTestService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	manager := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthService(repo, cache.NewMemoryStore(), manager), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, role entities.UserRole) *entities.User {
	t.Helper()
	user, err := entities.NewUser(email, "Test User", password, role)
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	return user
}

func TestLogin_Success(t *testing.T) {
	svc, repo := newTestService(t)
	user := seedUser(t, repo, "student@example.com", "correct horse", entities.RoleStudent)

	result, err := svc.Login(context.Background(), "student@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("login must return both tokens")
	}
	if result.User.ID != user.ID {
		t.Fatal("login must return the authenticated user")
	}
	if result.ExpiresIn <= 0 {
		t.Fatalf("unexpected expiry %d", result.ExpiresIn)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "student@example.com", "correct horse", entities.RoleStudent)

	_, err := svc.Login(context.Background(), "student@example.com", "wrong")
	if !errors.Is(err, usecaseErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, usecaseErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, repo := newTestService(t)
	user := seedUser(t, repo, "gone@example.com", "correct horse", entities.RoleStudent)
	user.IsActive = false

	_, err := svc.Login(context.Background(), "gone@example.com", "correct horse")
	if !errors.Is(err, usecaseErrors.ErrUserNotActive) {
		t.Fatalf("expected ErrUserNotActive, got %v", err)
	}
}

func TestRefresh_Success(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "student@example.com", "correct horse", entities.RoleStudent)

	login, err := svc.Login(context.Background(), "student@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatal("refresh must return a new access token")
	}
	if refreshed.RefreshToken != "" {
		t.Fatal("refresh must not rotate the refresh token")
	}
}

func TestRefresh_AfterLogoutFails(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "student@example.com", "correct horse", entities.RoleStudent)

	login, err := svc.Login(context.Background(), "student@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), login.RefreshToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	if !errors.Is(err, usecaseErrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	if !errors.Is(err, usecaseErrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateSession_ResolvesUser(t *testing.T) {
	svc, repo := newTestService(t)
	user := seedUser(t, repo, "student@example.com", "correct horse", entities.RoleStudent)

	login, err := svc.Login(context.Background(), "student@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	resolved, err := svc.ValidateSession(context.Background(), login.AccessToken)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatal("validate must resolve the token's user")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "taken@example.com", "correct horse", entities.RoleStudent)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "taken@example.com",
		Name:     "Another",
		Password: "password123",
		Role:     entities.RoleStudent,
	})
	if !errors.Is(err, usecaseErrors.ErrEmailAlreadyUsed) {
		t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
	}
}

func TestRegister_Success(t *testing.T) {
	svc, repo := newTestService(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "new@example.com",
		Name:     "New Student",
		Password: "password123",
		Role:     entities.RoleStudent,
		Faculty:  "Science",
		Batch:    "2025",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Faculty != "Science" || user.Batch != "2025" {
		t.Fatal("profile fields must be stored")
	}

	stored, err := repo.FindByEmail(context.Background(), "new@example.com")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if err := stored.CheckPassword("password123"); err != nil {
		t.Fatal("stored password hash must verify")
	}
}
