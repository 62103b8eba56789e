package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduforge/backend/internal/app/models"
	memoryRepos "github.com/eduforge/backend/internal/app/repositories/memory"
	"github.com/eduforge/backend/internal/pkg/apperrors"
	pkgauth "github.com/eduforge/backend/internal/pkg/auth"
	"github.com/eduforge/backend/internal/session"
)

const testPassword = "password123"

func testAccounts(t *testing.T) []*models.Account {
	t.Helper()
	hash, err := pkgauth.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	return []*models.Account{
		{
			Identity: models.Identity{
				ID: "1", Email: "student@example.com", Name: "John Student",
				Roles: []models.Role{models.RoleStudent},
			},
			PasswordHash: hash,
		},
		{
			Identity: models.Identity{
				ID: "2", Email: "instructor@example.com", Name: "Sarah Instructor",
				Roles: []models.Role{models.RoleInstructor},
			},
			PasswordHash: hash,
		},
	}
}

func newAuthService(t *testing.T, accounts []*models.Account) (AuthService, session.Store) {
	t.Helper()
	sessions := session.NewMemoryStore()
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	svc := NewAuthService(memoryRepos.NewUserRepository(accounts), sessions, jwtService, zerolog.Nop())
	return svc, sessions
}

func TestLoginSuccess(t *testing.T) {
	svc, sessions := newAuthService(t, testAccounts(t))

	result, err := svc.Login(context.Background(), "student@example.com", testPassword)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.AccessToken == "" {
		t.Error("Expected an access token")
	}
	if result.Identity.Name != "John Student" {
		t.Errorf("Expected name 'John Student', got %q", result.Identity.Name)
	}
	if len(result.Identity.Roles) != 1 || result.Identity.Roles[0] != models.RoleStudent {
		t.Errorf("Expected roles [student], got %v", result.Identity.Roles)
	}

	persisted, err := sessions.Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error loading session, got %v", err)
	}
	if persisted == nil || persisted.ID != "1" {
		t.Errorf("Expected persisted session for account 1, got %+v", persisted)
	}
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	svc, _ := newAuthService(t, testAccounts(t))

	if _, err := svc.Login(context.Background(), "Student@Example.COM", testPassword); err != nil {
		t.Errorf("Expected case-insensitive email lookup, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, sessions := newAuthService(t, testAccounts(t))

	_, err := svc.Login(context.Background(), "student@example.com", "wrong-password")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}

	persisted, _ := sessions.Load(context.Background())
	if persisted != nil {
		t.Errorf("Expected no session after failed login, got %+v", persisted)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t, testAccounts(t))

	// Unknown accounts and bad passwords are indistinguishable to the caller.
	_, err := svc.Login(context.Background(), "nobody@example.com", testPassword)
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignUpCreatesAccountWithSingleRole(t *testing.T) {
	svc, sessions := newAuthService(t, nil)

	result, err := svc.SignUp(context.Background(), "new@example.com", "longenough", "New User", models.RoleInstructor)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Identity.Roles) != 1 || result.Identity.Roles[0] != models.RoleInstructor {
		t.Errorf("Expected roles [instructor], got %v", result.Identity.Roles)
	}
	if result.Identity.ID == "" {
		t.Error("Expected a generated account id")
	}

	persisted, _ := sessions.Load(context.Background())
	if persisted == nil || persisted.Email != "new@example.com" {
		t.Errorf("Expected signup to establish the session, got %+v", persisted)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t, testAccounts(t))

	_, err := svc.SignUp(context.Background(), "student@example.com", "longenough", "Imposter", models.RoleStudent)
	if !errors.Is(err, apperrors.ErrDuplicateAccount) {
		t.Errorf("Expected ErrDuplicateAccount, got %v", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, "", "longenough", "Name", models.RoleStudent); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Expected validation error for empty email, got %v", err)
	}
	if _, err := svc.SignUp(ctx, "a@b.com", "short", "Name", models.RoleStudent); !errors.Is(err, apperrors.ErrInvalidPassword) {
		t.Errorf("Expected ErrInvalidPassword for short password, got %v", err)
	}
	if _, err := svc.SignUp(ctx, "a@b.com", "longenough", "Name", "superuser"); !errors.Is(err, apperrors.ErrInvalidRole) {
		t.Errorf("Expected ErrInvalidRole, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc, sessions := newAuthService(t, testAccounts(t))

	if _, err := svc.Login(context.Background(), "student@example.com", testPassword); err != nil {
		t.Fatalf("Expected login to succeed, got %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("Expected logout to succeed, got %v", err)
	}

	persisted, _ := sessions.Load(context.Background())
	if persisted != nil {
		t.Errorf("Expected empty session after logout, got %+v", persisted)
	}

	// Logging out twice is harmless.
	if err := svc.Logout(context.Background()); err != nil {
		t.Errorf("Expected repeated logout to succeed, got %v", err)
	}
}

func TestLoginWithGoogleStubIsDeterministic(t *testing.T) {
	svc, _ := newAuthService(t, testAccounts(t))

	first, err := svc.LoginWithGoogle(context.Background(), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := svc.LoginWithGoogle(context.Background(), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first.Identity.ID != second.Identity.ID {
		t.Errorf("Expected the same stub account each time, got %s then %s", first.Identity.ID, second.Identity.ID)
	}
	if first.Identity.ID != "1" {
		t.Errorf("Expected the first seeded account, got %s", first.Identity.ID)
	}
}

func TestLoginWithGoogleResolvesByEmail(t *testing.T) {
	svc, _ := newAuthService(t, testAccounts(t))

	result, err := svc.LoginWithGoogle(context.Background(), "instructor@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Identity.ID != "2" {
		t.Errorf("Expected account 2, got %s", result.Identity.ID)
	}
}

func TestLoginWithGoogleNoAccounts(t *testing.T) {
	svc, _ := newAuthService(t, nil)

	_, err := svc.LoginWithGoogle(context.Background(), "")
	if !errors.Is(err, apperrors.ErrProviderError) {
		t.Errorf("Expected ErrProviderError, got %v", err)
	}
}

func TestCurrentIdentityFollowsSession(t *testing.T) {
	svc, _ := newAuthService(t, testAccounts(t))

	identity, err := svc.CurrentIdentity(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if identity != nil {
		t.Errorf("Expected no identity before login, got %+v", identity)
	}

	if _, err := svc.Login(context.Background(), "instructor@example.com", testPassword); err != nil {
		t.Fatalf("Expected login to succeed, got %v", err)
	}
	identity, err = svc.CurrentIdentity(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if identity == nil || identity.ID != "2" {
		t.Errorf("Expected identity 2 after login, got %+v", identity)
	}
}
