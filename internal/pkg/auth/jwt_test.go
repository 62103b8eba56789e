package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/eduforge/backend/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	identity := &models.Identity{
		ID:    "42",
		Email: "user@example.com",
		Roles: []models.Role{models.RoleStudent, models.RoleInstructor},
	}

	token, expiresIn, err := svc.GenerateToken(identity)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("Expected expiresIn 3600, got %d", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}
	if claims.UserID != "42" || claims.Email != "user@example.com" {
		t.Errorf("Expected claims for account 42, got %+v", claims)
	}
	if len(claims.Roles) != 2 {
		t.Errorf("Expected 2 roles in claims, got %v", claims.Roles)
	}

	rebuilt := claims.Identity()
	if rebuilt.ID != "42" || !rebuilt.IsInstructor() {
		t.Errorf("Expected rebuilt identity with instructor role, got %+v", rebuilt)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)
	token, _, err := svc.GenerateToken(&models.Identity{ID: "1", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testJWTService(time.Hour).GenerateToken(&models.Identity{ID: "1", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("Expected validation to fail with the wrong secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := testJWTService(time.Hour).ValidateToken("not-a-token"); err == nil {
		t.Error("Expected an error for a malformed token")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token != "abc123" {
		t.Errorf("Expected 'abc123', got %q", token)
	}

	// A bare token is accepted as-is.
	token, err = ExtractBearerToken("abc123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token != "abc123" {
		t.Errorf("Expected 'abc123', got %q", token)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for empty header, got %v", err)
	}
}
