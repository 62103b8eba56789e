package dto

import "github.com/eduforge/backend/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUpRequest represents a new account request. ConfirmPassword is the
// form-level repeat field; a mismatch is rejected before any account lookup.
type SignUpRequest struct {
	Email           string      `json:"email" binding:"required,email"`
	Password        string      `json:"password" binding:"required,min=8"`
	ConfirmPassword string      `json:"confirmPassword" binding:"required"`
	Name            string      `json:"name" binding:"required"`
	Role            models.Role `json:"role" binding:"required"`
}

// TokenResponse represents access token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse    `json:"token"`
	User  *models.Identity `json:"user"`
}

// GoogleLoginResponse carries the provider consent URL when a real OAuth
// client is configured, or the established session otherwise.
type GoogleLoginResponse struct {
	AuthURL string        `json:"authUrl,omitempty"`
	Session *AuthResponse `json:"session,omitempty"`
}
