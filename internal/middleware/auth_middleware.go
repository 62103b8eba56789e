package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/backend/internal/app/access"
	"github.com/eduforge/backend/internal/app/models"
	"github.com/eduforge/backend/internal/app/models/dto"
	pkgauth "github.com/eduforge/backend/internal/pkg/auth"
)

// identityKey is the gin context key the authenticated identity is stored under.
const identityKey = "identity"

// AuthMiddleware enforces authentication and role requirements on routes.
type AuthMiddleware struct {
	jwtService *pkgauth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(jwtService *pkgauth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores the identity on the context.
// Requests without a valid token are answered with the login redirect.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, "Authorization header missing")
			return
		}

		tokenString, err := pkgauth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthenticated(c, "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, pkgauth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}
			errorDetail := dto.NewErrorDetail(code, "Authentication failed").
				WithDetails(details).
				WithRedirect(access.LoginPath)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(identityKey, claims.Identity())
		c.Next()
	}
}

// Require applies the access decision for the given role requirement.
// JWTAuth must run first.
func (m *AuthMiddleware) Require(req access.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)
		decision := access.Authorize(identity, req, c.Request.URL.Path)
		if decision.Allow {
			c.Next()
			return
		}

		status := http.StatusForbidden
		code := dto.ErrorCodeForbidden
		message := "Access denied"
		if identity == nil {
			status = http.StatusUnauthorized
			code = dto.ErrorCodeUnauthorized
			message = "Authentication required"
		}

		errorDetail := dto.NewErrorDetail(code, message).
			WithRedirect(decision.RedirectTo)
		c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
	}
}

// RequireInstructor gates a route on the instructor role.
func (m *AuthMiddleware) RequireInstructor() gin.HandlerFunc {
	return m.Require(access.Requirement{Instructor: true})
}

// RequireAdmin gates a route on the admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.Require(access.Requirement{Admin: true})
}

// GuestOnly redirects authenticated visitors of login/signup back home. The
// token is optional here; an absent or invalid one simply means a guest.
func (m *AuthMiddleware) GuestOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		tokenString, err := pkgauth.ExtractBearerToken(authHeader)
		if err != nil {
			c.Next()
			return
		}
		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		decision := access.GuestOnly(claims.Identity())
		if !decision.Allow {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Already authenticated").
				WithRedirect(decision.RedirectTo)
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the authenticated identity, or nil.
func IdentityFromContext(c *gin.Context) *models.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}

func abortUnauthenticated(c *gin.Context, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
		WithDetails(details).
		WithRedirect(access.LoginPath)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
