package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/backend/internal/app/models"
	pkgauth "github.com/eduforge/backend/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *AuthMiddleware, *pkgauth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return gin.New(), NewAuthMiddleware(jwtService), jwtService
}

func tokenFor(t *testing.T, jwtService *pkgauth.JWTService, roles ...models.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.Identity{
		ID:    "1",
		Email: "u@example.com",
		Roles: roles,
	})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	router, mw, _ := newTestRouter(t)
	router.GET("/protected", mw.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	router, mw, jwtService := newTestRouter(t)
	router.GET("/protected", mw.JWTAuth(), func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if identity == nil || identity.ID != "1" {
			t.Errorf("Expected identity 1 on context, got %+v", identity)
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStudent))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestRequireInstructorDeniesStudents(t *testing.T) {
	router, mw, jwtService := newTestRouter(t)
	router.GET("/instructor", mw.JWTAuth(), mw.RequireInstructor(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/instructor", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStudent))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
}

func TestRequireInstructorAllowsInstructors(t *testing.T) {
	router, mw, jwtService := newTestRouter(t)
	router.GET("/instructor", mw.JWTAuth(), mw.RequireInstructor(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/instructor", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStudent, models.RoleInstructor))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestGuestOnly(t *testing.T) {
	router, mw, jwtService := newTestRouter(t)
	router.POST("/login", mw.GuestOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })

	// Guests pass through.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for guest, got %d", w.Code)
	}

	// An invalid token also counts as a guest.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for invalid token, got %d", w.Code)
	}

	// Authenticated visitors are bounced.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStudent))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for authenticated visitor, got %d", w.Code)
	}
}
