package access

import (
	"testing"

	"github.com/eduforge/backend/internal/app/models"
)

func identityWithRoles(roles ...models.Role) *models.Identity {
	return &models.Identity{ID: "1", Email: "u@example.com", Name: "U", Roles: roles}
}

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name         string
		identity     *models.Identity
		req          Requirement
		path         string
		wantAllow    bool
		wantRedirect string
	}{
		{
			name:      "no requirement allows any identity",
			identity:  identityWithRoles(models.RoleStudent),
			wantAllow: true,
		},
		{
			name:         "absent identity redirects to login with origin",
			identity:     nil,
			path:         "/instructor/dashboard",
			wantRedirect: "/login?from=%2Finstructor%2Fdashboard",
		},
		{
			name:         "absent identity without path redirects to bare login",
			identity:     nil,
			wantRedirect: "/login",
		},
		{
			name:      "instructor requirement with role",
			identity:  identityWithRoles(models.RoleInstructor),
			req:       Requirement{Instructor: true},
			wantAllow: true,
		},
		{
			name:         "instructor requirement without role",
			identity:     identityWithRoles(models.RoleStudent),
			req:          Requirement{Instructor: true},
			path:         "/instructor/dashboard",
			wantRedirect: UnauthorizedPath,
		},
		{
			name:      "admin requirement with role",
			identity:  identityWithRoles(models.RoleAdmin),
			req:       Requirement{Admin: true},
			wantAllow: true,
		},
		{
			name:         "admin requirement without role",
			identity:     identityWithRoles(models.RoleInstructor),
			req:          Requirement{Admin: true},
			wantRedirect: UnauthorizedPath,
		},
		{
			name:         "both requirements need both roles",
			identity:     identityWithRoles(models.RoleInstructor),
			req:          Requirement{Instructor: true, Admin: true},
			wantRedirect: UnauthorizedPath,
		},
		{
			name:      "both requirements satisfied",
			identity:  identityWithRoles(models.RoleInstructor, models.RoleAdmin),
			req:       Requirement{Instructor: true, Admin: true},
			wantAllow: true,
		},
		{
			name:      "multi-role identity passes single requirement",
			identity:  identityWithRoles(models.RoleStudent, models.RoleInstructor),
			req:       Requirement{Instructor: true},
			wantAllow: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := Authorize(tc.identity, tc.req, tc.path)
			if decision.Allow != tc.wantAllow {
				t.Errorf("Expected Allow=%v, got %v", tc.wantAllow, decision.Allow)
			}
			if decision.RedirectTo != tc.wantRedirect {
				t.Errorf("Expected redirect %q, got %q", tc.wantRedirect, decision.RedirectTo)
			}
		})
	}
}

func TestAuthorizeRole(t *testing.T) {
	decision := AuthorizeRole(identityWithRoles(models.RoleStudent), models.RoleAdmin, "/admin")
	if decision.Allow {
		t.Error("Expected denial for missing role")
	}
	if decision.RedirectTo != UnauthorizedPath {
		t.Errorf("Expected redirect to %q, got %q", UnauthorizedPath, decision.RedirectTo)
	}

	decision = AuthorizeRole(nil, models.RoleAdmin, "/admin")
	if decision.RedirectTo != "/login?from=%2Fadmin" {
		t.Errorf("Expected login redirect with origin, got %q", decision.RedirectTo)
	}

	decision = AuthorizeRole(identityWithRoles(models.RoleAdmin), models.RoleAdmin, "/admin")
	if !decision.Allow {
		t.Errorf("Expected allow, got redirect to %q", decision.RedirectTo)
	}
}

func TestGuestOnly(t *testing.T) {
	if decision := GuestOnly(nil); !decision.Allow {
		t.Error("Expected guests to reach the login page")
	}

	decision := GuestOnly(identityWithRoles(models.RoleStudent))
	if decision.Allow {
		t.Error("Expected authenticated visitors to be redirected")
	}
	if decision.RedirectTo != HomePath {
		t.Errorf("Expected redirect to %q, got %q", HomePath, decision.RedirectTo)
	}
}
