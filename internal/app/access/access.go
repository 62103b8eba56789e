// Package access decides whether an identity may reach a protected page.
// The decision is pure; performing the navigation is the caller's job.
package access

import (
	"net/url"

	"github.com/eduforge/backend/internal/app/models"
)

// Well-known navigation targets.
const (
	LoginPath        = "/login"
	SignupPath       = "/signup"
	HomePath         = "/"
	UnauthorizedPath = "/unauthorized"
)

// Requirement states which roles a page demands. Both flags may be set;
// each missing role independently denies access.
type Requirement struct {
	Instructor bool
	Admin      bool
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allow bool
	// RedirectTo is the fallback target when Allow is false.
	RedirectTo string
}

// Allowed is the decision that lets the caller proceed.
var Allowed = Decision{Allow: true}

// Authorize decides whether identity may visit a page with the given
// requirement. An absent identity is sent to login with the originally
// requested path so login can return the caller afterward; an identity
// missing a required role is sent to the unauthorized page.
func Authorize(identity *models.Identity, req Requirement, requestedPath string) Decision {
	if identity == nil {
		return Decision{RedirectTo: loginRedirect(requestedPath)}
	}
	if req.Instructor && !identity.IsInstructor() {
		return Decision{RedirectTo: UnauthorizedPath}
	}
	if req.Admin && !identity.IsAdmin() {
		return Decision{RedirectTo: UnauthorizedPath}
	}
	return Allowed
}

// AuthorizeRole is the single-role form of Authorize used where a page
// demands exactly one role.
func AuthorizeRole(identity *models.Identity, role models.Role, requestedPath string) Decision {
	if identity == nil {
		return Decision{RedirectTo: loginRedirect(requestedPath)}
	}
	if role != "" && !identity.HasRole(role) {
		return Decision{RedirectTo: UnauthorizedPath}
	}
	return Allowed
}

// GuestOnly decides where an already-authenticated visitor of the login or
// signup page should go instead.
func GuestOnly(identity *models.Identity) Decision {
	if identity != nil {
		return Decision{RedirectTo: HomePath}
	}
	return Allowed
}

func loginRedirect(requestedPath string) string {
	if requestedPath == "" {
		return LoginPath
	}
	return LoginPath + "?from=" + url.QueryEscape(requestedPath)
}
