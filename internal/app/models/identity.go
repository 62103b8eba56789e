package models

// Role represents a role an identity can hold.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// Identity is the public account record. The password hash lives on Account
// and is stripped before an identity is ever stored in a session or returned
// to a client.
type Identity struct {
	ID     string  `json:"id" example:"1"`
	Email  string  `json:"email" example:"student@example.com"`
	Name   string  `json:"name" example:"John Student"`
	Avatar *string `json:"avatar,omitempty"`
	Roles  []Role  `json:"roles" example:"student"`
}

// HasRole reports whether the identity holds the given role.
func (i *Identity) HasRole(r Role) bool {
	if i == nil {
		return false
	}
	for _, role := range i.Roles {
		if role == r {
			return true
		}
	}
	return false
}

// IsStudent reports whether the identity holds the student role.
func (i *Identity) IsStudent() bool { return i.HasRole(RoleStudent) }

// IsInstructor reports whether the identity holds the instructor role.
func (i *Identity) IsInstructor() bool { return i.HasRole(RoleInstructor) }

// IsAdmin reports whether the identity holds the admin role.
func (i *Identity) IsAdmin() bool { return i.HasRole(RoleAdmin) }

// Account is the stored form of an identity, including credentials.
type Account struct {
	Identity
	PasswordHash string `json:"-"`
}
