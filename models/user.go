// models/user.go
package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// StudioWildcard in AllowedStudios grants a non-admin access to every
// studio. It is the only wildcard: no prefix or partial matching.
const StudioWildcard = "*"

// User is keyed and identified by Username; it never changes after create.
type User struct {
	Username       string   `json:"username" validate:"required"`
	Password       string   `json:"password,omitempty" validate:"omitempty"`
	Role           string   `json:"role" validate:"required,oneof=admin user"`
	AllowedStudios []string `json:"allowedStudios"`
}

// Sanitized returns a copy with the password cleared. Every API response
// goes through this: the password field must never be echoed back.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// SanitizeUsers strips passwords from a whole collection for responses.
func SanitizeUsers(users []User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out
}

// LegacyCredential is the old per-account record stored under
// "user:<username>": kept for accounts created before passwords moved
// inline onto the User record.
type LegacyCredential struct {
	Password string `json:"password"`
}
