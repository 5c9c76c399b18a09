package models

import "time"

// Role is the authorization level of a user account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AuthProvider names the identity source a user account was created with.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents an account that owns, shares and fills forms.
type User struct {
	// UserID is the server-assigned identifier.
	UserID int64 `json:"id"`

	// Username is the unique login name. For Google accounts it holds the
	// verified e-mail address.
	Username string `json:"username"`

	// Name is a human readable display name.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the password. Empty for accounts
	// created through an external provider.
	PasswordHash string `json:"-"`

	Role     Role         `json:"role"`
	Provider AuthProvider `json:"provider"`

	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user has administrative rights.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Summary returns the public projection of the user.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.UserID, Username: u.Username, Name: u.Name}
}

// UserSummary is the public view of a user returned by listing endpoints.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
