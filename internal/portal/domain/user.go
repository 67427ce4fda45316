package domain

import "time"

// Portal roles. Admins manage users; both roles issue credentials.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the portal roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string // argon2 encoded
	Role         string // RoleAdmin or RoleUser
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
