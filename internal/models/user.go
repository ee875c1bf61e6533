package models

import "time"

// UserRole gates access to the admin area.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// ValidUserRole reports whether r is a recognized role.
func ValidUserRole(r UserRole) bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account record for the storefront and back-office.
type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
