package domain

import "time"

// Role scopes what a user account may see and change.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCircuit     Role = "circuit"
	RoleMagisterial Role = "magisterial"
)

// User is an authenticable account. Non-admin accounts are bound to a court:
// a circuit court for circuit-role users, a magisterial court for
// magisterial-role users.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         Role
	CourtID      *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole reports whether the value is a known role.
func ValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleCircuit, RoleMagisterial:
		return true
	}
	return false
}
