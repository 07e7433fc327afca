package dto

import (
	"time"

	"github.com/spec-kit/judiciary-service/internal/domain"
)

// UserCreateRequest payload.
type UserCreateRequest struct {
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
	CourtID  *string     `json:"court_id,omitempty"`
}

// UserUpdateRequest payload; nil fields are left unchanged.
type UserUpdateRequest struct {
	Username string       `json:"username"`
	Name     string       `json:"name"`
	Role     *domain.Role `json:"role"`
	CourtID  *string      `json:"court_id"`
}

// UserResponse payload. The password hash is never serialized.
type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	CourtID   *string     `json:"court_id,omitempty"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
