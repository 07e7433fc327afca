package dto

import (
	"time"

	"github.com/spec-kit/judiciary-service/internal/domain"
)

// CourtCreateRequest payload.
type CourtCreateRequest struct {
	Name           string           `json:"name"`
	Type           domain.CourtType `json:"type"`
	Location       string           `json:"location"`
	Address        string           `json:"address"`
	ContactInfo    string           `json:"contact_info"`
	Description    string           `json:"description"`
	CircuitCourtID *string          `json:"circuit_court_id,omitempty"`
}

// CourtUpdateRequest payload; nil fields are left unchanged.
type CourtUpdateRequest struct {
	Name           string  `json:"name"`
	Location       *string `json:"location"`
	Address        *string `json:"address"`
	ContactInfo    *string `json:"contact_info"`
	Description    *string `json:"description"`
	CircuitCourtID *string `json:"circuit_court_id"`
	IsActive       *bool   `json:"is_active"`
}

// CourtResponse payload.
type CourtResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Type           domain.CourtType `json:"type"`
	Location       string           `json:"location"`
	Address        string           `json:"address"`
	ContactInfo    string           `json:"contact_info"`
	Description    string           `json:"description"`
	CircuitCourtID *string          `json:"circuit_court_id,omitempty"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
