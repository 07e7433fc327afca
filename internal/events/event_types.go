package events

import (
	"time"

	"github.com/spec-kit/judiciary-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCourtCreated       EventType = "court_created"
	EventCourtUpdated       EventType = "court_updated"
	EventCourtDeactivated   EventType = "court_deactivated"
	EventStaffCreated       EventType = "staff_created"
	EventStaffStatusChanged EventType = "staff_status_changed"
	EventStaffDeleted       EventType = "staff_deleted"
	EventUserCreated        EventType = "user_created"
	EventUserDeactivated    EventType = "user_deactivated"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CourtCreatedPayload payload.
type CourtCreatedPayload struct {
	Name           string           `json:"name"`
	Type           domain.CourtType `json:"type"`
	CircuitCourtID *string          `json:"circuit_court_id,omitempty"`
}

// StaffCreatedPayload payload.
type StaffCreatedPayload struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	CourtID  string `json:"court_id"`
}

// StaffStatusChangedPayload payload.
type StaffStatusChangedPayload struct {
	OldStatus     domain.EmploymentStatus `json:"old_status"`
	NewStatus     domain.EmploymentStatus `json:"new_status"`
	EffectiveDate *time.Time              `json:"effective_date,omitempty"`
}

// UserDeactivatedPayload payload.
type UserDeactivatedPayload struct {
	Username string `json:"username"`
}
