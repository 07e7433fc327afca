package dto

import (
	"time"

	"github.com/spec-kit/judiciary-service/internal/domain"
)

// StaffCreateRequest payload.
type StaffCreateRequest struct {
	Name      string           `json:"name"`
	Position  string           `json:"position"`
	CourtType domain.CourtType `json:"court_type"`
	CourtID   string           `json:"court_id"`
	Email     *string          `json:"email"`
	Phone     *string          `json:"phone"`
	Bio       *string          `json:"bio"`
}

// StaffUpdateRequest payload; nil fields are left unchanged. A non-nil
// employment_status is applied through the status transition. leave_end_date
// is only accepted while the record is on leave.
type StaffUpdateRequest struct {
	Name             string                   `json:"name"`
	Position         string                   `json:"position"`
	CourtType        *domain.CourtType        `json:"court_type"`
	CourtID          *string                  `json:"court_id"`
	Email            *string                  `json:"email"`
	Phone            *string                  `json:"phone"`
	Bio              *string                  `json:"bio"`
	EmploymentStatus *domain.EmploymentStatus `json:"employment_status"`
	EffectiveDate    *time.Time               `json:"effective_date"`
	LeaveEndDate     *time.Time               `json:"leave_end_date"`
}

// StaffStatusRequest payload for the explicit transition endpoint.
type StaffStatusRequest struct {
	Status        domain.EmploymentStatus `json:"status"`
	EffectiveDate *time.Time              `json:"effective_date"`
}

// StaffResponse payload.
type StaffResponse struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Position         string                  `json:"position"`
	CourtType        domain.CourtType        `json:"court_type"`
	CourtID          string                  `json:"court_id"`
	Email            *string                 `json:"email,omitempty"`
	Phone            *string                 `json:"phone,omitempty"`
	Bio              *string                 `json:"bio,omitempty"`
	EmploymentStatus domain.EmploymentStatus `json:"employment_status"`
	RetirementDate   *time.Time              `json:"retirement_date,omitempty"`
	DismissalDate    *time.Time              `json:"dismissal_date,omitempty"`
	LeaveStartDate   *time.Time              `json:"leave_start_date,omitempty"`
	LeaveEndDate     *time.Time              `json:"leave_end_date,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}
