package domain

import "time"

// EmploymentStatus represents lifecycle states for a staff member.
type EmploymentStatus string

const (
	EmploymentActive    EmploymentStatus = "active"
	EmploymentRetired   EmploymentStatus = "retired"
	EmploymentDismissed EmploymentStatus = "dismissed"
	EmploymentOnLeave   EmploymentStatus = "on_leave"
)

// Staff models a person assigned to exactly one court.
type Staff struct {
	ID               string
	Name             string
	Position         string
	CourtType        CourtType
	CourtID          string
	Email            *string
	Phone            *string
	Bio              *string
	EmploymentStatus EmploymentStatus
	RetirementDate   *time.Time
	DismissalDate    *time.Time
	LeaveStartDate   *time.Time
	LeaveEndDate     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// statusDate returns the date field owned by the given status, or nil for
// statuses that carry no date (active).
func (s *Staff) statusDate(status EmploymentStatus) **time.Time {
	switch status {
	case EmploymentRetired:
		return &s.RetirementDate
	case EmploymentDismissed:
		return &s.DismissalDate
	case EmploymentOnLeave:
		return &s.LeaveStartDate
	default:
		return nil
	}
}

// ApplyEmploymentStatus moves the record to the new status. All status dates
// (leave end included) are cleared first, then the single field owned by the
// new status is set to the effective date, defaulting to now. Any status may
// transition to any other.
func (s *Staff) ApplyEmploymentStatus(status EmploymentStatus, effective *time.Time) {
	when := time.Now()
	if effective != nil {
		when = *effective
	}

	s.RetirementDate = nil
	s.DismissalDate = nil
	s.LeaveStartDate = nil
	s.LeaveEndDate = nil

	if field := s.statusDate(status); field != nil {
		*field = &when
	}
	s.EmploymentStatus = status
}

// StatusDatesConsistent reports whether exactly the date field owned by the
// current status is populated and all others are clear.
func (s *Staff) StatusDatesConsistent() bool {
	owned := s.statusDate(s.EmploymentStatus)
	for _, field := range []**time.Time{&s.RetirementDate, &s.DismissalDate, &s.LeaveStartDate} {
		if field == owned {
			if *field == nil {
				return false
			}
			continue
		}
		if *field != nil {
			return false
		}
	}
	if s.EmploymentStatus != EmploymentOnLeave && s.LeaveEndDate != nil {
		return false
	}
	return true
}

// ValidEmploymentStatus reports whether the value is a known status.
func ValidEmploymentStatus(status EmploymentStatus) bool {
	switch status {
	case EmploymentActive, EmploymentRetired, EmploymentDismissed, EmploymentOnLeave:
		return true
	}
	return false
}
