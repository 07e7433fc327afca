package domain

import "time"

// CourtType distinguishes top-level circuit courts from subordinate
// magisterial courts.
type CourtType string

const (
	CourtTypeCircuit     CourtType = "circuit"
	CourtTypeMagisterial CourtType = "magisterial"
)

// Court models a judiciary organizational unit. A magisterial court always
// references its parent circuit court; a circuit court has no parent.
type Court struct {
	ID             string
	Name           string
	Type           CourtType
	Location       string
	Address        string
	ContactInfo    string
	Description    string
	CircuitCourtID *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsSubordinateTo reports whether the court is a magisterial court under the
// given circuit court.
func (c *Court) IsSubordinateTo(circuitCourtID string) bool {
	return c.Type == CourtTypeMagisterial &&
		c.CircuitCourtID != nil && *c.CircuitCourtID == circuitCourtID
}
