package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// ValidateCourt checks field constraints on a court record. Parent
// resolution is a cross-reference rule enforced by the service layer.
func ValidateCourt(c *Court) error {
	name := strings.TrimSpace(c.Name)
	if utf8.RuneCountInString(name) < 2 || utf8.RuneCountInString(name) > 100 {
		return fmt.Errorf("court name must be 2-100 characters")
	}
	switch c.Type {
	case CourtTypeCircuit:
		if c.CircuitCourtID != nil {
			return fmt.Errorf("circuit court cannot reference a parent court")
		}
	case CourtTypeMagisterial:
		if c.CircuitCourtID == nil || *c.CircuitCourtID == "" {
			return fmt.Errorf("magisterial court requires a circuit court reference")
		}
	default:
		return fmt.Errorf("invalid court type: %s", c.Type)
	}
	return nil
}

// ValidateStaff checks field constraints on a staff record.
func ValidateStaff(s *Staff) error {
	if utf8.RuneCountInString(strings.TrimSpace(s.Name)) < 2 {
		return fmt.Errorf("staff name must be at least 2 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(s.Position)) < 2 {
		return fmt.Errorf("staff position must be at least 2 characters")
	}
	if s.CourtType != CourtTypeCircuit && s.CourtType != CourtTypeMagisterial {
		return fmt.Errorf("invalid court type: %s", s.CourtType)
	}
	if s.CourtID == "" {
		return fmt.Errorf("court reference is required")
	}
	if s.Email != nil && *s.Email != "" && !emailRegex.MatchString(*s.Email) {
		return fmt.Errorf("invalid email format")
	}
	if !ValidEmploymentStatus(s.EmploymentStatus) {
		return fmt.Errorf("invalid employment status: %s", s.EmploymentStatus)
	}
	if !s.StatusDatesConsistent() {
		return fmt.Errorf("status dates do not match employment status")
	}
	return nil
}

// ValidateUsername checks the account-name rules.
func ValidateUsername(username string) error {
	if utf8.RuneCountInString(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters")
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be alphanumeric")
	}
	return nil
}

// ValidatePassword checks the minimum password rule. Hashing happens in the
// auth layer; plaintext is never stored.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}
