package policy

import (
	"errors"

	"github.com/spec-kit/judiciary-service/internal/domain"
)

// ErrPermissionDenied signals that the caller is authenticated but not
// authorized for the target court. It is distinct from not-found: existence
// of the target is not hidden from denied callers.
var ErrPermissionDenied = errors.New("permission denied")

// Caller is the authenticated identity evaluated by the policy. CourtID is
// the court the account is bound to; nil for admins.
type Caller struct {
	UserID  string
	Role    domain.Role
	CourtID *string
}

// CallerFrom builds the policy view of an authenticated user.
func CallerFrom(user *domain.User) Caller {
	if user == nil {
		return Caller{}
	}
	return Caller{UserID: user.ID, Role: user.Role, CourtID: user.CourtID}
}

// Authorize decides whether the caller may access the target court.
//
// Admins always pass. A circuit-role caller passes for their own circuit
// court and for any magisterial court directly subordinate to it. A
// magisterial-role caller passes only for their own bound court.
func Authorize(caller Caller, target *domain.Court) error {
	switch caller.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleCircuit:
		if caller.CourtID == nil {
			return ErrPermissionDenied
		}
		if target.ID == *caller.CourtID || target.IsSubordinateTo(*caller.CourtID) {
			return nil
		}
		return ErrPermissionDenied
	case domain.RoleMagisterial:
		if caller.CourtID != nil && target.ID == *caller.CourtID {
			return nil
		}
		return ErrPermissionDenied
	default:
		return ErrPermissionDenied
	}
}

// Scope is the set of court ids visible to a caller on list and aggregate
// operations.
type Scope struct {
	Unrestricted bool
	CourtIDs     []string
}

// Contains reports whether a court id falls inside the scope.
func (s Scope) Contains(courtID string) bool {
	if s.Unrestricted {
		return true
	}
	for _, id := range s.CourtIDs {
		if id == courtID {
			return true
		}
	}
	return false
}

// ScopeFor resolves the caller's visible court set. subordinateIDs are the
// magisterial courts under the caller's circuit court; they are ignored for
// non-circuit roles.
func ScopeFor(caller Caller, subordinateIDs []string) Scope {
	switch caller.Role {
	case domain.RoleAdmin:
		return Scope{Unrestricted: true}
	case domain.RoleCircuit:
		if caller.CourtID == nil {
			return Scope{}
		}
		ids := make([]string, 0, len(subordinateIDs)+1)
		ids = append(ids, *caller.CourtID)
		ids = append(ids, subordinateIDs...)
		return Scope{CourtIDs: ids}
	case domain.RoleMagisterial:
		if caller.CourtID == nil {
			return Scope{}
		}
		return Scope{CourtIDs: []string{*caller.CourtID}}
	default:
		return Scope{}
	}
}
