package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/judiciary-service/internal/domain"
)

func strPtr(s string) *string { return &s }

func circuitCourt(id string) *domain.Court {
	return &domain.Court{ID: id, Type: domain.CourtTypeCircuit}
}

func magisterialCourt(id, circuitID string) *domain.Court {
	return &domain.Court{ID: id, Type: domain.CourtTypeMagisterial, CircuitCourtID: strPtr(circuitID)}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		caller  Caller
		target  *domain.Court
		allowed bool
	}{
		{
			name:    "admin sees any circuit court",
			caller:  Caller{UserID: "u1", Role: domain.RoleAdmin},
			target:  circuitCourt("c1"),
			allowed: true,
		},
		{
			name:    "admin sees any magisterial court",
			caller:  Caller{UserID: "u1", Role: domain.RoleAdmin},
			target:  magisterialCourt("m1", "c1"),
			allowed: true,
		},
		{
			name:    "circuit user sees own court",
			caller:  Caller{UserID: "u2", Role: domain.RoleCircuit, CourtID: strPtr("c1")},
			target:  circuitCourt("c1"),
			allowed: true,
		},
		{
			name:    "circuit user sees subordinate magisterial court",
			caller:  Caller{UserID: "u2", Role: domain.RoleCircuit, CourtID: strPtr("c1")},
			target:  magisterialCourt("m1", "c1"),
			allowed: true,
		},
		{
			name:    "circuit user denied other circuit court",
			caller:  Caller{UserID: "u2", Role: domain.RoleCircuit, CourtID: strPtr("c1")},
			target:  circuitCourt("c2"),
			allowed: false,
		},
		{
			name:    "circuit user denied magisterial court of other circuit",
			caller:  Caller{UserID: "u2", Role: domain.RoleCircuit, CourtID: strPtr("c1")},
			target:  magisterialCourt("m2", "c2"),
			allowed: false,
		},
		{
			name:    "circuit user without binding denied",
			caller:  Caller{UserID: "u2", Role: domain.RoleCircuit},
			target:  circuitCourt("c1"),
			allowed: false,
		},
		{
			name:    "magisterial user sees own court",
			caller:  Caller{UserID: "u3", Role: domain.RoleMagisterial, CourtID: strPtr("m1")},
			target:  magisterialCourt("m1", "c1"),
			allowed: true,
		},
		{
			name:    "magisterial user denied sibling court",
			caller:  Caller{UserID: "u3", Role: domain.RoleMagisterial, CourtID: strPtr("m1")},
			target:  magisterialCourt("m2", "c1"),
			allowed: false,
		},
		{
			name:    "magisterial user denied parent circuit court",
			caller:  Caller{UserID: "u3", Role: domain.RoleMagisterial, CourtID: strPtr("m1")},
			target:  circuitCourt("c1"),
			allowed: false,
		},
		{
			name:    "unknown role denied",
			caller:  Caller{UserID: "u4", Role: "clerk", CourtID: strPtr("c1")},
			target:  circuitCourt("c1"),
			allowed: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.caller, tc.target)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrPermissionDenied)
			}
		})
	}
}

func TestScopeFor(t *testing.T) {
	t.Run("admin is unrestricted", func(t *testing.T) {
		scope := ScopeFor(Caller{Role: domain.RoleAdmin}, nil)
		assert.True(t, scope.Unrestricted)
		assert.True(t, scope.Contains("anything"))
	})

	t.Run("circuit scope includes own court and subordinates", func(t *testing.T) {
		caller := Caller{Role: domain.RoleCircuit, CourtID: strPtr("c1")}
		scope := ScopeFor(caller, []string{"m1", "m2"})
		assert.False(t, scope.Unrestricted)
		assert.ElementsMatch(t, []string{"c1", "m1", "m2"}, scope.CourtIDs)
		assert.True(t, scope.Contains("m1"))
		assert.False(t, scope.Contains("m3"))
	})

	t.Run("circuit scope without subordinates is own court only", func(t *testing.T) {
		caller := Caller{Role: domain.RoleCircuit, CourtID: strPtr("c1")}
		scope := ScopeFor(caller, nil)
		assert.Equal(t, []string{"c1"}, scope.CourtIDs)
	})

	t.Run("magisterial scope is single court", func(t *testing.T) {
		caller := Caller{Role: domain.RoleMagisterial, CourtID: strPtr("m1")}
		scope := ScopeFor(caller, []string{"ignored"})
		assert.Equal(t, []string{"m1"}, scope.CourtIDs)
	})

	t.Run("unbound scoped caller sees nothing", func(t *testing.T) {
		scope := ScopeFor(Caller{Role: domain.RoleCircuit}, nil)
		assert.False(t, scope.Unrestricted)
		assert.Empty(t, scope.CourtIDs)
	})
}
