package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/judiciary-service/internal/cache"
	"github.com/spec-kit/judiciary-service/internal/domain"
	"github.com/spec-kit/judiciary-service/internal/policy"
	"github.com/spec-kit/judiciary-service/internal/repository"
	apperrors "github.com/spec-kit/judiciary-service/pkg/util"
)

// AccessService resolves and enforces court visibility for callers. The
// policy rules themselves are pure; this service supplies the lookups and
// caches resolved scopes.
type AccessService struct {
	courts repository.CourtRepository
	scopes *cache.ScopeCache
}

// NewAccessService constructs the service.
func NewAccessService(courts repository.CourtRepository, scopes *cache.ScopeCache) *AccessService {
	return &AccessService{courts: courts, scopes: scopes}
}

// AuthorizeCourt loads the target court and checks the caller against it.
// A missing court is reported as not-found before any permission decision;
// existence is not hidden from denied callers.
func (s *AccessService) AuthorizeCourt(ctx context.Context, actor *domain.User, courtID string) (*domain.Court, error) {
	court, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("court", map[string]any{"court_id": courtID})
		}
		return nil, apperrors.MapError(err)
	}
	if err := policy.Authorize(policy.CallerFrom(actor), court); err != nil {
		return nil, apperrors.NewForbidden("access to court denied")
	}
	return court, nil
}

// VisibleScope resolves the set of court ids the caller may see on list
// operations. Circuit scopes include subordinate magisterial courts and are
// cached; admin scopes are unrestricted.
func (s *AccessService) VisibleScope(ctx context.Context, actor *domain.User) (policy.Scope, error) {
	caller := policy.CallerFrom(actor)
	if caller.Role == domain.RoleAdmin {
		return policy.Scope{Unrestricted: true}, nil
	}

	if scope, ok := s.scopes.Get(ctx, caller); ok {
		return scope, nil
	}

	var subordinates []string
	if caller.Role == domain.RoleCircuit && caller.CourtID != nil {
		ids, err := s.courts.ListIDsByCircuit(ctx, *caller.CourtID)
		if err != nil {
			return policy.Scope{}, apperrors.MapError(err)
		}
		subordinates = ids
	}

	scope := policy.ScopeFor(caller, subordinates)
	s.scopes.Set(ctx, caller, scope)
	return scope, nil
}

// InvalidateCircuitScope drops cached scopes after court writes touching the
// given circuit court.
func (s *AccessService) InvalidateCircuitScope(ctx context.Context, circuitCourtID *string) {
	if circuitCourtID == nil {
		return
	}
	s.scopes.InvalidateCircuit(ctx, *circuitCourtID)
}
