package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/judiciary-service/internal/domain"
	"github.com/spec-kit/judiciary-service/internal/events"
	"github.com/spec-kit/judiciary-service/internal/repository"
	apperrors "github.com/spec-kit/judiciary-service/pkg/util"
)

// CourtService manages the court hierarchy.
type CourtService struct {
	courts     repository.CourtRepository
	access     *AccessService
	dispatcher events.Dispatcher
}

// CourtDependencies bundles requirements for the court service.
type CourtDependencies struct {
	CourtRepo  repository.CourtRepository
	Access     *AccessService
	Dispatcher events.Dispatcher
}

// CourtCreateInput describes court creation payload.
type CourtCreateInput struct {
	Name           string
	Type           domain.CourtType
	Location       string
	Address        string
	ContactInfo    string
	Description    string
	CircuitCourtID *string
}

// CourtUpdateInput describes mutable court fields.
type CourtUpdateInput struct {
	Name           string
	Location       *string
	Address        *string
	ContactInfo    *string
	Description    *string
	CircuitCourtID *string
	IsActive       *bool
}

// CourtListFilters define listing parameters.
type CourtListFilters struct {
	Type   *domain.CourtType
	Active *bool
	Limit  int
	Offset int
}

// NewCourtService constructs the service.
func NewCourtService(deps CourtDependencies) *CourtService {
	return &CourtService{
		courts:     deps.CourtRepo,
		access:     deps.Access,
		dispatcher: deps.Dispatcher,
	}
}

// resolveCircuitParent checks that a magisterial court's parent reference
// resolves to an existing circuit-type court. Failing resolution is a
// validation error, caught before any write.
func (s *CourtService) resolveCircuitParent(ctx context.Context, circuitCourtID string) (*domain.Court, error) {
	parent, err := s.courts.GetByID(ctx, circuitCourtID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("circuit court reference does not resolve",
				map[string]any{"circuit_court_id": circuitCourtID})
		}
		return nil, apperrors.MapError(err)
	}
	if parent.Type != domain.CourtTypeCircuit {
		return nil, apperrors.NewValidationError("referenced parent is not a circuit court",
			map[string]any{"circuit_court_id": circuitCourtID})
	}
	return parent, nil
}

// CreateCourt creates a circuit or magisterial court. Admin only.
func (s *CourtService) CreateCourt(ctx context.Context, actor *domain.User, input CourtCreateInput) (*domain.Court, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	court := &domain.Court{
		Name:           input.Name,
		Type:           input.Type,
		Location:       input.Location,
		Address:        input.Address,
		ContactInfo:    input.ContactInfo,
		Description:    input.Description,
		CircuitCourtID: input.CircuitCourtID,
		IsActive:       true,
	}
	if err := domain.ValidateCourt(court); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	if court.Type == domain.CourtTypeMagisterial {
		if _, err := s.resolveCircuitParent(ctx, *court.CircuitCourtID); err != nil {
			return nil, err
		}
	}

	if err := s.courts.Create(ctx, court); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.access.InvalidateCircuitScope(ctx, court.CircuitCourtID)
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventCourtCreated,
		EntityID: court.ID,
		Actor:    userActor(actor),
		Payload: events.CourtCreatedPayload{
			Name:           court.Name,
			Type:           court.Type,
			CircuitCourtID: court.CircuitCourtID,
		},
	})
	return court, nil
}

// GetCourt fetches a single court the caller is authorized for.
func (s *CourtService) GetCourt(ctx context.Context, actor *domain.User, id string) (*domain.Court, error) {
	return s.access.AuthorizeCourt(ctx, actor, id)
}

// ListCourts returns courts within the caller's visibility scope.
func (s *CourtService) ListCourts(ctx context.Context, actor *domain.User, filters CourtListFilters) ([]domain.Court, error) {
	scope, err := s.access.VisibleScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	repoFilter := repository.CourtFilter{
		Type:   filters.Type,
		Active: filters.Active,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	}
	if !scope.Unrestricted {
		if len(scope.CourtIDs) == 0 {
			return []domain.Court{}, nil
		}
		repoFilter.CourtIDs = scope.CourtIDs
	}

	list, err := s.courts.List(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// UpdateCourt modifies court metadata. Admin only. Re-parenting a
// magisterial court re-runs parent resolution.
func (s *CourtService) UpdateCourt(ctx context.Context, actor *domain.User, id string, input CourtUpdateInput) (*domain.Court, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	court, err := s.getCourt(ctx, id)
	if err != nil {
		return nil, err
	}

	oldParent := court.CircuitCourtID
	if input.Name != "" {
		court.Name = input.Name
	}
	if input.Location != nil {
		court.Location = *input.Location
	}
	if input.Address != nil {
		court.Address = *input.Address
	}
	if input.ContactInfo != nil {
		court.ContactInfo = *input.ContactInfo
	}
	if input.Description != nil {
		court.Description = *input.Description
	}
	if input.CircuitCourtID != nil {
		court.CircuitCourtID = input.CircuitCourtID
	}
	if input.IsActive != nil {
		court.IsActive = *input.IsActive
	}

	if err := domain.ValidateCourt(court); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	if court.Type == domain.CourtTypeMagisterial {
		if _, err := s.resolveCircuitParent(ctx, *court.CircuitCourtID); err != nil {
			return nil, err
		}
	}

	if err := s.courts.Update(ctx, court); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.access.InvalidateCircuitScope(ctx, oldParent)
	s.access.InvalidateCircuitScope(ctx, court.CircuitCourtID)
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventCourtUpdated,
		EntityID: court.ID,
		Actor:    userActor(actor),
	})
	return court, nil
}

// DeactivateCourt soft-deletes a court; court records are never hard-deleted.
func (s *CourtService) DeactivateCourt(ctx context.Context, actor *domain.User, id string) (*domain.Court, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	court, err := s.getCourt(ctx, id)
	if err != nil {
		return nil, err
	}

	court.IsActive = false
	if err := s.courts.Update(ctx, court); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.access.InvalidateCircuitScope(ctx, court.CircuitCourtID)
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventCourtDeactivated,
		EntityID: court.ID,
		Actor:    userActor(actor),
	})
	return court, nil
}

func (s *CourtService) getCourt(ctx context.Context, id string) (*domain.Court, error) {
	court, err := s.courts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("court", map[string]any{"court_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return court, nil
}
