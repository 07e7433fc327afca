package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/judiciary-service/internal/domain"
	"github.com/spec-kit/judiciary-service/internal/events"
	"github.com/spec-kit/judiciary-service/internal/policy"
	"github.com/spec-kit/judiciary-service/internal/repository"
	apperrors "github.com/spec-kit/judiciary-service/pkg/util"
)

// StaffService manages staff records and their employment lifecycle.
type StaffService struct {
	staff      repository.StaffRepository
	courts     repository.CourtRepository
	access     *AccessService
	dispatcher events.Dispatcher
}

// StaffDependencies bundles requirements for the staff service.
type StaffDependencies struct {
	StaffRepo  repository.StaffRepository
	CourtRepo  repository.CourtRepository
	Access     *AccessService
	Dispatcher events.Dispatcher
}

// StaffCreateInput describes staff creation payload.
type StaffCreateInput struct {
	Name      string
	Position  string
	CourtType domain.CourtType
	CourtID   string
	Email     *string
	Phone     *string
	Bio       *string
}

// StaffUpdateInput describes mutable staff fields. A non-nil
// EmploymentStatus routes the write through the status transition.
// LeaveEndDate is only accepted while the record is on leave.
type StaffUpdateInput struct {
	Name             string
	Position         string
	CourtType        *domain.CourtType
	CourtID          *string
	Email            *string
	Phone            *string
	Bio              *string
	EmploymentStatus *domain.EmploymentStatus
	EffectiveDate    *time.Time
	LeaveEndDate     *time.Time
}

// StaffListFilters define listing parameters.
type StaffListFilters struct {
	CourtID   *string
	CourtType *domain.CourtType
	Status    *domain.EmploymentStatus
	Limit     int
	Offset    int
}

// NewStaffService constructs the service.
func NewStaffService(deps StaffDependencies) *StaffService {
	return &StaffService{
		staff:      deps.StaffRepo,
		courts:     deps.CourtRepo,
		access:     deps.Access,
		dispatcher: deps.Dispatcher,
	}
}

// resolveCourtReference checks that the court id resolves and that its type
// matches the declared court type. A mismatch or missing court is a
// validation error, caught before any write.
func (s *StaffService) resolveCourtReference(ctx context.Context, courtID string, courtType domain.CourtType) (*domain.Court, error) {
	court, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("court reference does not resolve",
				map[string]any{"court_id": courtID})
		}
		return nil, apperrors.MapError(err)
	}
	if court.Type != courtType {
		return nil, apperrors.NewValidationError("court type does not match referenced court",
			map[string]any{"court_id": courtID, "court_type": courtType})
	}
	return court, nil
}

// CreateStaff adds a staff member under a court. Any caller authorized for
// the target court may create staff there.
func (s *StaffService) CreateStaff(ctx context.Context, actor *domain.User, input StaffCreateInput) (*domain.Staff, error) {
	staff := &domain.Staff{
		Name:             input.Name,
		Position:         input.Position,
		CourtType:        input.CourtType,
		CourtID:          input.CourtID,
		Email:            input.Email,
		Phone:            input.Phone,
		Bio:              input.Bio,
		EmploymentStatus: domain.EmploymentActive,
	}
	if err := domain.ValidateStaff(staff); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}

	court, err := s.resolveCourtReference(ctx, input.CourtID, input.CourtType)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(policy.CallerFrom(actor), court); err != nil {
		return nil, apperrors.NewForbidden("access to court denied")
	}

	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventStaffCreated,
		EntityID: staff.ID,
		Actor:    userActor(actor),
		Payload: events.StaffCreatedPayload{
			Name:     staff.Name,
			Position: staff.Position,
			CourtID:  staff.CourtID,
		},
	})
	return staff, nil
}

// GetStaff fetches a staff record the caller is authorized to see.
func (s *StaffService) GetStaff(ctx context.Context, actor *domain.User, id string) (*domain.Staff, error) {
	staff, err := s.getStaff(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.AuthorizeCourt(ctx, actor, staff.CourtID); err != nil {
		return nil, err
	}
	return staff, nil
}

// ListStaff returns staff within the caller's visibility scope. An explicit
// court filter is authorized against the hierarchy first.
func (s *StaffService) ListStaff(ctx context.Context, actor *domain.User, filters StaffListFilters) ([]domain.Staff, error) {
	repoFilter := repository.StaffFilter{
		CourtType: filters.CourtType,
		Status:    filters.Status,
		Limit:     filters.Limit,
		Offset:    filters.Offset,
	}

	if filters.CourtID != nil {
		if _, err := s.access.AuthorizeCourt(ctx, actor, *filters.CourtID); err != nil {
			return nil, err
		}
		repoFilter.CourtID = filters.CourtID
	} else {
		scope, err := s.access.VisibleScope(ctx, actor)
		if err != nil {
			return nil, err
		}
		if !scope.Unrestricted {
			if len(scope.CourtIDs) == 0 {
				return []domain.Staff{}, nil
			}
			repoFilter.CourtIDs = scope.CourtIDs
		}
	}

	list, err := s.staff.List(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// UpdateStaff modifies a staff record. Writes touching employment status go
// through the transition function rather than raw field writes.
func (s *StaffService) UpdateStaff(ctx context.Context, actor *domain.User, id string, input StaffUpdateInput) (*domain.Staff, error) {
	staff, err := s.getStaff(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.AuthorizeCourt(ctx, actor, staff.CourtID); err != nil {
		return nil, err
	}

	if input.Name != "" {
		staff.Name = input.Name
	}
	if input.Position != "" {
		staff.Position = input.Position
	}
	if input.Email != nil {
		staff.Email = input.Email
	}
	if input.Phone != nil {
		staff.Phone = input.Phone
	}
	if input.Bio != nil {
		staff.Bio = input.Bio
	}

	if input.CourtID != nil || input.CourtType != nil {
		courtID := staff.CourtID
		courtType := staff.CourtType
		if input.CourtID != nil {
			courtID = *input.CourtID
		}
		if input.CourtType != nil {
			courtType = *input.CourtType
		}
		court, err := s.resolveCourtReference(ctx, courtID, courtType)
		if err != nil {
			return nil, err
		}
		if err := policy.Authorize(policy.CallerFrom(actor), court); err != nil {
			return nil, apperrors.NewForbidden("access to court denied")
		}
		staff.CourtID = courtID
		staff.CourtType = courtType
	}

	oldStatus := staff.EmploymentStatus
	if input.EmploymentStatus != nil {
		if !domain.ValidEmploymentStatus(*input.EmploymentStatus) {
			return nil, apperrors.NewValidationError("invalid employment status",
				map[string]any{"employment_status": *input.EmploymentStatus})
		}
		staff.ApplyEmploymentStatus(*input.EmploymentStatus, input.EffectiveDate)
	}
	if input.LeaveEndDate != nil {
		// applied after the transition so a combined status+end-date write
		// is not wiped by the date clearing; ValidateStaff rejects the
		// field on records that are not on leave
		staff.LeaveEndDate = input.LeaveEndDate
	}

	if err := domain.ValidateStaff(staff); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}

	if input.EmploymentStatus != nil && oldStatus != staff.EmploymentStatus {
		publishEvent(ctx, s.dispatcher, events.Event{
			Type:     events.EventStaffStatusChanged,
			EntityID: staff.ID,
			Actor:    userActor(actor),
			Payload: events.StaffStatusChangedPayload{
				OldStatus:     oldStatus,
				NewStatus:     staff.EmploymentStatus,
				EffectiveDate: input.EffectiveDate,
			},
		})
	}
	return staff, nil
}

// ChangeEmploymentStatus applies the status transition: all status dates are
// cleared, then the single date owned by the new status is set to the
// effective date (defaulting to now). Persistence failures surface as
// storage errors, not validation errors.
func (s *StaffService) ChangeEmploymentStatus(ctx context.Context, actor *domain.User, id string, status domain.EmploymentStatus, effective *time.Time) (*domain.Staff, error) {
	if !domain.ValidEmploymentStatus(status) {
		return nil, apperrors.NewValidationError("invalid employment status",
			map[string]any{"employment_status": status})
	}

	staff, err := s.getStaff(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.AuthorizeCourt(ctx, actor, staff.CourtID); err != nil {
		return nil, err
	}

	oldStatus := staff.EmploymentStatus
	staff.ApplyEmploymentStatus(status, effective)

	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventStaffStatusChanged,
		EntityID: staff.ID,
		Actor:    userActor(actor),
		Payload: events.StaffStatusChangedPayload{
			OldStatus:     oldStatus,
			NewStatus:     status,
			EffectiveDate: effective,
		},
	})
	return staff, nil
}

// DeleteStaff hard-deletes a staff record. Admin only.
func (s *StaffService) DeleteStaff(ctx context.Context, actor *domain.User, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if _, err := s.getStaff(ctx, id); err != nil {
		return err
	}
	if err := s.staff.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventStaffDeleted,
		EntityID: id,
		Actor:    userActor(actor),
	})
	return nil
}

func (s *StaffService) getStaff(ctx context.Context, id string) (*domain.Staff, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"staff_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}
