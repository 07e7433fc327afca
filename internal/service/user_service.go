package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/judiciary-service/internal/auth"
	"github.com/spec-kit/judiciary-service/internal/config"
	"github.com/spec-kit/judiciary-service/internal/domain"
	"github.com/spec-kit/judiciary-service/internal/events"
	"github.com/spec-kit/judiciary-service/internal/repository"
	apperrors "github.com/spec-kit/judiciary-service/pkg/util"
)

// UserService manages user accounts. All operations are admin-gated.
type UserService struct {
	users      repository.UserRepository
	courts     repository.CourtRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// UserDependencies bundles requirements for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	CourtRepo  repository.CourtRepository
	Dispatcher events.Dispatcher
}

// UserCreateInput describes account creation payload.
type UserCreateInput struct {
	Username string
	Name     string
	Password string
	Role     domain.Role
	CourtID  *string
}

// UserUpdateInput describes mutable account fields.
type UserUpdateInput struct {
	Username string
	Name     string
	Role     *domain.Role
	CourtID  *string
}

// UserListFilters define listing parameters.
type UserListFilters struct {
	Role   *domain.Role
	Active *bool
	Limit  int
	Offset int
}

// NewUserService constructs the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		courts:     deps.CourtRepo,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// courtTypeForRole maps a scoped role to the court type its binding must
// reference.
func courtTypeForRole(role domain.Role) (domain.CourtType, bool) {
	switch role {
	case domain.RoleCircuit:
		return domain.CourtTypeCircuit, true
	case domain.RoleMagisterial:
		return domain.CourtTypeMagisterial, true
	}
	return "", false
}

// validateCourtBinding checks that a non-admin account binds to a court of
// the type matching its role.
func (s *UserService) validateCourtBinding(ctx context.Context, role domain.Role, courtID *string) error {
	wantType, scoped := courtTypeForRole(role)
	if !scoped {
		if courtID != nil {
			return apperrors.NewValidationError("admin accounts are not court-scoped", nil)
		}
		return nil
	}
	if courtID == nil || *courtID == "" {
		return apperrors.NewValidationError("court binding required for scoped roles",
			map[string]any{"role": role})
	}
	court, err := s.courts.GetByID(ctx, *courtID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("court reference does not resolve",
				map[string]any{"court_id": *courtID})
		}
		return apperrors.MapError(err)
	}
	if court.Type != wantType {
		return apperrors.NewValidationError("court type does not match role",
			map[string]any{"court_id": *courtID, "role": role})
	}
	return nil
}

func (s *UserService) checkUsernameFree(ctx context.Context, username, selfID string) error {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return apperrors.MapError(err)
	}
	if existing.ID != selfID {
		return apperrors.NewValidationError("username already taken",
			map[string]any{"username": username})
	}
	return nil
}

// CreateUser registers a new account. Admin only.
func (s *UserService) CreateUser(ctx context.Context, actor *domain.User, input UserCreateInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := domain.ValidateUsername(input.Username); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	if !domain.ValidRole(input.Role) {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": input.Role})
	}
	if err := s.checkUsernameFree(ctx, input.Username, ""); err != nil {
		return nil, err
	}
	if err := s.validateCourtBinding(ctx, input.Role, input.CourtID); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
		CourtID:      input.CourtID,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventUserCreated,
		EntityID: user.ID,
		Actor:    userActor(actor),
	})
	return user, nil
}

// ListUsers lists accounts. Admin only.
func (s *UserService) ListUsers(ctx context.Context, actor *domain.User, filters UserListFilters) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	list, err := s.users.List(ctx, repository.UserFilter{
		Role:   filters.Role,
		Active: filters.Active,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// GetUser fetches an account. Admin only.
func (s *UserService) GetUser(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.getUser(ctx, id)
}

// UpdateUser modifies account details. Admin only.
func (s *UserService) UpdateUser(ctx context.Context, actor *domain.User, id string, input UserUpdateInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		if err := domain.ValidateUsername(input.Username); err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
		if err := s.checkUsernameFree(ctx, input.Username, user.ID); err != nil {
			return nil, err
		}
		user.Username = input.Username
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": *input.Role})
		}
		user.Role = *input.Role
	}
	if input.CourtID != nil {
		user.CourtID = input.CourtID
	}
	if _, scoped := courtTypeForRole(user.Role); !scoped {
		user.CourtID = nil
	}
	if err := s.validateCourtBinding(ctx, user.Role, user.CourtID); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// DeactivateUser soft-deactivates an account; accounts are never
// hard-deleted. Self-deactivation is refused.
func (s *UserService) DeactivateUser(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if actor != nil && actor.ID == id {
		return nil, apperrors.NewForbidden("cannot deactivate own account")
	}
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = false
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventUserDeactivated,
		EntityID: user.ID,
		Actor:    userActor(actor),
		Payload:  events.UserDeactivatedPayload{Username: user.Username},
	})
	return user, nil
}

func (s *UserService) getUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}
