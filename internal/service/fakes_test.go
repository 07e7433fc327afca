package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/judiciary-service/internal/cache"
	"github.com/spec-kit/judiciary-service/internal/domain"
	"github.com/spec-kit/judiciary-service/internal/events"
	"github.com/spec-kit/judiciary-service/internal/repository"
	apperrors "github.com/spec-kit/judiciary-service/pkg/util"
)

func strPtr(s string) *string { return &s }

// requireDomainCode asserts the error is a DomainError carrying the code.
func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	domainErr, ok := err.(*apperrors.DomainError)
	require.True(t, ok, "expected DomainError, got %T: %v", err, err)
	require.Equal(t, code, domainErr.Code)
}

type fakeCourtRepo struct {
	seq    int
	courts map[string]domain.Court
}

func newFakeCourtRepo() *fakeCourtRepo {
	return &fakeCourtRepo{courts: map[string]domain.Court{}}
}

func (r *fakeCourtRepo) Create(_ context.Context, court *domain.Court) error {
	r.seq++
	court.ID = fmt.Sprintf("court-%d", r.seq)
	r.courts[court.ID] = *court
	return nil
}

func (r *fakeCourtRepo) Update(_ context.Context, court *domain.Court) error {
	if _, ok := r.courts[court.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.courts[court.ID] = *court
	return nil
}

func (r *fakeCourtRepo) GetByID(_ context.Context, id string) (*domain.Court, error) {
	court, ok := r.courts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := court
	return &out, nil
}

func (r *fakeCourtRepo) List(_ context.Context, filter repository.CourtFilter) ([]domain.Court, error) {
	var out []domain.Court
	for _, court := range r.courts {
		if filter.Type != nil && court.Type != *filter.Type {
			continue
		}
		if filter.Active != nil && court.IsActive != *filter.Active {
			continue
		}
		if len(filter.CourtIDs) > 0 && !containsID(filter.CourtIDs, court.ID) {
			continue
		}
		out = append(out, court)
	}
	return out, nil
}

func (r *fakeCourtRepo) ListIDsByCircuit(_ context.Context, circuitCourtID string) ([]string, error) {
	var ids []string
	for _, court := range r.courts {
		if court.IsSubordinateTo(circuitCourtID) {
			ids = append(ids, court.ID)
		}
	}
	return ids, nil
}

type fakeStaffRepo struct {
	seq   int
	staff map[string]domain.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: map[string]domain.Staff{}}
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *domain.Staff) error {
	r.seq++
	staff.ID = fmt.Sprintf("staff-%d", r.seq)
	r.staff[staff.ID] = *staff
	return nil
}

func (r *fakeStaffRepo) Update(_ context.Context, staff *domain.Staff) error {
	if _, ok := r.staff[staff.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.staff[staff.ID] = *staff
	return nil
}

func (r *fakeStaffRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.staff[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.staff, id)
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.Staff, error) {
	staff, ok := r.staff[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := staff
	return &out, nil
}

func (r *fakeStaffRepo) List(_ context.Context, filter repository.StaffFilter) ([]domain.Staff, error) {
	var out []domain.Staff
	for _, staff := range r.staff {
		if filter.CourtID != nil && staff.CourtID != *filter.CourtID {
			continue
		}
		if len(filter.CourtIDs) > 0 && !containsID(filter.CourtIDs, staff.CourtID) {
			continue
		}
		if filter.CourtType != nil && staff.CourtType != *filter.CourtType {
			continue
		}
		if filter.Status != nil && staff.EmploymentStatus != *filter.Status {
			continue
		}
		out = append(out, staff)
	}
	return out, nil
}

type fakeUserRepo struct {
	seq   int
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := user
	return &out, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			out := user
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context, filter repository.UserFilter) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		if filter.Active != nil && user.IsActive != *filter.Active {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

type fakeResetRepo struct {
	seq    int
	tokens map[string]repository.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: map[string]repository.PasswordResetToken{}}
}

func (r *fakeResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	r.seq++
	token.ID = fmt.Sprintf("reset-%d", r.seq)
	r.tokens[token.ID] = *token
	return nil
}

func (r *fakeResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	for _, token := range r.tokens {
		if token.Token == tokenStr {
			out := token
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeResetRepo) MarkUsed(_ context.Context, id string) error {
	token, ok := r.tokens[id]
	if !ok {
		return pgx.ErrNoRows
	}
	now := time.Now()
	token.UsedAt = &now
	r.tokens[id] = token
	return nil
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// testEnv wires services over the in-memory fakes. The scope cache runs
// without Redis, which degrades to a pass-through.
type testEnv struct {
	courts *fakeCourtRepo
	staff  *fakeStaffRepo
	users  *fakeUserRepo

	access       *AccessService
	courtService *CourtService
	staffService *StaffService
	userService  *UserService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		courts: newFakeCourtRepo(),
		staff:  newFakeStaffRepo(),
		users:  newFakeUserRepo(),
	}
	env.access = NewAccessService(env.courts, cache.NewScopeCache(nil, 0))
	dispatcher := events.NewInMemoryDispatcher()
	env.courtService = NewCourtService(CourtDependencies{
		CourtRepo:  env.courts,
		Access:     env.access,
		Dispatcher: dispatcher,
	})
	env.staffService = NewStaffService(StaffDependencies{
		StaffRepo:  env.staff,
		CourtRepo:  env.courts,
		Access:     env.access,
		Dispatcher: dispatcher,
	})
	env.userService = &UserService{
		users:      env.users,
		courts:     env.courts,
		dispatcher: dispatcher,
		bcryptCost: 4,
	}
	return env
}

// seedCourt inserts a court directly, bypassing service authorization.
func (e *testEnv) seedCourt(t *testing.T, court domain.Court) *domain.Court {
	t.Helper()
	court.IsActive = true
	require.NoError(t, e.courts.Create(context.Background(), &court))
	return &court
}

func (e *testEnv) adminUser() *domain.User {
	return &domain.User{ID: "admin-1", Username: "admin", Role: domain.RoleAdmin, IsActive: true}
}

func (e *testEnv) circuitUser(courtID string) *domain.User {
	return &domain.User{ID: "circuit-1", Username: "circuit", Role: domain.RoleCircuit, CourtID: &courtID, IsActive: true}
}

func (e *testEnv) magisterialUser(courtID string) *domain.User {
	return &domain.User{ID: "mag-1", Username: "magistrate", Role: domain.RoleMagisterial, CourtID: &courtID, IsActive: true}
}
