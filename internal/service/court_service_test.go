package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/judiciary-service/internal/domain"
)

func TestCreateCourt(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates circuit court", func(t *testing.T) {
		env := newTestEnv()
		court, err := env.courtService.CreateCourt(ctx, env.adminUser(), CourtCreateInput{
			Name: "First Judicial Circuit",
			Type: domain.CourtTypeCircuit,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, court.ID)
		assert.True(t, court.IsActive)
	})

	t.Run("magisterial court under circuit parent", func(t *testing.T) {
		env := newTestEnv()
		parent := env.seedCourt(t, domain.Court{Name: "First Judicial Circuit", Type: domain.CourtTypeCircuit})

		court, err := env.courtService.CreateCourt(ctx, env.adminUser(), CourtCreateInput{
			Name:           "Northern Magisterial Court",
			Type:           domain.CourtTypeMagisterial,
			CircuitCourtID: &parent.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, court.CircuitCourtID)
		assert.Equal(t, parent.ID, *court.CircuitCourtID)
	})

	t.Run("magisterial court under magisterial parent rejected", func(t *testing.T) {
		env := newTestEnv()
		parent := env.seedCourt(t, domain.Court{Name: "First Judicial Circuit", Type: domain.CourtTypeCircuit})
		mag := env.seedCourt(t, domain.Court{Name: "Northern Magisterial Court", Type: domain.CourtTypeMagisterial, CircuitCourtID: &parent.ID})

		_, err := env.courtService.CreateCourt(ctx, env.adminUser(), CourtCreateInput{
			Name:           "Invalid Court",
			Type:           domain.CourtTypeMagisterial,
			CircuitCourtID: &mag.ID,
		})
		requireDomainCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("unresolvable parent rejected", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.courtService.CreateCourt(ctx, env.adminUser(), CourtCreateInput{
			Name:           "Orphan Court",
			Type:           domain.CourtTypeMagisterial,
			CircuitCourtID: strPtr("missing"),
		})
		requireDomainCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("non-admin denied", func(t *testing.T) {
		env := newTestEnv()
		circuit := env.seedCourt(t, domain.Court{Name: "First Judicial Circuit", Type: domain.CourtTypeCircuit})

		_, err := env.courtService.CreateCourt(ctx, env.circuitUser(circuit.ID), CourtCreateInput{
			Name: "Second Judicial Circuit",
			Type: domain.CourtTypeCircuit,
		})
		requireDomainCode(t, err, "FORBIDDEN")
	})
}

func TestGetCourt(t *testing.T) {
	ctx := context.Background()

	t.Run("missing court is not found even for admin", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.courtService.GetCourt(ctx, env.adminUser(), "missing")
		requireDomainCode(t, err, "NOT_FOUND")
	})

	t.Run("circuit user reads subordinate court", func(t *testing.T) {
		env := newTestEnv()
		circuit := env.seedCourt(t, domain.Court{Name: "First Judicial Circuit", Type: domain.CourtTypeCircuit})
		mag := env.seedCourt(t, domain.Court{Name: "Northern Magisterial Court", Type: domain.CourtTypeMagisterial, CircuitCourtID: &circuit.ID})

		court, err := env.courtService.GetCourt(ctx, env.circuitUser(circuit.ID), mag.ID)
		require.NoError(t, err)
		assert.Equal(t, mag.ID, court.ID)
	})

	t.Run("circuit user denied unrelated court", func(t *testing.T) {
		env := newTestEnv()
		circuit := env.seedCourt(t, domain.Court{Name: "First Judicial Circuit", Type: domain.CourtTypeCircuit})
		other := env.seedCourt(t, domain.Court{Name: "Second Judicial Circuit", Type: domain.CourtTypeCircuit})

		_, err := env.courtService.GetCourt(ctx, env.circuitUser(circuit.ID), other.ID)
		requireDomainCode(t, err, "FORBIDDEN")
	})

	t.Run("magisterial user reads own court only", func(t *testing.T) {
		env := newTestEnv()
		circuit := env.seedCourt(t, domain.Court{Name: "First Judicial Circuit", Type: domain.CourtTypeCircuit})
		mag := env.seedCourt(t, domain.Court{Name: "Northern Magisterial Court", Type: domain.CourtTypeMagisterial, CircuitCourtID: &circuit.ID})

		court, err := env.courtService.GetCourt(ctx, env.magisterialUser(mag.ID), mag.ID)
		require.NoError(t, err)
		assert.Equal(t, mag.ID, court.ID)

		_, err = env.courtService.GetCourt(ctx, env.magisterialUser(mag.ID), circuit.ID)
		requireDomainCode(t, err, "FORBIDDEN")
	})
}

func TestListCourts(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv()
	circuit := env.seedCourt(t, domain.Court{Name: "First Judicial Circuit", Type: domain.CourtTypeCircuit})
	mag1 := env.seedCourt(t, domain.Court{Name: "Northern Magisterial Court", Type: domain.CourtTypeMagisterial, CircuitCourtID: &circuit.ID})
	other := env.seedCourt(t, domain.Court{Name: "Second Judicial Circuit", Type: domain.CourtTypeCircuit})
	env.seedCourt(t, domain.Court{Name: "Southern Magisterial Court", Type: domain.CourtTypeMagisterial, CircuitCourtID: &other.ID})

	t.Run("admin sees all courts", func(t *testing.T) {
		list, err := env.courtService.ListCourts(ctx, env.adminUser(), CourtListFilters{})
		require.NoError(t, err)
		assert.Len(t, list, 4)
	})

	t.Run("circuit user sees own subtree", func(t *testing.T) {
		list, err := env.courtService.ListCourts(ctx, env.circuitUser(circuit.ID), CourtListFilters{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		ids := []string{list[0].ID, list[1].ID}
		assert.ElementsMatch(t, []string{circuit.ID, mag1.ID}, ids)
	})

	t.Run("magisterial user sees single court", func(t *testing.T) {
		list, err := env.courtService.ListCourts(ctx, env.magisterialUser(mag1.ID), CourtListFilters{})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, mag1.ID, list[0].ID)
	})

	t.Run("type filter applies inside scope", func(t *testing.T) {
		courtType := domain.CourtTypeMagisterial
		list, err := env.courtService.ListCourts(ctx, env.circuitUser(circuit.ID), CourtListFilters{Type: &courtType})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, mag1.ID, list[0].ID)
	})
}

func TestUpdateCourt(t *testing.T) {
	ctx := context.Background()

	t.Run("admin updates metadata", func(t *testing.T) {
		env := newTestEnv()
		circuit := env.seedCourt(t, domain.Court{Name: "First Judicial Circuit", Type: domain.CourtTypeCircuit})

		updated, err := env.courtService.UpdateCourt(ctx, env.adminUser(), circuit.ID, CourtUpdateInput{
			Name:     "Renamed Circuit",
			Location: strPtr("Capital City"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Circuit", updated.Name)
		assert.Equal(t, "Capital City", updated.Location)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		env := newTestEnv()
		circuit := env.seedCourt(t, domain.Court{Name: "First Judicial Circuit", Type: domain.CourtTypeCircuit})

		_, err := env.courtService.UpdateCourt(ctx, env.circuitUser(circuit.ID), circuit.ID, CourtUpdateInput{Name: "Mine Now"})
		requireDomainCode(t, err, "FORBIDDEN")
	})
}

func TestDeactivateCourt(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	circuit := env.seedCourt(t, domain.Court{Name: "First Judicial Circuit", Type: domain.CourtTypeCircuit})

	court, err := env.courtService.DeactivateCourt(ctx, env.adminUser(), circuit.ID)
	require.NoError(t, err)
	assert.False(t, court.IsActive)

	// record survives deactivation
	stored, err := env.courts.GetByID(ctx, circuit.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}
