package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestApplyEmploymentStatus(t *testing.T) {
	effective := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("retired sets retirement date only", func(t *testing.T) {
		staff := &Staff{EmploymentStatus: EmploymentActive}
		staff.ApplyEmploymentStatus(EmploymentRetired, timePtr(effective))

		assert.Equal(t, EmploymentRetired, staff.EmploymentStatus)
		require.NotNil(t, staff.RetirementDate)
		assert.Equal(t, effective, *staff.RetirementDate)
		assert.Nil(t, staff.DismissalDate)
		assert.Nil(t, staff.LeaveStartDate)
		assert.Nil(t, staff.LeaveEndDate)
	})

	t.Run("transition clears previous status date", func(t *testing.T) {
		staff := &Staff{EmploymentStatus: EmploymentActive}
		staff.ApplyEmploymentStatus(EmploymentRetired, timePtr(effective))
		staff.ApplyEmploymentStatus(EmploymentOnLeave, timePtr(effective.AddDate(0, 1, 0)))

		assert.Equal(t, EmploymentOnLeave, staff.EmploymentStatus)
		assert.Nil(t, staff.RetirementDate)
		require.NotNil(t, staff.LeaveStartDate)
		assert.Equal(t, effective.AddDate(0, 1, 0), *staff.LeaveStartDate)
	})

	t.Run("leave end date cleared on any transition", func(t *testing.T) {
		staff := &Staff{
			EmploymentStatus: EmploymentOnLeave,
			LeaveStartDate:   timePtr(effective),
			LeaveEndDate:     timePtr(effective.AddDate(0, 2, 0)),
		}
		staff.ApplyEmploymentStatus(EmploymentActive, nil)

		assert.Equal(t, EmploymentActive, staff.EmploymentStatus)
		assert.Nil(t, staff.LeaveStartDate)
		assert.Nil(t, staff.LeaveEndDate)
	})

	t.Run("active owns no date", func(t *testing.T) {
		staff := &Staff{EmploymentStatus: EmploymentDismissed, DismissalDate: timePtr(effective)}
		staff.ApplyEmploymentStatus(EmploymentActive, timePtr(effective))

		assert.Nil(t, staff.RetirementDate)
		assert.Nil(t, staff.DismissalDate)
		assert.Nil(t, staff.LeaveStartDate)
	})

	t.Run("effective date defaults to now", func(t *testing.T) {
		staff := &Staff{EmploymentStatus: EmploymentActive}
		before := time.Now()
		staff.ApplyEmploymentStatus(EmploymentDismissed, nil)
		after := time.Now()

		require.NotNil(t, staff.DismissalDate)
		assert.False(t, staff.DismissalDate.Before(before))
		assert.False(t, staff.DismissalDate.After(after))
	})

	t.Run("reapplying same status is idempotent on shape", func(t *testing.T) {
		staff := &Staff{EmploymentStatus: EmploymentActive}
		staff.ApplyEmploymentStatus(EmploymentRetired, timePtr(effective))
		staff.ApplyEmploymentStatus(EmploymentRetired, timePtr(effective))

		assert.Equal(t, EmploymentRetired, staff.EmploymentStatus)
		require.NotNil(t, staff.RetirementDate)
		assert.Equal(t, effective, *staff.RetirementDate)
		assert.True(t, staff.StatusDatesConsistent())
	})
}

func TestStatusDatesConsistent(t *testing.T) {
	effective := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		staff Staff
		want  bool
	}{
		{
			name:  "active with no dates",
			staff: Staff{EmploymentStatus: EmploymentActive},
			want:  true,
		},
		{
			name:  "retired with retirement date",
			staff: Staff{EmploymentStatus: EmploymentRetired, RetirementDate: timePtr(effective)},
			want:  true,
		},
		{
			name:  "retired without retirement date",
			staff: Staff{EmploymentStatus: EmploymentRetired},
			want:  false,
		},
		{
			name: "retired with stray dismissal date",
			staff: Staff{
				EmploymentStatus: EmploymentRetired,
				RetirementDate:   timePtr(effective),
				DismissalDate:    timePtr(effective),
			},
			want: false,
		},
		{
			name: "on leave with optional end date",
			staff: Staff{
				EmploymentStatus: EmploymentOnLeave,
				LeaveStartDate:   timePtr(effective),
				LeaveEndDate:     timePtr(effective.AddDate(0, 1, 0)),
			},
			want: true,
		},
		{
			name: "active with stray leave end date",
			staff: Staff{
				EmploymentStatus: EmploymentActive,
				LeaveEndDate:     timePtr(effective),
			},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.staff.StatusDatesConsistent())
		})
	}
}

func TestValidEmploymentStatus(t *testing.T) {
	assert.True(t, ValidEmploymentStatus(EmploymentActive))
	assert.True(t, ValidEmploymentStatus(EmploymentOnLeave))
	assert.False(t, ValidEmploymentStatus("suspended"))
	assert.False(t, ValidEmploymentStatus(""))
}
