package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "lifeline/pkg/domain-errors"
)

func TestParseBloodType(t *testing.T) {
	t.Run("accepts all eight types case-insensitively", func(t *testing.T) {
		for _, raw := range []string{"a+", "A-", "b+", "B-", "ab+", "Ab-", "o+", "O-"} {
			bt, err := ParseBloodType(raw)
			require.NoError(t, err, raw)
			assert.NotEmpty(t, bt)
		}
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		for _, raw := range []string{"", "C+", "AB", "O", "A +"} {
			_, err := ParseBloodType(raw)
			require.Error(t, err, raw)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		}
	})
}

func TestNewDonor(t *testing.T) {
	t.Run("donor without prior donation", func(t *testing.T) {
		u, err := NewDonor("1", "John", "john@gmail.com", "9876543210", BloodTypeONeg, "Chennai", GenderMale, nil)
		require.NoError(t, err)
		assert.True(t, u.IsDonor())
		assert.Nil(t, u.LastDonatedAt)
	})

	t.Run("donor with a registered last donation", func(t *testing.T) {
		last := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
		u, err := NewDonor("2", "Asha", "asha@gmail.com", "9876543211", BloodTypeAPos, "Pune", GenderFemale, &last)
		require.NoError(t, err)
		require.NotNil(t, u.LastDonatedAt)
		assert.Equal(t, last, *u.LastDonatedAt)
	})

	t.Run("requires a blood type", func(t *testing.T) {
		_, err := NewDonor("3", "John", "john2@gmail.com", "9876543212", "", "Chennai", GenderMale, nil)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestNewReceiver(t *testing.T) {
	u, err := NewReceiver("REC-4", "Meera", "meera@gmail.com", "9123456780", "Delhi", GenderFemale)
	require.NoError(t, err)
	assert.Equal(t, RoleReceiver, u.Role)
	assert.Empty(t, u.BloodType)
	assert.False(t, u.IsDonor())
}

func TestApplyDonation(t *testing.T) {
	u, err := NewDonor("1", "John", "john@gmail.com", "9876543210", BloodTypeONeg, "Chennai", GenderMale, nil)
	require.NoError(t, err)

	now := time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)
	u.ApplyDonation(now)
	require.NotNil(t, u.LastDonatedAt)
	assert.Equal(t, now, *u.LastDonatedAt)
}
