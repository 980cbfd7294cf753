package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/bankvault/internal/errors"
)

func TestValidatePin(t *testing.T) {
	for _, pin := range []string{"1234", "12345", "123456", "0000"} {
		assert.NoError(t, ValidatePin(pin), pin)
	}
	for _, pin := range []string{"", "123", "1234567", "12a4", "12 34", "١٢٣٤"} {
		err := ValidatePin(pin)
		assert.ErrorIs(t, err, ErrInvalidPin, pin)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, pin)
	}
}

func TestAttempts_RecordFailure(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	a := Attempts{}
	a = a.RecordFailure(now, 3, 30*time.Minute)
	a = a.RecordFailure(now, 3, 30*time.Minute)
	assert.Equal(t, 2, a.Failed)
	assert.False(t, a.IsLocked(now))

	a = a.RecordFailure(now, 3, 30*time.Minute)
	require.NotNil(t, a.LockedUntil)
	assert.True(t, a.IsLocked(now.Add(29*time.Minute)))
	assert.False(t, a.IsLocked(now.Add(30*time.Minute)))

	a = a.RecordFailure(now.Add(31*time.Minute), 3, 30*time.Minute)
	assert.Equal(t, 1, a.Failed)
	assert.Nil(t, a.LockedUntil)
}

func TestAttempts_IsZero(t *testing.T) {
	assert.True(t, Attempts{}.IsZero())
	assert.False(t, Attempts{Failed: 1}.IsZero())
}
