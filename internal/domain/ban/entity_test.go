//go:build unit

package ban_test

import (
	"testing"
	"time"

	"coach-flow/internal/domain/ban"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBan(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clientID := uuid.New()
	trainerID := uuid.New()

	t.Run("valid ban", func(t *testing.T) {
		b, err := ban.NewBan(clientID, trainerID, now.Add(7*24*time.Hour), now)
		require.NoError(t, err)
		assert.Equal(t, clientID, b.ClientID())
		assert.Equal(t, trainerID, b.TrainerID())
		assert.Equal(t, now.Add(7*24*time.Hour), b.BannedUntil())
	})

	t.Run("banned until in the past", func(t *testing.T) {
		_, err := ban.NewBan(clientID, trainerID, now.Add(-time.Hour), now)
		require.ErrorIs(t, err, ban.ErrBannedUntilInPast)
	})

	t.Run("banned until equal to now", func(t *testing.T) {
		_, err := ban.NewBan(clientID, trainerID, now, now)
		require.ErrorIs(t, err, ban.ErrBannedUntilInPast)
	})
}

func TestActiveAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	until := now.Add(24 * time.Hour)
	b := ban.ReconstructBan(uuid.New(), uuid.New(), until, now, now)

	assert.True(t, b.ActiveAt(now))
	assert.True(t, b.ActiveAt(until.Add(-time.Second)))
	// a ban expires exactly at bannedUntil
	assert.False(t, b.ActiveAt(until))
	assert.False(t, b.ActiveAt(until.Add(time.Second)))
}
