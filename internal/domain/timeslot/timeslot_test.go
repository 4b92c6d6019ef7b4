//go:build unit

package timeslot_test

import (
	"testing"
	"time"

	"coach-flow/internal/domain/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("valid slot", func(t *testing.T) {
		slot, err := timeslot.New(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, slot.Start())
		assert.Equal(t, base.Add(time.Hour), slot.End())
		assert.Equal(t, time.Hour, slot.Duration())
	})

	t.Run("start equal to end is invalid", func(t *testing.T) {
		_, err := timeslot.New(base, base)
		require.ErrorIs(t, err, timeslot.ErrInvalidSlot)
	})

	t.Run("start after end is invalid", func(t *testing.T) {
		_, err := timeslot.New(base.Add(time.Hour), base)
		require.ErrorIs(t, err, timeslot.ErrInvalidSlot)
	})
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mustSlot := func(startOffset, endOffset time.Duration) timeslot.Slot {
		t.Helper()
		s, err := timeslot.New(base.Add(startOffset), base.Add(endOffset))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name string
		a    timeslot.Slot
		b    timeslot.Slot
		want bool
	}{
		{
			name: "identical slots overlap",
			a:    mustSlot(0, time.Hour),
			b:    mustSlot(0, time.Hour),
			want: true,
		},
		{
			name: "partial overlap",
			a:    mustSlot(0, time.Hour),
			b:    mustSlot(30*time.Minute, 90*time.Minute),
			want: true,
		},
		{
			name: "containment overlaps",
			a:    mustSlot(0, 2*time.Hour),
			b:    mustSlot(30*time.Minute, time.Hour),
			want: true,
		},
		{
			name: "back to back slots do not overlap",
			a:    mustSlot(0, time.Hour),
			b:    mustSlot(time.Hour, 2*time.Hour),
			want: false,
		},
		{
			name: "disjoint slots do not overlap",
			a:    mustSlot(0, time.Hour),
			b:    mustSlot(3*time.Hour, 4*time.Hour),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// the predicate is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}
