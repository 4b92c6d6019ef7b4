//go:build unit

package booking_test

import (
	"testing"
	"time"

	"coach-flow/internal/domain/booking"
	"coach-flow/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.ClientID, actual.ClientID())
		assert.Equal(t, b.TrainerID, actual.TrainerID())
		assert.Equal(t, b.ServiceID, actual.ServiceID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Nil(t, actual.ReminderSentAt())
	})

	t.Run("start in the past is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.StartTime = b.Now.Add(-time.Hour)
		})
		_, err := b.BuildDomain()
		require.ErrorIs(t, err, booking.ErrStartTimeInPast)
	})

	t.Run("start equal to now is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.StartTime = b.Now
		})
		_, err := b.BuildDomain()
		require.ErrorIs(t, err, booking.ErrStartTimeInPast)
	})
}

func TestApproveReject(t *testing.T) {
	tests := []struct {
		name   string
		status booking.Status
		op     func(*booking.Booking) error
		errIs  error
		want   booking.Status
	}{
		{name: "approve pending", status: booking.StatusPending, op: (*booking.Booking).Approve, want: booking.StatusAccepted},
		{name: "reject pending", status: booking.StatusPending, op: (*booking.Booking).Reject, want: booking.StatusRejected},
		{name: "approve accepted fails", status: booking.StatusAccepted, op: (*booking.Booking).Approve, errIs: booking.ErrNotPending},
		{name: "approve rejected fails", status: booking.StatusRejected, op: (*booking.Booking).Approve, errIs: booking.ErrNotPending},
		{name: "approve cancelled fails", status: booking.StatusCancelled, op: (*booking.Booking).Approve, errIs: booking.ErrNotPending},
		{name: "reject accepted fails", status: booking.StatusAccepted, op: (*booking.Booking).Reject, errIs: booking.ErrNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(tt.status).BuildReconstructed()

			err := tt.op(b)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.status, b.Status(), "status must not change on a failed transition")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Status())
		})
	}
}

func TestCancel(t *testing.T) {
	t.Run("actor validation", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()

		_, err := b.Cancel(uuid.New(), time.Now())
		require.ErrorIs(t, err, booking.ErrNotParticipant)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("status validation", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusRejected, booking.StatusCancelled} {
			t.Run(status.String(), func(t *testing.T) {
				bb := builder.NewBookingBuilder().WithStatus(status)
				b := bb.BuildReconstructed()

				_, err := b.Cancel(bb.ClientID, time.Now())
				require.ErrorIs(t, err, booking.ErrNotCancellable)
			})
		}
	})

	t.Run("ban side effect matrix", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

		tests := []struct {
			name       string
			status     booking.Status
			startsIn   time.Duration
			byTrainer  bool
			wantBanned bool
		}{
			{
				name:       "client cancels accepted session inside the window",
				status:     booking.StatusAccepted,
				startsIn:   2 * time.Hour,
				wantBanned: true,
			},
			{
				name:       "client cancels accepted session exactly at the window edge",
				status:     booking.StatusAccepted,
				startsIn:   booking.LateCancellationWindow,
				wantBanned: true,
			},
			{
				name:       "client cancels accepted session just outside the window",
				status:     booking.StatusAccepted,
				startsIn:   booking.LateCancellationWindow + time.Minute,
				wantBanned: false,
			},
			{
				name:       "client cancels pending request inside the window",
				status:     booking.StatusPending,
				startsIn:   time.Hour,
				wantBanned: false,
			},
			{
				name:       "trainer cancels accepted session inside the window",
				status:     booking.StatusAccepted,
				startsIn:   time.Hour,
				byTrainer:  true,
				wantBanned: false,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				bb := builder.NewBookingBuilder().
					WithStatus(tt.status).
					WithStartTime(now.Add(tt.startsIn))
				b := bb.BuildReconstructed()

				actor := bb.ClientID
				if tt.byTrainer {
					actor = bb.TrainerID
				}

				result, err := b.Cancel(actor, now)
				require.NoError(t, err)
				require.NotNil(t, result)

				assert.Equal(t, booking.StatusCancelled, b.Status())
				assert.Equal(t, tt.wantBanned, result.BansClient)
				if tt.wantBanned {
					assert.Equal(t, now.Add(booking.BanPeriod), result.BannedUntil)
				}
			})
		}
	})
}

func TestStatus(t *testing.T) {
	t.Run("blocking statuses", func(t *testing.T) {
		assert.True(t, booking.StatusPending.Blocks())
		assert.True(t, booking.StatusAccepted.Blocks())
		assert.False(t, booking.StatusRejected.Blocks())
		assert.False(t, booking.StatusCancelled.Blocks())
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.False(t, booking.StatusPending.IsTerminal())
		assert.False(t, booking.StatusAccepted.IsTerminal())
		assert.True(t, booking.StatusRejected.IsTerminal())
		assert.True(t, booking.StatusCancelled.IsTerminal())
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, booking.StatusPending.IsValid())
		assert.False(t, booking.Status("confirmed").IsValid())
	})
}
