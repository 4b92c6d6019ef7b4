package timeslot

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSlot = errors.New("start time must be before end time")

// Slot is a half-open time window [start, end).
type Slot struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (Slot, error) {
	if !start.Before(end) {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{start: start, end: end}, nil
}

func (s Slot) Start() time.Time {
	return s.start
}

func (s Slot) End() time.Time {
	return s.end
}

func (s Slot) Duration() time.Duration {
	return s.end.Sub(s.start)
}

// Overlaps reports whether two half-open windows intersect. Windows that
// merely touch at an endpoint do not overlap. Every conflict check in the
// system goes through this predicate (the tstzrange && operator in the
// store has identical semantics).
func (s Slot) Overlaps(other Slot) bool {
	return s.start.Before(other.end) && other.start.Before(s.end)
}

func (s Slot) String() string {
	return fmt.Sprintf("[%s,%s)", s.start.Format(time.RFC3339), s.end.Format(time.RFC3339))
}
