package adapters

import (
	"strconv"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface.
type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock reading the wall time in loc. A nil loc means local time.
func NewSystemClock(loc *time.Location) adapter.Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock is a settable clock for tests and replays.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed time.
func (c *FixedClock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

// SequentialIDs generates predictable ids prefix-1, prefix-2, ...
type SequentialIDs struct {
	Prefix string
	n      int
}

// NewID returns the next id in the sequence.
func (s *SequentialIDs) NewID() string {
	s.n++
	return s.Prefix + "-" + strconv.Itoa(s.n)
}
