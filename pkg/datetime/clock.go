package datetime

import (
	"sync/atomic"
	"time"
)

// Clock is the source of the current time for Now.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant until moved. The zero value is
// stopped at the Unix epoch in UTC.
type FixedClock struct {
	now atomic.Int64
	loc *time.Location
}

// NewFixedClock creates a clock stopped at t.
func NewFixedClock(t time.Time) *FixedClock {
	c := &FixedClock{loc: t.Location()}
	c.now.Store(t.UnixNano())
	return c
}

// Now returns the fixed time.
func (c *FixedClock) Now() time.Time {
	return time.Unix(0, c.now.Load()).In(c.location())
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.now.Store(t.UnixNano())
}

// Add advances the clock by d.
func (c *FixedClock) Add(d time.Duration) {
	c.now.Add(int64(d))
}

func (c *FixedClock) location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

type clockHolder struct{ Clock }

var current atomic.Pointer[clockHolder]

func init() {
	ResetClock()
}

// SetClock replaces the clock used by Now. A nil clock is ignored.
func SetClock(c Clock) {
	if c != nil {
		current.Store(&clockHolder{c})
	}
}

// ResetClock restores the system clock.
func ResetClock() {
	current.Store(&clockHolder{SystemClock{}})
}

// Now returns the current local date-time, without zone information.
func Now() DateTime {
	return DateTimeOf(current.Load().Now())
}
