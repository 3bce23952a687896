// Package clock centralizes "now" for the reference timezone. Everything that
// reasons about today, midnight or staleness goes through a Clock so tests can
// pin the instant.
package clock

import (
	"time"
)

type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

type Clock interface {
	// Now returns the current instant expressed in the reference timezone.
	Now() time.Time
	Location() *time.Location
	NewTimer(d time.Duration) Timer
}

type Real struct {
	loc *time.Location
}

func New(loc *time.Location) *Real {
	if loc == nil {
		loc = FallbackZone
	}
	return &Real{loc: loc}
}

func (c *Real) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *Real) Location() *time.Location {
	return c.loc
}

func (c *Real) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (rt *realTimer) C() <-chan time.Time {
	return rt.t.C
}

func (rt *realTimer) Stop() bool {
	return rt.t.Stop()
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextMidnight returns the first midnight strictly after t, in t's location.
func NextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

// UntilNextMidnight is the sleep duration from now until the next reference midnight.
func UntilNextMidnight(c Clock) time.Duration {
	now := c.Now()
	return NextMidnight(now).Sub(now)
}

// Today returns the [start, end) bounds of the current reference day.
func Today(c Clock) (time.Time, time.Time) {
	now := c.Now()
	return StartOfDay(now), NextMidnight(now)
}
