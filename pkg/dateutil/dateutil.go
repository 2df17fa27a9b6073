// Package dateutil derives canonical calendar day strings (YYYY-MM-DD).
package dateutil

import "time"

const Layout = time.DateOnly

// Clock provides wall-clock time. Tests replace it with a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall clock.
func System() Clock { return systemClock{} }

// Fixed is a Clock that always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Calendar maps instants onto calendar days of one location.
type Calendar struct {
	clock Clock
	loc   *time.Location
}

// NewCalendar builds a calendar. A nil clock means the system clock, a nil
// location means UTC.
func NewCalendar(clock Clock, loc *time.Location) *Calendar {
	if clock == nil {
		clock = System()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{clock: clock, loc: loc}
}

func (c *Calendar) Now() time.Time {
	return c.clock.Now()
}

// Today returns the current calendar day.
func (c *Calendar) Today() string {
	return Day(c.clock.Now(), c.loc)
}

// Yesterday returns the calendar day before Today.
func (c *Calendar) Yesterday() string {
	return Day(c.clock.Now().In(c.loc).AddDate(0, 0, -1), c.loc)
}

// Day formats t as a calendar day in loc.
func Day(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}
