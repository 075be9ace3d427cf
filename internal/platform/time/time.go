// Package time contains clock helpers so time-dependent choices can be pinned in tests
package time

import "time"

// Clock returns the current instant
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time { return f() }

// System is the wall clock in UTC
var System Clock = ClockFunc(func() time.Time { return time.Now().UTC() })

// Fixed returns a clock that always reports t
func Fixed(t time.Time) Clock { return ClockFunc(func() time.Time { return t }) }

// DayOfYear returns the zero-based day of year for c.Now() in UTC
func DayOfYear(c Clock) int {
	if c == nil {
		c = System
	}
	return c.Now().UTC().YearDay() - 1
}
