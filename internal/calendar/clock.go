package calendar

import "time"

// Clock supplies "now" for every today-relative predicate.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Handy for tests and for
// rendering a historical week.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
