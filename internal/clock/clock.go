package clock

import "time"

// Clock supplies the current moment and the local calendar used for
// order scheduling. Business logic never reads the wall clock directly;
// it takes a Clock so tests can pin time.
type Clock interface {
	// Now returns the current instant in the clock's location.
	Now() time.Time
	// Today returns midnight of the current day in the clock's location.
	Today() time.Time
	// Location returns the local calendar zone.
	Location() *time.Location
}

type realClock struct {
	loc *time.Location
}

// NewReal returns a Clock backed by the system time, reckoned in loc.
func NewReal(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &realClock{loc: loc}
}

func (c *realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *realClock) Today() time.Time {
	return StartOfDay(c.Now(), c.loc)
}

func (c *realClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock pinned to a single instant, for deterministic tests.
type Fixed struct {
	Instant time.Time
	Loc     *time.Location
}

// NewFixed returns a Clock that always reports the given instant.
func NewFixed(instant time.Time) *Fixed {
	return &Fixed{Instant: instant, Loc: instant.Location()}
}

func (f *Fixed) Now() time.Time {
	return f.Instant.In(f.location())
}

func (f *Fixed) Today() time.Time {
	return StartOfDay(f.Now(), f.location())
}

func (f *Fixed) Location() *time.Location {
	return f.location()
}

// Advance moves the fixed clock forward, for multi-step test scenarios.
func (f *Fixed) Advance(d time.Duration) {
	f.Instant = f.Instant.Add(d)
}

func (f *Fixed) location() *time.Location {
	if f.Loc == nil {
		return time.UTC
	}
	return f.Loc
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
