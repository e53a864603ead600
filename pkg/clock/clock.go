package clock

import "time"

// Clock reports the current time in a fixed location.
type Clock struct {
	loc *time.Location
}

// New returns a wall clock for loc. A nil loc means time.Local.
func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// Midnight returns the start of the day t falls on, in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Mock is a manually driven clock for tests. The location is taken from the initial time.
type Mock struct {
	now time.Time
}

func NewMock(now time.Time) *Mock {
	return &Mock{now: now}
}

func (m *Mock) Now() time.Time {
	return m.now
}

func (m *Mock) Location() *time.Location {
	return m.now.Location()
}

func (m *Mock) Set(t time.Time) {
	m.now = t
}

func (m *Mock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
