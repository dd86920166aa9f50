package tracker

import (
	"testing"
	"time"
)

// fakeClock is a settable Clock for deterministic tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Set(t time.Time) { c.now = t }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// at builds a local timestamp on 2010-10-10 unless day is given.
func at(hour, minute, sec int, day ...int) time.Time {
	d := 10
	if len(day) > 0 {
		d = day[0]
	}
	return time.Date(2010, time.October, d, hour, minute, sec, 0, time.Local)
}

// track begins name at start and finishes it at end.
func track(t *testing.T, s *ActivityStore, clk *fakeClock, name string, start, end time.Time, tags ...string) *Activity {
	t.Helper()
	clk.Set(start)
	_, a := s.BeginNew(name)
	a.AddTags(tags...)
	clk.Set(end)
	a.Finish()
	return a
}
