package tracker

import "time"

// Clock is the only source of "now" the tracker consults.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now returns f().
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads local wall-clock time.
var SystemClock Clock = ClockFunc(time.Now)
