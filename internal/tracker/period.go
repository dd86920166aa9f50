package tracker

import (
	"fmt"
	"strings"
	"time"
)

// Period selects how far back a list or summary reaches.
type Period string

const (
	PeriodAll  Period = "all"
	PeriodDay  Period = "day"
	PeriodWeek Period = "week"
)

// DefaultDayStartHour is the local hour a tracking day begins at. Work done
// before it belongs to the previous day.
const DefaultDayStartHour = 4

// ParsePeriod accepts "all", "day" or "week". An empty string means day.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodDay, nil
	case PeriodAll, PeriodDay, PeriodWeek:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (use all, day or week)", ErrUnknownPeriod, s)
	}
}

// RangeFilter turns a Period into the earliest start time it includes.
type RangeFilter struct {
	Clock        Clock
	DayStartHour int
}

// NewRangeFilter returns a filter using the default day boundary.
func NewRangeFilter(clock Clock) RangeFilter {
	return RangeFilter{Clock: clock, DayStartHour: DefaultDayStartHour}
}

// Cutoff returns the cutoff for p. ok is false for PeriodAll, meaning no cutoff.
func (f RangeFilter) Cutoff(p Period) (cutoff time.Time, ok bool) {
	if p == PeriodAll {
		return time.Time{}, false
	}

	clock := f.Clock
	if clock == nil {
		clock = SystemClock
	}
	now := clock.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), f.DayStartHour, 0, 0, 0, now.Location())
	if now.Before(dayStart) {
		dayStart = dayStart.AddDate(0, 0, -1)
	}

	if p == PeriodWeek {
		return dayStart.AddDate(0, 0, -7), true
	}
	return dayStart, true
}
