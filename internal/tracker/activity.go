package tracker

import (
	"fmt"
	"strings"
	"time"
)

// State is the lifecycle state of an Activity.
type State string

const (
	StateRunning  State = "running"
	StateFinished State = "finished"
)

// Field names an editable part of an Activity.
type Field string

const (
	FieldName  Field = "name"
	FieldTags  Field = "tags"
	FieldStart Field = "start"
	FieldEnd   Field = "end"
)

// ParseField resolves a field name or its one-letter alias.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "n":
		return FieldName, nil
	case "tags", "tag", "t":
		return FieldTags, nil
	case "start", "s":
		return FieldStart, nil
	case "end", "e":
		return FieldEnd, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// Activity is one tracked, named time interval.
//
// Duration is only meaningful once End is set and always equals End - Start;
// every path that touches either boundary recomputes it.
type Activity struct {
	ID         string
	Name       string
	Tags       []string
	Start      time.Time
	StartLabel string
	End        *time.Time
	EndLabel   string
	Duration   time.Duration

	clock Clock
}

// NewActivity starts a running activity at clock.Now().
func NewActivity(name string, clock Clock) *Activity {
	if clock == nil {
		clock = SystemClock
	}
	start := clock.Now()
	return &Activity{
		Name:       TitleCase(name),
		Tags:       []string{},
		Start:      start,
		StartLabel: FormatClock(start),
		clock:      clock,
	}
}

func (a *Activity) now() time.Time {
	if a.clock == nil {
		return SystemClock.Now()
	}
	return a.clock.Now()
}

// State reports whether the activity is still running.
func (a *Activity) State() State {
	if a.End == nil {
		return StateRunning
	}
	return StateFinished
}

// IsRunning returns true while no end time has been recorded.
func (a *Activity) IsRunning() bool {
	return a.End == nil
}

// Finish records the end time and duration. It returns false, leaving the
// existing end and duration untouched, if the activity was already finished.
func (a *Activity) Finish() bool {
	if a.End != nil {
		return false
	}
	end := a.now()
	a.End = &end
	a.EndLabel = FormatClock(end)
	a.recompute()
	return true
}

// Elapsed is the time from Start until now, whatever the state.
func (a *Activity) Elapsed() time.Duration {
	return a.now().Sub(a.Start)
}

// Tracked is the frozen duration for finished activities and the elapsed
// time for running ones.
func (a *Activity) Tracked() time.Duration {
	if a.End != nil {
		return a.Duration
	}
	return a.Elapsed()
}

// AddTags title-cases and appends tags. Repeats are kept.
func (a *Activity) AddTags(tags ...string) {
	for _, t := range tags {
		a.Tags = append(a.Tags, TitleCase(t))
	}
}

// Edit overwrites one field. Name and tag values are title-cased; tags are
// replaced wholesale. Start and end take a single HH:MM:SS value placed on
// today's date, and always recompute the duration, so setting End on a
// running activity closes it without going through Finish.
//
// Edit either applies fully or returns an error without touching the activity.
func (a *Activity) Edit(field Field, values []string) error {
	switch field {
	case FieldName:
		name := strings.TrimSpace(strings.Join(values, " "))
		if name == "" {
			return fmt.Errorf("%w: new name", ErrMissingValue)
		}
		a.Name = TitleCase(name)
		return nil

	case FieldTags:
		tags := make([]string, 0, len(values))
		for _, v := range values {
			tags = append(tags, TitleCase(v))
		}
		a.Tags = tags
		return nil

	case FieldStart, FieldEnd:
		if len(values) == 0 {
			return fmt.Errorf("%w: new %s time", ErrMissingValue, field)
		}
		t, err := a.timeToday(values[0])
		if err != nil {
			return err
		}
		if field == FieldStart {
			a.Start = t
			a.StartLabel = FormatClock(t)
		} else {
			a.End = &t
			a.EndLabel = FormatClock(t)
		}
		a.recompute()
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// timeToday parses an HH:MM:SS value and places it on the clock's current date.
func (a *Activity) timeToday(value string) (time.Time, error) {
	clk, err := time.Parse(ClockLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTime, value)
	}
	today := a.now()
	return time.Date(today.Year(), today.Month(), today.Day(),
		clk.Hour(), clk.Minute(), clk.Second(), 0, today.Location()), nil
}

func (a *Activity) recompute() {
	if a.End == nil {
		a.Duration = 0
		return
	}
	a.Duration = a.End.Sub(a.Start)
}

// String renders the activity as one list line.
func (a *Activity) String() string {
	end, dur := "Tracking", a.Elapsed()
	if a.End != nil {
		end, dur = a.EndLabel, a.Duration
	}
	line := fmt.Sprintf("(%s - %s)  %-20s Duration: %-10s %s",
		a.StartLabel, end, a.Name, FormatDuration(dur), strings.Join(a.Tags, ", "))
	return strings.TrimRight(line, " ")
}
