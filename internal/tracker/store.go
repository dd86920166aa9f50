package tracker

import (
	"fmt"
	"time"
)

// ActivityStore is the ordered set of tracked activities for one run.
// Positions never change; an index handed out by List stays valid for edits.
type ActivityStore struct {
	clock      Clock
	activities []*Activity
}

// Entry pairs an activity with its position in the store.
type Entry struct {
	Index    int
	Activity *Activity
}

// NewActivityStore wraps previously loaded activities (oldest first).
func NewActivityStore(clock Clock, activities ...*Activity) *ActivityStore {
	if clock == nil {
		clock = SystemClock
	}
	s := &ActivityStore{clock: clock}
	for _, a := range activities {
		s.Append(a)
	}
	return s
}

// Clock returns the clock activities in this store read from.
func (s *ActivityStore) Clock() Clock { return s.clock }

// Len returns the number of tracked activities.
func (s *ActivityStore) Len() int { return len(s.activities) }

// All returns the activities in insertion order.
func (s *ActivityStore) All() []*Activity {
	out := make([]*Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// Append adds a to the end of the store, making it the latest activity.
func (s *ActivityStore) Append(a *Activity) {
	a.clock = s.clock
	if a.Tags == nil {
		a.Tags = []string{}
	}
	s.activities = append(s.activities, a)
}

// Latest returns the most recently added activity.
func (s *ActivityStore) Latest() (*Activity, error) {
	if len(s.activities) == 0 {
		return nil, ErrEmptyStore
	}
	return s.activities[len(s.activities)-1], nil
}

// Running returns the most recent activity if it is still running, nil otherwise.
func (s *ActivityStore) Running() (*Activity, error) {
	latest, err := s.Latest()
	if err != nil {
		return nil, err
	}
	if !latest.IsRunning() {
		return nil, nil
	}
	return latest, nil
}

// At returns the activity at index.
func (s *ActivityStore) At(index int) (*Activity, error) {
	if index < 0 || index >= len(s.activities) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.activities))
	}
	return s.activities[index], nil
}

// BeginNew finishes the running activity, if any, and starts a new one.
// closed is the activity that was auto-finished, or nil.
func (s *ActivityStore) BeginNew(name string) (closed, started *Activity) {
	if latest, err := s.Latest(); err == nil && latest.IsRunning() {
		latest.Finish()
		closed = latest
	}
	started = NewActivity(name, s.clock)
	s.Append(started)
	return closed, started
}

// FinishLatest finishes the latest activity. finished is false when it had
// already been finished.
func (s *ActivityStore) FinishLatest() (a *Activity, finished bool, err error) {
	a, err = s.Latest()
	if err != nil {
		return nil, false, err
	}
	return a, a.Finish(), nil
}

// TagLatest appends tags to the latest activity.
func (s *ActivityStore) TagLatest(tags ...string) (*Activity, error) {
	a, err := s.Latest()
	if err != nil {
		return nil, err
	}
	a.AddTags(tags...)
	return a, nil
}

// Edit applies a field edit to the activity at index.
func (s *ActivityStore) Edit(index int, field Field, values []string) (*Activity, error) {
	a, err := s.At(index)
	if err != nil {
		return nil, err
	}
	if err := a.Edit(field, values); err != nil {
		return nil, err
	}
	return a, nil
}

// Since returns the activities starting at or after cutoff together with their
// store index. A zero cutoff includes everything.
func (s *ActivityStore) Since(cutoff time.Time) []Entry {
	entries := make([]Entry, 0, len(s.activities))
	for i, a := range s.activities {
		if !cutoff.IsZero() && a.Start.Before(cutoff) {
			continue
		}
		entries = append(entries, Entry{Index: i, Activity: a})
	}
	return entries
}
