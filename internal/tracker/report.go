package tracker

import (
	"sort"
	"time"
)

// Group is one aggregation bucket of a report.
type Group struct {
	Key      string
	Duration time.Duration
}

// Report is the on-demand summary of a set of activities.
type Report struct {
	Count int
	Total time.Duration
	Names []Group
	Tags  []Group
}

// Share returns g's fraction of the report total. ok is false when nothing
// was tracked, in which case no percentage should be shown.
func (r Report) Share(g Group) (ratio float64, ok bool) {
	if r.Count == 0 || r.Total == 0 {
		return 0, false
	}
	return float64(g.Duration) / float64(r.Total), true
}

// Percentage renders Share as "12.34%", or "" when there is no total.
func (r Report) Percentage(g Group) string {
	ratio, ok := r.Share(g)
	if !ok {
		return ""
	}
	return FormatPercentage(ratio)
}

// Summarize aggregates the store's activities that start at or after cutoff
// (zero cutoff: all of them). Running activities count their elapsed time.
//
// Names and tags group case-insensitively. Each tag receives the full
// duration of its activity, so tag totals can exceed Total. Groups are sorted
// by duration, longest first, keeping first-seen order for ties.
func Summarize(store *ActivityStore, cutoff time.Time) Report {
	var (
		r     Report
		names groupAccumulator
		tags  groupAccumulator
	)

	for _, e := range store.Since(cutoff) {
		a := e.Activity
		d := a.Tracked()

		r.Count++
		r.Total += d
		names.add(a.Name, d)
		for _, t := range a.Tags {
			tags.add(t, d)
		}
	}

	r.Names = names.sorted()
	r.Tags = tags.sorted()
	return r
}

// groupAccumulator sums durations per case-folded key in first-seen order.
type groupAccumulator struct {
	index  map[string]int
	groups []Group
}

func (g *groupAccumulator) add(label string, d time.Duration) {
	if g.index == nil {
		g.index = make(map[string]int)
	}
	key := groupKey(label)
	if i, ok := g.index[key]; ok {
		g.groups[i].Duration += d
		return
	}
	g.index[key] = len(g.groups)
	g.groups = append(g.groups, Group{Key: TitleCase(label), Duration: d})
}

func (g *groupAccumulator) sorted() []Group {
	out := make([]Group, len(g.groups))
	copy(out, g.groups)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Duration > out[j].Duration
	})
	return out
}
