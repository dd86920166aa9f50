package cli

import (
	"encoding/json"
	"fmt"

	"github.com/runnerr0/trackerian/internal/tracker"
)

// Execute implements the go-flags Commander interface for SummaryCommand.
func (c *SummaryCommand) Execute(args []string) error {
	return run(c.globals, false, func(e *env) error {
		return c.executeWithEnv(e, args)
	})
}

type groupJSON struct {
	Key        string `json:"key"`
	Duration   string `json:"duration"`
	Seconds    int64  `json:"seconds"`
	Percentage string `json:"percentage,omitempty"`
}

type summaryJSON struct {
	Period     string      `json:"period"`
	Count      int         `json:"count"`
	Total      string      `json:"total"`
	Activities []groupJSON `json:"activities"`
	Tags       []groupJSON `json:"tags"`
}

func (c *SummaryCommand) executeWithEnv(e *env, args []string) error {
	period, err := parsePeriodArg(args)
	if err != nil {
		return err
	}

	cutoff, _ := e.filter.Cutoff(period)
	report := tracker.Summarize(e.activities, cutoff)

	if e.json {
		return c.printJSON(e, period, report)
	}
	return c.printHuman(e, period, report)
}

func (c *SummaryCommand) printHuman(e *env, period tracker.Period, r tracker.Report) error {
	if e.activities.Len() == 0 {
		fmt.Fprintln(e.out, noActivitiesMessage)
		return nil
	}
	if r.Count == 0 {
		fmt.Fprintf(e.out, "No activities tracked (%s)\n", period)
		return nil
	}

	fmt.Fprintln(e.out, heading(fmt.Sprintf("Activities Tracked: %d | Total Time Tracked: %s",
		r.Count, tracker.FormatDuration(r.Total))))
	fmt.Fprintln(e.out)
	printGroups(e, r, r.Names)

	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, heading("Tags Tracked:"))
	fmt.Fprintln(e.out)
	printGroups(e, r, r.Tags)

	return nil
}

func printGroups(e *env, r tracker.Report, groups []tracker.Group) {
	for _, g := range groups {
		fmt.Fprintf(e.out, "%-20s %-15s %s\n", g.Key, tracker.FormatDuration(g.Duration), r.Percentage(g))
	}
}

func (c *SummaryCommand) printJSON(e *env, period tracker.Period, r tracker.Report) error {
	out := summaryJSON{
		Period:     string(period),
		Count:      r.Count,
		Total:      tracker.FormatDuration(r.Total),
		Activities: toGroupsJSON(r, r.Names),
		Tags:       toGroupsJSON(r, r.Tags),
	}

	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toGroupsJSON(r tracker.Report, groups []tracker.Group) []groupJSON {
	out := make([]groupJSON, len(groups))
	for i, g := range groups {
		out[i] = groupJSON{
			Key:        g.Key,
			Duration:   tracker.FormatDuration(g.Duration),
			Seconds:    int64(g.Duration.Seconds()),
			Percentage: r.Percentage(g),
		}
	}
	return out
}
