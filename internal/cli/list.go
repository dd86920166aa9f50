package cli

import (
	"encoding/json"
	"fmt"
)

// Execute implements the go-flags Commander interface for ListCommand.
func (c *ListCommand) Execute(args []string) error {
	return run(c.globals, false, func(e *env) error {
		return c.executeWithEnv(e, args)
	})
}

type listJSON struct {
	Period     string         `json:"period"`
	Count      int            `json:"count"`
	Activities []activityJSON `json:"activities"`
}

// executeWithEnv prints activities in the requested period. Indices are store
// positions, so they stay usable with edit even when earlier ones are hidden.
func (c *ListCommand) executeWithEnv(e *env, args []string) error {
	period, err := parsePeriodArg(args)
	if err != nil {
		return err
	}

	cutoff, _ := e.filter.Cutoff(period)
	entries := e.activities.Since(cutoff)

	if e.json {
		out := listJSON{
			Period:     string(period),
			Count:      len(entries),
			Activities: make([]activityJSON, len(entries)),
		}
		for i, en := range entries {
			out.Activities[i] = toActivityJSON(en.Index, en.Activity)
		}
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if e.activities.Len() == 0 {
		fmt.Fprintln(e.out, noActivitiesMessage)
		return nil
	}
	if len(entries) == 0 {
		fmt.Fprintf(e.out, "No activities tracked (%s)\n", period)
		return nil
	}

	for _, en := range entries {
		fmt.Fprintf(e.out, "%-5d %s\n\n", en.Index, en.Activity)
	}
	return nil
}
