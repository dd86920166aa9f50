package cli

import (
	"encoding/json"
	"fmt"
)

// Execute implements the go-flags Commander interface for CurrentCommand.
func (c *CurrentCommand) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("current takes no arguments, got %q", args)
	}
	return run(c.globals, false, func(e *env) error {
		return c.executeWithEnv(e)
	})
}

type currentJSON struct {
	Tracking bool          `json:"tracking"`
	Activity *activityJSON `json:"activity,omitempty"`
}

func (c *CurrentCommand) executeWithEnv(e *env) error {
	running, err := e.activities.Running()
	if handled, err := latestOrNotice(e, err); handled {
		return err
	}

	if e.json {
		out := currentJSON{Tracking: running != nil}
		if running != nil {
			a := toActivityJSON(e.activities.Len()-1, running)
			out.Activity = &a
		}
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if running == nil {
		fmt.Fprintln(e.out, "Currently not tracking an activity")
		return nil
	}
	fmt.Fprintln(e.out, running)
	return nil
}
