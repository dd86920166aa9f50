package cli

import (
	"fmt"
	"strconv"

	"github.com/runnerr0/trackerian/internal/tracker"
)

// Execute implements the go-flags Commander interface for EditCommand.
func (c *EditCommand) Execute(args []string) error {
	return run(c.globals, true, func(e *env) error {
		return c.executeWithEnv(e, args)
	})
}

// executeWithEnv expects INDEX FIELD VALUE...
func (c *EditCommand) executeWithEnv(e *env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("edit requires INDEX FIELD [VALUE...]")
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid activity index %q", args[0])
	}
	field, err := tracker.ParseField(args[1])
	if err != nil {
		return err
	}

	a, err := e.activities.Edit(index, field, args[2:])
	if err != nil {
		return fmt.Errorf("edit activity %d: %w", index, err)
	}

	e.log.Debug("activity edited", "index", index, "field", field)
	fmt.Fprintf(e.out, "Edited %d %s\n", index, a)
	return nil
}
