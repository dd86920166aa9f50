package cli

import (
	"fmt"
	"strings"
)

// Execute implements the go-flags Commander interface for BeginCommand.
func (c *BeginCommand) Execute(args []string) error {
	return run(c.globals, true, func(e *env) error {
		return c.executeWithEnv(e, args)
	})
}

// executeWithEnv runs begin against a provided env (used by tests).
func (c *BeginCommand) executeWithEnv(e *env, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("begin requires an activity name")
	}

	closed, started := e.activities.BeginNew(name)
	if closed != nil {
		e.log.Debug("activity finished", "name", closed.Name, "duration", closed.Duration)
		printFinished(e, closed, true)
	}
	e.log.Debug("activity started", "name", started.Name, "index", e.activities.Len()-1)

	fmt.Fprintln(e.out, started)
	return nil
}
