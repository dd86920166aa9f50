package cli

import "fmt"

// Execute implements the go-flags Commander interface for FinishCommand.
func (c *FinishCommand) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("finish takes no arguments, got %q", args)
	}
	return run(c.globals, true, func(e *env) error {
		return c.executeWithEnv(e)
	})
}

func (c *FinishCommand) executeWithEnv(e *env) error {
	a, finished, err := e.activities.FinishLatest()
	if handled, err := latestOrNotice(e, err); handled {
		return err
	}

	if finished {
		e.log.Debug("activity finished", "name", a.Name, "duration", a.Duration)
	}
	printFinished(e, a, finished)
	return nil
}
