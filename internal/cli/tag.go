package cli

import (
	"fmt"
	"strings"
)

// Execute implements the go-flags Commander interface for TagCommand.
func (c *TagCommand) Execute(args []string) error {
	return run(c.globals, true, func(e *env) error {
		return c.executeWithEnv(e, args)
	})
}

func (c *TagCommand) executeWithEnv(e *env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("tag requires at least one tag")
	}

	a, err := e.activities.TagLatest(args...)
	if handled, err := latestOrNotice(e, err); handled {
		return err
	}

	e.log.Debug("activity tagged", "name", a.Name, "tags", a.Tags)
	fmt.Fprintf(e.out, "Tagged %s: %s\n", a.Name, strings.Join(a.Tags, ", "))
	return nil
}
