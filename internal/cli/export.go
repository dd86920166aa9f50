package cli

import (
	"fmt"
	"os"

	"github.com/runnerr0/trackerian/internal/storage"
)

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("export takes no arguments, got %q", args)
	}
	return run(c.globals, false, func(e *env) error {
		return c.executeWithEnv(e)
	})
}

func (c *ExportCommand) executeWithEnv(e *env) error {
	w := e.out
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	all := e.activities.All()
	if err := storage.EncodeDocument(w, all, e.activities.Clock().Now()); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}

	e.log.Debug("activities exported", "count", len(all), "output", c.Output)
	if c.Output != "" {
		fmt.Fprintf(e.out, "Exported %d activities to %s\n", len(all), c.Output)
	}
	return nil
}
