package cli

import (
	"fmt"
	"os"

	"github.com/runnerr0/trackerian/internal/storage"
)

// Execute implements the go-flags Commander interface for ImportCommand.
func (c *ImportCommand) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("import takes no arguments, got %q", args)
	}
	if c.Input == "" {
		return fmt.Errorf("--input is required for import command")
	}
	return run(c.globals, true, func(e *env) error {
		return c.executeWithEnv(e)
	})
}

// executeWithEnv appends the document's activities after the existing ones.
// Row identities are reassigned so importing an export of the same store
// does not collide.
func (c *ImportCommand) executeWithEnv(e *env) error {
	f, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	imported, err := storage.DecodeDocument(f)
	if err != nil {
		return err
	}

	first := e.activities.Len()
	for _, a := range imported {
		a.ID = ""
		e.activities.Append(a)
	}

	e.log.Debug("activities imported", "count", len(imported), "input", c.Input)
	if len(imported) == 0 {
		fmt.Fprintln(e.out, "Imported 0 activities")
		return nil
	}
	fmt.Fprintf(e.out, "Imported %d activities (indices %d-%d)\n", len(imported), first, e.activities.Len()-1)
	return nil
}
