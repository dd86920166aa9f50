package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	goflags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/trackerian/internal/tracker"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// testClock is a settable clock shared by the env's store and filter.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func at(hour, minute, sec int) time.Time {
	return time.Date(2010, time.October, 10, hour, minute, sec, 0, time.Local)
}

// newTestEnv returns an in-memory env writing to a buffer.
func newTestEnv(t *testing.T, clk *testClock) (*env, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &env{
		out:        &buf,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		activities: tracker.NewActivityStore(clk),
		filter:     tracker.NewRangeFilter(clk),
	}, &buf
}

// parseOnly parses args without executing the matched command.
func parseOnly(args ...string) (*GlobalFlags, *commands, goflags.Commander, []string, error) {
	parser, globals, cmds := buildParser("test")
	var (
		ran     goflags.Commander
		gotArgs []string
	)
	parser.CommandHandler = func(command goflags.Commander, args []string) error {
		ran, gotArgs = command, args
		return nil
	}
	_, err := parser.ParseArgs(args)
	return globals, cmds, ran, gotArgs, err
}

// writeTestConfig points storage and logging at a temp dir and returns the config path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("storage:\n  path: %q\nlogging:\n  file: trackerian.log\n", dir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}
