package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/trackerian/internal/tracker"
)

// runCLI runs one invocation against cfgPath and returns its stdout.
func runCLI(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var err error
	out := captureOutput(t, func() {
		err = RunWithArgs("test", append([]string{"--config", cfgPath}, args...))
	})
	return out, err
}

func TestRunPersistsAcrossInvocations(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, cfgPath, "begin", "write", "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Write Report")

	out, err = runCLI(t, cfgPath, "tag", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "Tagged Write Report: Work")

	out, err = runCLI(t, cfgPath, "current")
	require.NoError(t, err)
	assert.Contains(t, out, "Tracking")

	out, err = runCLI(t, cfgPath, "finish")
	require.NoError(t, err)
	assert.Contains(t, out, "Tracking of Write Report finished")

	out, err = runCLI(t, cfgPath, "list", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "Write Report")
	assert.Contains(t, out, "Work")

	out, err = runCLI(t, cfgPath, "summary", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "Activities Tracked: 1")

	_, err = runCLI(t, cfgPath, "edit", "5", "name", "X")
	assert.ErrorIs(t, err, tracker.ErrIndexOutOfRange)

	out, err = runCLI(t, cfgPath, "edit", "0", "name", "final", "draft")
	require.NoError(t, err)
	assert.Contains(t, out, "Final Draft")

	out, err = runCLI(t, cfgPath, "list", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "Final Draft")
	assert.NotContains(t, out, "Write Report")
}

func TestRunCreatesDatabaseAndLog(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := filepath.Dir(cfgPath)

	out, err := runCLI(t, cfgPath, "current")
	require.NoError(t, err)
	assert.Contains(t, out, noActivitiesMessage)

	_, err = os.Stat(filepath.Join(dir, "trackerian.db"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "trackerian.log"))
	assert.NoError(t, err)
}

func TestRunJSONFlag(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := runCLI(t, cfgPath, "begin", "reading")
	require.NoError(t, err)

	out, err := runCLI(t, cfgPath, "--json", "current")
	require.NoError(t, err)
	assert.Contains(t, out, `"tracking": true`)
	assert.Contains(t, out, `"name": "Reading"`)
}

func TestRunFailedEditDoesNotSave(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := runCLI(t, cfgPath, "begin", "reading")
	require.NoError(t, err)

	_, err = runCLI(t, cfgPath, "edit", "0", "start", "bogus")
	assert.ErrorIs(t, err, tracker.ErrMalformedTime)

	out, err := runCLI(t, cfgPath, "list", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "Reading")
	assert.Contains(t, out, "Tracking")
}
