package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable debug logging"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// BeginCommand: start timing a new activity, finishing the running one.
type BeginCommand struct {
	globals *GlobalFlags
	version string
}

// FinishCommand: finish timing the current activity.
type FinishCommand struct {
	globals *GlobalFlags
	version string
}

// CurrentCommand: print the activity being tracked, if any.
type CurrentCommand struct {
	globals *GlobalFlags
	version string
}

// ListCommand: print tracked activities with their index.
type ListCommand struct {
	globals *GlobalFlags
	version string
}

// SummaryCommand: print durations grouped by activity and by tag.
type SummaryCommand struct {
	globals *GlobalFlags
	version string
}

// TagCommand: add tags to the latest activity.
type TagCommand struct {
	globals *GlobalFlags
	version string
}

// EditCommand: change one field of an activity by index.
type EditCommand struct {
	globals *GlobalFlags
	version string
}

// ExportCommand: write all activities as a versioned JSON document.
type ExportCommand struct {
	Output string `long:"output" short:"o" description:"Write to file instead of stdout"`

	globals *GlobalFlags
	version string
}

// ImportCommand: append activities from a versioned JSON document.
type ImportCommand struct {
	Input string `long:"input" short:"i" description:"Document to import (required)"`

	globals *GlobalFlags
	version string
}
