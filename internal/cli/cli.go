package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Begin   *BeginCommand
	Finish  *FinishCommand
	Current *CurrentCommand
	List    *ListCommand
	Summary *SummaryCommand
	Tag     *TagCommand
	Edit    *EditCommand
	Export  *ExportCommand
	Import  *ImportCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
// Every primary action is its own subcommand, so at most one runs per invocation.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "trackerian"
	parser.LongDescription = "Command line time tracker: begin, finish, tag and summarize activities."

	cmds := &commands{
		Begin:   &BeginCommand{globals: &globals, version: version},
		Finish:  &FinishCommand{globals: &globals, version: version},
		Current: &CurrentCommand{globals: &globals, version: version},
		List:    &ListCommand{globals: &globals, version: version},
		Summary: &SummaryCommand{globals: &globals, version: version},
		Tag:     &TagCommand{globals: &globals, version: version},
		Edit:    &EditCommand{globals: &globals, version: version},
		Export:  &ExportCommand{globals: &globals, version: version},
		Import:  &ImportCommand{globals: &globals, version: version},
	}

	parser.AddCommand("begin", "Begin timing an activity", "Begin timing an activity named by the remaining arguments. A running activity is finished first.", cmds.Begin)
	parser.AddCommand("finish", "Finish timing the current activity", "Finish timing the current activity and print its duration.", cmds.Finish)
	parser.AddCommand("current", "Print current tracking status", "Print the activity currently being tracked, if any.", cmds.Current)
	parser.AddCommand("list", "List tracked activities", "List tracked activities for a period: all, day (default) or week.", cmds.List)
	parser.AddCommand("summary", "Summarize tracked time", "Summarize tracked time by activity and by tag for a period: all, day (default) or week.", cmds.Summary)
	parser.AddCommand("tag", "Tag the latest activity", "Add one-word tags to the latest activity.", cmds.Tag)
	parser.AddCommand("edit", "Edit a tracked activity", "Edit a tracked activity: edit INDEX FIELD VALUE...\nFields: name (n), tags (t), start (s), end (e). Times are HH:MM:SS.\nExample: edit 1 name New Name", cmds.Edit)
	parser.AddCommand("export", "Export activities as JSON", "Export all activities as a versioned JSON document.", cmds.Export)
	parser.AddCommand("import", "Import activities from JSON", "Append activities from a JSON document written by export.", cmds.Import)

	return parser, &globals, cmds
}

// Run is the main entry point for the Trackerian CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("trackerian %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	// No action requested: show help and do nothing else.
	if len(checkArgs) == 0 {
		parser.WriteHelp(os.Stdout)
		return nil
	}

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
