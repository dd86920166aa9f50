package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/runnerr0/trackerian/internal/tracker"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

func heading(s string) string {
	return headingStyle.Render(s)
}

// printFinished writes the confirmation for a finish attempt.
func printFinished(e *env, a *tracker.Activity, finished bool) {
	if !finished {
		fmt.Fprintf(e.out, "Tracking of %s is already finished.\n", a.Name)
		return
	}
	fmt.Fprintf(e.out, "Tracking of %s finished\tDuration: %s\n", a.Name, tracker.FormatDuration(a.Duration))
}

// activityJSON is the JSON form of a listed activity.
type activityJSON struct {
	Index    int      `json:"index"`
	Name     string   `json:"name"`
	Tags     []string `json:"tags"`
	Start    string   `json:"start"`
	End      string   `json:"end,omitempty"`
	Running  bool     `json:"running"`
	Duration string   `json:"duration"`
}

func toActivityJSON(index int, a *tracker.Activity) activityJSON {
	out := activityJSON{
		Index:    index,
		Name:     a.Name,
		Tags:     a.Tags,
		Start:    a.Start.Format(time.RFC3339),
		Running:  a.IsRunning(),
		Duration: tracker.FormatDuration(a.Tracked()),
	}
	if a.End != nil {
		out.End = a.End.Format(time.RFC3339)
	}
	return out
}
