package tracker

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ClockLayout is the HH:MM:SS layout used for timestamps and time edits.
const ClockLayout = "15:04:05"

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

// groupKey is the case-insensitive key names and tags are grouped under.
func groupKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// FormatClock renders the wall-clock part of t as HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatDuration renders d as HH:MM:SS with the hour field always at least
// two digits. Sub-second precision is dropped, not rounded.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Truncate(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// FormatPercentage renders a ratio as a percentage with two decimals, e.g. 0.25 -> "25.00%".
func FormatPercentage(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}
