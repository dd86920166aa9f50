package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/runnerr0/trackerian/internal/tracker"
)

// DocumentVersion is the format version written by EncodeDocument.
const DocumentVersion = 1

// ErrUnsupportedVersion is returned when a document's version is unknown.
var ErrUnsupportedVersion = errors.New("unsupported document version")

// document is the portable JSON form of an activity set. Its layout is
// independent of tracker.Activity so either can change on its own.
type document struct {
	Version    int                `json:"version"`
	ExportedAt time.Time          `json:"exported_at"`
	Activities []documentActivity `json:"activities"`
}

type documentActivity struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	Tags       []string   `json:"tags"`
	Start      time.Time  `json:"start"`
	StartLabel string     `json:"start_label"`
	End        *time.Time `json:"end,omitempty"`
	EndLabel   string     `json:"end_label,omitempty"`
	DurationNS *int64     `json:"duration_ns,omitempty"`
}

// EncodeDocument writes activities to w as an indented, versioned JSON document.
func EncodeDocument(w io.Writer, activities []*tracker.Activity, exportedAt time.Time) error {
	doc := document{
		Version:    DocumentVersion,
		ExportedAt: exportedAt,
		Activities: make([]documentActivity, len(activities)),
	}

	for i, a := range activities {
		da := documentActivity{
			ID:         a.ID,
			Name:       a.Name,
			Tags:       append([]string{}, a.Tags...),
			Start:      a.Start,
			StartLabel: a.StartLabel,
		}
		if a.End != nil {
			end := *a.End
			ns := int64(a.Duration)
			da.End = &end
			da.EndLabel = a.EndLabel
			da.DurationNS = &ns
		}
		doc.Activities[i] = da
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// DecodeDocument reads a document written by EncodeDocument.
func DecodeDocument(r io.Reader) ([]*tracker.Activity, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	activities := make([]*tracker.Activity, 0, len(doc.Activities))
	for i, da := range doc.Activities {
		if da.Start.IsZero() {
			return nil, fmt.Errorf("activity %d: missing start", i)
		}
		a := &tracker.Activity{
			ID:         da.ID,
			Name:       da.Name,
			Tags:       da.Tags,
			Start:      da.Start.Local(),
			StartLabel: da.StartLabel,
		}
		if a.Tags == nil {
			a.Tags = []string{}
		}
		if a.StartLabel == "" {
			a.StartLabel = tracker.FormatClock(a.Start)
		}
		if da.End != nil {
			end := da.End.Local()
			a.End = &end
			a.EndLabel = da.EndLabel
			if a.EndLabel == "" {
				a.EndLabel = tracker.FormatClock(end)
			}
			a.Duration = end.Sub(a.Start)
		}
		activities = append(activities, a)
	}

	return activities, nil
}
