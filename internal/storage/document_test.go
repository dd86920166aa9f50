package storage

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/trackerian/internal/tracker"
)

func TestDocument_Roundtrip(t *testing.T) {
	start := time.Date(2010, 10, 10, 10, 10, 0, 0, time.Local)
	done := finished("Writing", start, start.Add(30*time.Minute), "Work")
	done.ID = "fixed-id"
	running := &tracker.Activity{Name: "Reading", Tags: []string{}, Start: start.Add(time.Hour), StartLabel: "11:10:00"}

	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, []*tracker.Activity{done, running}, start))
	assert.Contains(t, buf.String(), `"version": 1`)

	got, err := DecodeDocument(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "fixed-id", got[0].ID)
	assert.Equal(t, "Writing", got[0].Name)
	assert.Equal(t, []string{"Work"}, got[0].Tags)
	assert.True(t, start.Equal(got[0].Start))
	require.NotNil(t, got[0].End)
	assert.Equal(t, 30*time.Minute, got[0].Duration)
	assert.Equal(t, "10:40:00", got[0].EndLabel)

	assert.Nil(t, got[1].End)
	assert.Empty(t, got[1].Tags)
}

func TestDecodeDocument_RejectsUnknownVersion(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader(`{"version": 99, "activities": []}`))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecodeDocument_RecomputesDurationAndLabels(t *testing.T) {
	in := `{
		"version": 1,
		"activities": [
			{"name": "Imported", "start": "2010-10-10T10:00:00Z", "end": "2010-10-10T10:45:00Z", "duration_ns": 1}
		]
	}`

	got, err := DecodeDocument(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 45*time.Minute, got[0].Duration)
	assert.NotEmpty(t, got[0].StartLabel)
	assert.NotEmpty(t, got[0].EndLabel)
	assert.NotNil(t, got[0].Tags)
}

func TestDecodeDocument_RequiresStart(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader(`{"version": 1, "activities": [{"name": "X"}]}`))
	assert.Error(t, err)
}

func TestDecodeDocument_InvalidJSON(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader(`{not json`))
	assert.Error(t, err)
}
