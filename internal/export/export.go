// Package export persists a fetched activity collection. Every write
// replaces the destination wholesale; nothing is merged with a prior file.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"strava-dashboard/internal/strava"
)

// Format is the on-disk representation chosen from the destination extension
type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// Columns is the fixed projection written by the tabular formats
var Columns = []string{
	"id", "name", "start_date", "start_date_local", "timezone", "utc_offset",
	"type", "sport_type", "distance", "moving_time", "elapsed_time", "total_elevation_gain",
	"average_speed", "max_speed", "average_heartrate", "max_heartrate", "suffer_score", "calories",
	"commute", "trainer", "private",
}

// Document is the lossless JSON export
type Document struct {
	ExportedAt string            `json:"exported_at"`
	Count      int               `json:"count"`
	Activities []strava.Activity `json:"activities"`
}

// Options carries run metadata. Only the sqlite archive stores RunID and the
// time window; the JSON document records ExportedAt.
type Options struct {
	ExportedAt time.Time
	RunID      string
	After      *int64
	Before     *int64
}

// FormatFor picks the format from the path extension, defaulting to JSON
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// Write persists activities at path in the format implied by its extension.
// Parent directories are created as needed.
func Write(path string, activities []strava.Activity, opts Options) (Format, error) {
	if opts.ExportedAt.IsZero() {
		opts.ExportedAt = time.Now()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	format := FormatFor(path)

	var err error
	switch format {
	case FormatCSV:
		err = replaceFile(path, func(tmp string) error { return writeCSV(tmp, activities) })
	case FormatXLSX:
		err = replaceFile(path, func(tmp string) error { return writeXLSX(tmp, activities) })
	case FormatSQLite:
		err = replaceFile(path, func(tmp string) error { return writeSQLite(tmp, activities, opts) })
	default:
		err = replaceFile(path, func(tmp string) error { return writeJSON(tmp, activities, opts.ExportedAt) })
	}
	if err != nil {
		return "", fmt.Errorf("failed to write %s export to %s: %w", format, path, err)
	}
	return format, nil
}

// replaceFile lets write produce a sibling temp file, then renames it over
// path so readers never observe a partial export
func replaceFile(path string, write func(tmp string) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*-"+filepath.Base(path))
	if err != nil {
		return err
	}
	tmp := f.Name()
	f.Close()

	// writers create the file themselves
	os.Remove(tmp)
	defer os.Remove(tmp)

	if err := write(tmp); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func writeJSON(path string, activities []strava.Activity, exportedAt time.Time) error {
	if activities == nil {
		activities = []strava.Activity{}
	}
	doc := Document{
		ExportedAt: exportedAt.UTC().Format(time.RFC3339Nano),
		Count:      len(activities),
		Activities: activities,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// projectRow returns the fixed column projection of a; absent or null fields
// become empty cells and unknown fields are dropped
func projectRow(a *strava.Activity) ([]cell, error) {
	fields, err := a.Fields()
	if err != nil {
		return nil, err
	}

	row := make([]cell, len(Columns))
	for i, col := range Columns {
		row[i] = newCell(fields[col])
	}
	return row, nil
}

// cell is one projected value, keeping enough type information for
// spreadsheet output
type cell struct {
	text    string
	number  *float64
	boolean *bool
}

func newCell(raw json.RawMessage) cell {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return cell{}
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return cell{text: s}
		}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return cell{text: trimmed, boolean: &b}
		}
	default:
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return cell{text: trimmed, number: &n}
		}
	}
	return cell{text: trimmed}
}
