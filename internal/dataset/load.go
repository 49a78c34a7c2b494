// Package dataset loads an exported activity collection and derives the
// calendar, unit and location fields the dashboard renders.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"time"

	"strava-dashboard/internal/apperr"
	"strava-dashboard/internal/database"
	"strava-dashboard/internal/export"
	"strava-dashboard/internal/strava"
)

// DateField is the activity field local datetimes are derived from
const DateField = "start_date_local"

// Snapshot is a loaded export. ExportedAt is nil when the source did not
// record one (a bare activity array).
type Snapshot struct {
	Path       string
	ExportedAt *time.Time
	Activities []strava.Activity
}

// Load reads an export produced by the export command. JSON documents, bare
// JSON arrays and sqlite archives are accepted; tabular exports are not.
// A missing file is returned as an error wrapping fs.ErrNotExist.
func Load(path string) (*Snapshot, error) {
	var (
		snap *Snapshot
		err  error
	)
	switch export.FormatFor(path) {
	case export.FormatCSV, export.FormatXLSX:
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, statErr
		}
		return nil, apperr.Format(apperr.StageLoad, nil,
			"missing '%s' in %s: tabular exports cannot be loaded, export the activities as JSON", DateField, path)
	case export.FormatSQLite:
		snap, err = loadArchive(path)
	default:
		snap, err = loadDocument(path)
	}
	if err != nil {
		return nil, err
	}

	if err := requireDateField(snap.Activities); err != nil {
		return nil, err
	}
	return snap, nil
}

func loadDocument(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, apperr.Format(apperr.StageLoad, nil, "failed to parse %s: file is empty", path)
	}

	switch trimmed[0] {
	case '[':
		activities, err := decodeActivities(trimmed)
		if err != nil {
			return nil, apperr.Format(apperr.StageLoad, err, "failed to parse %s", path)
		}
		return &Snapshot{Path: path, Activities: activities}, nil
	case '{':
		var doc struct {
			ExportedAt *string          `json:"exported_at"`
			Activities *json.RawMessage `json:"activities"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, apperr.Format(apperr.StageLoad, err, "failed to parse %s", path)
		}
		if doc.Activities == nil {
			return nil, invalidShape(path)
		}
		activities, err := decodeActivities(*doc.Activities)
		if errors.Is(err, errNotList) {
			return nil, invalidShape(path)
		}
		if err != nil {
			return nil, apperr.Format(apperr.StageLoad, err, "failed to parse activities in %s", path)
		}

		snap := &Snapshot{Path: path, Activities: activities}
		if doc.ExportedAt != nil {
			if t, err := time.Parse(time.RFC3339Nano, *doc.ExportedAt); err == nil {
				snap.ExportedAt = &t
			}
		}
		return snap, nil
	default:
		var probe any
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, apperr.Format(apperr.StageLoad, err, "failed to parse %s", path)
		}
		return nil, invalidShape(path)
	}
}

var errNotList = errors.New("activities is not a list")

func decodeActivities(data []byte) ([]strava.Activity, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotList
	}
	return strava.ParseActivities(trimmed)
}

func invalidShape(path string) error {
	return apperr.Format(apperr.StageLoad, nil,
		"invalid JSON format in %s: expected a list or an object with an 'activities' key", path)
}

func loadArchive(path string) (*Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := database.OpenReadOnly(path)
	if err != nil {
		return nil, apperr.Format(apperr.StageLoad, err, "failed to open archive %s", path)
	}
	defer db.Close()

	run, err := db.LatestExportRun()
	if err != nil {
		return nil, apperr.Format(apperr.StageLoad, err, "failed to read archive %s", path)
	}
	if run == nil {
		return nil, apperr.Format(apperr.StageLoad, nil, "archive %s contains no export run", path)
	}

	rows, err := db.ListActivitiesByRun(run.RunID)
	if err != nil {
		return nil, apperr.Format(apperr.StageLoad, err, "failed to read archive %s", path)
	}

	activities := make([]strava.Activity, 0, len(rows))
	for _, row := range rows {
		var a strava.Activity
		if err := json.Unmarshal([]byte(row.SummaryJSON), &a); err != nil {
			return nil, apperr.Format(apperr.StageLoad, err, "corrupt activity at position %d in %s", row.Position, path)
		}
		activities = append(activities, a)
	}

	exportedAt := run.ExportedAt
	return &Snapshot{Path: path, ExportedAt: &exportedAt, Activities: activities}, nil
}

// requireDateField fails when no activity carries the date field. An empty
// collection passes so callers can report it separately.
func requireDateField(activities []strava.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	for i := range activities {
		if activities[i].StartDateLocal != nil {
			return nil
		}
	}
	return apperr.Format(apperr.StageLoad, nil,
		"missing '%s' in data. Make sure you exported Strava activities JSON, not CSV", DateField)
}

// Source reports on the dataset at a fixed path
type Source struct {
	Path string
}

// Stats implements metrics.DatasetStats
func (s Source) Stats() (int, time.Time, error) {
	snap, err := Load(s.Path)
	if err != nil {
		return 0, time.Time{}, err
	}
	if snap.ExportedAt == nil {
		return len(snap.Activities), time.Time{}, nil
	}
	return len(snap.Activities), *snap.ExportedAt, nil
}
