package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"strava-dashboard/internal/database"
	"strava-dashboard/internal/strava"
)

const samplePage = `[
  {"id": 11, "name": "Morning Run", "start_date": "2025-03-03T06:00:00Z", "start_date_local": "2025-03-03T07:00:00Z",
   "timezone": "(GMT+01:00) Europe/Paris", "sport_type": "Run", "type": "Run", "distance": 5000, "moving_time": 1500,
   "map": {"summary_polyline": "abc"}, "kudos_count": 4},
  {"id": 12, "name": "Commute <home>", "start_date": "2025-03-04T17:00:00Z", "sport_type": "Ride",
   "distance": 8200.5, "moving_time": null, "commute": true}
]`

func sampleActivities(t *testing.T) []strava.Activity {
	t.Helper()
	activities, err := strava.ParseActivities([]byte(samplePage))
	require.NoError(t, err)
	return activities
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"data/activities.json": FormatJSON,
		"out.CSV":              FormatCSV,
		"out.xlsx":             FormatXLSX,
		"archive.db":           FormatSQLite,
		"archive.sqlite":       FormatSQLite,
		"archive.sqlite3":      FormatSQLite,
		"no-extension":         FormatJSON,
		"weird.txt":            FormatJSON,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFor(path), path)
	}
}

func TestWriteJSONIsLossless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "activities.json")
	activities := sampleActivities(t)
	exportedAt := time.Date(2025, 3, 5, 10, 30, 0, 0, time.UTC)

	format, err := Write(path, activities, Options{ExportedAt: exportedAt})
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		ExportedAt string            `json:"exported_at"`
		Count      int               `json:"count"`
		Activities []json.RawMessage `json:"activities"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2025-03-05T10:30:00Z", doc.ExportedAt)
	assert.Equal(t, 2, doc.Count)
	require.Len(t, doc.Activities, 2)

	var original []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(samplePage), &original))
	for i := range original {
		assert.JSONEq(t, string(original[i]), string(doc.Activities[i]))
	}

	// HTML characters are written as-is
	assert.Contains(t, string(data), "Commute <home>")
}

func TestWriteJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")

	_, err := Write(path, nil, Options{})
	require.NoError(t, err)

	var doc Document
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 0, doc.Count)
	assert.NotNil(t, doc.Activities)
	assert.Contains(t, string(data), `"activities": []`)
}

func TestWriteReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	activities := sampleActivities(t)

	_, err := Write(path, activities, Options{})
	require.NoError(t, err)
	_, err = Write(path, activities[:1], Options{})
	require.NoError(t, err)

	var doc Document
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 1, doc.Count)
	require.Len(t, doc.Activities, 1)
	assert.Equal(t, int64(11), *doc.Activities[0].ID)

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.csv")

	format, err := Write(path, []strava.Activity{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)

	records := readCSV(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, Columns, records[0])
}

func TestWriteCSVProjection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.csv")

	_, err := Write(path, sampleActivities(t), Options{})
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, Columns, records[0])

	col := func(row []string, name string) string {
		for i, c := range Columns {
			if c == name {
				return row[i]
			}
		}
		t.Fatalf("unknown column %s", name)
		return ""
	}

	first := records[1]
	assert.Equal(t, "11", col(first, "id"))
	assert.Equal(t, "Morning Run", col(first, "name"))
	assert.Equal(t, "(GMT+01:00) Europe/Paris", col(first, "timezone"))
	assert.Equal(t, "5000", col(first, "distance"))
	assert.Equal(t, "", col(first, "commute"))
	assert.NotContains(t, first, "abc")

	second := records[2]
	assert.Equal(t, "8200.5", col(second, "distance"))
	assert.Equal(t, "", col(second, "moving_time"))
	assert.Equal(t, "", col(second, "start_date_local"))
	assert.Equal(t, "true", col(second, "commute"))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.xlsx")

	format, err := Write(path, sampleActivities(t), Options{})
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, format)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "11", rows[1][0])
	assert.Equal(t, "Morning Run", rows[1][1])
	assert.Equal(t, "Commute <home>", rows[2][1])
}

func TestWriteSQLiteArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.db")
	after := int64(1740787200)
	exportedAt := time.Date(2025, 3, 5, 10, 30, 0, 0, time.UTC)

	format, err := Write(path, sampleActivities(t), Options{ExportedAt: exportedAt, RunID: "run-a", After: &after})
	require.NoError(t, err)
	assert.Equal(t, FormatSQLite, format)

	db, err := database.Open(path)
	require.NoError(t, err)
	defer db.Close()

	run, err := db.LatestExportRun()
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "run-a", run.RunID)
	assert.Equal(t, 2, run.ActivityCount)
	assert.True(t, run.ExportedAt.Equal(exportedAt))
	require.NotNil(t, run.AfterEpoch)
	assert.Equal(t, after, *run.AfterEpoch)
	assert.Nil(t, run.BeforeEpoch)

	rows, err := db.ListActivitiesByRun("run-a")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Run", *rows[0].Sport)
	assert.Equal(t, int64(1740981600), *rows[0].StartDate)
	assert.Nil(t, rows[1].MovingTime)

	var restored strava.Activity
	require.NoError(t, json.Unmarshal([]byte(rows[0].SummaryJSON), &restored))
	fields, err := restored.Fields()
	require.NoError(t, err)
	assert.Contains(t, fields, "map")
}

func TestWriteSQLiteReplacesArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.db")
	activities := sampleActivities(t)

	_, err := Write(path, activities, Options{RunID: "first"})
	require.NoError(t, err)
	_, err = Write(path, activities[:1], Options{RunID: "second"})
	require.NoError(t, err)

	db, err := database.Open(path)
	require.NoError(t, err)
	defer db.Close()

	latest, err := db.LatestExportRun()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.RunID)

	first, err := db.ListActivitiesByRun("first")
	require.NoError(t, err)
	assert.Empty(t, first)

	rows, err := db.ListActivitiesByRun("second")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
