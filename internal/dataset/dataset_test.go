package dataset

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strava-dashboard/internal/apperr"
	"strava-dashboard/internal/export"
	"strava-dashboard/internal/strava"
)

func paris(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

func parse(t *testing.T, data string) []strava.Activity {
	t.Helper()
	activities, err := strava.ParseActivities([]byte(data))
	require.NoError(t, err)
	return activities
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDocumentRoundTrip(t *testing.T) {
	activities := parse(t, `[
		{"id": 1, "start_date_local": "2025-03-03T07:00:00Z", "distance": 5000, "extra": {"nested": [1, 2]}},
		{"id": 2, "start_date_local": "2025-03-05T07:00:00Z", "segment_efforts": null}
	]`)
	path := filepath.Join(t.TempDir(), "activities.json")
	exportedAt := time.Date(2025, 3, 6, 8, 0, 0, 0, time.UTC)
	_, err := export.Write(path, activities, export.Options{ExportedAt: exportedAt})
	require.NoError(t, err)

	snap, err := Load(path)
	require.NoError(t, err)
	require.Len(t, snap.Activities, 2)
	require.NotNil(t, snap.ExportedAt)
	assert.True(t, snap.ExportedAt.Equal(exportedAt))

	for i := range activities {
		want, err := json.Marshal(activities[i])
		require.NoError(t, err)
		got, err := json.Marshal(snap.Activities[i])
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(got))
	}
}

func TestLoadBareArray(t *testing.T) {
	path := writeFile(t, "activities.json", `[{"id": 1, "start_date_local": "2025-03-03T07:00:00Z"}]`)

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, snap.Activities, 1)
	assert.Nil(t, snap.ExportedAt)
}

func TestLoadSQLiteArchive(t *testing.T) {
	activities := parse(t, `[{"id": 7, "start_date_local": "2025-03-03T07:00:00Z", "sport_type": "Ride"}]`)
	path := filepath.Join(t.TempDir(), "activities.db")
	_, err := export.Write(path, activities, export.Options{})
	require.NoError(t, err)

	snap, err := Load(path)
	require.NoError(t, err)
	require.Len(t, snap.Activities, 1)
	assert.Equal(t, int64(7), *snap.Activities[0].ID)
	assert.NotNil(t, snap.ExportedAt)
}

func TestLoadFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{name: "malformed json", file: "a.json", content: `{"activities": [`, want: "failed to parse"},
		{name: "object without activities", file: "a.json", content: `{"items": []}`, want: "expected a list or an object with an 'activities' key"},
		{name: "scalar", file: "a.json", content: `42`, want: "expected a list or an object"},
		{name: "activities not a list", file: "a.json", content: `{"activities": {"id": 1}}`, want: "expected a list"},
		{name: "activities null", file: "a.json", content: `{"activities": null}`, want: "expected a list"},
		{name: "non-object activity", file: "a.json", content: `{"activities": [{"id": 1, "start_date_local": "2025-03-03T07:00:00Z"}, 5]}`, want: "activity 1: activity must be a JSON object"},
		{name: "missing date field", file: "a.json", content: `[{"id": 1, "start_date": "2025-03-03T06:00:00Z"}]`, want: "missing 'start_date_local'"},
		{name: "tabular export", file: "a.csv", content: "id,name\n1,x\n", want: "missing 'start_date_local'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)

			var formatErr *apperr.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, apperr.StageLoad, formatErr.Stage)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadToleratesMistypedField(t *testing.T) {
	path := writeFile(t, "activities.json", `{"activities": [
		{"id": 1, "start_date_local": "2025-03-03T07:00:00Z", "utc_offset": "3600", "distance": 5000},
		{"id": 2, "start_date_local": "2025-03-04T07:00:00Z", "distance": "far"}
	]}`)

	snap, err := Load(path)
	require.NoError(t, err)
	require.Len(t, snap.Activities, 2)
	assert.Nil(t, snap.Activities[0].UTCOffset)
	assert.Equal(t, 5000.0, *snap.Activities[0].Distance)
	assert.Nil(t, snap.Activities[1].Distance)

	fields, err := snap.Activities[0].Fields()
	require.NoError(t, err)
	assert.JSONEq(t, `"3600"`, string(fields["utc_offset"]))

	frame := Normalize(snap.Activities, time.UTC)
	require.Len(t, frame.Rows, 2)
	assert.Nil(t, frame.Rows[1].DistanceKm)
}

func TestLoadEmptyDocument(t *testing.T) {
	path := writeFile(t, "activities.json", `{"exported_at": "2025-03-06T08:00:00Z", "count": 0, "activities": []}`)

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, snap.Activities)
}

func TestTimezoneName(t *testing.T) {
	assert.Equal(t, "Europe/Prague", TimezoneName("(GMT+01:00) Europe/Prague"))
	assert.Equal(t, "Europe/Paris", TimezoneName("Europe/Paris"))
	assert.Equal(t, "America/New_York", TimezoneName("(GMT-05:00) America/New_York"))
}

func TestNormalize(t *testing.T) {
	activities := parse(t, `[
		{"id": 1, "start_date_local": "2025-03-03T07:30:00Z", "timezone": "(GMT+01:00) Europe/Prague",
		 "distance": 10500, "moving_time": 3600, "sport_type": "Run"},
		{"id": 2, "start_date_local": "2025-03-04T18:00:00Z", "timezone": "(GMT+01:00) Europe/Prague",
		 "location_country": "Austria", "type": "Ride"},
		{"id": 3, "start_date_local": "not a date", "location_country": ""}
	]`)

	frame := Normalize(activities, paris(t))
	require.Len(t, frame.Rows, 3)

	first := frame.Rows[0]
	require.NotNil(t, first.Start)
	assert.Equal(t, "2025-03-03 08:30", first.Start.Format("2006-01-02 15:04"))
	assert.Equal(t, "2025-03-03", first.Date)
	assert.Equal(t, 2025, first.ISOYear)
	assert.Equal(t, 10, first.ISOWeek)
	assert.Equal(t, 3, first.Month)
	assert.Equal(t, "March", first.MonthName)
	assert.InDelta(t, 10.5, *first.DistanceKm, 1e-9)
	assert.InDelta(t, 1.0, *first.MovingTimeH, 1e-9)
	assert.Equal(t, "Run", first.Sport)
	assert.Equal(t, "Europe/Prague", *first.TZName)
	assert.Equal(t, "Czech Republic", *first.Country)

	second := frame.Rows[1]
	assert.Equal(t, "Ride", second.Sport)
	assert.Nil(t, second.DistanceKm)
	assert.Equal(t, "Austria", *second.Country, "existing country is never overridden")
	assert.Equal(t, "Czech Republic", *second.CountryFromTZ)

	third := frame.Rows[2]
	assert.Nil(t, third.Start)
	assert.Equal(t, DefaultSport, third.Sport)
	assert.Nil(t, third.TZName)
	assert.Nil(t, third.Country)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	activities := parse(t, `[{"id": 1, "start_date_local": "2025-03-03T07:30:00Z", "distance": 1000}]`)
	before, err := json.Marshal(activities)
	require.NoError(t, err)

	Normalize(activities, paris(t))
	Normalize(activities, time.UTC)

	after, err := json.Marshal(activities)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}
