package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strava-dashboard/internal/database"
	"strava-dashboard/internal/export"
	"strava-dashboard/internal/strava"
)

func getHealth(t *testing.T, dataPath string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	NewHealthHandler(dataPath).HandleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHandleHealth_Archive(t *testing.T) {
	activities, err := strava.ParseActivities([]byte(`[{"id": 1, "start_date_local": "2025-03-03T07:00:00Z"}, {"id": 2}]`))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "activities.db")
	_, err = export.Write(path, activities, export.Options{RunID: "run-1"})
	require.NoError(t, err)

	body := getHealth(t, path)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["dataset"])

	archive, ok := body["archive"].(map[string]any)
	require.True(t, ok, "expected archive summary, got %v", body)
	assert.Equal(t, "run-1", archive["run_id"])
	assert.Equal(t, float64(2), archive["activity_count"])
	assert.NotEmpty(t, archive["exported_at"])
}

func TestHandleHealth_ArchiveWithoutSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.db")
	db, err := database.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	body := getHealth(t, path)
	assert.Equal(t, "degraded", body["status"])
	assert.Contains(t, body["archive_error"], "schema")
	assert.NotContains(t, body, "archive")
}

func TestHandleHealth_JSONDatasetSkipsArchiveCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	_, err := export.Write(path, nil, export.Options{})
	require.NoError(t, err)

	body := getHealth(t, path)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["dataset"])
	assert.NotContains(t, body, "archive")
}
