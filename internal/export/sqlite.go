package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"strava-dashboard/internal/database"
	"strava-dashboard/internal/strava"
)

// writeSQLite stores the collection as a single-run archive. The summary JSON
// column keeps each activity verbatim so the archive can be loaded back.
func writeSQLite(path string, activities []strava.Activity, opts Options) error {
	db, err := database.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Init(); err != nil {
		return err
	}

	rows := make([]*database.Activity, 0, len(activities))
	for i := range activities {
		row, err := archiveRow(&activities[i])
		if err != nil {
			return fmt.Errorf("activity %d: %w", i, err)
		}
		rows = append(rows, row)
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	run := &database.ExportRun{
		RunID:         runID,
		ExportedAt:    opts.ExportedAt,
		ActivityCount: len(rows),
		AfterEpoch:    opts.After,
		BeforeEpoch:   opts.Before,
	}
	if err := db.SaveExport(run, rows); err != nil {
		return err
	}
	return db.Close()
}

func archiveRow(a *strava.Activity) (*database.Activity, error) {
	summary, err := a.MarshalJSON()
	if err != nil {
		return nil, err
	}

	row := &database.Activity{
		ActivityID:  a.ID,
		Name:        a.Name,
		Distance:    a.Distance,
		MovingTime:  a.MovingTime,
		SummaryJSON: string(summary),
	}
	if sport, ok := a.Sport(); ok {
		row.Sport = &sport
	}
	if a.StartDate != nil {
		if t, err := time.Parse(time.RFC3339, *a.StartDate); err == nil {
			unix := t.Unix()
			row.StartDate = &unix
		}
	}
	return row, nil
}
