package database

import (
	"database/sql"
	"fmt"
	"time"
)

// ExportRun describes one acquisition run stored in the archive
type ExportRun struct {
	RunID         string
	ExportedAt    time.Time
	ActivityCount int
	AfterEpoch    *int64
	BeforeEpoch   *int64
}

// Activity is one archived activity row
type Activity struct {
	RowID       int64
	RunID       string
	Position    int
	ActivityID  *int64
	Name        *string
	Sport       *string
	StartDate   *int64
	Distance    *float64
	MovingTime  *float64
	SummaryJSON string
}

// SaveExport writes a run and its activities in one transaction
func (db *DB) SaveExport(run *ExportRun, activities []*Activity) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO export_runs (run_id, exported_at, activity_count, after_epoch, before_epoch)
		VALUES (?, ?, ?, ?, ?)
	`, run.RunID, run.ExportedAt.Unix(), run.ActivityCount, run.AfterEpoch, run.BeforeEpoch)
	if err != nil {
		return fmt.Errorf("failed to create export run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO activities (
			run_id, position, activity_id, name, sport,
			start_date, distance, moving_time, summary_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare activity insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range activities {
		a.RunID = run.RunID
		a.Position = i
		res, err := stmt.Exec(a.RunID, a.Position, a.ActivityID, a.Name, a.Sport,
			a.StartDate, a.Distance, a.MovingTime, a.SummaryJSON)
		if err != nil {
			return fmt.Errorf("failed to insert activity at position %d: %w", i, err)
		}
		if a.RowID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get row id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}
	return nil
}

// LatestExportRun returns the most recent run, or nil if there is none
func (db *DB) LatestExportRun() (*ExportRun, error) {
	return scanRun(db.conn.QueryRow(`
		SELECT run_id, exported_at, activity_count, after_epoch, before_epoch
		FROM export_runs ORDER BY exported_at DESC LIMIT 1
	`))
}

func scanRun(row *sql.Row) (*ExportRun, error) {
	var (
		run        ExportRun
		exportedAt int64
	)
	err := row.Scan(&run.RunID, &exportedAt, &run.ActivityCount, &run.AfterEpoch, &run.BeforeEpoch)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get export run: %w", err)
	}
	run.ExportedAt = time.Unix(exportedAt, 0).UTC()
	return &run, nil
}

// ListActivitiesByRun returns a run's activities in API return order
func (db *DB) ListActivitiesByRun(runID string) ([]*Activity, error) {
	rows, err := db.conn.Query(`
		SELECT row_id, run_id, position, activity_id, name, sport,
		       start_date, distance, moving_time, summary_json
		FROM activities
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*Activity
	for rows.Next() {
		var a Activity
		err := rows.Scan(
			&a.RowID, &a.RunID, &a.Position, &a.ActivityID, &a.Name, &a.Sport,
			&a.StartDate, &a.Distance, &a.MovingTime, &a.SummaryJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}
