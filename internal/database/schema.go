package database

// Schema contains all SQL statements for creating tables and indexes
const Schema = `
-- Export runs: one row per acquisition run written to this archive
CREATE TABLE IF NOT EXISTS export_runs (
    run_id TEXT PRIMARY KEY,
    exported_at INTEGER NOT NULL,  -- Unix timestamp
    activity_count INTEGER NOT NULL,

    -- Requested time window (epoch seconds), NULL when unbounded
    after_epoch INTEGER,
    before_epoch INTEGER
);

-- Activities: raw provider JSON plus extracted columns for querying.
-- activity_id is deliberately not unique.
CREATE TABLE IF NOT EXISTS activities (
    row_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    position INTEGER NOT NULL,  -- index in API return order

    activity_id INTEGER,
    name TEXT,
    sport TEXT,
    start_date INTEGER,  -- Unix timestamp
    distance REAL,       -- meters
    moving_time REAL,    -- seconds

    summary_json TEXT NOT NULL,

    FOREIGN KEY (run_id) REFERENCES export_runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_activities_run_position ON activities(run_id, position);
CREATE INDEX IF NOT EXISTS idx_activities_activity_id ON activities(activity_id);
CREATE INDEX IF NOT EXISTS idx_activities_start_date ON activities(start_date DESC);
CREATE INDEX IF NOT EXISTS idx_activities_sport ON activities(sport);
`
