package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DB wraps the SQLite archive connection
type DB struct {
	conn *sql.DB
}

// Open opens the archive at path for writing, creating it if needed
func Open(path string) (*DB, error) {
	// The archive is a single portable file, so no WAL side files
	return open(fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(DELETE)", path))
}

// OpenReadOnly opens an existing archive without write access. Readers such
// as the dashboard never create or modify the file.
func OpenReadOnly(path string) (*DB, error) {
	return open(fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", path))
}

func open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Init creates all tables and indexes
func (db *DB) Init() error {
	_, err := db.conn.Exec(Schema)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Health pings the connection and checks that the archive schema is present
func (db *DB) Health() error {
	if err := db.conn.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	var n int
	err := db.conn.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN ('export_runs', 'activities')`).Scan(&n)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if n != 2 {
		return fmt.Errorf("archive schema is missing")
	}
	return nil
}
