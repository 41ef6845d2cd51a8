package store

import (
	"fmt"
	"time"
)

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Run is one recorded generation attempt.
type Run struct {
	ID         int64     `json:"id"`
	TakenAt    time.Time `json:"taken_at"`
	Project    string    `json:"project"`
	Command    string    `json:"command"`
	Template   string    `json:"template,omitempty"`
	Backend    string    `json:"backend,omitempty"`
	Model      string    `json:"model,omitempty"`
	Offline    bool      `json:"offline"`
	DurationMs int64     `json:"duration_ms"`
	OutputSize int       `json:"output_size"`
	VersionID  string    `json:"version_id,omitempty"`
}

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means a fresh database.
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}
	return nil
}

func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at    TEXT NOT NULL,
			project     TEXT NOT NULL,
			command     TEXT NOT NULL,
			template    TEXT,
			backend     TEXT,
			model       TEXT,
			offline     BOOLEAN NOT NULL,
			duration_ms INTEGER NOT NULL,
			output_size INTEGER NOT NULL,
			version_id  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_project ON runs(project)`,
		`DELETE FROM schema_version`,
	}
	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}
	_, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion)
	return err
}

// InsertRun records one generation run and returns its id.
func (db *DB) InsertRun(r *Run) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO runs
		(taken_at, project, command, template, backend, model, offline, duration_ms, output_size, version_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.TakenAt.UTC().Format(time.RFC3339), r.Project, r.Command, r.Template,
		r.Backend, r.Model, r.Offline, r.DurationMs, r.OutputSize, r.VersionID,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// RecentRuns returns the most recent runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(
		`SELECT id, taken_at, project, command, template, backend, model, offline, duration_ms, output_size, version_id
		 FROM runs ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var takenAt string
		if err := rows.Scan(&r.ID, &takenAt, &r.Project, &r.Command, &r.Template,
			&r.Backend, &r.Model, &r.Offline, &r.DurationMs, &r.OutputSize, &r.VersionID); err != nil {
			return nil, err
		}
		r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
