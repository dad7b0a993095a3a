package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order. Each entry runs at most once; the
// schema_migrations table records which versions have been applied.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		short_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		destination TEXT NOT NULL,
		destination_city TEXT NOT NULL,
		destination_country TEXT NOT NULL,
		start_date TEXT,
		duration_days INTEGER NOT NULL,
		total_budget INTEGER NOT NULL DEFAULT 0,
		green_travel INTEGER NOT NULL DEFAULT 0,
		public_event INTEGER NOT NULL DEFAULT 0,
		food_prepared INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'active', 'done', 'archived')),
		archived_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS participant_groups (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		country TEXT NOT NULL,
		count INTEGER NOT NULL CHECK (count > 0),
		PRIMARY KEY (project_id, country)
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		outdoor INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS allocations (
		project_id TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		total INTEGER NOT NULL,
		justifications TEXT NOT NULL DEFAULT '',
		computed_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS allocation_lines (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		amount INTEGER NOT NULL,
		PRIMARY KEY (project_id, category)
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		amount INTEGER NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		incurred_on TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_project ON activities(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_project ON expenses(project_id)`,
}

// Migrate brings the schema up to date.
func Migrate(database *sql.DB) error {
	_, err := database.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	err = database.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		version := i + 1
		if _, err := database.Exec(migrations[i]); err != nil {
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := database.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
	}

	return nil
}
