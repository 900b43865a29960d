package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration.
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_position_to_checklist_items",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_code_counters_table",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations against the database.
func RunMigrations(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	for _, m := range migrations {
		var applied int
		err := database.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", m.Version).Scan(&applied)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.Version, err)
		}
		if applied > 0 {
			continue
		}

		if err := m.Up(database); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// migrationV1 adds the position column used to preserve template order.
// Early ledgers relied on rowid ordering, which broke after manual fixes.
func migrationV1(database *sql.DB) error {
	_, err := database.Exec("ALTER TABLE checklist_items ADD COLUMN position INTEGER NOT NULL DEFAULT 0")
	return err
}

// migrationV2 introduces the per-year counter table. Codes were previously
// derived from a row count, which could hand out duplicates under
// concurrent creates; the counter is bumped inside the create transaction.
func migrationV2(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS code_counters (
			year INTEGER PRIMARY KEY,
			next_seq INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}

	// Seed counters from existing codes so new allocations continue the
	// sequence instead of reusing codes.
	_, err = database.Exec(`
		INSERT INTO code_counters (year, next_seq)
		SELECT CAST(SUBSTR(code, 4, 4) AS INTEGER), MAX(CAST(SUBSTR(code, 9) AS INTEGER))
		FROM deeds
		GROUP BY CAST(SUBSTR(code, 4, 4) AS INTEGER)
	`)
	return err
}
