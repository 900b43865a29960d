package db

import "database/sql"

// SchemaSQL is the complete schema for fresh escriba installs.
//
// This is the single source of truth for the database schema. Tests load it
// via GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so any
// drift between repository code and schema fails immediately with
// "no such column" at test time.
//
// Keep in sync with the migrations list in migrations.go.
const SchemaSQL = `
-- Deed cases (escrituras)
CREATE TABLE IF NOT EXISTS deeds (
	code TEXT PRIMARY KEY,
	client_name TEXT NOT NULL,
	deed_type TEXT NOT NULL,
	status TEXT NOT NULL,
	responsible TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Required documents per case, seeded from the type template at creation
CREATE TABLE IF NOT EXISTS checklist_items (
	deed_code TEXT NOT NULL,
	document TEXT NOT NULL,
	delivered INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (deed_code, document),
	FOREIGN KEY (deed_code) REFERENCES deeds(code)
);

-- Per-year code sequence, bumped inside the case-create transaction
CREATE TABLE IF NOT EXISTS code_counters (
	year INTEGER PRIMARY KEY,
	next_seq INTEGER NOT NULL DEFAULT 0
);
`

// maxMigrationVersion is the version fresh installs are stamped with.
const maxMigrationVersion = 2

// InitSchema creates the schema on fresh databases and runs pending
// migrations on existing ones.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create current schema directly and stamp all
		// migrations as applied so they never run.
		if _, err := database.Exec(SchemaSQL); err != nil {
			return err
		}
		if _, err := database.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}
		for v := 1; v <= maxMigrationVersion; v++ {
			if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", v); err != nil {
				return err
			}
		}
		return nil
	}

	return RunMigrations(database)
}

// GetSchemaSQL returns the authoritative schema SQL.
// Used by tests to create in-memory databases that match production.
func GetSchemaSQL() string {
	return SchemaSQL
}
