// Package sqlite_test contains integration tests for SQLite repositories.
//
// The schema is loaded from db.GetSchemaSQL() so tests always run against
// the authoritative schema; do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/escriba/internal/adapters/sqlite"
	"github.com/example/escriba/internal/db"
	"github.com/example/escriba/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// A single connection keeps the in-memory database alive and serializes
// writers the way the file-backed database does.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// donationDocs is the Doação template used across tests.
var donationDocs = []string{
	"RG/CPF das partes",
	"Certidão do imóvel",
	"Certidão de casamento",
	"Comprovante de endereço",
}

// seedDeed creates a deed through the repository and returns its record.
func seedDeed(t *testing.T, database *sql.DB, clientName string, documents []string) *secondary.DeedRecord {
	t.Helper()

	repo := sqlite.NewDeedRepository(database)
	record := &secondary.DeedRecord{
		ClientName: clientName,
		DeedType:   "Doação",
		Status:     "📥 Recebida",
	}
	if err := repo.Create(context.Background(), record, documents); err != nil {
		t.Fatalf("failed to seed deed: %v", err)
	}
	return record
}
