// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	coredeed "github.com/example/escriba/internal/core/deed"
	"github.com/example/escriba/internal/ports/secondary"
)

// DeedRepository implements secondary.DeedRepository with SQLite.
type DeedRepository struct {
	db *sql.DB
}

// NewDeedRepository creates a new SQLite deed repository.
func NewDeedRepository(db *sql.DB) *DeedRepository {
	return &DeedRepository{db: db}
}

// Create persists a new case and its checklist in a single transaction.
// The code is allocated by bumping the per-year counter inside the same
// transaction as the case insert, so concurrent creates can never observe
// the same sequence number.
func (r *DeedRepository) Create(ctx context.Context, record *secondary.DeedRecord, documents []string) error {
	if record.Status == "" {
		return fmt.Errorf("deed status must be pre-populated by service layer")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	year := time.Now().Year()
	seq, err := nextSequence(ctx, tx, year)
	if err != nil {
		return err
	}
	code := coredeed.FormatCode(year, seq)

	var responsible sql.NullString
	if record.Responsible != "" {
		responsible = sql.NullString{String: record.Responsible, Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO deeds (code, client_name, deed_type, status, responsible) VALUES (?, ?, ?, ?, ?)",
		code, record.ClientName, record.DeedType, record.Status, responsible,
	)
	if err != nil {
		return fmt.Errorf("failed to create deed: %w", err)
	}

	for i, doc := range documents {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO checklist_items (deed_code, document, delivered, position) VALUES (?, ?, 0, ?)",
			code, doc, i,
		)
		if err != nil {
			return fmt.Errorf("failed to seed checklist: %w", err)
		}
	}

	var createdAt, updatedAt time.Time
	err = tx.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM deeds WHERE code = ?", code,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("failed to read back deed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deed create: %w", err)
	}

	record.Code = code
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return nil
}

// nextSequence bumps and returns the code sequence for a year.
// Must run inside the create transaction.
func nextSequence(ctx context.Context, tx *sql.Tx, year int) (int, error) {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO code_counters (year, next_seq) VALUES (?, 0) ON CONFLICT(year) DO NOTHING",
		year,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure code counter: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE code_counters SET next_seq = next_seq + 1 WHERE year = ?",
		year,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to bump code counter: %w", err)
	}

	var seq int
	err = tx.QueryRowContext(ctx,
		"SELECT next_seq FROM code_counters WHERE year = ?", year,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to read code counter: %w", err)
	}

	return seq, nil
}

// GetByCode retrieves a case by its code.
func (r *DeedRepository) GetByCode(ctx context.Context, code string) (*secondary.DeedRecord, error) {
	var (
		responsible sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
	)

	record := &secondary.DeedRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT code, client_name, deed_type, status, responsible, created_at, updated_at FROM deeds WHERE code = ?",
		code,
	).Scan(&record.Code, &record.ClientName, &record.DeedType, &record.Status, &responsible, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("deed %s: %w", code, coredeed.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deed: %w", err)
	}

	record.Responsible = responsible.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// List retrieves cases matching the given filters, oldest first.
func (r *DeedRepository) List(ctx context.Context, filters secondary.DeedFilters) ([]*secondary.DeedRecord, error) {
	query := "SELECT code, client_name, deed_type, status, responsible, created_at, updated_at FROM deeds"
	args := []any{}

	if filters.Status != "" {
		query += " WHERE status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY created_at ASC, code ASC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list deeds: %w", err)
	}
	defer rows.Close()

	var deeds []*secondary.DeedRecord
	for rows.Next() {
		var (
			responsible sql.NullString
			createdAt   time.Time
			updatedAt   time.Time
		)

		record := &secondary.DeedRecord{}
		err := rows.Scan(&record.Code, &record.ClientName, &record.DeedType, &record.Status, &responsible, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deed: %w", err)
		}

		record.Responsible = responsible.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)
		deeds = append(deeds, record)
	}

	return deeds, rows.Err()
}

// UpdateStatus sets the status label and bumps updated_at.
func (r *DeedRepository) UpdateStatus(ctx context.Context, code, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE deeds SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE code = ?",
		status, code,
	)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("deed %s: %w", code, coredeed.ErrNotFound)
	}

	return nil
}

// AssignResponsible overwrites the responsible identity and bumps updated_at.
func (r *DeedRepository) AssignResponsible(ctx context.Context, code, identity string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE deeds SET responsible = ?, updated_at = CURRENT_TIMESTAMP WHERE code = ?",
		identity, code,
	)
	if err != nil {
		return fmt.Errorf("failed to assign responsible: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("deed %s: %w", code, coredeed.ErrNotFound)
	}

	return nil
}

// Ensure DeedRepository implements the interface
var _ secondary.DeedRepository = (*DeedRepository)(nil)
