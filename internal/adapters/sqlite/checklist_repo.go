package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	coredeed "github.com/example/escriba/internal/core/deed"
	"github.com/example/escriba/internal/ports/secondary"
)

// ChecklistRepository implements secondary.ChecklistRepository with SQLite.
type ChecklistRepository struct {
	db *sql.DB
}

// NewChecklistRepository creates a new SQLite checklist repository.
func NewChecklistRepository(db *sql.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// ListByCase retrieves all checklist items for a case, in seed order.
func (r *ChecklistRepository) ListByCase(ctx context.Context, code string) ([]*secondary.ChecklistItemRecord, error) {
	return r.list(ctx, code, false)
}

// ListPending retrieves the undelivered checklist items for a case.
func (r *ChecklistRepository) ListPending(ctx context.Context, code string) ([]*secondary.ChecklistItemRecord, error) {
	return r.list(ctx, code, true)
}

func (r *ChecklistRepository) list(ctx context.Context, code string, pendingOnly bool) ([]*secondary.ChecklistItemRecord, error) {
	query := "SELECT deed_code, document, delivered FROM checklist_items WHERE deed_code = ?"
	if pendingOnly {
		query += " AND delivered = 0"
	}
	query += " ORDER BY position ASC"

	rows, err := r.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist: %w", err)
	}
	defer rows.Close()

	var items []*secondary.ChecklistItemRecord
	for rows.Next() {
		var delivered int
		record := &secondary.ChecklistItemRecord{}
		if err := rows.Scan(&record.DeedCode, &record.Document, &delivered); err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		record.Delivered = delivered != 0
		items = append(items, record)
	}

	return items, rows.Err()
}

// MarkDelivered flips a document to delivered. Re-marking a delivered
// document is a no-op that still succeeds; SQLite reports the row as
// touched either way, so zero affected rows means the pair does not exist.
func (r *ChecklistRepository) MarkDelivered(ctx context.Context, code, document string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE checklist_items SET delivered = 1 WHERE deed_code = ? AND document = ?",
		code, document,
	)
	if err != nil {
		return fmt.Errorf("failed to mark document delivered: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("document %q for deed %s: %w", document, code, coredeed.ErrNotFound)
	}

	return nil
}

// Ensure ChecklistRepository implements the interface
var _ secondary.ChecklistRepository = (*ChecklistRepository)(nil)
