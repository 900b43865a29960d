// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// DeedRepository defines the secondary port for deed case persistence.
type DeedRepository interface {
	// Create persists a new case together with its checklist documents.
	// The implementation allocates the case code from the per-year counter
	// and commits counter bump, case insert, and checklist seed as one
	// atomic unit. On success the record's Code and timestamps are
	// populated.
	Create(ctx context.Context, record *DeedRecord, documents []string) error

	// GetByCode retrieves a case by its code.
	GetByCode(ctx context.Context, code string) (*DeedRecord, error)

	// List retrieves cases matching the given filters, in insertion order.
	List(ctx context.Context, filters DeedFilters) ([]*DeedRecord, error)

	// UpdateStatus sets the status label and bumps updated_at.
	// Idempotent: re-applying the same label succeeds.
	UpdateStatus(ctx context.Context, code, status string) error

	// AssignResponsible overwrites the responsible identity (last writer
	// wins) and bumps updated_at.
	AssignResponsible(ctx context.Context, code, identity string) error
}

// DeedRecord represents a deed case as stored in persistence.
type DeedRecord struct {
	Code        string
	ClientName  string
	DeedType    string
	Status      string
	Responsible string // Empty string means unassigned
	CreatedAt   string
	UpdatedAt   string
}

// DeedFilters contains filter options for querying cases.
type DeedFilters struct {
	Status string
	Limit  int
}

// ChecklistRepository defines the secondary port for checklist persistence.
// Checklist rows are seeded by DeedRepository.Create; afterwards the only
// mutation is flipping delivered to true.
type ChecklistRepository interface {
	// ListByCase retrieves all checklist items for a case, in seed order.
	ListByCase(ctx context.Context, code string) ([]*ChecklistItemRecord, error)

	// ListPending retrieves the undelivered checklist items for a case,
	// in seed order.
	ListPending(ctx context.Context, code string) ([]*ChecklistItemRecord, error)

	// MarkDelivered flips a document to delivered. Idempotent; unknown
	// (code, document) pairs surface as a not-found error.
	MarkDelivered(ctx context.Context, code, document string) error
}

// ChecklistItemRecord represents a required document as stored in persistence.
type ChecklistItemRecord struct {
	DeedCode  string
	Document  string
	Delivered bool
}
