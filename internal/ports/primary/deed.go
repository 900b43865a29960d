// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// DeedService defines the primary port for deed case operations.
// This interface documents the contract the collaborator layers (CLI, any
// future chat frontend) program against. The implementation lives in the
// application layer.
type DeedService interface {
	// CreateDeed creates a new case: allocates its code, seeds the
	// checklist for its type, and provisions the archive folder.
	CreateDeed(ctx context.Context, req CreateDeedRequest) (*CreateDeedResponse, error)

	// GetDeed retrieves a case by code.
	GetDeed(ctx context.Context, code string) (*Deed, error)

	// ListDeeds lists cases with optional filters, in creation order.
	ListDeeds(ctx context.Context, filters DeedFilters) ([]*Deed, error)

	// ChangeStatus updates the status label of a case.
	ChangeStatus(ctx context.Context, code, status string) error

	// AssignResponsible assigns a handler to a case (last writer wins).
	AssignResponsible(ctx context.Context, code, identity string) error

	// GetChecklist returns the checklist for a case, in seed order.
	GetChecklist(ctx context.Context, code string) ([]*ChecklistItem, error)

	// PendingDocuments returns the undelivered checklist items for a case.
	PendingDocuments(ctx context.Context, code string) ([]*ChecklistItem, error)

	// MarkDocumentDelivered flips a required document to delivered.
	MarkDocumentDelivered(ctx context.Context, code, document string) error

	// BindAttachment stores a file in the case archive and returns the
	// stored path.
	BindAttachment(ctx context.Context, req BindAttachmentRequest) (*BindAttachmentResponse, error)
}

// CreateDeedRequest contains parameters for creating a case.
type CreateDeedRequest struct {
	ClientName string
	DeedType   string
}

// CreateDeedResponse contains the result of creating a case.
type CreateDeedResponse struct {
	Code      string
	Deed      *Deed
	Checklist []*ChecklistItem
}

// BindAttachmentRequest contains parameters for binding a file to a case.
type BindAttachmentRequest struct {
	Code     string
	Filename string
	Content  []byte
}

// BindAttachmentResponse contains the result of binding a file.
type BindAttachmentResponse struct {
	StoredPath string
}

// Deed represents a case entity at the port boundary.
type Deed struct {
	Code        string
	ClientName  string
	DeedType    string
	Status      string
	Responsible string
	CreatedAt   string
	UpdatedAt   string
}

// ChecklistItem represents a required document at the port boundary.
type ChecklistItem struct {
	Document  string
	Delivered bool
}

// DeedFilters contains filter options for listing cases.
type DeedFilters struct {
	Status string
	Limit  int
}
