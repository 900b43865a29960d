// Package app contains the application services implementing the primary ports.
package app

import (
	"context"
	"fmt"

	coredeed "github.com/example/escriba/internal/core/deed"
	"github.com/example/escriba/internal/ports/primary"
	"github.com/example/escriba/internal/ports/secondary"
)

// DeedServiceImpl implements the DeedService interface.
// It coordinates code allocation, case persistence, checklist seeding, and
// archive provisioning; each operation is one unit of work.
type DeedServiceImpl struct {
	deedRepo      secondary.DeedRepository
	checklistRepo secondary.ChecklistRepository
	archive       secondary.ArchiveAdapter
	templates     coredeed.Templates
}

// NewDeedService creates a new DeedService with injected dependencies.
func NewDeedService(
	deedRepo secondary.DeedRepository,
	checklistRepo secondary.ChecklistRepository,
	archive secondary.ArchiveAdapter,
	templates coredeed.Templates,
) *DeedServiceImpl {
	return &DeedServiceImpl{
		deedRepo:      deedRepo,
		checklistRepo: checklistRepo,
		archive:       archive,
		templates:     templates,
	}
}

// CreateDeed creates a new case.
func (s *DeedServiceImpl) CreateDeed(ctx context.Context, req primary.CreateDeedRequest) (*primary.CreateDeedResponse, error) {
	// 1. Validate at the boundary, before touching storage
	if err := coredeed.ValidateCreate(req.ClientName, req.DeedType); err != nil {
		return nil, err
	}

	// 2. Checklist documents come from the type template; unrecognized
	// types get an empty checklist, not an error
	documents := s.templates.For(req.DeedType)

	// 3. Persist case + checklist in one transaction; the repository
	// allocates the code from the per-year counter
	record := &secondary.DeedRecord{
		ClientName: req.ClientName,
		DeedType:   req.DeedType,
		Status:     coredeed.InitialStatus(),
	}
	if err := s.deedRepo.Create(ctx, record, documents); err != nil {
		return nil, fmt.Errorf("failed to create deed: %w", err)
	}

	// 4. Provision the archive folder. Provisioning is idempotent and
	// Store re-provisions on demand, so a failure here does not wedge
	// the committed case.
	if err := s.archive.ProvisionFolder(ctx, record.Code); err != nil {
		return nil, fmt.Errorf("deed %s created but folder provisioning failed: %w", record.Code, err)
	}

	checklist := make([]*primary.ChecklistItem, len(documents))
	for i, doc := range documents {
		checklist[i] = &primary.ChecklistItem{Document: doc, Delivered: false}
	}

	return &primary.CreateDeedResponse{
		Code:      record.Code,
		Deed:      recordToDeed(record),
		Checklist: checklist,
	}, nil
}

// GetDeed retrieves a case by code.
func (s *DeedServiceImpl) GetDeed(ctx context.Context, code string) (*primary.Deed, error) {
	record, err := s.deedRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return recordToDeed(record), nil
}

// ListDeeds lists cases with optional filters, in creation order.
func (s *DeedServiceImpl) ListDeeds(ctx context.Context, filters primary.DeedFilters) ([]*primary.Deed, error) {
	records, err := s.deedRepo.List(ctx, secondary.DeedFilters{
		Status: filters.Status,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list deeds: %w", err)
	}

	deeds := make([]*primary.Deed, len(records))
	for i, r := range records {
		deeds[i] = recordToDeed(r)
	}
	return deeds, nil
}

// ChangeStatus updates the status label of a case.
// The label is open vocabulary; only blank labels are rejected.
func (s *DeedServiceImpl) ChangeStatus(ctx context.Context, code, status string) error {
	if err := coredeed.ValidateStatus(status); err != nil {
		return err
	}
	return s.deedRepo.UpdateStatus(ctx, code, status)
}

// AssignResponsible assigns a handler to a case. Last writer wins; there is
// no prior-assignment conflict check.
func (s *DeedServiceImpl) AssignResponsible(ctx context.Context, code, identity string) error {
	if err := coredeed.ValidateResponsible(identity); err != nil {
		return err
	}
	return s.deedRepo.AssignResponsible(ctx, code, identity)
}

// GetChecklist returns the checklist for a case, in seed order.
func (s *DeedServiceImpl) GetChecklist(ctx context.Context, code string) ([]*primary.ChecklistItem, error) {
	if _, err := s.deedRepo.GetByCode(ctx, code); err != nil {
		return nil, err
	}

	records, err := s.checklistRepo.ListByCase(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	return recordsToChecklist(records), nil
}

// PendingDocuments returns the undelivered checklist items for a case.
func (s *DeedServiceImpl) PendingDocuments(ctx context.Context, code string) ([]*primary.ChecklistItem, error) {
	if _, err := s.deedRepo.GetByCode(ctx, code); err != nil {
		return nil, err
	}

	records, err := s.checklistRepo.ListPending(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending documents: %w", err)
	}
	return recordsToChecklist(records), nil
}

// MarkDocumentDelivered flips a required document to delivered.
// Idempotent: marking a delivered document again succeeds.
func (s *DeedServiceImpl) MarkDocumentDelivered(ctx context.Context, code, document string) error {
	return s.checklistRepo.MarkDelivered(ctx, code, document)
}

// BindAttachment stores a file in the case archive.
func (s *DeedServiceImpl) BindAttachment(ctx context.Context, req primary.BindAttachmentRequest) (*primary.BindAttachmentResponse, error) {
	// 1. Validate the file arguments
	if err := coredeed.ValidateAttachment(req.Filename, req.Content); err != nil {
		return nil, err
	}

	// 2. The code must reference a known case; the ledger, not the
	// filesystem, is authoritative for namespace existence
	if _, err := s.deedRepo.GetByCode(ctx, req.Code); err != nil {
		return nil, err
	}

	// 3. Store under the case folder (re-provisioned on demand)
	path, err := s.archive.Store(ctx, req.Code, req.Filename, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to bind attachment: %w", err)
	}

	return &primary.BindAttachmentResponse{StoredPath: path}, nil
}

// Helper conversions

func recordToDeed(r *secondary.DeedRecord) *primary.Deed {
	return &primary.Deed{
		Code:        r.Code,
		ClientName:  r.ClientName,
		DeedType:    r.DeedType,
		Status:      r.Status,
		Responsible: r.Responsible,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func recordsToChecklist(records []*secondary.ChecklistItemRecord) []*primary.ChecklistItem {
	items := make([]*primary.ChecklistItem, len(records))
	for i, r := range records {
		items[i] = &primary.ChecklistItem{
			Document:  r.Document,
			Delivered: r.Delivered,
		}
	}
	return items
}

// Ensure DeedServiceImpl implements the interface
var _ primary.DeedService = (*DeedServiceImpl)(nil)
