package app

import (
	"context"
	"fmt"

	coredeed "github.com/example/escriba/internal/core/deed"
	"github.com/example/escriba/internal/ports/secondary"
)

// mockDeedRepository implements secondary.DeedRepository for testing.
type mockDeedRepository struct {
	deeds     map[string]*secondary.DeedRecord
	order     []string
	nextSeq   int
	createErr error
	getErr    error
	listErr   error
	updateErr error
	assignErr error

	lastDocuments []string
}

func newMockDeedRepository() *mockDeedRepository {
	return &mockDeedRepository{
		deeds: make(map[string]*secondary.DeedRecord),
	}
}

func (m *mockDeedRepository) Create(ctx context.Context, record *secondary.DeedRecord, documents []string) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextSeq++
	record.Code = coredeed.FormatCode(2026, m.nextSeq)
	record.CreatedAt = "2026-01-15T10:00:00Z"
	record.UpdatedAt = "2026-01-15T10:00:00Z"
	m.deeds[record.Code] = record
	m.order = append(m.order, record.Code)
	m.lastDocuments = documents
	return nil
}

func (m *mockDeedRepository) GetByCode(ctx context.Context, code string) (*secondary.DeedRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if record, ok := m.deeds[code]; ok {
		return record, nil
	}
	return nil, fmt.Errorf("deed %s: %w", code, coredeed.ErrNotFound)
}

func (m *mockDeedRepository) List(ctx context.Context, filters secondary.DeedFilters) ([]*secondary.DeedRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.DeedRecord
	for _, code := range m.order {
		record := m.deeds[code]
		if filters.Status != "" && record.Status != filters.Status {
			continue
		}
		result = append(result, record)
		if filters.Limit > 0 && len(result) == filters.Limit {
			break
		}
	}
	return result, nil
}

func (m *mockDeedRepository) UpdateStatus(ctx context.Context, code, status string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	record, ok := m.deeds[code]
	if !ok {
		return fmt.Errorf("deed %s: %w", code, coredeed.ErrNotFound)
	}
	record.Status = status
	return nil
}

func (m *mockDeedRepository) AssignResponsible(ctx context.Context, code, identity string) error {
	if m.assignErr != nil {
		return m.assignErr
	}
	record, ok := m.deeds[code]
	if !ok {
		return fmt.Errorf("deed %s: %w", code, coredeed.ErrNotFound)
	}
	record.Responsible = identity
	return nil
}

var _ secondary.DeedRepository = (*mockDeedRepository)(nil)

// mockChecklistRepository implements secondary.ChecklistRepository for testing.
type mockChecklistRepository struct {
	items   map[string][]*secondary.ChecklistItemRecord
	listErr error
	markErr error
}

func newMockChecklistRepository() *mockChecklistRepository {
	return &mockChecklistRepository{
		items: make(map[string][]*secondary.ChecklistItemRecord),
	}
}

func (m *mockChecklistRepository) seed(code string, documents []string) {
	for _, doc := range documents {
		m.items[code] = append(m.items[code], &secondary.ChecklistItemRecord{
			DeedCode: code,
			Document: doc,
		})
	}
}

func (m *mockChecklistRepository) ListByCase(ctx context.Context, code string) ([]*secondary.ChecklistItemRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items[code], nil
}

func (m *mockChecklistRepository) ListPending(ctx context.Context, code string) ([]*secondary.ChecklistItemRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var pending []*secondary.ChecklistItemRecord
	for _, item := range m.items[code] {
		if !item.Delivered {
			pending = append(pending, item)
		}
	}
	return pending, nil
}

func (m *mockChecklistRepository) MarkDelivered(ctx context.Context, code, document string) error {
	if m.markErr != nil {
		return m.markErr
	}
	for _, item := range m.items[code] {
		if item.Document == document {
			item.Delivered = true
			return nil
		}
	}
	return fmt.Errorf("document %q for deed %s: %w", document, code, coredeed.ErrNotFound)
}

var _ secondary.ChecklistRepository = (*mockChecklistRepository)(nil)

// mockArchiveAdapter implements secondary.ArchiveAdapter for testing.
type mockArchiveAdapter struct {
	folders      map[string]bool
	stored       map[string][]byte
	provisionErr error
	storeErr     error
}

func newMockArchiveAdapter() *mockArchiveAdapter {
	return &mockArchiveAdapter{
		folders: make(map[string]bool),
		stored:  make(map[string][]byte),
	}
}

func (m *mockArchiveAdapter) ProvisionFolder(ctx context.Context, code string) error {
	if m.provisionErr != nil {
		return m.provisionErr
	}
	m.folders[code] = true
	return nil
}

func (m *mockArchiveAdapter) FolderExists(ctx context.Context, code string) (bool, error) {
	return m.folders[code], nil
}

func (m *mockArchiveAdapter) Store(ctx context.Context, code, filename string, content []byte) (string, error) {
	if m.storeErr != nil {
		return "", m.storeErr
	}
	m.folders[code] = true
	path := "/archive/" + code + "/" + filename
	m.stored[path] = content
	return path, nil
}

func (m *mockArchiveAdapter) BasePath() string {
	return "/archive"
}

var _ secondary.ArchiveAdapter = (*mockArchiveAdapter)(nil)
