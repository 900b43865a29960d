package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/escriba/internal/adapters/sqlite"
	coredeed "github.com/example/escriba/internal/core/deed"
)

func TestChecklistRepository_ListByCase_SeedOrder(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewChecklistRepository(database)
	ctx := context.Background()

	created := seedDeed(t, database, "Ana Silva", donationDocs)

	items, err := repo.ListByCase(ctx, created.Code)
	if err != nil {
		t.Fatalf("ListByCase failed: %v", err)
	}

	if len(items) != len(donationDocs) {
		t.Fatalf("expected %d items, got %d", len(donationDocs), len(items))
	}
	for i, item := range items {
		if item.Document != donationDocs[i] {
			t.Errorf("position %d: expected %q, got %q", i, donationDocs[i], item.Document)
		}
		if item.Delivered {
			t.Errorf("expected %q to start undelivered", item.Document)
		}
		if item.DeedCode != created.Code {
			t.Errorf("expected items scoped to %s, got %s", created.Code, item.DeedCode)
		}
	}
}

func TestChecklistRepository_ListByCase_EmptyTemplate(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewChecklistRepository(database)

	created := seedDeed(t, database, "Ana Silva", nil)

	items, err := repo.ListByCase(context.Background(), created.Code)
	if err != nil {
		t.Fatalf("ListByCase failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items for an unrecognized type, got %d", len(items))
	}
}

func TestChecklistRepository_MarkDelivered(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewChecklistRepository(database)
	ctx := context.Background()

	created := seedDeed(t, database, "Ana Silva", donationDocs)

	if err := repo.MarkDelivered(ctx, created.Code, "Certidão do imóvel"); err != nil {
		t.Fatalf("MarkDelivered failed: %v", err)
	}

	pending, err := repo.ListPending(ctx, created.Code)
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	for _, item := range pending {
		if item.Document == "Certidão do imóvel" {
			t.Error("delivered document must not appear in pending")
		}
	}
	if len(pending) != 3 {
		t.Errorf("expected 3 pending documents, got %d", len(pending))
	}
}

func TestChecklistRepository_MarkDelivered_Idempotent(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewChecklistRepository(database)
	ctx := context.Background()

	created := seedDeed(t, database, "Ana Silva", donationDocs)

	if err := repo.MarkDelivered(ctx, created.Code, "Certidão do imóvel"); err != nil {
		t.Fatalf("first MarkDelivered failed: %v", err)
	}
	if err := repo.MarkDelivered(ctx, created.Code, "Certidão do imóvel"); err != nil {
		t.Errorf("second MarkDelivered must succeed, got %v", err)
	}

	items, err := repo.ListByCase(ctx, created.Code)
	if err != nil {
		t.Fatalf("ListByCase failed: %v", err)
	}
	delivered := 0
	for _, item := range items {
		if item.Delivered {
			delivered++
		}
	}
	if delivered != 1 {
		t.Errorf("expected exactly one delivered document, got %d", delivered)
	}
}

func TestChecklistRepository_MarkDelivered_UnknownDocument(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewChecklistRepository(database)

	created := seedDeed(t, database, "Ana Silva", donationDocs)

	err := repo.MarkDelivered(context.Background(), created.Code, "Documento inexistente")
	if !errors.Is(err, coredeed.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestChecklistRepository_MarkDelivered_UnknownCase(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewChecklistRepository(database)

	err := repo.MarkDelivered(context.Background(), "ESC2026-9999", "RG/CPF das partes")
	if !errors.Is(err, coredeed.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
