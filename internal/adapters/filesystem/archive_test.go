package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestProvisionFolder(t *testing.T) {
	base := t.TempDir()
	adapter, err := NewArchiveAdapter(base)
	if err != nil {
		t.Fatalf("NewArchiveAdapter failed: %v", err)
	}
	ctx := context.Background()

	if err := adapter.ProvisionFolder(ctx, "ESC2026-0001"); err != nil {
		t.Fatalf("ProvisionFolder failed: %v", err)
	}

	exists, err := adapter.FolderExists(ctx, "ESC2026-0001")
	if err != nil {
		t.Fatalf("FolderExists failed: %v", err)
	}
	if !exists {
		t.Error("expected folder to exist after provisioning")
	}
}

func TestProvisionFolder_Idempotent(t *testing.T) {
	adapter, _ := NewArchiveAdapter(t.TempDir())
	ctx := context.Background()

	if err := adapter.ProvisionFolder(ctx, "ESC2026-0001"); err != nil {
		t.Fatalf("first ProvisionFolder failed: %v", err)
	}
	if err := adapter.ProvisionFolder(ctx, "ESC2026-0001"); err != nil {
		t.Errorf("re-provisioning an existing folder must succeed, got %v", err)
	}
}

func TestFolderExists_Missing(t *testing.T) {
	adapter, _ := NewArchiveAdapter(t.TempDir())

	exists, err := adapter.FolderExists(context.Background(), "ESC2026-9999")
	if err != nil {
		t.Fatalf("FolderExists failed: %v", err)
	}
	if exists {
		t.Error("expected missing folder to report false")
	}
}

func TestStore(t *testing.T) {
	base := t.TempDir()
	adapter, _ := NewArchiveAdapter(base)
	ctx := context.Background()

	path, err := adapter.Store(ctx, "ESC2026-0001", "doc1.pdf", []byte("content"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	want := filepath.Join(base, "ESC2026-0001", "doc1.pdf")
	if path != want {
		t.Errorf("expected path %s, got %s", want, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read stored file: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("expected stored content, got %q", data)
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	adapter, _ := NewArchiveAdapter(t.TempDir())
	ctx := context.Background()

	if _, err := adapter.Store(ctx, "ESC2026-0001", "doc1.pdf", []byte("first")); err != nil {
		t.Fatalf("first Store failed: %v", err)
	}
	path, err := adapter.Store(ctx, "ESC2026-0001", "doc1.pdf", []byte("second"))
	if err != nil {
		t.Fatalf("second Store failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("expected last write to win, got %q", data)
	}
}

func TestStore_ProvisionsOnDemand(t *testing.T) {
	adapter, _ := NewArchiveAdapter(t.TempDir())
	ctx := context.Background()

	// No explicit ProvisionFolder first
	if _, err := adapter.Store(ctx, "ESC2026-0002", "doc1.pdf", []byte("content")); err != nil {
		t.Fatalf("Store failed without prior provisioning: %v", err)
	}
}
