// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/escriba/internal/ports/secondary"
)

// ArchiveAdapter implements secondary.ArchiveAdapter on a local directory
// tree: one folder per case code under a base path.
type ArchiveAdapter struct {
	basePath string
}

// NewArchiveAdapter creates a new filesystem archive adapter.
// If basePath is empty, defaults to ~/.escriba/archive.
func NewArchiveAdapter(basePath string) (*ArchiveAdapter, error) {
	if basePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		basePath = filepath.Join(home, ".escriba", "archive")
	}

	return &ArchiveAdapter{basePath: basePath}, nil
}

// ProvisionFolder creates the folder for a case code.
// MkdirAll makes repeat calls harmless.
func (a *ArchiveAdapter) ProvisionFolder(ctx context.Context, code string) error {
	if err := os.MkdirAll(a.folderPath(code), 0755); err != nil {
		return fmt.Errorf("failed to provision case folder: %w", err)
	}
	return nil
}

// FolderExists checks whether the folder for a code exists.
func (a *ArchiveAdapter) FolderExists(ctx context.Context, code string) (bool, error) {
	info, err := os.Stat(a.folderPath(code))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check case folder: %w", err)
	}
	return info.IsDir(), nil
}

// Store writes an attachment under the case folder and returns its path.
// Last write wins on filename collision.
func (a *ArchiveAdapter) Store(ctx context.Context, code, filename string, content []byte) (string, error) {
	folder := a.folderPath(code)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", fmt.Errorf("failed to provision case folder: %w", err)
	}

	path := filepath.Join(folder, filename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to store attachment: %w", err)
	}

	return path, nil
}

// BasePath returns the archive root directory.
func (a *ArchiveAdapter) BasePath() string {
	return a.basePath
}

func (a *ArchiveAdapter) folderPath(code string) string {
	return filepath.Join(a.basePath, code)
}

// Ensure ArchiveAdapter implements the interface
var _ secondary.ArchiveAdapter = (*ArchiveAdapter)(nil)
