// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// ArchiveAdapter defines the secondary port for the per-case file archive.
type ArchiveAdapter interface {
	// ProvisionFolder creates the storage namespace for a case code.
	// Safe to call repeatedly; an existing namespace is not an error.
	ProvisionFolder(ctx context.Context, code string) error

	// FolderExists checks whether the namespace for a code exists.
	FolderExists(ctx context.Context, code string) (bool, error)

	// Store writes an attachment under the case namespace and returns the
	// stored path. Last write wins on filename collision.
	Store(ctx context.Context, code, filename string, content []byte) (string, error)

	// BasePath returns the archive root directory.
	BasePath() string
}
