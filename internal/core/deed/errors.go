package deed

import "errors"

// Error taxonomy for core operations. Callers match with errors.Is; anything
// else propagating from the storage layer is treated as a storage failure.
var (
	// ErrNotFound indicates the referenced case code or checklist row
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates structurally invalid arguments, rejected
	// before touching storage.
	ErrInvalidInput = errors.New("invalid input")
)
