package deed

import (
	"fmt"
	"strings"
)

// ValidateCreate checks the arguments for creating a case.
// Name and type must be non-blank; the type itself is an open key - an
// unrecognized type yields an empty checklist, not an error.
func ValidateCreate(clientName, deedType string) error {
	if strings.TrimSpace(clientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(deedType) == "" {
		return fmt.Errorf("%w: deed type is required", ErrInvalidInput)
	}
	return nil
}

// ValidateStatus checks a status label for a status change.
func ValidateStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	return nil
}

// ValidateResponsible checks the identity for an assignment.
func ValidateResponsible(identity string) error {
	if strings.TrimSpace(identity) == "" {
		return fmt.Errorf("%w: responsible identity is required", ErrInvalidInput)
	}
	return nil
}

// ValidateAttachment checks the arguments for binding a file to a case.
func ValidateAttachment(filename string, content []byte) error {
	if strings.TrimSpace(filename) == "" {
		return fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	if strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("%w: filename must not contain path separators", ErrInvalidInput)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: attachment content is empty", ErrInvalidInput)
	}
	return nil
}
