// Package deed contains the pure business logic for deed case tracking.
// This is the Functional Core - no I/O, only pure functions.
package deed

import (
	"fmt"
	"regexp"
)

// codePattern matches case codes like ESC2026-0001.
var codePattern = regexp.MustCompile(`^ESC(\d{4})-(\d{4})$`)

// FormatCode builds a case code from a year and a sequence number.
// This is a pure function that defines the code format as a business rule.
// The format is ESC<year>-NNNN where NNNN is a zero-padded 4-digit sequence.
func FormatCode(year, seq int) string {
	return fmt.Sprintf("ESC%d-%04d", year, seq)
}

// ParseCode extracts the year and sequence from a case code.
// Returns ok=false if the code does not match the expected format.
func ParseCode(code string) (year, seq int, ok bool) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return 0, 0, false
	}
	fmt.Sscanf(m[1], "%d", &year)
	fmt.Sscanf(m[2], "%d", &seq)
	return year, seq, true
}

// IsCode reports whether a token looks like a case code.
// Used by collaborator layers that accept a code argument from free text.
func IsCode(token string) bool {
	return codePattern.MatchString(token)
}
