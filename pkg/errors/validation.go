package errors

import (
	"strings"
	"unicode"
)

// ValidateFigureName validates a figure name for safety. Figure names become
// file names in the file-backed gallery store, so anything that could escape
// the store directory is rejected.
func ValidateFigureName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "figure name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidName, "figure name too long (max 128 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "figure name contains control characters")
		}
	}
	for _, pattern := range []string{"..", "/", "\\", "\x00"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "figure name contains invalid sequence %q", pattern)
		}
	}
	return nil
}
