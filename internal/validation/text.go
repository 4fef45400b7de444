package validation

import (
	"strings"
)

// RequiredText validates and normalizes a required free-text field.
// Returns the trimmed value.
func RequiredText(field, value string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return "", newError(field + " is required")
	}

	if maxLen > 0 && len(trimmed) > maxLen {
		return "", newError(field + " is too long")
	}

	return trimmed, nil
}

// ValidateName validates a user display name.
func ValidateName(name string) (string, error) {
	return RequiredText("name", name, 100)
}
