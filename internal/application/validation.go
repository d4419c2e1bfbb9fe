package application

import (
	"fmt"
	"strings"

	"yolocheck/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "baseDir" -> "base directory")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"baseDir":    "base directory",
		"classNames": "class names",
		"historyDB":  "history database",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateVocabulary checks a class list and reports problems as a ValidationError
func ValidateVocabulary(fieldName string, names []string) error {
	if err := domain.ValidateClassNames(names); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s: %v", formatFieldName(fieldName), err),
		}
	}
	return nil
}
