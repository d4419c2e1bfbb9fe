package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultClassNames is the vocabulary of the reference detection corpus
var DefaultClassNames = []string{"pistol", "smartphone", "knife", "wallet", "bill", "card"}

// ErrInvalidVocabulary is matched by class list validation failures
var ErrInvalidVocabulary = errors.New("invalid class vocabulary")

// ValidateClassNames checks that a vocabulary is non-empty with unique, non-blank names
func ValidateClassNames(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: no classes", ErrInvalidVocabulary)
	}
	seen := make(map[string]int, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: class %d has an empty name", ErrInvalidVocabulary, i)
		}
		if j, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q used by classes %d and %d", ErrInvalidVocabulary, name, j, i)
		}
		seen[name] = i
	}
	return nil
}

// ParseClassList splits a comma-separated class list, trimming whitespace
func ParseClassList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
