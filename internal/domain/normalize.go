package domain

import (
	"fmt"
	"strings"
)

// MaxWordLength bounds word input; longer values are rejected, not truncated.
const MaxWordLength = 64

// NormalizeWord prepares word text for lookup and storage:
// trimmed and lowercased. Inner whitespace is preserved so that
// multi-word phrases stay intact.
func NormalizeWord(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ValidateWord checks an already-normalized word against the input bounds.
func ValidateWord(text string) error {
	if text == "" {
		return NewValidationError("word", "required")
	}
	if len(text) > MaxWordLength {
		return NewValidationError("word", fmt.Sprintf("must be at most %d characters", MaxWordLength))
	}
	return nil
}

// NormalizeLanguage lowercases a language code.
func NormalizeLanguage(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// ValidateLanguage checks that a language code is exactly two ASCII letters.
func ValidateLanguage(field, code string) error {
	if len(code) != 2 {
		return NewValidationError(field, "must be exactly 2 characters")
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return NewValidationError(field, "must consist of letters only")
		}
	}
	return nil
}
