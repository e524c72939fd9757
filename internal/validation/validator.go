package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"task-tracker/internal/config"
)

const defaultDescriptionMaxLength = 255

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length, in runes, is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidDescriptionLength checks if a description is within the configured limit
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, 1, v.getDescriptionMaxLength())
}

// HasNoControlCharacters rejects newlines, tabs and other control characters,
// which cannot be typed on a single command line.
func (v *Validator) HasNoControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// getDescriptionMaxLength returns configured maximum description length or default
func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil && v.config.Validation.DescriptionMaxLength > 0 {
		return v.config.Validation.DescriptionMaxLength
	}
	return defaultDescriptionMaxLength
}
