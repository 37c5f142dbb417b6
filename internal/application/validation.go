package application

import (
	"fmt"
	"strings"

	"vimwiki/internal/domain"
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

// formatFieldName converts flag-style field names to readable words
// for error messages (e.g., "outputExtension" -> "output extension")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"wikiPath":        "wiki folder",
		"rootPath":        "root folder",
		"outputType":      "output type",
		"outputExtension": "output extension",
		"extension":       "extension",
		"page":            "page",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateOutputType checks that value names a known output type
func ValidateOutputType(fieldName string, value domain.OutputType) error {
	if _, err := domain.ParseOutputType(string(value)); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected wiki or html, got: %q", value),
		}
	}
	return nil
}

// ValidateExtension checks that an extension is a single path-safe suffix
func ValidateExtension(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	ext := strings.TrimPrefix(value, ".")
	if ext == "" || strings.ContainsAny(ext, `/\`) || strings.TrimSpace(ext) != ext {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid %s: %q", formatFieldName(fieldName), value),
		}
	}
	return nil
}

// ValidateLinkName checks that a page name can appear inside a link token
func ValidateLinkName(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if !domain.IsLinkName(value) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("page names are alphanumeric, got: %q", value),
		}
	}
	return nil
}
