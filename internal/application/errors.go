package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrNotADirectory = errors.New("not a directory")
	ErrSameFile      = errors.New("output would overwrite an existing page")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PageError represents a failure while processing a single page
type PageError struct {
	Page string
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %s: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// WikiError represents a failure while processing a wiki in bulk mode
type WikiError struct {
	Wiki string
	Err  error
}

func (e *WikiError) Error() string {
	return fmt.Sprintf("wiki %s: %v", e.Wiki, e.Err)
}

func (e *WikiError) Unwrap() error {
	return e.Err
}
