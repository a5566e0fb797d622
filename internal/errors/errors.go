// Package errors provides a lightweight structured error type (CodelabError)
// for category-based classification of copy step failures in the CLI and hooks.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of an error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Copy and hook processing errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryHook       ErrorCategory = "hook"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// CodelabError is a structured error with category, severity and context
type CodelabError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for CodelabError
type ContextFields map[string]any

// Error implements the error interface
func (e *CodelabError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *CodelabError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *CodelabError) WithContext(key string, value any) *CodelabError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new CodelabError
func New(category ErrorCategory, severity ErrorSeverity, message string) *CodelabError {
	return &CodelabError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new CodelabError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *CodelabError {
	return &CodelabError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As returns the outermost CodelabError in err's chain.
func As(err error) (*CodelabError, bool) {
	var ce *CodelabError
	if stdErrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ce, ok := As(err); ok {
		return ce.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a CodelabError
func GetCategory(err error) ErrorCategory {
	if ce, ok := As(err); ok {
		return ce.Category
	}
	return CategoryInternal
}
