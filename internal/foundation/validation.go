package foundation

import (
	stderrors "errors"
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// contextFields is the ClassifiedError context key holding the []FieldError of a failed validation.
const contextFields = "fields"

// FieldError represents a single validation failure at a configuration entry path
// such as nav[2].items[0].link.
type FieldError struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
	Cause   error  `json:"-"`
}

// Error implements the error interface.
func (fe FieldError) Error() string {
	if fe.Path != "" {
		return fmt.Sprintf("%s: %s", fe.Path, fe.Message)
	}
	return fe.Message
}

// Unwrap exposes the sentinel behind the failure (e.g. a cyclic-entry marker).
func (fe FieldError) Unwrap() error { return fe.Cause }

// NewValidationError creates a field error.
func NewValidationError(path, code, message string) FieldError {
	return FieldError{Path: path, Code: code, Message: message}
}

// ValidationResult contains the result of a validation operation.
type ValidationResult struct {
	Valid  bool
	Errors []FieldError
}

// Valid creates a successful validation result.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid creates a failed validation result with errors.
func Invalid(errs ...FieldError) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}

// Add records a failure.
func (vr *ValidationResult) Add(fe FieldError) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, fe)
}

// Combine merges multiple validation results.
func (vr ValidationResult) Combine(other ValidationResult) ValidationResult {
	if vr.Valid && other.Valid {
		return Valid()
	}
	all := make([]FieldError, 0, len(vr.Errors)+len(other.Errors))
	all = append(all, vr.Errors...)
	all = append(all, other.Errors...)
	return Invalid(all...)
}

// ToError converts a failed result into a validation ClassifiedError. The first offending
// path is recorded as the error path; every field error stays reachable through
// errors.Is / errors.As and FieldErrorsOf.
func (vr ValidationResult) ToError(message string) error {
	if vr.Valid || len(vr.Errors) == 0 {
		return nil
	}
	causes := make([]error, 0, len(vr.Errors))
	for _, fe := range vr.Errors {
		causes = append(causes, fe)
	}
	return errors.ValidationError(message).
		WithPath(vr.Errors[0].Path).
		WithContext(contextFields, append([]FieldError(nil), vr.Errors...)).
		WithCause(stderrors.Join(causes...)).
		Build()
}

// FieldErrorsOf returns the field errors carried by a validation error produced by ToError.
func FieldErrorsOf(err error) []FieldError {
	classified, ok := errors.AsClassified(err)
	if !ok {
		return nil
	}
	v, _ := classified.Context().Get(contextFields)
	fields, _ := v.([]FieldError)
	return fields
}

// Validator represents a validation function.
type Validator[T any] func(path string, value T) ValidationResult

// OneOf validates that a value is in a set of allowed values.
func OneOf[T comparable](allowed ...T) Validator[T] {
	allowedSet := make(map[T]bool, len(allowed))
	for _, item := range allowed {
		allowedSet[item] = true
	}
	return func(path string, value T) ValidationResult {
		if !allowedSet[value] {
			fe := NewValidationError(path, "one_of", fmt.Sprintf("must be one of %v", allowed))
			fe.Value = value
			return Invalid(fe)
		}
		return Valid()
	}
}

// InRange validates an integer against inclusive bounds.
func InRange(lo, hi int) Validator[int] {
	return func(path string, value int) ValidationResult {
		if value < lo || value > hi {
			fe := NewValidationError(path, "range", fmt.Sprintf("must be between %d and %d", lo, hi))
			fe.Value = value
			return Invalid(fe)
		}
		return Valid()
	}
}
