package service

import "fmt"

// ValidationError reports missing or malformed request input. Maps to a 400
// at the transport layer.
type ValidationError struct {
	message string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) ValidationError {
	return ValidationError{message: message}
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return e.message
}

// ClassificationError reports that the vision call failed or produced no
// usable label. Treated as a client-side problem (the image could not be
// classified), not a server fault.
type ClassificationError struct {
	message string
	err     error
}

// Error returns the error message.
func (e ClassificationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

// Unwrap returns the underlying cause, if any.
func (e ClassificationError) Unwrap() error {
	return e.err
}

// StorageError reports that the catalog read failed. The search cannot
// proceed without the candidate set, so this is a server fault.
type StorageError struct {
	err error
}

// Error returns the error message.
func (e StorageError) Error() string {
	return fmt.Sprintf("restaurant catalog unavailable: %v", e.err)
}

// Unwrap returns the underlying cause.
func (e StorageError) Unwrap() error {
	return e.err
}
