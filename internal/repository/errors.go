package repository

// NotFoundError is an error type for when a resource is not found.
type NotFoundError struct {
	message string
}

// NewNotFoundError creates a new NotFoundError. Exposed so test fakes can
// return the same error type the real repository does.
func NewNotFoundError(message string) NotFoundError {
	return NotFoundError{message: message}
}

// Error returns the error message.
func (e NotFoundError) Error() string {
	return e.message
}
