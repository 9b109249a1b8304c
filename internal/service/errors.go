package service

import (
	"errors"
	"fmt"
)

// Common service errors. The API layer maps them to status codes.
var (
	// ErrStorageUnavailable indicates that a record could not be read reliably,
	// so a mutation was refused. API layer should map this to HTTP 503.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// ServiceError wraps unexpected errors from a service operation with context.
// Callers can use errors.As to reach it and errors.Is to test the cause.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "add_phrase", "record_interaction")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
