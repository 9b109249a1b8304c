// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrContentTooLong is returned when user text exceeds its length limit.
	ErrContentTooLong = errors.New("content too long")

	// ErrDuplicatePhrase is returned when a custom phrase already exists.
	ErrDuplicatePhrase = errors.New("phrase already exists")

	// ErrNotFound is returned when a referenced item does not exist.
	ErrNotFound = errors.New("not found")
)
