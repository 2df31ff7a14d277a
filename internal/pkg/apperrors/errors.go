package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Request errors
	ErrBadRequest = errors.New("bad request")
)

// Lookup misses. Each wraps ErrResourceNotFound so callers can match either.
var (
	ErrUserNotFound       = fmt.Errorf("user not found: %w", ErrResourceNotFound)
	ErrCourseNotFound     = fmt.Errorf("course not found: %w", ErrResourceNotFound)
	ErrEnrollmentNotFound = fmt.Errorf("enrollment not found: %w", ErrResourceNotFound)
)

// Store level primary key collisions
var (
	ErrUserAlreadyExists   = fmt.Errorf("user with this netID already exists: %w", ErrResourceAlreadyExists)
	ErrCourseAlreadyExists = fmt.Errorf("course with this courseID already exists: %w", ErrResourceAlreadyExists)
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
