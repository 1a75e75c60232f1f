package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors for quick checks
var (
	// ErrServiceUnavailable is returned when a required service is unavailable.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrCacheUnavailable is returned when no handle to a named cache could be obtained.
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// Error is the base interface for all custom errors in the system.
// It extends the standard error interface with additional context.
type Error interface {
	error
	// Code returns the error code
	Code() string
	// Message returns the human-readable error message
	Message() string
	// Unwrap returns the underlying cause
	Unwrap() error
}

// BaseError provides a foundation for all typed errors.
type BaseError struct {
	code    string
	message string
	cause   error
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Code returns the error code.
func (e *BaseError) Code() string {
	return e.code
}

// Message returns the error message.
func (e *BaseError) Message() string {
	return e.message
}

// Unwrap returns the underlying cause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// CacheUnavailableError is returned when a write is attempted against a
// named cache for which no handle could be obtained.
type CacheUnavailableError struct {
	*BaseError
	Cache string
}

// NewCacheUnavailableError creates a new cache unavailable error. cause is
// the acquisition error, or nil when the cache does not exist.
func NewCacheUnavailableError(cache string, cause error) *CacheUnavailableError {
	return &CacheUnavailableError{
		BaseError: &BaseError{
			code:    CodeCacheUnavailable,
			message: fmt.Sprintf("cache '%s' is not available", cache),
			cause:   cause,
		},
		Cache: cache,
	}
}

// Is reports whether target is ErrCacheUnavailable or ErrServiceUnavailable.
func (e *CacheUnavailableError) Is(target error) bool {
	return target == ErrCacheUnavailable || target == ErrServiceUnavailable
}

// InternalError represents an internal server error.
type InternalError struct {
	*BaseError
}

// ServiceError represents a downstream service error.
type ServiceError struct {
	*BaseError
	Service    string
	StatusCode int
}

// NewServiceError creates a new service error.
func NewServiceError(service, message string, statusCode int, cause error) *ServiceError {
	if message == "" {
		message = fmt.Sprintf("%s service error", service)
	}
	return &ServiceError{
		BaseError: &BaseError{
			code:    CodeServiceUnavailable,
			message: message,
			cause:   cause,
		},
		Service:    service,
		StatusCode: statusCode,
	}
}

// Wrap wraps an error with additional context.
// If the error is already one of our custom types, it preserves the code
// and adds the cause chain. Otherwise, it creates an InternalError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(Error); ok {
		return &BaseError{
			code:    e.Code(),
			message: message,
			cause:   err,
		}
	}

	return &InternalError{
		BaseError: &BaseError{
			code:    CodeInternal,
			message: message,
			cause:   err,
		},
	}
}
