// Package errors provides error types for the MPNS client.
package errors

import (
	"fmt"
	"time"
)

// Error represents an MPNS client error with structured information
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	URI     string    `json:"uri,omitempty"`

	Timestamp time.Time `json:"timestamp"`

	// Cause is the original error, not serialized
	Cause error `json:"-"`

	// Retryable records whether the failed operation may be retried
	Retryable bool `json:"retryable"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.URI != "" {
		return fmt.Sprintf("%s: %s (uri: %s)", e.Code, e.Message, e.URI)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error by code
func (e *Error) Is(target error) bool {
	if targetErr, ok := target.(*Error); ok {
		return e.Code == targetErr.Code
	}
	return false
}

// WithCause adds a cause error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithURI sets the subscription URI the error relates to
func (e *Error) WithURI(uri string) *Error {
	e.URI = uri
	return e
}

// IsRetryable returns whether the error is retryable
func (e *Error) IsRetryable() bool {
	return e.Retryable || IsRetryable(e.Code)
}

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Retryable: IsRetryable(code),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	return New(code, message).WithCause(err)
}

// Wrapf wraps an existing error with an Error and a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// Error classification functions

// IsNetworkError checks if err is a transport-level failure
func IsNetworkError(err error) bool {
	if mpnsErr, ok := err.(*Error); ok {
		return IsNetwork(mpnsErr.Code)
	}
	return false
}

// IsRetryableError checks if err is retryable
func IsRetryableError(err error) bool {
	if mpnsErr, ok := err.(*Error); ok {
		return mpnsErr.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if mpnsErr, ok := err.(*Error); ok {
		return mpnsErr.Code
	}
	return ErrInternal
}
