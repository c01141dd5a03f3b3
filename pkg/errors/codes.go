// Package errors provides error codes for the MPNS client.
package errors

// ErrorCode represents an MPNS client error code
type ErrorCode string

// Notification Error Codes
const (
	// ErrInvalidNotification indicates an invalid notification
	ErrInvalidNotification ErrorCode = "INVALID_NOTIFICATION"

	// ErrEmptyNotification indicates a notification with no body
	ErrEmptyNotification ErrorCode = "EMPTY_NOTIFICATION"

	// ErrInvalidURI indicates an invalid subscription URI
	ErrInvalidURI ErrorCode = "INVALID_URI"
)

// Network Error Codes
const (
	// ErrNetworkTimeout indicates a network timeout
	ErrNetworkTimeout ErrorCode = "NETWORK_TIMEOUT"

	// ErrConnectionFailed indicates a connection failure
	ErrConnectionFailed ErrorCode = "CONNECTION_FAILED"

	// ErrProtocolError indicates an HTTP protocol violation
	ErrProtocolError ErrorCode = "PROTOCOL_ERROR"
)

// Queue Error Codes
const (
	// ErrQueueFull indicates the send queue is at capacity
	ErrQueueFull ErrorCode = "QUEUE_FULL"

	// ErrQueueClosed indicates the send queue has been closed
	ErrQueueClosed ErrorCode = "QUEUE_CLOSED"
)

// System Error Codes
const (
	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"

	// ErrServiceClosed indicates the service has been stopped
	ErrServiceClosed ErrorCode = "SERVICE_CLOSED"

	// ErrInternal indicates an internal error
	ErrInternal ErrorCode = "INTERNAL_ERROR"
)

// retryableCodes lists the codes a caller may reasonably retry.
var retryableCodes = map[ErrorCode]bool{
	ErrNetworkTimeout:   true,
	ErrConnectionFailed: true,
	ErrQueueFull:        true,
}

// networkCodes lists the transport-level failure codes.
var networkCodes = map[ErrorCode]bool{
	ErrNetworkTimeout:   true,
	ErrConnectionFailed: true,
	ErrProtocolError:    true,
}

// IsRetryable returns whether the given code is retryable
func IsRetryable(code ErrorCode) bool {
	return retryableCodes[code]
}

// IsNetwork returns whether the given code is a transport-level failure
func IsNetwork(code ErrorCode) bool {
	return networkCodes[code]
}
