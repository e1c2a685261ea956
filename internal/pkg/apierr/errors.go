// Package apierr defines the error taxonomy for backend communication.
// The retry driver consults Kind to decide retryability: only network
// failures are retried; authentication, protocol and validation failures
// surface immediately.
package apierr

import (
	"errors"
	"fmt"
)

// Kind classifies an API failure
type Kind int

const (
	// KindNetwork is a transport-level failure: timeout, refused
	// connection, DNS. Retryable.
	KindNetwork Kind = iota
	// KindAuthentication is an HTTP 401. Not retried; the caller must
	// prompt for re-login.
	KindAuthentication
	// KindProtocol is any other non-2xx status or an unparseable body.
	// Not retried.
	KindProtocol
	// KindValidation is malformed input rejected before any network call.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuthentication:
		return "authentication"
	case KindProtocol:
		return "protocol"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a classified API failure
type Error struct {
	Kind       Kind
	StatusCode int // 0 when no HTTP response was received
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Network wraps a transport-level failure
func Network(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Cause: cause}
}

// Authentication wraps an HTTP 401 with the server-provided message
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, StatusCode: 401, Message: message}
}

// Protocol wraps a non-retryable HTTP failure
func Protocol(statusCode int, message string) *Error {
	return &Error{Kind: KindProtocol, StatusCode: statusCode, Message: message}
}

// Validation wraps input rejected before any network attempt
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the classification of err, or KindProtocol for errors
// outside the taxonomy.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindProtocol
}

// IsRetryable reports whether err should be retried by the transport
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == KindNetwork
}

// MessageOf returns a human-readable message for err, suitable for the
// normalized result shape. Never empty for a non-nil error.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
