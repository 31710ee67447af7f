package assistant

import (
	"errors"
	"fmt"
)

// ErrNotConfigured means the backend URL or credential is missing. The chat
// layer maps it to a calm "still initializing" reply; it is never fatal.
var ErrNotConfigured = errors.New("assistant backend not configured")

// ErrorCode mirrors the backend's HTTP status codes.
type ErrorCode int

const (
	// ErrorCodeBadRequest indicates invalid or missing request fields
	ErrorCodeBadRequest ErrorCode = 400

	// ErrorCodeUnauthorized indicates a rejected credential
	ErrorCodeUnauthorized ErrorCode = 401

	// ErrorCodeTimeout indicates the backend timed the request out
	ErrorCodeTimeout ErrorCode = 408

	// ErrorCodeRateLimited is the distinguished request-limit signal
	ErrorCodeRateLimited ErrorCode = 429

	// ErrorCodeUpstream indicates the backend's own AI vendor call failed
	ErrorCodeUpstream ErrorCode = 502

	// ErrorCodeUnavailable indicates the backend is down
	ErrorCodeUnavailable ErrorCode = 503
)

// BackendError is a non-2xx response from the chat backend.
type BackendError struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.Code, e.Message)
}

// IsRateLimited reports whether this is the distinguished rate-limit signal.
func (e *BackendError) IsRateLimited() bool {
	return e.Code == ErrorCodeRateLimited
}

// FallbackMessage maps a failed backend call to the user-facing reply.
// Raw errors are logged for diagnostics but never shown to the customer.
func FallbackMessage(err error) string {
	if errors.Is(err, ErrNotConfigured) {
		return MessageNotConfigured
	}
	var be *BackendError
	if errors.As(err, &be) && be.IsRateLimited() {
		return MessageRateLimited
	}
	return MessageConnectionIssue
}
