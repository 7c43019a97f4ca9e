package client

import (
	"errors"
	"fmt"
)

// ErrorType categorizes backend client failures
type ErrorType string

const (
	// ErrorTypeUnreachable means the health check could not reach a healthy backend
	ErrorTypeUnreachable ErrorType = "unreachable"
	// ErrorTypeRequestFailed covers transport failures and non-success responses
	ErrorTypeRequestFailed ErrorType = "request_failed"
)

// ErrEmptyQuery is returned before dispatch when the question text is blank
var ErrEmptyQuery = errors.New("query text is empty")

// Error represents a structured failure from the search backend
type Error struct {
	Type    ErrorType
	Op      string
	Status  int // HTTP status, 0 when no response was received
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s", e.Op, e.Type)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (%v)", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error for error unwrapping
func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns a user-friendly error message
func (e *Error) UserMessage() string {
	switch e.Type {
	case ErrorTypeUnreachable:
		return "Backend offline."
	default:
		return "Request to the search backend failed."
	}
}

// IsUnreachable reports whether err is a failed health check
func IsUnreachable(err error) bool {
	var clientErr *Error
	return errors.As(err, &clientErr) && clientErr.Type == ErrorTypeUnreachable
}

func newUnreachableError(status int, cause error) *Error {
	return &Error{
		Type:   ErrorTypeUnreachable,
		Op:     "health",
		Status: status,
		Cause:  cause,
	}
}

func newRequestFailedError(op string, status int, message string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeRequestFailed,
		Op:      op,
		Status:  status,
		Message: message,
		Cause:   cause,
	}
}
