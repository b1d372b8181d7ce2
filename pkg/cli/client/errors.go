package client

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind categorizes transport failures.
type ErrorKind string

const (
	ErrorKindNetwork   ErrorKind = "network"
	ErrorKindTimeout   ErrorKind = "timeout"
	ErrorKindCancelled ErrorKind = "cancelled"
	ErrorKindStatus    ErrorKind = "status"
	ErrorKindDecode    ErrorKind = "decode"
)

// TransportError is returned for every failed call to the news API.
type TransportError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// UserMessage returns a user-friendly error message
func (e *TransportError) UserMessage() string {
	switch e.Kind {
	case ErrorKindNetwork:
		return "The news server could not be reached. Please check your Internet connection."
	case ErrorKindTimeout:
		return "The news server took too long to answer."
	case ErrorKindCancelled:
		return "The request was cancelled."
	case ErrorKindStatus:
		return fmt.Sprintf("The news server answered with an error (HTTP %d).", e.StatusCode)
	case ErrorKindDecode:
		return "The news server sent a response that could not be read."
	default:
		return e.Message
	}
}

// classifyRequestError maps an error from http.Client.Do to a TransportError.
func classifyRequestError(err error) *TransportError {
	switch {
	case errors.Is(err, context.Canceled):
		return &TransportError{Kind: ErrorKindCancelled, Message: "request cancelled", Cause: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &TransportError{Kind: ErrorKindTimeout, Message: "request timed out", Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Kind: ErrorKindTimeout, Message: "request timed out", Cause: err}
	}
	return &TransportError{Kind: ErrorKindNetwork, Message: "request failed", Cause: err}
}

func newStatusError(code int, message string) *TransportError {
	return &TransportError{Kind: ErrorKindStatus, Message: message, StatusCode: code}
}

func newDecodeError(cause error) *TransportError {
	return &TransportError{Kind: ErrorKindDecode, Message: "failed to parse response", Cause: cause}
}
