package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// ErrInvalidResponse marks a backend response that could not be interpreted:
// a non-2xx status or a 200 whose body is not the expected JSON envelope.
var ErrInvalidResponse = errors.New("invalid response")

// ServerError is a backend envelope with success=false. Message carries the
// server-provided text and is surfaced to the user verbatim when present.
type ServerError struct {
	Message string
}

func (err *ServerError) Error() string {
	if err.Message == "" {
		return "request failed"
	}
	return err.Message
}

// NetworkError wraps a transport-level failure: the request never produced a
// response (DNS failure, refused connection, timeout).
type NetworkError struct {
	Err error
}

func (err *NetworkError) Error() string { return "network error: " + err.Err.Error() }

func (err *NetworkError) Unwrap() error { return err.Err }

func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
