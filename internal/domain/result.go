package domain

import (
	"errors"
	"fmt"
)

// ErrorType is the closed taxonomy of failures an API call can end in.
// Callers branch on it; Error.Message is documentation, not a key.
type ErrorType string

const (
	ServerError  ErrorType = "ServerError"
	ClientError  ErrorType = "ClientError"
	RequestError ErrorType = "RequestError"
	TypeError    ErrorType = "TypeError"
)

// Sentinels matched by errors.Is against an *Error of the same type.
var (
	ErrServer  = errors.New("server error")
	ErrClient  = errors.New("client error")
	ErrRequest = errors.New("request error")
	ErrType    = errors.New("type error")
)

// Fixed user-facing messages.
const (
	MsgRequestFailed = "Failed to perform a request"
	MsgServerError   = "Received an error from an external resource"
	MsgClientError   = "Sent a problematic request to an external resource"
	MsgInvalidJSON   = "Failed to parse valid JSON"
	MsgMalformedData = "Received malformed data"
)

// Error is the failure branch of a Result.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error // Optional: response snapshot, transport error, or validation issues
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is lets errors.Is(err, ErrServer) and friends match on Type.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrServer:
		return e.Type == ServerError
	case ErrClient:
		return e.Type == ClientError
	case ErrRequest:
		return e.Type == RequestError
	case ErrType:
		return e.Type == TypeError
	}
	return false
}

// Result holds exactly one of Data (success) or Err (failure).
type Result[T any] struct {
	Data T
	Err  *Error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Data: v}
}

// Fail builds a failed Result. The zero T is left in Data.
func Fail[T any](typ ErrorType, msg string, cause error) Result[T] {
	return Result[T]{Err: &Error{Type: typ, Message: msg, Cause: cause}}
}

// FailWith carries an existing failure over to a Result of another type.
func FailWith[T any](err *Error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) IsOK() bool { return r.Err == nil }

// ErrorType returns the failure type, or "" on success.
func (r Result[T]) ErrorType() ErrorType {
	if r.Err == nil {
		return ""
	}
	return r.Err.Type
}

// Unwrap converts the Result into Go's (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.Err != nil {
		var zero T
		return zero, r.Err
	}
	return r.Data, nil
}
