// Package apperrors provides the tagged error type shared by every stage of
// the README pipeline, so the command can handle failures in one place.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindTransport
	KindHTTP
	KindParse
	KindFilesystem
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport error"
	case KindHTTP:
		return "request failed"
	case KindParse:
		return "parse error"
	case KindFilesystem:
		return "filesystem error"
	case KindConfiguration:
		return "configuration error"
	default:
		return "unknown error"
	}
}

// Sentinel errors, one per kind, for errors.Is checks.
var (
	ErrTransport     = errors.New(KindTransport.String())
	ErrHTTP          = errors.New(KindHTTP.String())
	ErrParse         = errors.New(KindParse.String())
	ErrFilesystem    = errors.New(KindFilesystem.String())
	ErrConfiguration = errors.New(KindConfiguration.String())
)

// Error is a pipeline failure tagged with its Kind.
type Error struct {
	Kind Kind
	Op   string

	// Set for KindHTTP only.
	StatusCode int
	Status     string

	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Kind == KindHTTP {
		msg = fmt.Sprintf("%s (status %d %s)", msg, e.StatusCode, e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap implements errors.Unwrap
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrHTTP:
		return e.Kind == KindHTTP
	case ErrParse:
		return e.Kind == KindParse
	case ErrFilesystem:
		return e.Kind == KindFilesystem
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	}
	return false
}

// Wrap tags err with kind. A nil err yields nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// HTTP builds a KindHTTP error for a failed response.
func HTTP(op string, statusCode int, status string) *Error {
	return &Error{Kind: KindHTTP, Op: op, StatusCode: statusCode, Status: status}
}

// Configuration builds a KindConfiguration error with a message.
func Configuration(op, message string) *Error {
	return &Error{Kind: KindConfiguration, Op: op, Message: message}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
