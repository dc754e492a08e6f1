package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies operation failures for callers that branch on
// the failure class rather than the message.
type ErrorKind int

const (
	UnknownError ErrorKind = iota
	ParseError
	CommunicationError
	CancelError
	UnsupportedError
	BadArgumentError
	PlaceDoesNotExistError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case CommunicationError:
		return "communication error"
	case CancelError:
		return "canceled"
	case UnsupportedError:
		return "unsupported operation"
	case BadArgumentError:
		return "bad argument"
	case PlaceDoesNotExistError:
		return "place does not exist"
	default:
		return "unknown error"
	}
}

// Error is the typed error carried by replies.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Errorf(kind ErrorKind, format string, args ...any) *Error {
	err := &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
	for _, arg := range args {
		if cause, ok := arg.(error); ok {
			err.Cause = cause
		}
	}
	return err
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error with the same kind, so callers can write
// errors.Is(err, domain.NewError(domain.ParseError, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the error kind, defaulting to UnknownError for
// untyped errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return UnknownError
}
