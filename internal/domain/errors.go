package domain

import (
	"errors"
)

var (
	ErrPillNotFound  = errors.New("pill not found")
	ErrUnknownWindow = errors.New("unknown time window")
	ErrInvalidPill   = errors.New("invalid pill")

	ErrTransport  = errors.New("transport error")
	ErrValidation = errors.New("rejected by store")
	ErrNotFound   = errors.New("not found in store")
)

type ErrorKind string

const (
	ErrorKindTransport  ErrorKind = "transport"
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindNotFound   ErrorKind = "not_found"
)

// RemoteError is the single failure shape returned by the remote store
// client. Message is shown to the user as-is.
type RemoteError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Cause   error
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// Is lets callers match on kind; a not-found rejection is also a validation
// rejection.
func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == ErrorKindTransport
	case ErrValidation:
		return e.Kind == ErrorKindValidation || e.Kind == ErrorKindNotFound
	case ErrNotFound:
		return e.Kind == ErrorKindNotFound
	default:
		return false
	}
}

// ErrorMessage returns the store's message when err carries one, and the
// plain error text otherwise.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	return err.Error()
}
