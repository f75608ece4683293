package gopher

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL is wrapped by every URLError
	ErrInvalidURL = errors.New("invalid gopher url")
	// ErrCancelled is wrapped by fetch errors of kind Cancelled
	ErrCancelled = errors.New("fetch cancelled")
	// ErrTooLarge is returned when a response exceeds the configured limit
	ErrTooLarge = errors.New("response too large")
)

// URLError reports a typed address that could not be parsed
type URLError struct {
	URL    string
	Reason string
}

func (e *URLError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidURL, e.URL, e.Reason)
}

func (e *URLError) Unwrap() error { return ErrInvalidURL }

// ErrorKind classifies fetch failures
type ErrorKind int

const (
	NetworkFailure ErrorKind = iota
	Cancelled
	SecurityDenied
)

func (k ErrorKind) String() string {
	switch k {
	case Cancelled:
		return "cancelled"
	case SecurityDenied:
		return "security denied"
	default:
		return "network failure"
	}
}

// FetchError is the single failure a fetch can end with
type FetchError struct {
	Kind ErrorKind
	Addr string
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch %s: %s", e.Addr, e.Kind)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.Addr, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsCancelled reports whether err ended a fetch through cancellation
func IsCancelled(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind == Cancelled
	}
	return errors.Is(err, ErrCancelled)
}

// KindOf returns the kind of a fetch error, NetworkFailure for anything else
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return NetworkFailure
}
