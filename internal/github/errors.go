package github

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	NetworkError ErrorKind = iota + 1
	DecodeError
	UnexpectedStatus
)

func (k ErrorKind) String() string {
	switch k {
	case NetworkError:
		return "network error"
	case DecodeError:
		return "decode error"
	case UnexpectedStatus:
		return "unexpected status"
	default:
		return "unknown error"
	}
}

// FetchError is returned by FetchEvents for every failure.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Kind == UnexpectedStatus:
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// StatusOf reports the HTTP status carried by an UnexpectedStatus error.
func StatusOf(err error) (int, bool) {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Kind == UnexpectedStatus {
		return fe.StatusCode, true
	}
	return 0, false
}
