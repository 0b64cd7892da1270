package backend

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrTransient    = errors.New("transient failure")
	ErrRejected     = errors.New("request rejected")
)

// Error describes a failed backend operation. Kind is one of the sentinel
// errors above and is what errors.Is matches.
type Error struct {
	Op      string
	Table   string
	Status  int
	Message string
	Kind    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: %v (status %d): %s", e.Op, e.Table, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %v: %s", e.Op, e.Table, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Kind }

// KindForStatus maps an HTTP status code to an error kind.
func KindForStatus(status int) error {
	switch {
	case status == 401 || status == 403:
		return ErrUnauthorized
	case status == 404:
		return ErrNotFound
	case status == 409:
		return ErrConflict
	case status == 408 || status == 429 || status >= 500:
		return ErrTransient
	}
	return ErrRejected
}

// IsRetryable reports whether repeating the operation may succeed.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransient)
}
