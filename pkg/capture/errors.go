package capture

import (
	"errors"
	"fmt"
)

// Kind classifies an acquisition failure.
type Kind int

const (
	KindUnreadable  Kind = iota // I/O failure other than not-found
	KindNotFound                // capture file or client binary does not exist
	KindUnstartable             // external command could not start or failed
	KindQuery                   // database connection or query failed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindUnstartable:
		return "command failed"
	case KindQuery:
		return "query failed"
	default:
		return "unreadable"
	}
}

// ErrNotFound matches any not-found acquisition error via errors.Is.
var ErrNotFound = errors.New("source not found")

// Error is returned by every Source when acquisition fails.
// Use errors.As to inspect Kind, or errors.Is(err, ErrNotFound).
type Error struct {
	Kind   Kind
	Source string // file path, command name, or "stdin"/"mysql"
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("acquire %s (%s): %v", e.Source, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports not-found errors as ErrNotFound.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}
