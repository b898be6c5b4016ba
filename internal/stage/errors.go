package stage

import (
	"errors"
	"fmt"
)

// Kind classifies staging failures.
type Kind int

const (
	// KindInvalidArgument covers bad names and unusable source paths.
	KindInvalidArgument Kind = iota + 1
	// KindIO covers failures from the filesystem or area resolution.
	KindIO
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindIO:
		return "i/o failure"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against an *Error kind.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIOFailure       = errors.New("i/o failure")
)

// Error is returned by every Stager and Builder operation.
type Error struct {
	Kind Kind
	Op   string // operation being attempted, e.g. "create file"
	Path string // desired name, reference or source path
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Kind)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches ErrInvalidArgument and ErrIOFailure by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrIOFailure:
		return e.Kind == KindIO
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

func invalidArgument(op, path string, err error) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Path: path, Err: err}
}

func ioFailure(op, path string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}
