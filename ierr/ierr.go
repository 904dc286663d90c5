// Package ierr defines the two-tag error taxonomy external callers use to
// discriminate argument errors (meaningless input) from state errors
// (meaningful input the current state forbids).
package ierr

import (
	"errors"
	"fmt"
)

// Kind distinguishes argument errors from state errors.
type Kind int

const (
	// Argument marks an error caused by input that is meaningless against
	// the fixed topology or registry: invalid section, unknown train,
	// duplicate identifier, no path.
	Argument Kind = iota
	// State marks an error caused by input that is meaningful but
	// currently forbidden: entry section already occupied.
	State
)

func (k Kind) String() string {
	if k == State {
		return "state"
	}
	return "argument"
}

// Sentinels identify the specific error condition; wrap with errors.Is.
var (
	ErrDuplicateIdentifier = errors.New("duplicate train identifier")
	ErrInvalidSection      = errors.New("invalid section number")
	ErrEntryOccupied       = errors.New("entry section occupied")
	ErrInvalidPath         = errors.New("no path from entry to destination")
	ErrUnknownTrain        = errors.New("unknown train identifier")
)

// Error wraps a sentinel with the operation that produced it and its Kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind of err, if err (or something it wraps) is an
// *Error. Ok is false for any other error, including nil.
func KindOf(err error) (k Kind, ok bool) {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind, true
	}
	return 0, false
}

// Arg wraps err as an Argument error produced by operation op.
func Arg(op string, err error) error {
	return &Error{Kind: Argument, Op: op, Err: err}
}

// St wraps err as a State error produced by operation op.
func St(op string, err error) error {
	return &Error{Kind: State, Op: op, Err: err}
}
