// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the flat error taxonomy of the engine (see
// spec §7). Callers should test the kind of an error with errors.Is against
// one of these values; the wrapping *Error carries the offending operation
// and arguments in its message.
var (
	// ErrInvalidArgument is returned for malformed configuration, such as a
	// zero-sized reachability state vector.
	ErrInvalidArgument = errors.New("bdd: invalid argument")

	// ErrArityMismatch is returned when a supplied vector's length does not
	// match the expected state or input width.
	ErrArityMismatch = errors.New("bdd: arity mismatch")

	// ErrUnknownID is returned when a node id was not produced by the
	// manager it is used against.
	ErrUnknownID = errors.New("bdd: unknown node id")

	// ErrInternal reports a fatal invariant violation, such as an id outside
	// the bounds of the unique table reaching an internal algorithm. A
	// correct caller never observes this error; it exists to surface
	// programmer error instead of corrupting the tables silently.
	ErrInternal = errors.New("bdd: internal invariant violation")
)

// Error wraps one of the sentinel values above with operation-specific
// context. It implements Unwrap so errors.Is(err, ErrArityMismatch) and
// friends work across package boundaries.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("bdd: %s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidArgument(op, format string, a ...interface{}) *Error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, a...))}
}

func arityMismatch(op, format string, a ...interface{}) *Error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %s", ErrArityMismatch, fmt.Sprintf(format, a...))}
}

func unknownID(op, format string, a ...interface{}) *Error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %s", ErrUnknownID, fmt.Sprintf(format, a...))}
}

func internalError(op, format string, a ...interface{}) *Error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, a...))}
}

// invariantPanic is the payload the kernel panics with on a fatal invariant
// violation (spec §7: "an unknown id is an invariant violation (programmer
// error)... implementers should surface it as a distinct InternalError and
// abort the operation"). It is unexported: user code never constructs or
// recovers it directly, only observes it translated into ErrInternal at a
// package boundary via RecoverInternal.
type invariantPanic struct {
	msg string
}

func panicInvariant(format string, a ...interface{}) {
	panic(&invariantPanic{msg: fmt.Sprintf(format, a...)})
}

// RecoverInternal turns a panic raised by a kernel invariant violation into
// an *Error of kind ErrInternal and stores it through errp. It must be called
// with defer at the top of any exported operation that calls back into the
// kernel with ids it did not itself just mint, mirroring the deferred
// recovery pattern used for unexpected faults in the corpus (e.g. lvlath's
// context-cancellation guards). Any other panic value is re-raised.
func RecoverInternal(op string, errp *error) {
	if r := recover(); r != nil {
		if ie, ok := r.(*invariantPanic); ok {
			*errp = internalError(op, "%s", ie.msg)
			return
		}
		panic(r)
	}
}
