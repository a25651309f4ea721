// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import (
	"errors"
	"fmt"
)

// Kinds of errors reported by the library. An *Error always wraps one of these
// values, so callers can test the category of a failure with errors.Is.
var (
	ErrInput        = errors.New("malformed input")
	ErrPrecondition = errors.New("rule precondition violated")
	ErrInvariant    = errors.New("invariant violation")
	ErrStall        = errors.New("optimizer stall")
	ErrIterations   = errors.New("iteration limit reached")
)

// Error is the single error type returned by the library. Op is the name of
// the operation that failed (for instance "ImplI" or "DecodeExpression").
type Error struct {
	Op   string
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Unwrap returns the kind of the error.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Errorf builds a new *Error of the given kind.
func Errorf(op string, kind error, format string, a ...interface{}) *Error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// ******************************************************************************************************

// Error returns the error status of the calculus, or the empty string if no
// rule failed.
func (c *Calculus) Error() string {
	if c.error == nil {
		return ""
	}
	return c.error.Error()
}

// Errored returns true if there was an error during a derivation.
func (c *Calculus) Errored() bool {
	return c.error != nil
}

// Err returns the error status of the calculus as an error value; it is nil
// when no rule failed.
func (c *Calculus) Err() error {
	if c.error == nil {
		return nil
	}
	return c.error
}

// seterror records a failure. Messages are chained with the previous ones so
// that the first error is never lost, and the kind stays the one of the first
// error. It always returns a nil proof.
func (c *Calculus) seterror(op string, kind error, format string, a ...interface{}) *Proof {
	err := Errorf(op, kind, format, a...)
	if c.error != nil {
		err.Msg = err.Msg + "; " + c.error.Error()
		err.Kind = c.error.Kind
	}
	c.error = err
	if _DEBUG {
		c.logger.Error("derivation failed", "op", op, "error", err.Msg)
	}
	return nil
}
