// Package errs defines the failure taxonomy shared by every pricing and
// risk component: invalid-argument, invalid-state, numerical, and range
// errors, each carrying the offending operation and a human-readable
// message naming the offending asset, metric, or parameter.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure the way the engine's callers need to
// distinguish it: a bad constructor input, a missing dependency, a
// numerically unstable computation, or an out-of-range index.
type Kind int

const (
	// InvalidArgument covers bad constructor or setter inputs: non-positive
	// strike, negative volatility, empty asset id, out-of-range step count.
	InvalidArgument Kind = iota
	// InvalidState covers missing market data or a null instrument in a
	// portfolio position.
	InvalidState
	// Numerical covers NaN/infinity results, binomial probabilities outside
	// [0,1], non-positive simulated spots, and Newton-Raphson divergence.
	Numerical
	// Range covers out-of-bounds portfolio indices and quantity overflow.
	Range
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case InvalidState:
		return "invalid state"
	case Numerical:
		return "numerical error"
	case Range:
		return "range error"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type raised by every package in this module.
// Op names the failing operation (e.g. "EuropeanOption.Price") so a caller
// can tell at a glance which component failed without parsing the message.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.err }

func newf(kind Kind, op, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	wrapped := errors.Errorf("%s: %s: %s", op, kind, msg)
	return &Error{Kind: kind, Op: op, Msg: msg, err: wrapped}
}

// InvalidArg builds an InvalidArgument error for op, e.g. a bad constructor
// or setter input.
func InvalidArg(op, format string, args ...interface{}) error {
	return newf(InvalidArgument, op, format, args...)
}

// InvalidStateErr builds an InvalidState error for op, e.g. missing market
// data for an instrument's asset id.
func InvalidStateErr(op, format string, args ...interface{}) error {
	return newf(InvalidState, op, format, args...)
}

// Numerical builds a Numerical error for op, e.g. a NaN intermediate or an
// out-of-bounds CRR probability.
func NumericalErr(op, format string, args ...interface{}) error {
	return newf(Numerical, op, format, args...)
}

// RangeErr builds a Range error for op, e.g. a portfolio index out of
// bounds or a quantity sum that overflows.
func RangeErr(op, format string, args ...interface{}) error {
	return newf(Range, op, format, args...)
}

// Is reports whether err is an *Error of the given Kind, unwrapping as
// needed.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
