// Package errs defines the error kinds surfaced across the tpcgen public
// boundary (suite façade, row generators, batch assembler).
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a tpcgen error the way a caller is expected to handle it.
type Kind string

const (
	// InvalidArgument covers bad caller input: non-positive chunk_size or
	// scale_factor, negative start_row, unknown column/table/benchmark
	// names, duplicate column names, invalid seed_mode.
	InvalidArgument Kind = "invalid_argument"
	// ResourceLoad covers missing/malformed distribution resources.
	ResourceLoad Kind = "resource_load"
	// NotImplemented covers a benchmark/table combination with no generator.
	NotImplemented Kind = "not_implemented"
	// Internal covers invariant violations: these indicate a generator bug.
	Internal Kind = "internal"
)

// Error wraps a Kind with a message and optional cause, preserving a stack
// trace via github.com/pkg/errors so failures can be traced back to the
// generator that raised them.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.cause }

func newErr(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:  kind,
		msg:   fmt.Sprintf(format, args...),
		cause: errors.WithStack(cause),
	}
}

// Invalidf builds an InvalidArgument error.
func Invalidf(format string, args ...interface{}) error {
	return newErr(InvalidArgument, nil, format, args...)
}

// ResourceLoadf builds a ResourceLoad error, optionally wrapping a cause.
func ResourceLoadf(cause error, format string, args ...interface{}) error {
	return newErr(ResourceLoad, cause, format, args...)
}

// NotImplementedf builds a NotImplemented error.
func NotImplementedf(format string, args ...interface{}) error {
	return newErr(NotImplemented, nil, format, args...)
}

// Internalf builds an Internal invariant-violation error.
func Internalf(format string, args ...interface{}) error {
	return newErr(Internal, nil, format, args...)
}

// Is reports whether err is a tpcgen *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
