// Package verrors implements the error taxonomy of the core: allocation
// failure, runtime error, precondition violation, and programmer bug
// (assertion). The interpreter and embedder are the only consumers —
// apart from Assertf's panic on an internal invariant violation, nothing
// in this package raises a signal or unwinds a call stack itself.
package verrors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind distinguishes the taxonomy entries the core itself can raise.
// SyntaxError and CompileError belong to the out-of-scope compiler and
// are not produced here.
type Kind string

const (
	Runtime    Kind = "RuntimeError"
	Allocation Kind = "AllocationError"
	Internal   Kind = "InternalError"
)

// SourceLocation is the source position a runtime error is attributed to,
// taken from a function's debug line program.
type SourceLocation struct {
	File string
	Line int
}

// Frame is a single call-stack frame captured when a runtime error is
// raised, one per active call frame on the failing fiber.
type Frame struct {
	Function string
	Location SourceLocation
}

// VMError is the value written into a fiber's error slot. Any value can
// occupy that slot (it is an ordinary object.Value), but every error the
// core itself raises is a *VMError wrapped as a string-backed value by the
// caller.
type VMError struct {
	Kind     Kind
	Message  string
	Location SourceLocation
	Stack    []Frame
	cause    error
}

func (e *VMError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Kind))
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Location.File != "" {
		fmt.Fprintf(&sb, " (%s:%d)", e.Location.File, e.Location.Line)
	}
	for _, f := range e.Stack {
		if f.Function != "" {
			fmt.Fprintf(&sb, "\n  at %s (%s:%d)", f.Function, f.Location.File, f.Location.Line)
		} else {
			fmt.Fprintf(&sb, "\n  at %s:%d", f.Location.File, f.Location.Line)
		}
	}
	return sb.String()
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *VMError) Unwrap() error { return e.cause }

// NewRuntime builds a runtime error at the given source location — the
// taxonomy entry for an indexing/argument/unhashable-key precondition
// violation detected by a primitive.
func NewRuntime(file string, line int, format string, args ...any) *VMError {
	return &VMError{
		Kind:     Runtime,
		Message:  fmt.Sprintf(format, args...),
		Location: SourceLocation{File: file, Line: line},
	}
}

// NewAllocation wraps an allocation failure as a runtime-surfaced error.
// Allocation failure itself is not an exception: constructors return a
// distinguished zero value and the caller decides whether to raise.
func NewAllocation(cause error, what string) *VMError {
	return &VMError{
		Kind:    Allocation,
		Message: fmt.Sprintf("allocation failed: %s", what),
		cause:   errors.WithStack(cause),
	}
}

// WithStack attaches a call-stack snapshot, innermost frame first.
func (e *VMError) WithStack(stack []Frame) *VMError {
	e.Stack = stack
	return e
}

// Wrap annotates an existing error with additional context, preserving
// its cause chain for errors.Is/errors.As via github.com/pkg/errors.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, message)
}

// Assertf panics on an internal invariant violation (programmer bug):
// probing a zero-capacity dict, closing an upvalue twice, and similar
// conditions the core is free to terminate on rather than recover from.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(&VMError{Kind: Internal, Message: fmt.Sprintf(format, args...)})
	}
}
