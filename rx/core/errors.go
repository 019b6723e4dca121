package core

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrEmpty is returned by terminals that need at least one value when the
// stream completed without emitting any.
var ErrEmpty = errors.New("stream is empty")

// ErrPanic wraps a recovered panic value as an error.
// It is used when a downstream Observer panics while an operator delivers a
// value to it. It includes a cleaned-up stack trace that excludes internal
// min-rx frames.
type ErrPanic struct {
	Value any
	Stack string // Cleaned stack trace
}

func (e ErrPanic) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e ErrPanic) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// NewPanicError creates an ErrPanic from a recovered value. The stack keeps
// only frames outside this module's library packages, so it points at the
// user code that panicked.
// It must be called directly from the deferred function that recovered.
func NewPanicError(recovered any) ErrPanic {
	return ErrPanic{
		Value: recovered,
		Stack: userStack(4), // skip: runtime.Callers, userStack, NewPanicError, defer func
	}
}

// internalPrefix marks functions that belong to this module's library code.
const internalPrefix = "github.com/lguimbarda/min-rx/rx/"

// userFrame reports whether a frame for function fn belongs in an ErrPanic
// stack.
func userFrame(fn string) bool {
	return !strings.HasPrefix(fn, internalPrefix)
}

// userStack formats the calling stack, one "function\n\tfile:line" pair per
// user frame.
func userStack(skip int) string {
	const maxFrames = 32
	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	var lines []string
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if userFrame(frame.Function) {
			lines = append(lines, fmt.Sprintf("%s\n\t%s:%d", frame.Function, frame.File, frame.Line))
		}
		if !more {
			break
		}
	}
	return strings.Join(lines, "\n")
}
