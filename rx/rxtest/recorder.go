// Package rxtest provides Observer implementations for tests and diagnostics.
package rxtest

import (
	"sync"
)

// Kind identifies which Observer method a recorded call went to.
type Kind uint8

const (
	Next Kind = iota
	Error
	Completed
)

func (k Kind) String() string {
	switch k {
	case Next:
		return "OnNext"
	case Error:
		return "OnError"
	case Completed:
		return "OnCompleted"
	default:
		return "unknown"
	}
}

// Call is one recorded Observer call. Value is set for Next, Err for Error.
type Call[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

// Recorder records every call made to it, in order.
//
// Recorder is safe under concurrent calls.
type Recorder[T any] struct {
	mu    sync.Mutex
	calls []Call[T]
	done  chan struct{}
	once  sync.Once
}

// NewRecorder constructs a Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{done: make(chan struct{})}
}

// OnNext records a value.
func (r *Recorder[T]) OnNext(v T) {
	r.record(Call[T]{Kind: Next, Value: v})
}

// OnError records a failure.
func (r *Recorder[T]) OnError(err error) {
	r.record(Call[T]{Kind: Error, Err: err})
	r.once.Do(func() { close(r.done) })
}

// OnCompleted records a completion.
func (r *Recorder[T]) OnCompleted() {
	r.record(Call[T]{Kind: Completed})
	r.once.Do(func() { close(r.done) })
}

func (r *Recorder[T]) record(c Call[T]) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

// Done returns a channel that closes on the first terminal call.
func (r *Recorder[T]) Done() <-chan struct{} {
	return r.done
}

// Calls returns a snapshot copy of every recorded call.
func (r *Recorder[T]) Calls() []Call[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]Call[T], len(r.calls))
	copy(cp, r.calls)
	return cp
}

// Values returns the recorded OnNext values in order.
func (r *Recorder[T]) Values() []T {
	var out []T
	for _, c := range r.Calls() {
		if c.Kind == Next {
			out = append(out, c.Value)
		}
	}
	return out
}

// Errors returns the recorded OnError failures in order.
func (r *Recorder[T]) Errors() []error {
	var out []error
	for _, c := range r.Calls() {
		if c.Kind == Error {
			out = append(out, c.Err)
		}
	}
	return out
}

// Completions returns how many times OnCompleted was called.
func (r *Recorder[T]) Completions() int {
	n := 0
	for _, c := range r.Calls() {
		if c.Kind == Completed {
			n++
		}
	}
	return n
}

// Kinds returns the ordered sequence of recorded call kinds.
func (r *Recorder[T]) Kinds() []Kind {
	calls := r.Calls()
	out := make([]Kind, len(calls))
	for i, c := range calls {
		out[i] = c.Kind
	}
	return out
}

// Reset clears the recorder. It does not reopen Done.
func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
