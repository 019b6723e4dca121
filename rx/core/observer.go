// package core defines the core abstractions for push-based stream
// processing: observers, observables and the operators that connect them.
//
// Observers are not goroutine-safe. Every abstraction in this package
// assumes that calls on a single Observer arrive strictly sequentially from
// its producer; callers that emit concurrently must serialize first.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other rx packages.
package core

import "sync/atomic"

// Observer is the consumer side of a stream. A producer calls OnNext zero or
// more times and then at most one of OnError or OnCompleted. No call may
// follow a terminal call.
// Observer answers the question: "What is done with the stream's data?".
type Observer[T any] interface {
	OnNext(T)
	OnError(error)
	OnCompleted()
}

// ObserverFuncs adapts plain functions to an Observer. Nil fields are no-ops.
type ObserverFuncs[T any] struct {
	Next      func(T)
	Error     func(error)
	Completed func()
}

func (o ObserverFuncs[T]) OnNext(v T) {
	if o.Next != nil {
		o.Next(v)
	}
}

func (o ObserverFuncs[T]) OnError(err error) {
	if o.Error != nil {
		o.Error(err)
	}
}

func (o ObserverFuncs[T]) OnCompleted() {
	if o.Completed != nil {
		o.Completed()
	}
}

// safeObserver drops every call that arrives after a terminal call.
type safeObserver[T any] struct {
	downstream Observer[T]
	done       atomic.Bool
}

// Safe wraps an Observer so that the terminal contract holds even for a
// producer that keeps emitting after OnError or OnCompleted. Late calls are
// silently dropped. Safe does not serialize concurrent calls.
func Safe[T any](downstream Observer[T]) Observer[T] {
	if s, ok := downstream.(*safeObserver[T]); ok {
		return s
	}
	return &safeObserver[T]{downstream: downstream}
}

func (s *safeObserver[T]) OnNext(v T) {
	if s.done.Load() {
		return
	}
	s.downstream.OnNext(v)
}

func (s *safeObserver[T]) OnError(err error) {
	if !s.done.CompareAndSwap(false, true) {
		return
	}
	s.downstream.OnError(err)
}

func (s *safeObserver[T]) OnCompleted() {
	if !s.done.CompareAndSwap(false, true) {
		return
	}
	s.downstream.OnCompleted()
}
