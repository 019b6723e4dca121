// Package rx provides a push-based reactive stream library for Go.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The rx/core subpackage contains the
// low-level Observer and Observable abstractions.
package rx

import (
	"github.com/lguimbarda/min-rx/rx/aggregate"
	"github.com/lguimbarda/min-rx/rx/core"
)

// Type aliases for core abstractions.
// These allow users to work with the library without importing core directly.
type (
	// Observer consumes a stream through OnNext, OnError and OnCompleted.
	Observer[T any] = core.Observer[T]

	// ObserverFuncs adapts plain functions to an Observer.
	ObserverFuncs[T any] = core.ObserverFuncs[T]

	// Observable is a push-based producer of values.
	Observable[T any] = core.Observable[T]

	// Operator wraps a downstream Observer and returns the upstream-facing one.
	Operator[IN, OUT any] = core.Operator[IN, OUT]

	// Hooks holds typed observation callbacks for a subscription.
	Hooks[T any] = core.Hooks[T]

	// ErrPanic wraps a panic recovered from a downstream Observer.
	ErrPanic = core.ErrPanic

	// AggregateConfig holds context-level defaults for collecting operators.
	AggregateConfig = aggregate.Config

	// AggregateOption configures a single collecting operator.
	AggregateOption = aggregate.Option
)

// ErrEmpty is returned by First when the stream completes without a value.
var ErrEmpty = core.ErrEmpty

// Observable constructors.

// Create builds an Observable from a producer function.
func Create[T any](producer func(ctx Context, obs Observer[T])) Observable[T] {
	return core.Create(producer)
}

// FromSlice emits each element of items and then completes.
func FromSlice[T any](items []T) Observable[T] {
	return core.FromSlice(items)
}

// Just emits the given values and then completes.
func Just[T any](values ...T) Observable[T] {
	return core.Just(values...)
}

// Empty completes without emitting.
func Empty[T any]() Observable[T] {
	return core.Empty[T]()
}

// Fail terminates immediately with err.
func Fail[T any](err error) Observable[T] {
	return core.Fail[T](err)
}

// FromChannel emits values from ch until it is closed.
func FromChannel[T any](ch <-chan T) Observable[T] {
	return core.FromChannel(ch)
}

// Composition.

// Lift chains op onto src.
func Lift[IN, OUT any](src Observable[IN], op Operator[IN, OUT]) Observable[OUT] {
	return core.Lift(src, op)
}

// Through composes two operators left to right.
func Through[IN, MID, OUT any](first Operator[IN, MID], second Operator[MID, OUT]) Operator[IN, OUT] {
	return core.Through(first, second)
}

// Chain composes same-typed operators left to right.
func Chain[T any](ops ...Operator[T, T]) Operator[T, T] {
	return core.Chain(ops...)
}

// Safe drops calls that arrive after a terminal call.
func Safe[T any](obs Observer[T]) Observer[T] {
	return core.Safe(obs)
}

// WithHooks attaches typed hooks to the context.
func WithHooks[T any](ctx Context, hooks Hooks[T]) Context {
	return core.WithHooks(ctx, hooks)
}

// Operators.

// ToSlice collects every value into one slice emitted on completion.
func ToSlice[T any](opts ...AggregateOption) Operator[T, []T] {
	return aggregate.ToSlice[T](opts...)
}

// ToSliceSync is ToSlice for sources that emit from several goroutines.
func ToSliceSync[T any](opts ...AggregateOption) Operator[T, []T] {
	return aggregate.ToSliceSync[T](opts...)
}

// WithCapacity presizes the accumulator of a collecting operator.
func WithCapacity(n int) AggregateOption {
	return aggregate.WithCapacity(n)
}

// WithConfig attaches a configuration value, such as *AggregateConfig, to
// the context.
func WithConfig[C any](ctx Context, cfg C) Context {
	return core.WithConfig(ctx, cfg)
}
