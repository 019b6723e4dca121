package rx

import (
	"context"

	"github.com/lguimbarda/min-rx/rx/core"
)

// Context is re-exported so that producer signatures read naturally.
type Context = context.Context

// Terminal functions subscribe to a stream and block until it terminates or
// ctx is cancelled. The producer runs on its own goroutine; a cancelled ctx
// returns ctx.Err() immediately even if the producer has not yet noticed.
// A panic raised anywhere on the subscription goroutine, by the producer or
// by an operator's terminal call, is returned as an ErrPanic.

type outcome[T any] struct {
	value T
	err   error
}

// Slice collects every value of src into a slice.
func Slice[T any](ctx context.Context, src Observable[T]) ([]T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan outcome[[]T], 1)
	var got []T
	obs := core.Safe[[]T](core.ObserverFuncs[[]T]{
		Next:      func(v []T) { got = v },
		Error:     func(err error) { ch <- outcome[[]T]{err: err} },
		Completed: func() { ch <- outcome[[]T]{value: got} },
	})
	subscribe(ctx, core.Lift(src, ToSlice[T]()), obs, ch)

	return wait(ctx, ch)
}

// First returns the first value of src and cancels the subscription.
// It returns ErrEmpty if src completes without emitting.
func First[T any](ctx context.Context, src Observable[T]) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan outcome[T], 1)
	var seen bool
	obs := core.Safe[T](core.ObserverFuncs[T]{
		Next: func(v T) {
			if seen {
				return
			}
			seen = true
			ch <- outcome[T]{value: v}
		},
		Error: func(err error) {
			if !seen {
				ch <- outcome[T]{err: err}
			}
		},
		Completed: func() {
			if !seen {
				ch <- outcome[T]{err: ErrEmpty}
			}
		},
	})
	subscribe(ctx, src, obs, ch)

	return wait(ctx, ch)
}

// Run drains src for its side effects and returns its terminal error.
func Run[T any](ctx context.Context, src Observable[T]) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan outcome[struct{}], 1)
	obs := core.Safe[T](core.ObserverFuncs[T]{
		Error:     func(err error) { ch <- outcome[struct{}]{err: err} },
		Completed: func() { ch <- outcome[struct{}]{} },
	})
	subscribe(ctx, src, obs, ch)

	_, err := wait(ctx, ch)
	return err
}

// subscribe runs src on its own goroutine. A recovered panic becomes the
// outcome unless a terminal outcome is already buffered.
func subscribe[T, O any](ctx context.Context, src Observable[T], obs Observer[T], ch chan outcome[O]) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				select {
				case ch <- outcome[O]{err: core.NewPanicError(r)}:
				default:
				}
			}
		}()
		src.Subscribe(ctx, obs)
	}()
}

func wait[T any](ctx context.Context, ch <-chan outcome[T]) (T, error) {
	select {
	case out := <-ch:
		return out.value, out.err
	case <-ctx.Done():
		// Prefer an outcome that raced with cancellation.
		select {
		case out := <-ch:
			return out.value, out.err
		default:
		}
		var zero T
		return zero, ctx.Err()
	}
}
