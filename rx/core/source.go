package core

import "context"

// Producers in this file emit synchronously on the subscribing goroutine.
// They check ctx between items and stop without a terminal call once it is
// cancelled.

// FromSlice creates an Observable that emits each element of items in
// order and then completes.
func FromSlice[T any](items []T) Observable[T] {
	return func(ctx context.Context, obs Observer[T]) {
		for _, item := range items {
			if ctx.Err() != nil {
				return
			}
			obs.OnNext(item)
		}
		if ctx.Err() != nil {
			return
		}
		obs.OnCompleted()
	}
}

// Just creates an Observable that emits the given values and then completes.
func Just[T any](values ...T) Observable[T] {
	return FromSlice(values)
}

// Empty creates an Observable that completes without emitting.
func Empty[T any]() Observable[T] {
	return func(ctx context.Context, obs Observer[T]) {
		if ctx.Err() != nil {
			return
		}
		obs.OnCompleted()
	}
}

// Fail creates an Observable that terminates immediately with err.
func Fail[T any](err error) Observable[T] {
	return func(ctx context.Context, obs Observer[T]) {
		if ctx.Err() != nil {
			return
		}
		obs.OnError(err)
	}
}

// FromChannel creates an Observable that emits values received from ch and
// completes when ch is closed. Subscribing blocks until then or until ctx
// is cancelled. The caller is responsible for closing ch.
func FromChannel[T any](ch <-chan T) Observable[T] {
	return func(ctx context.Context, obs Observer[T]) {
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-ch:
				if !ok {
					obs.OnCompleted()
					return
				}
				obs.OnNext(item)
			}
		}
	}
}
