package core

import "context"

// Observable represents a push-based stream of values of type T. It is the
// push analogue of a channel producer: subscribing runs the producer, which
// drives the given Observer until it terminates or ctx is cancelled.
// Observable answers the question: "How is the stream's data produced?".
//
// The context is the subscription's lifecycle token. Cancelling it is how a
// consumer unsubscribes; producers stop emitting and make no terminal call.
type Observable[T any] func(context.Context, Observer[T])

// Create builds an Observable from a producer function.
func Create[T any](producer func(context.Context, Observer[T])) Observable[T] {
	return producer
}

// Subscribe runs the producer against obs. Hooks registered for T with
// WithHooks are invoked around obs.
func (o Observable[T]) Subscribe(ctx context.Context, obs Observer[T]) {
	if ctx == nil {
		panic("nil context")
	}
	hooks := newHookInvoker[T](ctx)
	if hooks.hasAny() {
		hooks.invokeStart()
		obs = &hookedObserver[T]{downstream: obs, hooks: hooks}
	}
	o(ctx, obs)
}

// Operator wraps a downstream Observer of OUT and returns the
// upstream-facing Observer of IN that a producer will drive. The context of
// the subscription is passed along; operators may read configuration from
// it but do not own its lifecycle.
// An Operator answers the question: "What is done to the stream's data on
// its way downstream?".
type Operator[IN, OUT any] func(ctx context.Context, downstream Observer[OUT]) Observer[IN]

// Lift chains op onto the subscription path of src. Every subscription to
// the returned Observable calls op once, so operator state is never shared
// between subscriptions.
func Lift[IN, OUT any](src Observable[IN], op Operator[IN, OUT]) Observable[OUT] {
	return func(ctx context.Context, downstream Observer[OUT]) {
		src(ctx, op(ctx, downstream))
	}
}

// Through composes two operators into one that applies first and then
// second on the way downstream.
func Through[IN, MID, OUT any](first Operator[IN, MID], second Operator[MID, OUT]) Operator[IN, OUT] {
	return func(ctx context.Context, downstream Observer[OUT]) Observer[IN] {
		return first(ctx, second(ctx, downstream))
	}
}

// Chain composes operators of the same type, applied left to right.
// With no operators it returns the identity operator.
func Chain[T any](ops ...Operator[T, T]) Operator[T, T] {
	return func(ctx context.Context, downstream Observer[T]) Observer[T] {
		obs := downstream
		for i := len(ops) - 1; i >= 0; i-- {
			obs = ops[i](ctx, obs)
		}
		return obs
	}
}
