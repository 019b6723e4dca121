package core

import "context"

// Hooks holds typed observation callbacks for a subscription.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously on the producer's goroutine, so they
// should be fast to avoid blocking the pipeline.
type Hooks[T any] struct {
	OnStart    func()      // Subscription begins
	OnValue    func(T)     // Value delivered
	OnError    func(error) // Terminal error delivered
	OnComplete func()      // Normal completion delivered
}

// hooksKey is unexported to prevent collisions with user context keys.
type hooksKey[T any] struct{}

// WithHooks attaches typed hooks to the context.
// Multiple calls to WithHooks compose in FIFO order - hooks from earlier
// calls are invoked before hooks from later calls.
//
// Example:
//
//	ctx := core.WithHooks(ctx, core.Hooks[[]int]{
//	    OnValue: func(v []int) { log.Printf("collected %d", len(v)) },
//	})
func WithHooks[T any](ctx context.Context, hooks Hooks[T]) context.Context {
	if ctx == nil {
		panic("nil context")
	}
	existing := getHooks[T](ctx)
	sets := make([]*Hooks[T], len(existing), len(existing)+1)
	copy(sets, existing)
	sets = append(sets, &hooks)
	return context.WithValue(ctx, hooksKey[T]{}, sets)
}

func getHooks[T any](ctx context.Context) []*Hooks[T] {
	sets, _ := ctx.Value(hooksKey[T]{}).([]*Hooks[T])
	return sets
}

// hookInvoker caches the hook sets found in a context for one subscription.
type hookInvoker[T any] struct {
	sets []*Hooks[T]
}

func newHookInvoker[T any](ctx context.Context) *hookInvoker[T] {
	return &hookInvoker[T]{sets: getHooks[T](ctx)}
}

func (h *hookInvoker[T]) hasAny() bool {
	return len(h.sets) > 0
}

func (h *hookInvoker[T]) invokeStart() {
	for _, hooks := range h.sets {
		if hooks.OnStart != nil {
			hooks.OnStart()
		}
	}
}

func (h *hookInvoker[T]) invokeValue(v T) {
	for _, hooks := range h.sets {
		if hooks.OnValue != nil {
			hooks.OnValue(v)
		}
	}
}

func (h *hookInvoker[T]) invokeError(err error) {
	for _, hooks := range h.sets {
		if hooks.OnError != nil {
			hooks.OnError(err)
		}
	}
}

func (h *hookInvoker[T]) invokeComplete() {
	for _, hooks := range h.sets {
		if hooks.OnComplete != nil {
			hooks.OnComplete()
		}
	}
}

// hookedObserver runs hooks before forwarding each call.
type hookedObserver[T any] struct {
	downstream Observer[T]
	hooks      *hookInvoker[T]
}

func (o *hookedObserver[T]) OnNext(v T) {
	o.hooks.invokeValue(v)
	o.downstream.OnNext(v)
}

func (o *hookedObserver[T]) OnError(err error) {
	o.hooks.invokeError(err)
	o.downstream.OnError(err)
}

func (o *hookedObserver[T]) OnCompleted() {
	o.hooks.invokeComplete()
	o.downstream.OnCompleted()
}
