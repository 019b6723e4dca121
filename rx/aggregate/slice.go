// Package aggregate provides operators that fold a stream into fewer values.
package aggregate

import (
	"context"
	"sync"

	"github.com/lguimbarda/min-rx/rx/core"
)

// ToSlice creates an Operator that buffers every value and, when the source
// completes, emits them as a single slice followed by completion.
//
// If the source fails, the error is forwarded and the buffered values are
// discarded. If the downstream panics while receiving the slice, the
// recovered failure is delivered to its OnError instead of OnCompleted. A
// panic from the downstream's OnError or OnCompleted is not recovered.
//
// Every value is held in memory until completion. Do not use ToSlice on
// infinite or very large streams; there is no bound and no eviction.
//
// The returned observer is not goroutine-safe. Use ToSliceSync for sources
// that emit concurrently.
func ToSlice[T any](opts ...Option) core.Operator[T, []T] {
	return func(ctx context.Context, downstream core.Observer[[]T]) core.Observer[T] {
		cfg := resolveConfig(ctx, opts)
		return &sliceObserver[T]{
			downstream: downstream,
			buf:        make([]T, 0, cfg.Capacity),
		}
	}
}

type sliceObserver[T any] struct {
	downstream core.Observer[[]T]
	buf        []T
}

func (s *sliceObserver[T]) OnNext(v T) {
	s.buf = append(s.buf, v)
}

func (s *sliceObserver[T]) OnError(err error) {
	s.buf = nil
	s.downstream.OnError(err)
}

func (s *sliceObserver[T]) OnCompleted() {
	snapshot := make([]T, len(s.buf))
	copy(snapshot, s.buf)
	s.buf = nil
	finish(s.downstream, snapshot)
}

// finish performs the single emission of a collected slice. Only the
// OnNext call is guarded.
func finish[T any](downstream core.Observer[[]T], snapshot []T) {
	if err := emit(downstream, snapshot); err != nil {
		downstream.OnError(err)
		return
	}
	downstream.OnCompleted()
}

// emit delivers v and converts a panic in the downstream OnNext into an
// error. Error panic values are returned unchanged.
func emit[T any](downstream core.Observer[T], v T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = core.NewPanicError(r)
		}
	}()
	downstream.OnNext(v)
	return nil
}

// ToSliceSync is ToSlice for sources that call the observer from several
// goroutines at once. Appends and the terminal transition are serialized
// with a mutex, and calls after termination are dropped. The downstream is
// invoked outside the lock.
func ToSliceSync[T any](opts ...Option) core.Operator[T, []T] {
	return func(ctx context.Context, downstream core.Observer[[]T]) core.Observer[T] {
		cfg := resolveConfig(ctx, opts)
		return &syncSliceObserver[T]{
			downstream: downstream,
			buf:        make([]T, 0, cfg.Capacity),
		}
	}
}

type syncSliceObserver[T any] struct {
	mu         sync.Mutex
	downstream core.Observer[[]T]
	buf        []T
	done       bool
}

func (s *syncSliceObserver[T]) OnNext(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	s.buf = append(s.buf, v)
}

func (s *syncSliceObserver[T]) OnError(err error) {
	if !s.terminate() {
		return
	}
	s.downstream.OnError(err)
}

func (s *syncSliceObserver[T]) OnCompleted() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	snapshot := make([]T, len(s.buf))
	copy(snapshot, s.buf)
	s.buf = nil
	s.mu.Unlock()

	finish(s.downstream, snapshot)
}

// terminate marks the observer done and reports whether this call did so.
func (s *syncSliceObserver[T]) terminate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return false
	}
	s.done = true
	s.buf = nil
	return true
}
