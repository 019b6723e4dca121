package observe

import (
	"context"

	"github.com/lguimbarda/min-rx/rx/core"
	"go.uber.org/zap"
)

// Log creates an Operator that forwards every call unchanged and logs it:
// values at Debug, errors at Error and completion at Info. Every entry
// carries the stream name; the completion entry also carries the number of
// values seen by this subscription.
func Log[T any](logger *zap.Logger, name string) core.Operator[T, T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("stream", name))
	return func(_ context.Context, downstream core.Observer[T]) core.Observer[T] {
		return &loggedObserver[T]{logger: logger, downstream: downstream}
	}
}

type loggedObserver[T any] struct {
	logger     *zap.Logger
	downstream core.Observer[T]
	count      int64
}

func (l *loggedObserver[T]) OnNext(v T) {
	l.count++
	if ce := l.logger.Check(zap.DebugLevel, "value"); ce != nil {
		ce.Write(zap.Int64("index", l.count-1), zap.Any("value", v))
	}
	l.downstream.OnNext(v)
}

func (l *loggedObserver[T]) OnError(err error) {
	l.logger.Error("stream failed", zap.Error(err), zap.Int64("values", l.count))
	l.downstream.OnError(err)
}

func (l *loggedObserver[T]) OnCompleted() {
	l.logger.Info("stream completed", zap.Int64("values", l.count))
	l.downstream.OnCompleted()
}
