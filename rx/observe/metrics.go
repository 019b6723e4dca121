// Package observe provides pass-through operators for monitoring streams:
// OpenTelemetry counters and structured zap logging.
package observe

import (
	"context"
	"fmt"

	"github.com/lguimbarda/min-rx/rx/core"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names recorded by Metrics.
const (
	ValuesCounter      = "rx.values"
	ErrorsCounter      = "rx.errors"
	CompletionsCounter = "rx.completions"
)

// StreamAttr is the attribute key carrying the stream name on every
// measurement.
const StreamAttr = attribute.Key("rx.stream")

type instruments struct {
	values      metric.Int64Counter
	errors      metric.Int64Counter
	completions metric.Int64Counter
	attrs       metric.MeasurementOption
}

func newInstruments(meter metric.Meter, name string) (*instruments, error) {
	values, err := meter.Int64Counter(ValuesCounter, metric.WithDescription("count of values delivered"))
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", ValuesCounter, err)
	}
	errs, err := meter.Int64Counter(ErrorsCounter, metric.WithDescription("count of terminal errors"))
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", ErrorsCounter, err)
	}
	completions, err := meter.Int64Counter(CompletionsCounter, metric.WithDescription("count of normal completions"))
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", CompletionsCounter, err)
	}
	return &instruments{
		values:      values,
		errors:      errs,
		completions: completions,
		attrs:       metric.WithAttributes(StreamAttr.String(name)),
	}, nil
}

// Metrics creates an Operator that forwards every call unchanged and counts
// values, errors and completions on meter. Measurements are tagged with the
// stream name. Instruments are created once, here; an error is returned if
// the meter rejects them.
func Metrics[T any](meter metric.Meter, name string) (core.Operator[T, T], error) {
	inst, err := newInstruments(meter, name)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, downstream core.Observer[T]) core.Observer[T] {
		return &meteredObserver[T]{ctx: ctx, downstream: downstream, inst: inst}
	}, nil
}

type meteredObserver[T any] struct {
	ctx        context.Context
	downstream core.Observer[T]
	inst       *instruments
}

func (m *meteredObserver[T]) OnNext(v T) {
	m.inst.values.Add(m.ctx, 1, m.inst.attrs)
	m.downstream.OnNext(v)
}

func (m *meteredObserver[T]) OnError(err error) {
	m.inst.errors.Add(m.ctx, 1, m.inst.attrs)
	m.downstream.OnError(err)
}

func (m *meteredObserver[T]) OnCompleted() {
	m.inst.completions.Add(m.ctx, 1, m.inst.attrs)
	m.downstream.OnCompleted()
}
