package aggregate

import (
	"context"

	"github.com/lguimbarda/min-rx/rx/core"
)

// Config provides context-level defaults for aggregate operators.
//
//	ctx = core.WithConfig(ctx, &aggregate.Config{Capacity: 4096})
type Config struct {
	// Capacity presizes the accumulator of collecting operators.
	// A value of 0 or negative means no presizing.
	Capacity int
}

// Option configures a single aggregate operator.
type Option func(*Config)

// WithCapacity presizes the accumulator to hold n values before growing.
// It only affects allocation; the accumulator grows without bound either way.
func WithCapacity(n int) Option {
	return func(c *Config) {
		c.Capacity = n
	}
}

// resolveConfig merges the context config with explicit options.
// Explicit options take precedence.
func resolveConfig(ctx context.Context, opts []Option) Config {
	var cfg Config
	if base := core.ConfigOr[*Config](ctx, nil); base != nil {
		cfg = *base
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	return cfg
}
