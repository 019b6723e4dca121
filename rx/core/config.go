package core

import (
	"context"
)

// Operators read their defaults from the subscription context. A config is
// keyed by its Go type, so each package declares its own config struct and
// at most one value of that type is visible per context.

type configKey[C any] struct{}

// WithConfig returns a copy of ctx carrying cfg. A later WithConfig with the
// same type C shadows the earlier one.
//
//	ctx = core.WithConfig(ctx, &aggregate.Config{Capacity: 1024})
func WithConfig[C any](ctx context.Context, cfg C) context.Context {
	return context.WithValue(ctx, configKey[C]{}, cfg)
}

// GetConfig reports the config of type C carried by ctx, if any.
func GetConfig[C any](ctx context.Context) (C, bool) {
	cfg, ok := ctx.Value(configKey[C]{}).(C)
	return cfg, ok
}

// ConfigOr returns the config of type C carried by ctx, or fallback when
// there is none.
func ConfigOr[C any](ctx context.Context, fallback C) C {
	if cfg, ok := GetConfig[C](ctx); ok {
		return cfg
	}
	return fallback
}
