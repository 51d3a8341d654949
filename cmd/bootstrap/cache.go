package bootstrap

import (
	"context"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore falls back to a no-op store when REDIS_ADDR is empty.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config) (shared.IdempotencyStore, error) {
	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return cache.NoopIdempotencyStore{}, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return cache.NewRedisIdempotencyStore(client), nil
}
