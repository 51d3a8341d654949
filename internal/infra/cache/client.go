package cache

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Connect returns nil without error when Redis is not configured.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	if cfg.Addr == "" {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		slog.Info("Closing redis client")
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}
