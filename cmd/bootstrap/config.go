package bootstrap

import (
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and rejects values that would only fail later at first use.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if _, err := time.LoadLocation(cfg.Booking.TimeZone); err != nil {
		return config.Config{}, errs.Wrapf(err, "invalid HOTEL_TIMEZONE %q", cfg.Booking.TimeZone)
	}
	if cfg.Booking.IdempotencyTTL <= 0 {
		return config.Config{}, errs.New("IDEMPOTENCY_TTL must be positive")
	}
	if cfg.Jobs.OutboxBatch <= 0 {
		return config.Config{}, errs.New("OUTBOX_BATCH must be positive")
	}
	return cfg, nil
}
