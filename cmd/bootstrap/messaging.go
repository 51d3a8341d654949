package bootstrap

import (
	"context"

	"hotel-booking/internal/infra/messaging"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher logs events instead of publishing them when AMQP_URL is empty.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if cfg.AMQP.URL == "" {
		return messaging.LogPublisher{}
	}

	publisher := messaging.NewRabbitPublisher(cfg.AMQP)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			publisher.Close()
			return nil
		},
	})
	return publisher
}
