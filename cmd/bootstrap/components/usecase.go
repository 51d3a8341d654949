package components

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewHotelLocation,
	clock.NewRealClock,
	NewCheckoutPolicy,
	fx.Annotate(
		booking.NewNightlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(clock clock.Clock, calc booking.PriceCalculator) *booking.Services {
		return &booking.Services{
			Clock:           clock,
			PriceCalculator: calc,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		commands.NewStatusCommands,
		commands.NewOutboxCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewRoomQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewHotelLocation is the timezone that defines "today" for status derivation.
func NewHotelLocation(cfg config.Config) (*time.Location, error) {
	return clock.LoadLocation(cfg.Booking.TimeZone)
}

func NewCheckoutPolicy(cfg config.Config) (*money.CheckoutPolicy, error) {
	return money.NewCheckoutPolicy(
		cfg.Booking.Currency,
		cfg.Booking.ChargeCurrency,
		cfg.Booking.TaxRate,
		cfg.Booking.ExchangeRate,
	)
}
