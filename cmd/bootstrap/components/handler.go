package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewPaymentWebhookHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)

func NewHandlers(
	booking *api.BookingHandler,
	room *api.RoomHandler,
	webhook *api.PaymentWebhookHandler,
	auth *middleware.AuthMiddleware,
) handler.Handlers {
	return handler.Handlers{
		Booking:        booking,
		Room:           room,
		PaymentWebhook: webhook,
		Auth:           auth,
	}
}
