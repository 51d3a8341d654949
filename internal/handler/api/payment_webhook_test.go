//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/validation"
	commandsmock "hotel-booking/internal/mock/commands"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/testutil"
	"hotel-booking/internal/testutil/builder"
	"hotel-booking/internal/testutil/httptest"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(t *testing.T, secret string) (*gin.Engine, *commandsmock.MockPaymentCommands) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	cfg := config.NewTestConfig()
	cfg.Webhook.PaymentSecret = secret

	payments := commandsmock.NewMockPaymentCommands(gomock.NewController(t))
	router := gin.New()
	router.POST("/api/webhooks/payments", api.NewPaymentWebhookHandler(payments, cfg).Handle)
	return router, payments
}

func TestPaymentWebhookHandler(t *testing.T) {
	view := builder.NewBookingBuilder().BuildView()
	url := "/api/webhooks/payments"
	body := map[string]any{"bookingId": view.ID.String(), "paymentMethod": "online", "reference": "ch_123"}

	t.Run("confirms payment as the system actor", func(t *testing.T) {
		router, payments := newWebhookRouter(t, "s3cret")
		payments.EXPECT().ConfirmPayment(gomock.Any(), user.SystemActor(), view.ID, testutil.Ptr("online")).
			Return(&commands.ConfirmPaymentResult{Booking: view, RoomOccupied: true}, nil)

		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, url, body, "",
			map[string]string{"X-Webhook-Secret": "s3cret"})

		var res resdto.PaymentConfirmationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.Equal(t, view.ID.String(), res.ID)
		assert.True(t, res.RoomOccupied)
	})

	t.Run("wrong secret", func(t *testing.T) {
		router, _ := newWebhookRouter(t, "s3cret")

		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, url, body, "",
			map[string]string{"X-Webhook-Secret": "guess"})
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "unauthorized")
	})

	t.Run("disabled without a configured secret", func(t *testing.T) {
		router, _ := newWebhookRouter(t, "")

		rec := httptest.PerformRequest(t, router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "service_unavailable")
	})

	t.Run("missing booking id", func(t *testing.T) {
		router, _ := newWebhookRouter(t, "s3cret")

		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, url, map[string]any{"reference": "ch_123"}, "",
			map[string]string{"X-Webhook-Secret": "s3cret"})
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "validation_failed")
	})

	t.Run("unknown booking", func(t *testing.T) {
		router, payments := newWebhookRouter(t, "s3cret")
		payments.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).Return(nil, commands.ErrBookingNotFound)

		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, url, body, "",
			map[string]string{"X-Webhook-Secret": "s3cret"})
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "booking_not_found")
	})
}
