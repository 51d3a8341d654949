package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const webhookSecretHeader = "X-Webhook-Secret"

var (
	errWebhookDisabled = errs.New("payment webhook secret not configured")
	errWebhookSecret   = errs.New("invalid webhook secret")
)

// PaymentWebhookHandler receives payment confirmations from the provider.
// It authenticates with a shared secret instead of a staff token.
type PaymentWebhookHandler struct {
	payments commands.PaymentCommands
	secret   []byte
}

func NewPaymentWebhookHandler(payments commands.PaymentCommands, cfg config.Config) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{
		payments: payments,
		secret:   []byte(cfg.Webhook.PaymentSecret),
	}
}

// @Summary Payment webhook
// @Description Confirms payment for a booking. Authenticated by the X-Webhook-Secret header.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Shared secret"
// @Param request body reqdto.PaymentWebhookRequest true "Payment notification"
// @Success 200 {object} resdto.PaymentConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/webhooks/payments [post]
func (h *PaymentWebhookHandler) Handle(c *gin.Context) {
	if len(h.secret) == 0 {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, errWebhookDisabled, "Payment webhook is disabled", nil)
		return
	}
	provided := []byte(c.GetHeader(webhookSecretHeader))
	if subtle.ConstantTimeCompare(provided, h.secret) != 1 {
		httperr.AbortWithError(c, http.StatusUnauthorized, errWebhookSecret, "Invalid webhook secret", nil)
		return
	}

	var req reqdto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.payments.ConfirmPayment(c.Request.Context(), user.SystemActor(), req.BookingID, req.PaymentMethod)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	slog.Info("payment webhook processed",
		"booking_id", req.BookingID,
		"reference", req.Reference,
		"already_paid", result.AlreadyPaid)
	renderPaymentResult(c, result)
}
