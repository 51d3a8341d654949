package request

import "github.com/google/uuid"

// PaymentWebhookRequest is what the payment provider posts after a successful charge.
type PaymentWebhookRequest struct {
	BookingID     uuid.UUID `json:"bookingId" binding:"required"`
	PaymentMethod *string   `json:"paymentMethod,omitempty" binding:"omitempty,oneof=cash online"`
	Reference     string    `json:"reference,omitempty" binding:"omitempty,max=200"`
}
