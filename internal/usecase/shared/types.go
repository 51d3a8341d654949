package shared

import (
	"context"
	"encoding/json"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
)

//go:generate mockgen -source=types.go -destination=../../mock/shared/types_mock.go -package=sharedmock

// BookingStatusRow is the minimal projection the status reconciler works on.
type BookingStatusRow struct {
	ID     uuid.UUID
	Status booking.Status
	Period booking.StayPeriod
}

const (
	TopicBookingCreated          = "booking.created"
	TopicBookingUpdated          = "booking.updated"
	TopicBookingDeleted          = "booking.deleted"
	TopicBookingCancelled        = "booking.cancelled"
	TopicBookingPaymentConfirmed = "booking.payment_confirmed"
)

type BookingEvent struct {
	BookingID uuid.UUID
	Topic     string
	Payload   []byte
	RunAt     time.Time
}

type PendingEvent struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Topic     string
	Payload   []byte
	Attempts  int32
}

type BookingEventPayload struct {
	BookingID     uuid.UUID `json:"bookingId"`
	GuestID       uuid.UUID `json:"guestId"`
	RoomID        uuid.UUID `json:"roomId"`
	BranchID      uuid.UUID `json:"branchId"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	TotalAmount   string    `json:"totalAmount"`
	ActorID       uuid.UUID `json:"actorId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewBookingEvent(topic string, b *booking.Booking, actor user.Actor, at time.Time) (BookingEvent, error) {
	payload, err := json.Marshal(BookingEventPayload{
		BookingID:     b.ID(),
		GuestID:       b.GuestID(),
		RoomID:        b.RoomID(),
		BranchID:      b.BranchID(),
		CheckIn:       b.Period().CheckIn().Format(time.DateOnly),
		CheckOut:      b.Period().CheckOut().Format(time.DateOnly),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		TotalAmount:   b.Total().String(),
		ActorID:       actor.UserID(),
		OccurredAt:    at.UTC(),
	})
	if err != nil {
		return BookingEvent{}, err
	}
	return BookingEvent{
		BookingID: b.ID(),
		Topic:     topic,
		Payload:   payload,
		RunAt:     at,
	}, nil
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Status      string     `json:"status"`
	Fingerprint string     `json:"fingerprint"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
}

// IdempotencyStore reserves client supplied keys per actor.
// Reserve returns reserved=false together with the existing record when the key is taken.
type IdempotencyStore interface {
	Reserve(ctx context.Context, scope, key, fingerprint string, ttl time.Duration) (existing *IdempotencyRecord, reserved bool, err error)
	Complete(ctx context.Context, scope, key, fingerprint string, bookingID uuid.UUID, ttl time.Duration) error
	Release(ctx context.Context, scope, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, messageID uuid.UUID, payload []byte) error
}
