package repository

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking_event.go -destination=../../mock/repository/booking_event_mock.go -package=repositorymock

type BookingEventQueries interface {
	CreateBookingEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingEventParams) error
	ClaimDueBookingEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueBookingEventsParams) ([]sqlc.BookingEvents, error)
	MarkBookingEventSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkBookingEventRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingEventRetryParams) error
}

// BookingEventRepository is the transactional outbox. Events are written in the same
// transaction as the booking change and relayed to the broker later.
type BookingEventRepository struct {
	queries BookingEventQueries
}

func NewBookingEventRepository(queries BookingEventQueries) *BookingEventRepository {
	return &BookingEventRepository{
		queries: queries,
	}
}

func (r *BookingEventRepository) Append(ctx context.Context, tx sqlc.DBTX, event shared.BookingEvent) error {
	err := r.queries.CreateBookingEvent(ctx, tx, sqlc.CreateBookingEventParams{
		BookingID: event.BookingID,
		Topic:     event.Topic,
		Payload:   event.Payload,
		RunAt:     pgconv.TimeToPgtype(event.RunAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append booking event", err)
	}
	return nil
}

// ClaimDue locks up to limit due events. Concurrent relays skip rows already claimed.
func (r *BookingEventRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.PendingEvent, error) {
	rows, err := r.queries.ClaimDueBookingEvents(ctx, tx, sqlc.ClaimDueBookingEventsParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim booking events", err)
	}

	events := make([]shared.PendingEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, shared.PendingEvent{
			ID:        row.ID,
			BookingID: row.BookingID,
			Topic:     row.Topic,
			Payload:   row.Payload,
			Attempts:  row.Attempts,
		})
	}
	return events, nil
}

func (r *BookingEventRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkBookingEventSent(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark booking event sent", err)
	}
	return nil
}

// MarkRetry reschedules the event, or parks it as failed once maxAttempts is reached.
func (r *BookingEventRepository) MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, runAt time.Time, maxAttempts int32) error {
	err := r.queries.MarkBookingEventRetry(ctx, tx, sqlc.MarkBookingEventRetryParams{
		LastError:   pgconv.NonEmptyText(lastErr),
		RunAt:       pgconv.TimeToPgtype(runAt),
		MaxAttempts: maxAttempts,
		ID:          id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule booking event", err)
	}
	return nil
}
