package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: ReadCommitted write transaction with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable write transaction for availability checks
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Events() BookingEventRepository
	DB() sqlc.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	CountOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, period booking.StayPeriod, excludeID *uuid.UUID) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	ListToProgress(ctx context.Context, tx sqlc.DBTX, today time.Time, limit int32) ([]BookingStatusRow, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, expected, next booking.Status) (bool, error)
}

type RoomRepository interface {
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*room.Room, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, r *room.Room) error
}

type BookingEventRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, event BookingEvent) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]PendingEvent, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, runAt time.Time, maxAttempts int32) error
}
