package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../mock/repository/booking_mock.go -package=repositorymock

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (sqlc.Bookings, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ListBookingsToProgress(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsToProgressParams) ([]sqlc.ListBookingsToProgressRow, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// FindForUpdate locks the booking row until the surrounding transaction ends.
func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindDBFailure)
	}
	return b, nil
}

// CountOverlapping counts live bookings on the room whose stay intersects period.
func (r *BookingRepository) CountOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, period booking.StayPeriod, excludeID *uuid.UUID) (int64, error) {
	n, err := r.queries.CountOverlappingBookings(ctx, tx, sqlc.CountOverlappingBookingsParams{
		RoomID:    roomID,
		CheckIn:   pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:  pgconv.DateToPgtype(period.CheckOut()),
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if _, err := r.queries.UpdateBooking(ctx, tx, converter.BookingToUpdateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ListToProgress(ctx context.Context, tx sqlc.DBTX, today time.Time, limit int32) ([]shared.BookingStatusRow, error) {
	rows, err := r.queries.ListBookingsToProgress(ctx, tx, sqlc.ListBookingsToProgressParams{
		Today:    pgconv.DateToPgtype(today),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings to progress", err)
	}

	out := make([]shared.BookingStatusRow, 0, len(rows))
	for _, row := range rows {
		status, err := booking.NewStatus(row.Status)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking status", err, infra.KindDBFailure)
		}
		period, err := booking.NewStayPeriod(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking stay", err, infra.KindDBFailure)
		}
		out = append(out, shared.BookingStatusRow{ID: row.ID, Status: status, Period: period})
	}
	return out, nil
}

// UpdateStatus is a compare-and-set on the stored status. It reports false when another writer got there first.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, expected, next booking.Status) (bool, error) {
	affected, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		Status:         next.String(),
		ID:             id,
		ExpectedStatus: expected.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return affected > 0, nil
}
