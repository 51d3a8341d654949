package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../mock/readstore/booking_mock.go -package=readstoremock

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingViewByIDParams) (sqlc.GetBookingViewByIDRow, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsParams) ([]sqlc.ListBookingViewsRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID returns the booking with its status derived for today.
func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID, today time.Time) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, sqlc.GetBookingViewByIDParams{
		Today: pgconv.DateToPgtype(today),
		ID:    id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view, err := rowToBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking view", err, infra.KindDBFailure)
	}
	return view, nil
}

func rowToBookingView(row sqlc.GetBookingViewByIDRow) (*queries.BookingView, error) {
	checkIn, checkOut := pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut)
	nights, err := nightsBetween(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	total, err := converter.MoneyFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:            row.ID,
		GuestID:       row.GuestID,
		GuestName:     row.GuestName,
		GuestEmail:    row.GuestEmail,
		RoomID:        row.RoomID,
		RoomNumber:    row.RoomNumber,
		RoomType:      row.RoomType,
		BranchID:      row.BranchID,
		BranchName:    row.BranchName,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		Status:        row.EffectiveStatus,
		StoredStatus:  row.StoredStatus,
		PaymentStatus: row.PaymentStatus,
		PaymentMethod: pgconv.StringPtrFromPgtype(row.PaymentMethod),
		TotalAmount:   total,
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// List pages through bookings ordered by (check_in, id). The keyset starts after
// filter.AfterCheckIn/AfterID when both are set.
func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingListFilter, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingViewsParams{
		Today:        pgconv.DateToPgtype(filter.Today),
		BranchID:     pgconv.UUIDPtrToPgtype(filter.BranchID),
		Status:       pgconv.StringPtrToPgtype(filter.Status),
		AfterCheckIn: pgconv.DatePtrToPgtype(filter.AfterCheckIn),
		AfterID:      pgconv.UUIDPtrToPgtype(filter.AfterID),
		RowLimit:     limit,
	}

	rows, err := r.queries.ListBookingViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		item, err := rowToBookingListItem(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking list item", err, infra.KindDBFailure)
		}
		result[i] = item
	}
	return result, nil
}

func rowToBookingListItem(row sqlc.ListBookingViewsRow) (*queries.BookingListItem, error) {
	checkIn, checkOut := pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut)
	nights, err := nightsBetween(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	total, err := converter.MoneyFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, err
	}

	return &queries.BookingListItem{
		ID:            row.ID,
		GuestID:       row.GuestID,
		GuestName:     row.GuestName,
		GuestEmail:    row.GuestEmail,
		RoomID:        row.RoomID,
		RoomNumber:    row.RoomNumber,
		RoomType:      row.RoomType,
		BranchID:      row.BranchID,
		BranchName:    row.BranchName,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		Status:        row.EffectiveStatus,
		PaymentStatus: row.PaymentStatus,
		PaymentMethod: pgconv.StringPtrFromPgtype(row.PaymentMethod),
		TotalAmount:   total,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func nightsBetween(checkIn, checkOut time.Time) (int64, error) {
	period, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return period.Nights(), nil
}
