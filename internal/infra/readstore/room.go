package readstore

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=room.go -destination=../../mock/readstore/room_mock.go -package=readstoremock

type RoomViewQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
}

type RoomReadStore struct {
	queries RoomViewQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomViewQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	rate, err := converter.MoneyFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room price", err, infra.KindDBFailure)
	}

	amenities := row.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &queries.RoomView{
		ID:          row.ID,
		BranchID:    row.BranchID,
		Number:      row.Number,
		Type:        row.Type,
		NightlyRate: rate,
		Status:      row.Status,
		MaxGuests:   row.MaxGuests,
		Amenities:   amenities,
	}, nil
}

// CountLiveOverlaps is a lock-free availability probe used for quotes. Writers re-check under lock.
func (r *RoomReadStore) CountLiveOverlaps(ctx context.Context, roomID uuid.UUID, period booking.StayPeriod) (int64, error) {
	n, err := r.queries.CountOverlappingBookings(ctx, r.db, sqlc.CountOverlappingBookingsParams{
		RoomID:    roomID,
		CheckIn:   pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:  pgconv.DateToPgtype(period.CheckOut()),
		ExcludeID: pgtype.UUID{},
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return n, nil
}
