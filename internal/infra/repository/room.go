package repository

import (
	"context"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=room.go -destination=../../mock/repository/room_mock.go -package=repositorymock

type RoomWriteQueries interface {
	GetRoomForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	UpdateRoomStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomStatusParams) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{
		queries: queries,
	}
}

// FindForUpdate locks the room row. Bookings for the same room serialize on this lock.
func (r *RoomRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room", err)
	}

	rm, err := converter.RoomFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room", err, infra.KindDBFailure)
	}
	return rm, nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	affected, err := r.queries.UpdateRoomStatus(ctx, tx, sqlc.UpdateRoomStatusParams{
		Status: rm.Status().String(),
		ID:     rm.ID(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
