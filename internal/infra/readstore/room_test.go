//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/readstore"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	readstoremock "hotel-booking/internal/mock/readstore"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("success: nil amenities become an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockRoomViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewRoomReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetRoomByID(ctx, mockDB, roomID).Return(sqlc.Rooms{
			ID:        roomID,
			BranchID:  uuid.New(),
			Number:    "301",
			Type:      "single",
			Price:     pgconv.NumericFromMinorUnits(8999),
			Status:    "maintenance",
			MaxGuests: 1,
		}, nil)

		view, err := store.FindByID(ctx, roomID)
		require.NoError(t, err)
		assert.Equal(t, "89.99", view.NightlyRate.String())
		assert.Equal(t, "maintenance", view.Status)
		assert.NotNil(t, view.Amenities)
		assert.Empty(t, view.Amenities)
	})

	t.Run("error: room not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockRoomViewQueries(ctrl)
		store := readstore.NewRoomReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetRoomByID(ctx, gomock.Any(), roomID).Return(sqlc.Rooms{}, pgx.ErrNoRows)

		view, err := store.FindByID(ctx, roomID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}

func TestRoomReadStore_CountLiveOverlaps(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockRoomViewQueries(ctrl)
	store := readstore.NewRoomReadStore(mockQueries, &mockDBTX{})

	roomID := uuid.New()
	period, err := booking.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)

	mockQueries.EXPECT().CountOverlappingBookings(ctx, gomock.Any(), sqlc.CountOverlappingBookingsParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(checkIn),
		CheckOut: pgconv.DateToPgtype(checkOut),
	}).Return(int64(1), nil)

	n, err := store.CountLiveOverlaps(ctx, roomID, period)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mockQueries.EXPECT().CountOverlappingBookings(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errDBConnectionLost)
	_, err = store.CountLiveOverlaps(ctx, roomID, period)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
