//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/testutil"
	"hotel-booking/internal/testutil/builder"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingCommands(f *fixture) commands.BookingCommands {
	return commands.NewBookingCommands(f.uow, f.services, f.views, f.idempotency, config.NewTestConfig())
}

func createInput(rm *room.Room, in, out string) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		GuestID:  uuid.New(),
		RoomID:   rm.ID(),
		BranchID: rm.BranchID(),
		CheckIn:  day(in),
		CheckOut: day(out),
	}
}

func TestBookingCommands_Create(t *testing.T) {
	branchID := uuid.New()

	t.Run("creates an upcoming booking priced by nights", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 15000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-13")

		var stored *booking.Booking
		f.expectSerializable()
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rm.ID()).Return(rm, nil)
		f.bookings.EXPECT().CountOverlapping(gomock.Any(), gomock.Any(), rm.ID(), gomock.Any(), gomock.Nil()).Return(int64(0), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				stored = b
				return nil
			})
		f.expectEvent(shared.TopicBookingCreated)
		f.views.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
				return &queries.BookingView{ID: id, Status: string(booking.StatusUpcoming)}, nil
			})

		res, err := newBookingCommands(f).Create(context.Background(), employeeActor(t, branchID), in, "")

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.False(t, res.IsReplayed)
		assert.Equal(t, stored.ID(), res.Booking.ID)
		assert.Equal(t, booking.StatusUpcoming, stored.Status())
		assert.Equal(t, booking.PaymentPending, stored.PaymentStatus())
		assert.Equal(t, int64(45000), stored.Total().Minor())
	})

	t.Run("check-in today starts as current", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-01", "2025-06-02")

		var stored *booking.Booking
		f.expectSerializable()
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rm.ID()).Return(rm, nil)
		f.bookings.EXPECT().CountOverlapping(gomock.Any(), gomock.Any(), rm.ID(), gomock.Any(), gomock.Nil()).Return(int64(0), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				stored = b
				return nil
			})
		f.expectEvent(shared.TopicBookingCreated)
		f.views.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).Return(&queries.BookingView{}, nil)

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, "")

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCurrent, stored.Status())
		assert.Equal(t, int64(10000), stored.Total().Minor())
	})

	t.Run("rejects check-out on or before check-in", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)

		for _, dates := range [][2]string{{"2025-06-10", "2025-06-10"}, {"2025-06-10", "2025-06-09"}} {
			in := createInput(rm, dates[0], dates[1])
			_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, "")
			testutil.AssertErrorIs(t, err, commands.ErrInvalidDateRange)
		}
	})

	t.Run("overlapping live booking makes the room unavailable", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")

		f.expectSerializable()
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rm.ID()).Return(rm, nil)
		f.bookings.EXPECT().CountOverlapping(gomock.Any(), gomock.Any(), rm.ID(), gomock.Any(), gomock.Nil()).Return(int64(1), nil)

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, "")

		testutil.AssertErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("exclusion constraint violation maps to room unavailable", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")

		f.expectSerializable()
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rm.ID()).Return(rm, nil)
		f.bookings.EXPECT().CountOverlapping(gomock.Any(), gomock.Any(), rm.ID(), gomock.Any(), gomock.Nil()).Return(int64(0), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create booking", errors.New("overlap"), infra.KindExclusionViolated))

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, "")

		testutil.AssertErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("unknown guest is invalid input", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")

		f.expectSerializable()
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rm.ID()).Return(rm, nil)
		f.bookings.EXPECT().CountOverlapping(gomock.Any(), gomock.Any(), rm.ID(), gomock.Any(), gomock.Nil()).Return(int64(0), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create booking", errors.New("fk"), infra.KindForeignKeyViolated))

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, "")

		testutil.AssertErrorIs(t, err, commands.ErrInvalidInput)
		assert.False(t, errs.Is(err, commands.ErrStoreFailure))
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")

		f.expectSerializable()
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rm.ID()).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, "")

		testutil.AssertErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("employee cannot book in another branch", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")

		_, err := newBookingCommands(f).Create(context.Background(), employeeActor(t, uuid.New()), in, "")

		testutil.AssertErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("room outside the requested branch", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, uuid.New(), 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")
		in.BranchID = branchID

		f.expectSerializable()
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rm.ID()).Return(rm, nil)

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, "")

		testutil.AssertErrorIs(t, err, commands.ErrBranchMismatch)
	})

	t.Run("unexpected database failure is a store failure", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")

		f.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, "")

		testutil.AssertErrorIs(t, err, commands.ErrStoreFailure)
	})

	t.Run("invalid payment method", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")
		in.PaymentMethod = testutil.Ptr("cheque")

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, "")

		testutil.AssertErrorIs(t, err, commands.ErrInvalidInput)
	})
}

func TestBookingCommands_CreateIdempotency(t *testing.T) {
	branchID := uuid.New()
	const key = "0b6f4a3e-key"

	t.Run("completed key replays the stored booking", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")
		actor := adminActor(t)
		bookingID := uuid.New()

		var fingerprint string
		f.idempotency.EXPECT().Reserve(gomock.Any(), actor.UserID().String(), key, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, fp string, _ any) (*shared.IdempotencyRecord, bool, error) {
				fingerprint = fp
				return &shared.IdempotencyRecord{Status: shared.IdempotencyCompleted, Fingerprint: fp, BookingID: &bookingID}, false, nil
			})
		f.views.EXPECT().GetByIDSystem(gomock.Any(), bookingID).Return(&queries.BookingView{ID: bookingID}, nil)

		res, err := newBookingCommands(f).Create(context.Background(), actor, in, key)

		require.NoError(t, err)
		assert.NotEmpty(t, fingerprint)
		assert.True(t, res.IsReplayed)
		assert.Equal(t, bookingID, res.Booking.ID)
	})

	t.Run("same key with a different body conflicts", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")

		f.idempotency.EXPECT().Reserve(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any()).
			Return(&shared.IdempotencyRecord{Status: shared.IdempotencyCompleted, Fingerprint: "other"}, false, nil)

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, key)

		testutil.AssertErrorIs(t, err, commands.ErrIdempotencyConflict)
	})

	t.Run("key still processing", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")

		f.idempotency.EXPECT().Reserve(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, fp string, _ any) (*shared.IdempotencyRecord, bool, error) {
				return &shared.IdempotencyRecord{Status: shared.IdempotencyProcessing, Fingerprint: fp}, false, nil
			})

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, key)

		testutil.AssertErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("failed create releases the key", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")
		actor := adminActor(t)

		f.idempotency.EXPECT().Reserve(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any()).Return(nil, true, nil)
		f.expectSerializable()
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rm.ID()).Return(rm, nil)
		f.bookings.EXPECT().CountOverlapping(gomock.Any(), gomock.Any(), rm.ID(), gomock.Any(), gomock.Nil()).Return(int64(2), nil)
		f.idempotency.EXPECT().Release(gomock.Any(), actor.UserID().String(), key).Return(nil)

		_, err := newBookingCommands(f).Create(context.Background(), actor, in, key)

		testutil.AssertErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("successful create completes the key", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")

		f.idempotency.EXPECT().Reserve(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any()).Return(nil, true, nil)
		f.expectSerializable()
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rm.ID()).Return(rm, nil)
		f.bookings.EXPECT().CountOverlapping(gomock.Any(), gomock.Any(), rm.ID(), gomock.Any(), gomock.Nil()).Return(int64(0), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.expectEvent(shared.TopicBookingCreated)
		viewID := uuid.New()
		f.views.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).Return(&queries.BookingView{ID: viewID}, nil)
		f.idempotency.EXPECT().Complete(gomock.Any(), gomock.Any(), key, gomock.Any(), viewID, gomock.Any()).Return(nil)

		res, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, key)

		require.NoError(t, err)
		assert.False(t, res.IsReplayed)
	})

	t.Run("idempotency store outage", func(t *testing.T) {
		f := newFixture(t)
		rm := testRoom(t, branchID, 10000, room.StatusAvailable)
		in := createInput(rm, "2025-06-10", "2025-06-12")

		f.idempotency.EXPECT().Reserve(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any()).
			Return(nil, false, errors.New("redis: connection refused"))

		_, err := newBookingCommands(f).Create(context.Background(), adminActor(t), in, key)

		testutil.AssertErrorIs(t, err, commands.ErrStoreFailure)
	})
}

func TestBookingCommands_Update(t *testing.T) {
	t.Run("status is ignored without override", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()

		var stored *booking.Booking
		f.expectSerializable()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(b, nil)
		f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				stored = b
				return nil
			})
		f.expectEvent(shared.TopicBookingUpdated)
		f.views.EXPECT().GetByIDSystem(gomock.Any(), bb.ID).Return(bb.BuildView(), nil)

		in := commands.UpdateBookingInput{
			Status: testutil.Ptr(string(booking.StatusPast)),
			Notes:  testutil.Ptr("moved to quiet floor"),
		}
		_, err := newBookingCommands(f).Update(context.Background(), adminActor(t), bb.ID, in, false)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusUpcoming, stored.Status())
		assert.Equal(t, "moved to quiet floor", stored.Notes().String())
	})

	t.Run("unknown guest on edit is invalid input", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()

		f.expectSerializable()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to update booking", errors.New("fk"), infra.KindForeignKeyViolated))

		in := commands.UpdateBookingInput{GuestID: testutil.Ptr(uuid.New())}
		_, err := newBookingCommands(f).Update(context.Background(), adminActor(t), bb.ID, in, false)

		testutil.AssertErrorIs(t, err, commands.ErrInvalidInput)
	})

	t.Run("reschedule re-checks availability and reprices", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()
		rm := bb.BuildRoom()

		var stored *booking.Booking
		f.expectSerializable()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(b, nil)
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.RoomID).Return(rm, nil)
		f.bookings.EXPECT().CountOverlapping(gomock.Any(), gomock.Any(), bb.RoomID, gomock.Any(), &bb.ID).Return(int64(0), nil)
		f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				stored = b
				return nil
			})
		f.expectEvent(shared.TopicBookingUpdated)
		f.views.EXPECT().GetByIDSystem(gomock.Any(), bb.ID).Return(bb.BuildView(), nil)

		checkOut := day("2025-06-14")
		in := commands.UpdateBookingInput{CheckOut: &checkOut}
		_, err := newBookingCommands(f).Update(context.Background(), adminActor(t), bb.ID, in, false)

		require.NoError(t, err)
		assert.Equal(t, int64(4), stored.Period().Nights())
		assert.Equal(t, rm.NightlyRate().Minor()*4, stored.Total().Minor())
	})

	t.Run("explicit total is kept on reschedule", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()

		var stored *booking.Booking
		f.expectSerializable()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(b, nil)
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.RoomID).Return(bb.BuildRoom(), nil)
		f.bookings.EXPECT().CountOverlapping(gomock.Any(), gomock.Any(), bb.RoomID, gomock.Any(), &bb.ID).Return(int64(0), nil)
		f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				stored = b
				return nil
			})
		f.expectEvent(shared.TopicBookingUpdated)
		f.views.EXPECT().GetByIDSystem(gomock.Any(), bb.ID).Return(bb.BuildView(), nil)

		checkOut := day("2025-06-14")
		in := commands.UpdateBookingInput{CheckOut: &checkOut, TotalAmount: testutil.Ptr("123.45")}
		_, err := newBookingCommands(f).Update(context.Background(), adminActor(t), bb.ID, in, false)

		require.NoError(t, err)
		assert.Equal(t, int64(12345), stored.Total().Minor())
	})

	t.Run("reschedule onto another booking", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()

		f.expectSerializable()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.RoomID).Return(bb.BuildRoom(), nil)
		f.bookings.EXPECT().CountOverlapping(gomock.Any(), gomock.Any(), bb.RoomID, gomock.Any(), &bb.ID).Return(int64(1), nil)

		checkIn := day("2025-06-11")
		in := commands.UpdateBookingInput{CheckIn: &checkIn}
		_, err := newBookingCommands(f).Update(context.Background(), adminActor(t), bb.ID, in, false)

		testutil.AssertErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("invalid range after merge", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()

		f.expectSerializable()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)

		checkIn := day("2025-06-12")
		in := commands.UpdateBookingInput{CheckIn: &checkIn}
		_, err := newBookingCommands(f).Update(context.Background(), adminActor(t), bb.ID, in, false)

		testutil.AssertErrorIs(t, err, commands.ErrInvalidDateRange)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		f.expectSerializable()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := newBookingCommands(f).Update(context.Background(), adminActor(t), id, commands.UpdateBookingInput{}, false)

		testutil.AssertErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("employee of another branch", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()

		f.expectSerializable()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)

		_, err := newBookingCommands(f).Update(context.Background(), employeeActor(t, uuid.New()), bb.ID, commands.UpdateBookingInput{}, false)

		testutil.AssertErrorIs(t, err, commands.ErrForbidden)
	})
}

func TestBookingCommands_Delete(t *testing.T) {
	t.Run("deletes and records an event", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()

		f.expectWithin()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), bb.ID).Return(nil)
		f.expectEvent(shared.TopicBookingDeleted)

		err := newBookingCommands(f).Delete(context.Background(), adminActor(t), bb.ID)

		require.NoError(t, err)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		f.expectWithin()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		err := newBookingCommands(f).Delete(context.Background(), adminActor(t), id)

		testutil.AssertErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestBookingCommands_Cancel(t *testing.T) {
	t.Run("cancels a pending booking", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()

		var stored *booking.Booking
		f.expectWithin()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				stored = b
				return nil
			})
		f.expectEvent(shared.TopicBookingCancelled)
		f.views.EXPECT().GetByIDSystem(gomock.Any(), bb.ID).Return(bb.BuildView(), nil)

		_, err := newBookingCommands(f).Cancel(context.Background(), adminActor(t), bb.ID)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, stored.Status())
		assert.Equal(t, booking.PaymentCancelled, stored.PaymentStatus())
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCancelled
			b.PaymentStatus = booking.PaymentCancelled
		})

		f.expectWithin()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.views.EXPECT().GetByIDSystem(gomock.Any(), bb.ID).Return(bb.BuildView(), nil)

		view, err := newBookingCommands(f).Cancel(context.Background(), adminActor(t), bb.ID)

		require.NoError(t, err)
		assert.Equal(t, bb.ID, view.ID)
	})
}
