//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	queriesmock "hotel-booking/internal/mock/queries"
	sharedmock "hotel-booking/internal/mock/shared"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// now is 2025-06-01 in the hotel timezone; "today" for status derivation.
var now = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

type fixture struct {
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	bookings    *sharedmock.MockBookingRepository
	rooms       *sharedmock.MockRoomRepository
	events      *sharedmock.MockBookingEventRepository
	idempotency *sharedmock.MockIdempotencyStore
	publisher   *sharedmock.MockEventPublisher
	views       *queriesmock.MockBookingQueries
	clock       *clock.MockClock
	services    *booking.Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:        ctrl,
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		bookings:    sharedmock.NewMockBookingRepository(ctrl),
		rooms:       sharedmock.NewMockRoomRepository(ctrl),
		events:      sharedmock.NewMockBookingEventRepository(ctrl),
		idempotency: sharedmock.NewMockIdempotencyStore(ctrl),
		publisher:   sharedmock.NewMockEventPublisher(ctrl),
		views:       queriesmock.NewMockBookingQueries(ctrl),
		clock:       clock.NewMockClock(now),
	}
	f.services = &booking.Services{
		Clock:           f.clock,
		PriceCalculator: booking.NewNightlyPriceCalculator(),
	}

	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Events().Return(f.events).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

func runTx(tx shared.Tx) func(context.Context, func(context.Context, shared.Tx) error) error {
	return func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, tx)
	}
}

// expectSerializable runs the transaction body once against the fixture's tx.
func (f *fixture) expectSerializable() {
	f.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(runTx(f.tx))
}

func (f *fixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(runTx(f.tx))
}

func (f *fixture) expectEvent(topic string) {
	f.events.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, ev shared.BookingEvent) error {
			if ev.Topic != topic {
				f.ctrl.T.Errorf("unexpected event topic %q, want %q", ev.Topic, topic)
			}
			return nil
		})
}

func adminActor(t *testing.T) user.Actor {
	t.Helper()
	a, err := user.NewActor(uuid.New(), user.RoleAdmin, nil)
	require.NoError(t, err)
	return a
}

func employeeActor(t *testing.T, branchID uuid.UUID) user.Actor {
	t.Helper()
	a, err := user.NewActor(uuid.New(), user.RoleEmployee, &branchID)
	require.NoError(t, err)
	return a
}

func testRoom(t *testing.T, branchID uuid.UUID, rateMinor int64, status room.Status) *room.Room {
	t.Helper()
	rate, err := money.New(rateMinor)
	require.NoError(t, err)
	return room.ReconstructRoom(uuid.New(), branchID, "101", "deluxe", rate, status)
}

func day(s string) time.Time {
	d, err := booking.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
