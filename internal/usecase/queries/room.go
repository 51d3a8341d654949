package queries

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=room.go -destination=../../mock/queries/room_mock.go -package=queriesmock

type RoomView struct {
	ID          uuid.UUID   `json:"id"`
	BranchID    uuid.UUID   `json:"branch_id"`
	Number      string      `json:"number"`
	Type        string      `json:"type"`
	NightlyRate money.Money `json:"nightly_rate"`
	Status      string      `json:"status"`
	MaxGuests   int32       `json:"max_guests"`
	Amenities   []string    `json:"amenities"`
}

type QuoteView struct {
	RoomID      uuid.UUID      `json:"room_id"`
	RoomNumber  string         `json:"room_number"`
	RoomType    string         `json:"room_type"`
	CheckIn     time.Time      `json:"check_in"`
	CheckOut    time.Time      `json:"check_out"`
	Nights      int64          `json:"nights"`
	NightlyRate money.Money    `json:"nightly_rate"`
	Available   bool           `json:"available"`
	Breakdown   money.Checkout `json:"breakdown"`
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	CountLiveOverlaps(ctx context.Context, roomID uuid.UUID, period booking.StayPeriod) (int64, error)
}

type RoomQueries interface {
	Quote(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*QuoteView, error)
}

type roomQueriesImpl struct {
	store  RoomReadStore
	calc   booking.PriceCalculator
	policy *money.CheckoutPolicy
}

func NewRoomQueries(store RoomReadStore, calc booking.PriceCalculator, policy *money.CheckoutPolicy) RoomQueries {
	return &roomQueriesImpl{store: store, calc: calc, policy: policy}
}

// Quote prices a prospective stay with the same calculator used at creation.
func (q *roomQueriesImpl) Quote(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*QuoteView, error) {
	period, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	rm, err := q.store.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	subtotal, err := q.calc.Total(rm.NightlyRate, period)
	if err != nil {
		return nil, err
	}
	breakdown, err := q.policy.Breakdown(subtotal)
	if err != nil {
		return nil, err
	}

	overlaps, err := q.store.CountLiveOverlaps(ctx, roomID, period)
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		RoomID:      rm.ID,
		RoomNumber:  rm.Number,
		RoomType:    rm.Type,
		CheckIn:     period.CheckIn(),
		CheckOut:    period.CheckOut(),
		Nights:      period.Nights(),
		NightlyRate: rm.NightlyRate,
		Available:   overlaps == 0 && rm.Status != room.StatusMaintenance.String(),
		Breakdown:   breakdown,
	}, nil
}
