package queries

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../mock/queries/booking_mock.go -package=queriesmock

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingAccess    = errs.New("booking outside of actor branch")
	ErrInvalidCursor    = errs.New("invalid cursor")
	ErrInvalidFilter    = errs.New("invalid filter")
	ErrInvalidDateRange = errs.New("invalid date range")
	ErrRoomNotFound     = errs.New("room not found")
)

// BookingView is the detail read model. Status is the effective status for today.
type BookingView struct {
	ID            uuid.UUID   `json:"id"`
	GuestID       uuid.UUID   `json:"guest_id"`
	GuestName     string      `json:"guest_name"`
	GuestEmail    string      `json:"guest_email"`
	RoomID        uuid.UUID   `json:"room_id"`
	RoomNumber    string      `json:"room_number"`
	RoomType      string      `json:"room_type"`
	BranchID      uuid.UUID   `json:"branch_id"`
	BranchName    string      `json:"branch_name"`
	CheckIn       time.Time   `json:"check_in"`
	CheckOut      time.Time   `json:"check_out"`
	Nights        int64       `json:"nights"`
	Status        string      `json:"status"`
	StoredStatus  string      `json:"stored_status"`
	PaymentStatus string      `json:"payment_status"`
	PaymentMethod *string     `json:"payment_method,omitempty"`
	TotalAmount   money.Money `json:"total_amount"`
	Notes         *string     `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID   `json:"id"`
	GuestID       uuid.UUID   `json:"guest_id"`
	GuestName     string      `json:"guest_name"`
	GuestEmail    string      `json:"guest_email"`
	RoomID        uuid.UUID   `json:"room_id"`
	RoomNumber    string      `json:"room_number"`
	RoomType      string      `json:"room_type"`
	BranchID      uuid.UUID   `json:"branch_id"`
	BranchName    string      `json:"branch_name"`
	CheckIn       time.Time   `json:"check_in"`
	CheckOut      time.Time   `json:"check_out"`
	Nights        int64       `json:"nights"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	PaymentMethod *string     `json:"payment_method,omitempty"`
	TotalAmount   money.Money `json:"total_amount"`
	CreatedAt     time.Time   `json:"created_at"`
}

type CheckoutView struct {
	BookingID     uuid.UUID      `json:"booking_id"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"payment_status"`
	Nights        int64          `json:"nights"`
	Breakdown     money.Checkout `json:"breakdown"`
}

type BookingFilters struct {
	Status   *string
	BranchID *uuid.UUID
}

type BookingListFilter struct {
	Today        time.Time
	Status       *string
	BranchID     *uuid.UUID
	AfterCheckIn *time.Time
	AfterID      *uuid.UUID
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID, today time.Time) (*BookingView, error)
	List(ctx context.Context, filter BookingListFilter, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor user.Actor, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	Checkout(ctx context.Context, actor user.Actor, id uuid.UUID) (*CheckoutView, error)
}

type bookingQueriesImpl struct {
	store  BookingReadStore
	clock  clock.Clock
	policy *money.CheckoutPolicy
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock, policy *money.CheckoutPolicy) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clk, policy: policy}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessBranch(view.BranchID) {
		return nil, ErrBookingAccess
	}
	return view, nil
}

// GetByIDSystem skips branch scoping; it serves read-after-write and idempotent replays.
func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id, clock.Today(q.clock))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Actor, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	branchID, err := actor.ScopeBranch(filters.BranchID)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrBookingAccess)
	}

	if filters.Status != nil {
		if _, serr := booking.NewStatus(*filters.Status); serr != nil {
			return nil, nil, errs.Mark(serr, ErrInvalidFilter)
		}
	}

	filter := BookingListFilter{
		Today:    clock.Today(q.clock),
		Status:   filters.Status,
		BranchID: branchID,
	}
	if cursor != nil && cursor.After != "" {
		afterCheckIn, afterID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, ErrInvalidCursor)
		}
		filter.AfterCheckIn = &afterCheckIn
		filter.AfterID = &afterID
	}

	limit = ValidateLimit(limit)
	rows, err := q.store.List(ctx, filter, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CheckIn, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *bookingQueriesImpl) Checkout(ctx context.Context, actor user.Actor, id uuid.UUID) (*CheckoutView, error) {
	view, err := q.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	breakdown, err := q.policy.Breakdown(view.TotalAmount)
	if err != nil {
		return nil, err
	}
	return &CheckoutView{
		BookingID:     view.ID,
		Status:        view.Status,
		PaymentStatus: view.PaymentStatus,
		Nights:        view.Nights,
		Breakdown:     breakdown,
	}, nil
}
