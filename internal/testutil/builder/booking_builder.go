//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	GuestID       uuid.UUID
	GuestName     string
	GuestEmail    string
	RoomID        uuid.UUID
	RoomNumber    string
	RoomType      string
	BranchID      uuid.UUID
	BranchName    string
	CheckIn       time.Time
	CheckOut      time.Time
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	PaymentMethod *booking.PaymentMethod
	TotalMinor    int64
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBookingBuilder defaults to a two-night upcoming stay at 100.00 per night.
func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:            uuid.New(),
		GuestID:       uuid.New(),
		GuestName:     "Ayesha Khan",
		GuestEmail:    "ayesha@example.com",
		RoomID:        uuid.New(),
		RoomNumber:    "101",
		RoomType:      "deluxe",
		BranchID:      uuid.New(),
		BranchName:    "Lahore",
		CheckIn:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Status:        booking.StatusUpcoming,
		PaymentStatus: booking.PaymentPending,
		TotalMinor:    20000,
		Notes:         "late arrival",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Period() booking.StayPeriod {
	p, err := booking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return p
}

func (b *BookingBuilder) Total() money.Money {
	m, err := money.New(b.TotalMinor)
	if err != nil {
		panic(err)
	}
	return m
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	note, err := booking.NewNote(b.Notes)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID, b.GuestID, b.RoomID, b.BranchID,
		b.Period(),
		b.Status,
		b.PaymentStatus,
		b.PaymentMethod,
		b.Total(),
		note,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	var method *string
	if b.PaymentMethod != nil {
		s := b.PaymentMethod.String()
		method = &s
	}
	return sqlc.Bookings{
		ID:            b.ID,
		GuestID:       b.GuestID,
		RoomID:        b.RoomID,
		BranchID:      b.BranchID,
		CheckIn:       pgconv.DateToPgtype(b.CheckIn),
		CheckOut:      pgconv.DateToPgtype(b.CheckOut),
		Status:        b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		PaymentMethod: pgconv.StringPtrToPgtype(method),
		TotalAmount:   pgconv.NumericFromMinorUnits(b.TotalMinor),
		Notes:         pgconv.NonEmptyText(b.Notes),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	notes := b.Notes
	return reqdto.CreateBookingRequest{
		GuestID:  b.GuestID,
		RoomID:   b.RoomID,
		BranchID: b.BranchID,
		CheckIn:  b.CheckIn.Format(time.DateOnly),
		CheckOut: b.CheckOut.Format(time.DateOnly),
		Notes:    &notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	var method *string
	if b.PaymentMethod != nil {
		s := b.PaymentMethod.String()
		method = &s
	}
	var notes *string
	if b.Notes != "" {
		n := b.Notes
		notes = &n
	}
	return &queries.BookingView{
		ID:            b.ID,
		GuestID:       b.GuestID,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		RoomID:        b.RoomID,
		RoomNumber:    b.RoomNumber,
		RoomType:      b.RoomType,
		BranchID:      b.BranchID,
		BranchName:    b.BranchName,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Nights:        b.Period().Nights(),
		Status:        b.Status.String(),
		StoredStatus:  b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		PaymentMethod: method,
		TotalAmount:   b.Total(),
		Notes:         notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	v := b.BuildView()
	return &queries.BookingListItem{
		ID:            v.ID,
		GuestID:       v.GuestID,
		GuestName:     v.GuestName,
		GuestEmail:    v.GuestEmail,
		RoomID:        v.RoomID,
		RoomNumber:    v.RoomNumber,
		RoomType:      v.RoomType,
		BranchID:      v.BranchID,
		BranchName:    v.BranchName,
		CheckIn:       v.CheckIn,
		CheckOut:      v.CheckOut,
		Nights:        v.Nights,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		PaymentMethod: v.PaymentMethod,
		TotalAmount:   v.TotalAmount,
		CreatedAt:     v.CreatedAt,
	}
}

// BuildRoom is the room the booking points at, priced so that nights x rate equals the total.
func (b *BookingBuilder) BuildRoom() *room.Room {
	rate, err := money.New(b.TotalMinor / max(b.Period().Nights(), 1))
	if err != nil {
		panic(err)
	}
	return room.ReconstructRoom(b.RoomID, b.BranchID, b.RoomNumber, b.RoomType, rate, room.StatusAvailable)
}
