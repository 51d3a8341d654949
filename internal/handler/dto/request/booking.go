package request

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestID       uuid.UUID `json:"guestId" binding:"required"`
	RoomID        uuid.UUID `json:"roomId" binding:"required"`
	BranchID      uuid.UUID `json:"branchId" binding:"required"`
	CheckIn       string    `json:"checkIn" binding:"required,dateonly"`
	CheckOut      string    `json:"checkOut" binding:"required,dateonly"`
	PaymentMethod *string   `json:"paymentMethod,omitempty" binding:"omitempty,oneof=cash online"`
	Notes         *string   `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := booking.ParseDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, errs.Wrap(err, "checkIn")
	}
	checkOut, err := booking.ParseDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, errs.Wrap(err, "checkOut")
	}

	return commands.CreateBookingInput{
		GuestID:       r.GuestID,
		RoomID:        r.RoomID,
		BranchID:      r.BranchID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}, nil
}

// UpdateBookingRequest is a partial update. Absent fields are left unchanged.
type UpdateBookingRequest struct {
	GuestID       *uuid.UUID `json:"guestId,omitempty"`
	RoomID        *uuid.UUID `json:"roomId,omitempty"`
	BranchID      *uuid.UUID `json:"branchId,omitempty"`
	CheckIn       *string    `json:"checkIn,omitempty" binding:"omitempty,dateonly"`
	CheckOut      *string    `json:"checkOut,omitempty" binding:"omitempty,dateonly"`
	Status        *string    `json:"status,omitempty" binding:"omitempty,oneof=upcoming current past cancelled"`
	PaymentStatus *string    `json:"paymentStatus,omitempty" binding:"omitempty,oneof=pending paid cancelled"`
	PaymentMethod *string    `json:"paymentMethod,omitempty" binding:"omitempty,oneof=cash online"`
	TotalAmount   *string    `json:"totalAmount,omitempty" binding:"omitempty,amount"`
	Notes         *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

func (r *UpdateBookingRequest) ToInput() (commands.UpdateBookingInput, error) {
	in := commands.UpdateBookingInput{
		GuestID:       r.GuestID,
		RoomID:        r.RoomID,
		BranchID:      r.BranchID,
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
		PaymentMethod: r.PaymentMethod,
		TotalAmount:   r.TotalAmount,
		Notes:         r.Notes,
	}
	if r.CheckIn != nil {
		d, err := booking.ParseDate(*r.CheckIn)
		if err != nil {
			return commands.UpdateBookingInput{}, errs.Wrap(err, "checkIn")
		}
		in.CheckIn = &d
	}
	if r.CheckOut != nil {
		d, err := booking.ParseDate(*r.CheckOut)
		if err != nil {
			return commands.UpdateBookingInput{}, errs.Wrap(err, "checkOut")
		}
		in.CheckOut = &d
	}
	return in, nil
}

type UpdateBookingQuery struct {
	AllowStatusOverride bool `form:"allowStatusOverride"`
}

type ListBookingsQuery struct {
	Status   *string `form:"status" binding:"omitempty,oneof=upcoming current past cancelled"`
	BranchID *string `form:"branchId" binding:"omitempty,uuid"`
	After    string  `form:"after" binding:"omitempty,max=128"`
	Limit    int     `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListBookingsQuery) Filters() (queries.BookingFilters, error) {
	filters := queries.BookingFilters{Status: q.Status}
	if q.BranchID != nil {
		id, err := uuid.Parse(*q.BranchID)
		if err != nil {
			return queries.BookingFilters{}, errs.Wrap(err, "branchId")
		}
		filters.BranchID = &id
	}
	return filters, nil
}

func (q *ListBookingsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

type ConfirmPaymentRequest struct {
	PaymentMethod *string `json:"paymentMethod,omitempty" binding:"omitempty,oneof=cash online"`
}
