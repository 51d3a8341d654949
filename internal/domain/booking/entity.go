package booking

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange     = errors.New("check-out must be after check-in")
	ErrInvalidDate          = errors.New("invalid calendar date")
	ErrNoteTooLong          = errors.New("note is too long")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrBookingCancelled     = errors.New("booking is cancelled")
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type Booking struct {
	id            uuid.UUID
	guestID       uuid.UUID
	roomID        uuid.UUID
	branchID      uuid.UUID
	period        StayPeriod
	status        Status
	paymentStatus PaymentStatus
	paymentMethod *PaymentMethod
	total         money.Money
	notes         Note
	createdAt     time.Time
	updatedAt     time.Time
}

type NewBookingParams struct {
	GuestID       uuid.UUID
	RoomID        uuid.UUID
	BranchID      uuid.UUID
	Period        StayPeriod
	PaymentMethod *PaymentMethod
	Notes         Note
}

func NewBooking(services *Services, p NewBookingParams, nightlyRate money.Money) (*Booking, error) {
	if p.PaymentMethod != nil && !p.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	total, err := services.PriceCalculator.Total(nightlyRate, p.Period)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	return &Booking{
		id:            uuid.New(),
		guestID:       p.GuestID,
		roomID:        p.RoomID,
		branchID:      p.BranchID,
		period:        p.Period,
		status:        DeriveStatus(p.Period.CheckIn(), clock.DateOf(now)),
		paymentStatus: PaymentPending,
		paymentMethod: p.PaymentMethod,
		total:         total,
		notes:         p.Notes,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, guestID, roomID, branchID uuid.UUID,
	period StayPeriod,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod *PaymentMethod,
	total money.Money,
	notes Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		guestID:       guestID,
		roomID:        roomID,
		branchID:      branchID,
		period:        period,
		status:        status,
		paymentStatus: paymentStatus,
		paymentMethod: paymentMethod,
		total:         total,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Patch carries the fields a staff edit may change. Nil means "leave as is".
type Patch struct {
	GuestID       *uuid.UUID
	RoomID        *uuid.UUID
	BranchID      *uuid.UUID
	CheckIn       *time.Time
	CheckOut      *time.Time
	Status        *Status
	PaymentStatus *PaymentStatus
	PaymentMethod *PaymentMethod
	TotalAmount   *money.Money
	Notes         *Note
}

// Change summarises what Apply did so the caller knows which invariants to re-check.
type Change struct {
	Rescheduled bool
	Revived     bool
	Moved       bool
}

// NeedsAvailabilityCheck is true when the booking may now collide with another live booking.
func (c Change) NeedsAvailabilityCheck() bool {
	return patch.Any(c.Rescheduled, c.Revived, c.Moved)
}

func (b *Booking) Apply(p Patch, now time.Time) (Change, error) {
	var change Change

	if p.Status != nil && !p.Status.IsValid() {
		return change, ErrInvalidStatus
	}
	if p.PaymentStatus != nil && !p.PaymentStatus.IsValid() {
		return change, ErrInvalidPaymentStatus
	}
	if p.PaymentMethod != nil && !p.PaymentMethod.IsValid() {
		return change, ErrInvalidPaymentMethod
	}

	period := b.period
	if p.CheckIn != nil || p.CheckOut != nil {
		var err error
		period, err = NewStayPeriod(
			patch.Coalesce(p.CheckIn, b.period.CheckIn()),
			patch.Coalesce(p.CheckOut, b.period.CheckOut()),
		)
		if err != nil {
			return change, err
		}
	}

	change.Rescheduled = !period.Equal(b.period)
	change.Moved = patch.Changed(p.RoomID, b.roomID)
	if p.Status != nil {
		change.Revived = !b.status.IsLive() && p.Status.IsLive()
	}

	b.period = period
	if p.GuestID != nil {
		b.guestID = *p.GuestID
	}
	if p.RoomID != nil {
		b.roomID = *p.RoomID
	}
	if p.BranchID != nil {
		b.branchID = *p.BranchID
	}
	if p.Status != nil {
		b.status = *p.Status
	}
	if p.PaymentStatus != nil {
		b.paymentStatus = *p.PaymentStatus
	}
	if p.PaymentMethod != nil {
		method := *p.PaymentMethod
		b.paymentMethod = &method
	}
	if p.TotalAmount != nil {
		b.total = *p.TotalAmount
	}
	if p.Notes != nil {
		b.notes = *p.Notes
	}
	b.updatedAt = now

	return change, nil
}

// Reprice recomputes the total from a nightly rate after the stay or room changed.
func (b *Booking) Reprice(calc PriceCalculator, nightlyRate money.Money) error {
	total, err := calc.Total(nightlyRate, b.period)
	if err != nil {
		return err
	}
	b.total = total
	return nil
}

// Cancel frees the room. A pending payment is cancelled with it; a settled one is kept for refunds.
func (b *Booking) Cancel(now time.Time) bool {
	if b.status == StatusCancelled {
		return false
	}
	b.status = StatusCancelled
	if b.paymentStatus == PaymentPending {
		b.paymentStatus = PaymentCancelled
	}
	b.updatedAt = now
	return true
}

func (b *Booking) ConfirmPayment(method *PaymentMethod, now time.Time) (bool, error) {
	if b.status == StatusCancelled {
		return false, ErrBookingCancelled
	}
	if method != nil && !method.IsValid() {
		return false, ErrInvalidPaymentMethod
	}
	if b.paymentStatus == PaymentPaid {
		return false, nil
	}
	b.paymentStatus = PaymentPaid
	if method != nil {
		m := *method
		b.paymentMethod = &m
	}
	b.updatedAt = now
	return true, nil
}

// ProgressStatus advances the stored status to the effective one for today.
func (b *Booking) ProgressStatus(today time.Time, now time.Time) bool {
	next := Progress(b.status, b.period, today)
	if next == b.status {
		return false
	}
	b.status = next
	b.updatedAt = now
	return true
}

func (b *Booking) IsLive() bool { return b.status.IsLive() }

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) GuestID() uuid.UUID            { return b.guestID }
func (b *Booking) RoomID() uuid.UUID             { return b.roomID }
func (b *Booking) BranchID() uuid.UUID           { return b.branchID }
func (b *Booking) Period() StayPeriod            { return b.period }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus  { return b.paymentStatus }
func (b *Booking) PaymentMethod() *PaymentMethod { return b.paymentMethod }
func (b *Booking) Total() money.Money            { return b.total }
func (b *Booking) Notes() Note                   { return b.notes }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
