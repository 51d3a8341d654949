package converter

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		GuestID:       b.GuestID(),
		RoomID:        b.RoomID(),
		BranchID:      b.BranchID(),
		CheckIn:       pgconv.DateToPgtype(b.Period().CheckIn()),
		CheckOut:      pgconv.DateToPgtype(b.Period().CheckOut()),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		PaymentMethod: paymentMethodToPgtype(b.PaymentMethod()),
		TotalAmount:   pgconv.NumericFromMinorUnits(b.Total().Minor()),
		Notes:         pgconv.NonEmptyText(b.Notes().String()),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:            b.ID(),
		GuestID:       b.GuestID(),
		RoomID:        b.RoomID(),
		BranchID:      b.BranchID(),
		CheckIn:       pgconv.DateToPgtype(b.Period().CheckIn()),
		CheckOut:      pgconv.DateToPgtype(b.Period().CheckOut()),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		PaymentMethod: paymentMethodToPgtype(b.PaymentMethod()),
		TotalAmount:   pgconv.NumericFromMinorUnits(b.Total().Minor()),
		Notes:         pgconv.NonEmptyText(b.Notes().String()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow rebuilds the aggregate. Rows violating domain rules are reported, not repaired.
func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	period, err := booking.NewStayPeriod(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s has an invalid stay", row.ID)
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	paymentStatus, err := booking.NewPaymentStatus(row.PaymentStatus)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	var method *booking.PaymentMethod
	if row.PaymentMethod.Valid {
		m, err := booking.NewPaymentMethod(row.PaymentMethod.String)
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s", row.ID)
		}
		method = &m
	}

	total, err := MoneyFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s total", row.ID)
	}

	// stored notes were validated on write; a later limit change must not make old rows unreadable
	note, err := booking.NewNote(row.Notes.String)
	if err != nil {
		note = booking.Note{}
	}

	return booking.ReconstructBooking(
		row.ID, row.GuestID, row.RoomID, row.BranchID,
		period,
		status,
		paymentStatus,
		method,
		total,
		note,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RoomFromRow(row sqlc.Rooms) (*room.Room, error) {
	rate, err := MoneyFromNumeric(row.Price)
	if err != nil {
		return nil, errs.Wrapf(err, "room %s price", row.ID)
	}
	status, err := room.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "room %s", row.ID)
	}
	return room.ReconstructRoom(row.ID, row.BranchID, row.Number, row.Type, rate, status), nil
}

func MoneyFromNumeric(n pgtype.Numeric) (money.Money, error) {
	minor, err := pgconv.MinorUnitsFromNumeric(n)
	if err != nil {
		return money.Money{}, err
	}
	return money.New(minor)
}

func paymentMethodToPgtype(m *booking.PaymentMethod) pgtype.Text {
	if m == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: m.String(), Valid: true}
}
