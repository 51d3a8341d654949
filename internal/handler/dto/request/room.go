package request

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
)

type QuoteQuery struct {
	CheckIn  string `form:"checkIn" binding:"required,dateonly"`
	CheckOut string `form:"checkOut" binding:"required,dateonly"`
}

func (q *QuoteQuery) Dates() (time.Time, time.Time, error) {
	checkIn, err := booking.ParseDate(q.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "checkIn")
	}
	checkOut, err := booking.ParseDate(q.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "checkOut")
	}
	return checkIn, checkOut, nil
}
