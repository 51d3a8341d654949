package booking

import "time"

// DeriveStatus is the creation-time rule: check-in today is current, before today is past, otherwise upcoming.
func DeriveStatus(checkIn, today time.Time) Status {
	switch {
	case checkIn.Equal(today):
		return StatusCurrent
	case checkIn.Before(today):
		return StatusPast
	default:
		return StatusUpcoming
	}
}

// StayStatus places today relative to the stay itself.
func StayStatus(p StayPeriod, today time.Time) Status {
	switch {
	case today.Before(p.CheckIn()):
		return StatusUpcoming
	case today.Before(p.CheckOut()):
		return StatusCurrent
	default:
		return StatusPast
	}
}

// Progress returns the effective status of a stored booking on the given day.
// Cancelled and past are terminal, and the result never moves backwards from stored.
func Progress(stored Status, p StayPeriod, today time.Time) Status {
	if !stored.IsLive() {
		return stored
	}
	if derived := StayStatus(p, today); derived.rank() > stored.rank() {
		return derived
	}
	return stored
}
