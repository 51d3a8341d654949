package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"hotel-booking/internal/pkg/clock"
)

const (
	MaxNoteLength = 2000
	secondsPerDay = 24 * 60 * 60
)

// StayPeriod is the half-open interval [checkIn, checkOut) of calendar dates.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in, out := clock.DateOf(checkIn), clock.DateOf(checkOut)
	p := StayPeriod{checkIn: in, checkOut: out}
	if p.Nights() <= 0 {
		return StayPeriod{}, ErrInvalidDateRange
	}
	return p, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

// Nights is the calendar-day difference between check-out and check-in.
func (p StayPeriod) Nights() int64 {
	return (p.checkOut.Unix() - p.checkIn.Unix()) / secondsPerDay
}

// Overlaps uses half-open semantics: a stay ending on the day another begins does not overlap it.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

func (p StayPeriod) Equal(other StayPeriod) bool {
	return p.checkIn.Equal(other.checkIn) && p.checkOut.Equal(other.checkOut)
}

func (p StayPeriod) String() string {
	return "[" + p.checkIn.Format(time.DateOnly) + "," + p.checkOut.Format(time.DateOnly) + ")"
}

type Note struct {
	value string
}

func NewNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: s}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
