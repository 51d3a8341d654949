package booking

import (
	"hotel-booking/internal/domain/money"
)

type PriceCalculator interface {
	Total(nightlyRate money.Money, period StayPeriod) (money.Money, error)
}

// NightlyPriceCalculator charges the room's nightly rate for every night of the stay.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) Total(nightlyRate money.Money, period StayPeriod) (money.Money, error) {
	nights := period.Nights()
	if nights <= 0 {
		return money.Money{}, ErrInvalidDateRange
	}
	return nightlyRate.Times(nights)
}
