package money

import (
	"errors"
	"math/big"
	"strings"
)

var (
	ErrInvalidRate     = errors.New("invalid rate")
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// CheckoutPolicy is the single place where tax and currency conversion are applied.
// Stored amounts are always in Currency; ChargeCurrency only appears at the payment boundary.
type CheckoutPolicy struct {
	Currency       string
	ChargeCurrency string
	taxRate        *big.Rat
	exchangeRate   *big.Rat
}

type Checkout struct {
	Subtotal         Money
	TaxRate          string
	Tax              Money
	Total            Money
	Currency         string
	ChargeCurrency   string
	ExchangeRate     string
	ChargeTotalMinor int64
}

func NewCheckoutPolicy(currency, chargeCurrency, taxRate, exchangeRate string) (*CheckoutPolicy, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	chargeCurrency = strings.ToUpper(strings.TrimSpace(chargeCurrency))
	if len(currency) != 3 || len(chargeCurrency) != 3 {
		return nil, ErrInvalidCurrency
	}

	tax, ok := new(big.Rat).SetString(strings.TrimSpace(taxRate))
	if !ok || tax.Sign() < 0 || tax.Cmp(big.NewRat(1, 1)) > 0 {
		return nil, ErrInvalidRate
	}
	fx, ok := new(big.Rat).SetString(strings.TrimSpace(exchangeRate))
	if !ok || fx.Sign() <= 0 {
		return nil, ErrInvalidRate
	}
	if currency == chargeCurrency && fx.Cmp(big.NewRat(1, 1)) != 0 {
		return nil, ErrInvalidRate
	}

	return &CheckoutPolicy{
		Currency:       currency,
		ChargeCurrency: chargeCurrency,
		taxRate:        tax,
		exchangeRate:   fx,
	}, nil
}

func (p *CheckoutPolicy) Breakdown(subtotal Money) (Checkout, error) {
	tax := Money{minor: roundHalfUp(new(big.Rat).Mul(big.NewRat(subtotal.minor, 1), p.taxRate))}
	total, err := subtotal.Add(tax)
	if err != nil {
		return Checkout{}, err
	}
	charged := roundHalfUp(new(big.Rat).Mul(big.NewRat(total.minor, 1), p.exchangeRate))

	return Checkout{
		Subtotal:         subtotal,
		TaxRate:          p.taxRate.FloatString(4),
		Tax:              tax,
		Total:            total,
		Currency:         p.Currency,
		ChargeCurrency:   p.ChargeCurrency,
		ExchangeRate:     p.exchangeRate.FloatString(4),
		ChargeTotalMinor: charged,
	}, nil
}

// roundHalfUp rounds a non-negative rational to the nearest integer, ties away from zero.
func roundHalfUp(r *big.Rat) int64 {
	num := new(big.Int).Mul(r.Num(), big.NewInt(2))
	num.Add(num, r.Denom())
	den := new(big.Int).Mul(r.Denom(), big.NewInt(2))
	return new(big.Int).Quo(num, den).Int64()
}
