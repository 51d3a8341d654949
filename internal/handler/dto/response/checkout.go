package response

import (
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/usecase/queries"
)

type CheckoutBreakdownResponse struct {
	Subtotal       string `json:"subtotal"`
	TaxRate        string `json:"taxRate"`
	Tax            string `json:"tax"`
	Total          string `json:"total"`
	Currency       string `json:"currency"`
	ChargeCurrency string `json:"chargeCurrency"`
	ExchangeRate   string `json:"exchangeRate"`
	ChargeTotal    string `json:"chargeTotal"`
}

type CheckoutResponse struct {
	BookingID     string                    `json:"bookingId"`
	Status        string                    `json:"status"`
	PaymentStatus string                    `json:"paymentStatus"`
	Nights        int64                     `json:"nights"`
	Breakdown     CheckoutBreakdownResponse `json:"breakdown"`
}

type QuoteResponse struct {
	RoomID      string                    `json:"roomId"`
	RoomNumber  string                    `json:"roomNumber"`
	RoomType    string                    `json:"roomType"`
	CheckIn     string                    `json:"checkIn"`
	CheckOut    string                    `json:"checkOut"`
	Nights      int64                     `json:"nights"`
	NightlyRate string                    `json:"nightlyRate"`
	Available   bool                      `json:"available"`
	Breakdown   CheckoutBreakdownResponse `json:"breakdown"`
}

func FromCheckout(c money.Checkout) (CheckoutBreakdownResponse, error) {
	charge, err := money.New(c.ChargeTotalMinor)
	if err != nil {
		return CheckoutBreakdownResponse{}, err
	}
	return CheckoutBreakdownResponse{
		Subtotal:       c.Subtotal.String(),
		TaxRate:        c.TaxRate,
		Tax:            c.Tax.String(),
		Total:          c.Total.String(),
		Currency:       c.Currency,
		ChargeCurrency: c.ChargeCurrency,
		ExchangeRate:   c.ExchangeRate,
		ChargeTotal:    charge.String(),
	}, nil
}

func FromCheckoutView(v *queries.CheckoutView) (*CheckoutResponse, error) {
	breakdown, err := FromCheckout(v.Breakdown)
	if err != nil {
		return nil, err
	}
	return &CheckoutResponse{
		BookingID:     v.BookingID.String(),
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		Nights:        v.Nights,
		Breakdown:     breakdown,
	}, nil
}

func FromQuoteView(v *queries.QuoteView) (*QuoteResponse, error) {
	breakdown, err := FromCheckout(v.Breakdown)
	if err != nil {
		return nil, err
	}
	return &QuoteResponse{
		RoomID:      v.RoomID.String(),
		RoomNumber:  v.RoomNumber,
		RoomType:    v.RoomType,
		CheckIn:     v.CheckIn.Format(time.DateOnly),
		CheckOut:    v.CheckOut.Format(time.DateOnly),
		Nights:      v.Nights,
		NightlyRate: v.NightlyRate.String(),
		Available:   v.Available,
		Breakdown:   breakdown,
	}, nil
}
