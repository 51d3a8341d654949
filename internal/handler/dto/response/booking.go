package response

import (
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	GuestID       string    `json:"guestId"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	RoomID        string    `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	BranchID      string    `json:"branchId"`
	BranchName    string    `json:"branchName"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Nights        int64     `json:"nights"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentMethod *string   `json:"paymentMethod"`
	TotalAmount   string    `json:"totalAmount"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID            string    `json:"id"`
	GuestID       string    `json:"guestId"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	RoomID        string    `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	BranchID      string    `json:"branchId"`
	BranchName    string    `json:"branchName"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Nights        int64     `json:"nights"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentMethod *string   `json:"paymentMethod"`
	TotalAmount   string    `json:"totalAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor *string                    `json:"nextCursor"`
}

type CreateBookingResponse struct {
	*BookingResponse
	Replayed bool `json:"replayed"`
}

type PaymentConfirmationResponse struct {
	*BookingResponse
	AlreadyPaid  bool `json:"alreadyPaid"`
	RoomOccupied bool `json:"roomOccupied"`
}

// viewConverters turn ids, calendar dates and amounts into their wire form.
// time.Time fields that stay time.Time (createdAt, updatedAt) are copied as is.
var viewConverters = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(time.DateOnly), nil
			},
		},
		{
			SrcType: money.Money{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(money.Money).String(), nil
			},
		},
	},
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copier.CopyWithOption(res, v, viewConverters); err != nil {
		return nil, err
	}
	return res, nil
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListResponse, error) {
	res := &BookingListResponse{Items: make([]*BookingListItemResponse, len(items))}
	for i, it := range items {
		item := &BookingListItemResponse{}
		if err := copier.CopyWithOption(item, it, viewConverters); err != nil {
			return nil, err
		}
		res.Items[i] = item
	}
	if next != nil {
		after := next.After
		res.NextCursor = &after
	}
	return res, nil
}
