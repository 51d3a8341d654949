package booking

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCurrent   Status = "current"
	StatusPast      Status = "past"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusCurrent, StatusPast, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsLive reports whether a booking in this status still blocks its room.
func (s Status) IsLive() bool {
	return s == StatusUpcoming || s == StatusCurrent
}

func (s Status) rank() int {
	switch s {
	case StatusUpcoming:
		return 1
	case StatusCurrent:
		return 2
	case StatusPast:
		return 3
	default:
		return 0
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled:
		return true
	default:
		return false
	}
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return status, nil
}

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCash || m == PaymentMethodOnline
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if !method.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return method, nil
}
