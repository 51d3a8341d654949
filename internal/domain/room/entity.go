package room

import (
	"errors"

	"hotel-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid room status")
	ErrUnderMaintenance = errors.New("room is under maintenance")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Room is owned by the rooms admin screens; bookings only read its rate and branch
// and flip it to occupied once a stay is paid.
type Room struct {
	id          uuid.UUID
	branchID    uuid.UUID
	number      string
	roomType    string
	nightlyRate money.Money
	status      Status
}

func ReconstructRoom(id, branchID uuid.UUID, number, roomType string, nightlyRate money.Money, status Status) *Room {
	return &Room{
		id:          id,
		branchID:    branchID,
		number:      number,
		roomType:    roomType,
		nightlyRate: nightlyRate,
		status:      status,
	}
}

// Occupy marks the room taken by a paid stay. Rooms under maintenance stay as they are.
func (r *Room) Occupy() (bool, error) {
	switch r.status {
	case StatusOccupied:
		return false, nil
	case StatusMaintenance:
		return false, ErrUnderMaintenance
	}
	r.status = StatusOccupied
	return true, nil
}

func (r *Room) ID() uuid.UUID            { return r.id }
func (r *Room) BranchID() uuid.UUID      { return r.branchID }
func (r *Room) Number() string           { return r.number }
func (r *Room) Type() string             { return r.roomType }
func (r *Room) NightlyRate() money.Money { return r.nightlyRate }
func (r *Room) Status() Status           { return r.status }
