package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../mock/commands/payment_mock.go -package=commandsmock

type ConfirmPaymentResult struct {
	Booking      *queries.BookingView
	AlreadyPaid  bool
	RoomOccupied bool
}

type PaymentCommands interface {
	ConfirmPayment(ctx context.Context, actor user.Actor, bookingID uuid.UUID, method *string) (*ConfirmPaymentResult, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	views    queries.BookingQueries
}

func NewPaymentCommands(uow shared.UnitOfWork, services *booking.Services, views queries.BookingQueries) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, services: services, views: views}
}

// ConfirmPayment settles a booking and marks its room occupied in the same transaction.
func (uc *paymentCommandsImpl) ConfirmPayment(ctx context.Context, actor user.Actor, bookingID uuid.UUID, method *string) (*ConfirmPaymentResult, error) {
	var paymentMethod *booking.PaymentMethod
	if method != nil {
		m, err := booking.NewPaymentMethod(*method)
		if err != nil {
			return nil, translateDomainErr(err)
		}
		paymentMethod = &m
	}

	result := &ConfirmPaymentResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return translateRepoErr(err, ErrBookingNotFound)
		}
		if !actor.CanAccessBranch(b.BranchID()) {
			return ErrForbidden
		}

		now := uc.services.Clock.Now()
		changed, err := b.ConfirmPayment(paymentMethod, now)
		if err != nil {
			return translateDomainErr(err)
		}
		if !changed {
			result.AlreadyPaid = true
			return nil
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return translateRepoErr(err, ErrBookingNotFound)
		}

		occupied, err := uc.occupyRoom(ctx, tx, b)
		if err != nil {
			return err
		}
		result.RoomOccupied = occupied

		return appendEvent(ctx, tx, shared.TopicBookingPaymentConfirmed, b, actor, now)
	})
	if err != nil {
		return nil, asStoreFailure(err)
	}

	view, err := uc.views.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, asStoreFailure(err)
	}
	result.Booking = view
	return result, nil
}

func (uc *paymentCommandsImpl) occupyRoom(ctx context.Context, tx shared.Tx, b *booking.Booking) (bool, error) {
	rm, err := tx.Rooms().FindForUpdate(ctx, tx.DB(), b.RoomID())
	if err != nil {
		return false, translateRepoErr(err, ErrRoomNotFound)
	}

	changed, err := rm.Occupy()
	if errors.Is(err, room.ErrUnderMaintenance) {
		slog.Warn("paid booking on a room under maintenance; room status left unchanged",
			"booking_id", b.ID(), "room_id", rm.ID())
		return false, nil
	}
	if err != nil || !changed {
		return false, err
	}

	if err := tx.Rooms().UpdateStatus(ctx, tx.DB(), rm); err != nil {
		return false, translateRepoErr(err, ErrRoomNotFound)
	}
	return true, nil
}
