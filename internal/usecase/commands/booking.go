package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../mock/commands/booking_mock.go -package=commandsmock

type CreateBookingInput struct {
	GuestID       uuid.UUID `json:"guestId"`
	RoomID        uuid.UUID `json:"roomId"`
	BranchID      uuid.UUID `json:"branchId"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

// UpdateBookingInput is a partial edit. Nil fields are left untouched.
type UpdateBookingInput struct {
	GuestID       *uuid.UUID
	RoomID        *uuid.UUID
	BranchID      *uuid.UUID
	CheckIn       *time.Time
	CheckOut      *time.Time
	Status        *string
	PaymentStatus *string
	PaymentMethod *string
	TotalAmount   *string
	Notes         *string
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateBookingInput, idempotencyKey string) (*CreateBookingResult, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateBookingInput, allowStatusOverride bool) (*queries.BookingView, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	services       *booking.Services
	views          queries.BookingQueries
	idempotency    shared.IdempotencyStore
	idempotencyTTL time.Duration
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	services *booking.Services,
	views queries.BookingQueries,
	idempotency shared.IdempotencyStore,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		services:       services,
		views:          views,
		idempotency:    idempotency,
		idempotencyTTL: cfg.Booking.IdempotencyTTL,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, actor user.Actor, in CreateBookingInput, idempotencyKey string) (*CreateBookingResult, error) {
	period, err := booking.NewStayPeriod(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, translateDomainErr(err)
	}
	params, err := newBookingParams(in, period)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessBranch(in.BranchID) {
		return nil, ErrForbidden
	}

	if idempotencyKey == "" {
		view, err := uc.create(ctx, actor, params)
		if err != nil {
			return nil, err
		}
		return &CreateBookingResult{Booking: view}, nil
	}

	scope := actor.UserID().String()
	fingerprint := requestFingerprint(in)

	replayed, err := uc.reserveKey(ctx, scope, idempotencyKey, fingerprint)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	view, err := uc.create(ctx, actor, params)
	if err != nil {
		if rerr := uc.idempotency.Release(ctx, scope, idempotencyKey); rerr != nil {
			slog.Warn("failed to release idempotency key", "key", idempotencyKey, "error", rerr.Error())
		}
		return nil, err
	}

	if cerr := uc.idempotency.Complete(ctx, scope, idempotencyKey, fingerprint, view.ID, uc.idempotencyTTL); cerr != nil {
		// booking is already committed; later replays will see the key as in progress until it expires
		slog.Warn("failed to complete idempotency key", "key", idempotencyKey, "booking_id", view.ID, "error", cerr.Error())
	}
	return &CreateBookingResult{Booking: view}, nil
}

// reserveKey returns the previously created booking when the request is a replay.
func (uc *bookingCommandsImpl) reserveKey(ctx context.Context, scope, key, fingerprint string) (*queries.BookingView, error) {
	existing, reserved, err := uc.idempotency.Reserve(ctx, scope, key, fingerprint, uc.idempotencyTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if reserved {
		return nil, nil
	}
	if existing == nil || existing.Fingerprint != fingerprint {
		return nil, ErrIdempotencyConflict
	}
	if existing.Status == shared.IdempotencyCompleted && existing.BookingID != nil {
		view, err := uc.views.GetByIDSystem(ctx, *existing.BookingID)
		if err != nil {
			if errs.Is(err, queries.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		return view, nil
	}
	return nil, ErrIdempotencyInProgress
}

func (uc *bookingCommandsImpl) create(ctx context.Context, actor user.Actor, params booking.NewBookingParams) (*queries.BookingView, error) {
	var created *booking.Booking
	err := uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindForUpdate(ctx, tx.DB(), params.RoomID)
		if err != nil {
			return translateRepoErr(err, ErrRoomNotFound)
		}
		if !actor.CanAccessBranch(rm.BranchID()) {
			return ErrForbidden
		}
		if rm.BranchID() != params.BranchID {
			return ErrBranchMismatch
		}

		if err := uc.ensureAvailable(ctx, tx, rm.ID(), params.Period, nil); err != nil {
			return err
		}

		b, err := booking.NewBooking(uc.services, params, rm.NightlyRate())
		if err != nil {
			return translateDomainErr(err)
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return translateRepoErr(err, nil)
		}
		if err := appendEvent(ctx, tx, shared.TopicBookingCreated, b, actor, uc.services.Clock.Now()); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, asStoreFailure(err)
	}

	return uc.readBack(ctx, created.ID())
}

func (uc *bookingCommandsImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateBookingInput, allowStatusOverride bool) (*queries.BookingView, error) {
	if !allowStatusOverride {
		in.Status = nil
	}
	patch, err := toPatch(in)
	if err != nil {
		return nil, err
	}
	if in.BranchID != nil && !actor.CanAccessBranch(*in.BranchID) {
		return nil, ErrForbidden
	}

	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return translateRepoErr(err, ErrBookingNotFound)
		}
		if !actor.CanAccessBranch(b.BranchID()) {
			return ErrForbidden
		}

		previousBranch := b.BranchID()
		change, err := b.Apply(patch, uc.services.Clock.Now())
		if err != nil {
			return translateDomainErr(err)
		}

		if change.NeedsAvailabilityCheck() || b.BranchID() != previousBranch {
			rm, err := tx.Rooms().FindForUpdate(ctx, tx.DB(), b.RoomID())
			if err != nil {
				return translateRepoErr(err, ErrRoomNotFound)
			}
			if !actor.CanAccessBranch(rm.BranchID()) {
				return ErrForbidden
			}
			if rm.BranchID() != b.BranchID() {
				return ErrBranchMismatch
			}
			if b.IsLive() {
				if err := uc.ensureAvailable(ctx, tx, rm.ID(), b.Period(), &id); err != nil {
					return err
				}
			}
			if patch.TotalAmount == nil && (change.Rescheduled || change.Moved) {
				if err := b.Reprice(uc.services.PriceCalculator, rm.NightlyRate()); err != nil {
					return translateDomainErr(err)
				}
			}
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return translateRepoErr(err, ErrBookingNotFound)
		}
		return appendEvent(ctx, tx, shared.TopicBookingUpdated, b, actor, uc.services.Clock.Now())
	})
	if err != nil {
		return nil, asStoreFailure(err)
	}

	return uc.readBack(ctx, id)
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return translateRepoErr(err, ErrBookingNotFound)
		}
		if !actor.CanAccessBranch(b.BranchID()) {
			return ErrForbidden
		}
		if err := tx.Bookings().Delete(ctx, tx.DB(), id); err != nil {
			return translateRepoErr(err, ErrBookingNotFound)
		}
		return appendEvent(ctx, tx, shared.TopicBookingDeleted, b, actor, uc.services.Clock.Now())
	})
	return asStoreFailure(err)
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return translateRepoErr(err, ErrBookingNotFound)
		}
		if !actor.CanAccessBranch(b.BranchID()) {
			return ErrForbidden
		}
		now := uc.services.Clock.Now()
		if !b.Cancel(now) {
			return nil
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return translateRepoErr(err, ErrBookingNotFound)
		}
		return appendEvent(ctx, tx, shared.TopicBookingCancelled, b, actor, now)
	})
	if err != nil {
		return nil, asStoreFailure(err)
	}
	return uc.readBack(ctx, id)
}

func (uc *bookingCommandsImpl) ensureAvailable(ctx context.Context, tx shared.Tx, roomID uuid.UUID, period booking.StayPeriod, excludeID *uuid.UUID) error {
	n, err := tx.Bookings().CountOverlapping(ctx, tx.DB(), roomID, period, excludeID)
	if err != nil {
		return translateRepoErr(err, nil)
	}
	if n > 0 {
		return ErrRoomUnavailable
	}
	return nil
}

// readBack loads the committed booking through the read side.
func (uc *bookingCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := uc.views.GetByIDSystem(ctx, id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func appendEvent(ctx context.Context, tx shared.Tx, topic string, b *booking.Booking, actor user.Actor, at time.Time) error {
	event, err := shared.NewBookingEvent(topic, b, actor, at)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if err := tx.Events().Append(ctx, tx.DB(), event); err != nil {
		return translateRepoErr(err, nil)
	}
	return nil
}

func newBookingParams(in CreateBookingInput, period booking.StayPeriod) (booking.NewBookingParams, error) {
	params := booking.NewBookingParams{
		GuestID:  in.GuestID,
		RoomID:   in.RoomID,
		BranchID: in.BranchID,
		Period:   period,
	}
	if in.PaymentMethod != nil {
		method, err := booking.NewPaymentMethod(*in.PaymentMethod)
		if err != nil {
			return params, translateDomainErr(err)
		}
		params.PaymentMethod = &method
	}
	if in.Notes != nil {
		note, err := booking.NewNote(*in.Notes)
		if err != nil {
			return params, translateDomainErr(err)
		}
		params.Notes = note
	}
	return params, nil
}

func toPatch(in UpdateBookingInput) (booking.Patch, error) {
	patch := booking.Patch{
		GuestID:  in.GuestID,
		RoomID:   in.RoomID,
		BranchID: in.BranchID,
	}
	if in.CheckIn != nil {
		d := clock.DateOf(*in.CheckIn)
		patch.CheckIn = &d
	}
	if in.CheckOut != nil {
		d := clock.DateOf(*in.CheckOut)
		patch.CheckOut = &d
	}
	if in.Status != nil {
		status, err := booking.NewStatus(*in.Status)
		if err != nil {
			return patch, translateDomainErr(err)
		}
		patch.Status = &status
	}
	if in.PaymentStatus != nil {
		ps, err := booking.NewPaymentStatus(*in.PaymentStatus)
		if err != nil {
			return patch, translateDomainErr(err)
		}
		patch.PaymentStatus = &ps
	}
	if in.PaymentMethod != nil {
		method, err := booking.NewPaymentMethod(*in.PaymentMethod)
		if err != nil {
			return patch, translateDomainErr(err)
		}
		patch.PaymentMethod = &method
	}
	if in.TotalAmount != nil {
		total, err := money.Parse(*in.TotalAmount)
		if err != nil {
			return patch, translateDomainErr(err)
		}
		patch.TotalAmount = &total
	}
	if in.Notes != nil {
		note, err := booking.NewNote(*in.Notes)
		if err != nil {
			return patch, translateDomainErr(err)
		}
		patch.Notes = &note
	}
	return patch, nil
}

func requestFingerprint(in CreateBookingInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
