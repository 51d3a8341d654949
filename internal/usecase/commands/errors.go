package commands

import (
	"errors"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrRoomUnavailable       = errs.New("room unavailable")
	ErrInvalidDateRange      = errs.New("invalid date range")
	ErrRoomNotFound          = errs.New("room not found")
	ErrBookingNotFound       = errs.New("booking not found")
	ErrStoreFailure          = errs.New("store failure")
	ErrForbidden             = errs.New("forbidden")
	ErrBranchMismatch        = errs.New("branch does not match room")
	ErrBookingCancelled      = errs.New("booking is cancelled")
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
	ErrIdempotencyConflict   = errs.New("idempotency key reused with a different request")
	ErrInvalidInput          = errs.New("invalid input")
)

var useCaseErrors = []error{
	ErrRoomUnavailable,
	ErrInvalidDateRange,
	ErrRoomNotFound,
	ErrBookingNotFound,
	ErrStoreFailure,
	ErrForbidden,
	ErrBranchMismatch,
	ErrBookingCancelled,
	ErrIdempotencyInProgress,
	ErrIdempotencyConflict,
	ErrInvalidInput,
}

// asStoreFailure leaves use-case errors alone and marks anything else as a store failure.
func asStoreFailure(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range useCaseErrors {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, ErrStoreFailure)
}

// translateRepoErr maps repository failures; notFound is used for KindNotFound.
func translateRepoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound) && notFound != nil:
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindExclusionViolated):
		return errs.Mark(err, ErrRoomUnavailable)
	case infra.IsKind(err, infra.KindCheckViolated), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrInvalidInput)
	default:
		return errs.Mark(err, ErrStoreFailure)
	}
}

func translateDomainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, booking.ErrInvalidDateRange):
		return errs.Mark(err, ErrInvalidDateRange)
	case errors.Is(err, booking.ErrBookingCancelled):
		return errs.Mark(err, ErrBookingCancelled)
	case errors.Is(err, user.ErrBranchForbidden), errors.Is(err, user.ErrMissingBranch):
		return errs.Mark(err, ErrForbidden)
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrNoteTooLong),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidPaymentStatus),
		errors.Is(err, booking.ErrInvalidPaymentMethod),
		errors.Is(err, money.ErrNegativeAmount),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrAmountOverflow):
		return errs.Mark(err, ErrInvalidInput)
	default:
		return err
	}
}
