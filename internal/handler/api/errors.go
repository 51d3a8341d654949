package api

import (
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/validation"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: the first matching sentinel wins.
var errorMappings = []errorMapping{
	{commands.ErrRoomUnavailable, http.StatusConflict, "room_unavailable", "Room is not available for the selected dates"},
	{commands.ErrInvalidDateRange, http.StatusUnprocessableEntity, "invalid_date_range", "Check-out must be after check-in"},
	{queries.ErrInvalidDateRange, http.StatusUnprocessableEntity, "invalid_date_range", "Check-out must be after check-in"},
	{commands.ErrRoomNotFound, http.StatusNotFound, "room_not_found", "Room not found"},
	{queries.ErrRoomNotFound, http.StatusNotFound, "room_not_found", "Room not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "booking_not_found", "Booking not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "booking_not_found", "Booking not found"},
	{commands.ErrForbidden, http.StatusForbidden, "forbidden", "Booking is outside of your branch"},
	{queries.ErrBookingAccess, http.StatusForbidden, "forbidden", "Booking is outside of your branch"},
	{commands.ErrBranchMismatch, http.StatusUnprocessableEntity, "branch_mismatch", "Branch does not match the room's branch"},
	{commands.ErrBookingCancelled, http.StatusConflict, "booking_cancelled", "Booking is cancelled"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "idempotency_in_progress", "Request with this Idempotency-Key is still being processed"},
	{commands.ErrIdempotencyConflict, http.StatusConflict, "idempotency_conflict", "Idempotency-Key was already used with a different request"},
	{commands.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", "Invalid input"},
	{queries.ErrInvalidFilter, http.StatusBadRequest, "invalid_filter", "Invalid filter"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "invalid_cursor", "Invalid cursor"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithCode(c, m.status, m.code, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithCode(c, http.StatusBadRequest, "validation_failed", err, "Invalid request", validation.FieldErrors(err))
}
