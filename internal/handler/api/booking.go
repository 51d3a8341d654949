package api

import (
	"net/http"

	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyMaxLength = 128

var (
	errActorMissing          = errs.New("actor missing from context")
	errIdempotencyKeyTooLong = errs.New("idempotency key too long")
)

type BookingHandler struct {
	cmds     commands.BookingCommands
	payments commands.PaymentCommands
	q        queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, payments commands.PaymentCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, payments: payments, q: q}
}

// @Summary Create booking
// @Description Book a room for a guest. Overlapping live bookings on the same room are rejected.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays with the same key return the original booking"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 200 {object} resdto.CreateBookingResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errActorMissing, "Unauthorized", nil)
		return
	}

	idempotencyKey := c.GetHeader("Idempotency-Key")
	if len(idempotencyKey) > idempotencyKeyMaxLength {
		httperr.AbortWithError(c, http.StatusBadRequest, errIdempotencyKeyTooLong, "Idempotency-Key is too long", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actor, in, idempotencyKey)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	body, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render booking", nil)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/bookings/"+body.ID)
	c.JSON(status, resdto.CreateBookingResponse{BookingResponse: body, Replayed: result.IsReplayed})
}

// @Summary List bookings
// @Description List bookings newest check-in first. Employees only see their own branch.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Effective status" Enums(upcoming, current, past, cancelled)
// @Param branchId query string false "Branch ID (admins only, employees may pass their own)"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (1-200, default 20)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errActorMissing, "Unauthorized", nil)
		return
	}

	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	filters, err := query.Filters()
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), actor, filters, query.Cursor(), query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	body, err := resdto.FromBookingList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render bookings", nil)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.renderBooking(c, http.StatusOK, view)
}

// @Summary Update booking
// @Description Partial update. status is ignored unless allowStatusOverride=true.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param allowStatusOverride query bool false "Honour the status field"
// @Param request body reqdto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	var query reqdto.UpdateBookingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), actor, id, in, query.AllowStatusOverride)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.renderBooking(c, http.StatusOK, view)
}

// @Summary Delete booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking
// @Description Cancels the booking and frees the room. Cancelling twice is a no-op.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.renderBooking(c, http.StatusOK, view)
}

// @Summary Confirm payment
// @Description Marks the booking paid and the room occupied. Confirming twice is a no-op.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConfirmPaymentRequest false "Payment method"
// @Success 200 {object} resdto.PaymentConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/payment-confirmation [post]
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.ConfirmPaymentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithBindError(c, err)
			return
		}
	}

	result, err := h.payments.ConfirmPayment(c.Request.Context(), actor, id, req.PaymentMethod)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	renderPaymentResult(c, result)
}

// @Summary Checkout breakdown
// @Description Subtotal, tax and the amount in the charge currency for a stored booking.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/checkout [get]
func (h *BookingHandler) Checkout(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	view, err := h.q.Checkout(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromCheckoutView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render checkout", nil)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (h *BookingHandler) renderBooking(c *gin.Context, status int, view *queries.BookingView) {
	body, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render booking", nil)
		return
	}
	c.JSON(status, body)
}

func renderPaymentResult(c *gin.Context, result *commands.ConfirmPaymentResult) {
	body, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentConfirmationResponse{
		BookingResponse: body,
		AlreadyPaid:     result.AlreadyPaid,
		RoomOccupied:    result.RoomOccupied,
	})
}

func actorAndID(c *gin.Context) (actor user.Actor, id uuid.UUID, ok bool) {
	actor, ok = middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errActorMissing, "Unauthorized", nil)
		return actor, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return actor, uuid.Nil, false
	}
	return actor, id, true
}
