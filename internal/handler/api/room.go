package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	q queries.RoomQueries
}

func NewRoomHandler(q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{q: q}
}

// @Summary Price quote
// @Description Nights, subtotal, tax and charge-currency total for a prospective stay, plus current availability.
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rooms/{id}/quote [get]
func (h *RoomHandler) Quote(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	var query reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	checkIn, checkOut, err := query.Dates()
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	body, err := resdto.FromQuoteView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render quote", nil)
		return
	}
	c.JSON(http.StatusOK, body)
}
