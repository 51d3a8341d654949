//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/handler/validation"
	commandsmock "hotel-booking/internal/mock/commands"
	queriesmock "hotel-booking/internal/mock/queries"
	"hotel-booking/internal/testutil"
	"hotel-booking/internal/testutil/builder"
	"hotel-booking/internal/testutil/httptest"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockPayments *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockBookingQueries
	actor        user.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	handler := api.NewBookingHandler(s.mockCommands, s.mockPayments, s.mockQueries)

	actor, err := user.NewActor(uuid.New(), user.RoleAdmin, nil)
	s.Require().NoError(err)
	s.actor = actor

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "unauthorized", "message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, s.actor)
		c.Next()
	}

	g := s.router.Group("/api/bookings", authMiddleware)
	g.POST("", handler.Create)
	g.GET("", handler.List)
	g.GET("/:id", handler.Get)
	g.PATCH("/:id", handler.Update)
	g.DELETE("/:id", handler.Delete)
	g.POST("/:id/cancel", handler.Cancel)
	g.POST("/:id/payment-confirmation", handler.ConfirmPayment)
	g.GET("/:id/checkout", handler.Checkout)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"

	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateRequestDTO()
	view := bb.BuildView()
	created := &commands.CreateBookingResult{Booking: view}

	bound := []testCaseBooking{
		{name: "notes length OK (2000 chars)", mutate: testutil.Field("notes", strings.Repeat("a", 2000)), expectCode: http.StatusCreated},
		{name: "notes length invalid (2001 chars)", mutate: testutil.Field("notes", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
		{name: "payment method cash", mutate: testutil.Field("paymentMethod", "cash"), expectCode: http.StatusCreated},
		{name: "payment method unknown", mutate: testutil.Field("paymentMethod", "cheque"), expectCode: http.StatusBadRequest},
		{name: "check-in not a date", mutate: testutil.Field("checkIn", "10/06/2025"), expectCode: http.StatusBadRequest},
		{name: "check-out impossible date", mutate: testutil.Field("checkOut", "2025-02-30"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseBooking{
		{name: "missing field: guestId (required)", mutate: testutil.Field("guestId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: roomId (required)", mutate: testutil.Field("roomId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: branchId (required)", mutate: testutil.Field("branchId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: checkIn (required)", mutate: testutil.Field("checkIn", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: checkOut (required)", mutate: testutil.Field("checkOut", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: notes (optional)", mutate: testutil.Field("notes", nil), expectCode: http.StatusCreated},
	}

	unknown := []testCaseBooking{
		{name: "malformed guestId", mutate: testutil.Field("guestId", "not-a-uuid"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{bound, missing, unknown}

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any(), "").
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("2025-06-10", body.CheckIn)
		s.Equal("200.00", body.TotalAmount)
		s.False(body.Replayed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + view.ID.String()})
	})

	s.Run("success: replay with Idempotency-Key returns 200", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any(), "key-1").
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": "key-1"})

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
	})

	s.Run("error: 400 on oversized Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": strings.Repeat("k", 129)})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "bad_request")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
							Return(created, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "validation_failed")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{"room unavailable", commands.ErrRoomUnavailable, http.StatusConflict, "room_unavailable"},
			{"invalid date range", commands.ErrInvalidDateRange, http.StatusUnprocessableEntity, "invalid_date_range"},
			{"room not found", commands.ErrRoomNotFound, http.StatusNotFound, "room_not_found"},
			{"forbidden branch", commands.ErrForbidden, http.StatusForbidden, "forbidden"},
			{"branch mismatch", commands.ErrBranchMismatch, http.StatusUnprocessableEntity, "branch_mismatch"},
			{"idempotency in progress", commands.ErrIdempotencyInProgress, http.StatusConflict, "idempotency_in_progress"},
			{"idempotency conflict", commands.ErrIdempotencyConflict, http.StatusConflict, "idempotency_conflict"},
			{"store failure", commands.ErrStoreFailure, http.StatusInternalServerError, "internal_server_error"},
			{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal_server_error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().BuildListItem(),
		builder.NewBookingBuilder().BuildListItem(),
	}

	s.Run("success: passes filters and returns the next cursor", func() {
		branchID := uuid.New()
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.actor, queries.BookingFilters{Status: testutil.Ptr("upcoming"), BranchID: &branchID}, &queries.Cursor{After: "abc"}, 2).
			Return(items, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings?status=upcoming&branchId="+branchID.String()+"&after=abc&limit=2", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next", *body.NextCursor)
	})

	s.Run("error: 400 on invalid query", func() {
		for _, q := range []string{"status=checked-in", "branchId=nope", "limit=-1", "limit=201"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?"+q, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "validation_failed")
			})
		}
	})

	s.Run("error: 400 on bad cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?after=zzz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_cursor")
	})

	s.Run("error: 403 when employee asks for another branch", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?branchId="+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "forbidden")
	})
}

// ================================================================================
// TestGet / TestCheckout
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+view.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal(int64(2), body.Nights)
		s.Equal(string(booking.StatusUpcoming), body.Status)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "bad_request")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking_not_found")
	})
}

func (s *BookingHandlerTestSuite) TestCheckout() {
	view := builder.NewBookingBuilder().BuildView()
	policy, err := money.NewCheckoutPolicy("USD", "PKR", "0.10", "278")
	s.Require().NoError(err)
	breakdown, err := policy.Breakdown(view.TotalAmount)
	s.Require().NoError(err)

	s.Run("success", func() {
		s.mockQueries.EXPECT().Checkout(gomock.Any(), s.actor, view.ID).
			Return(&queries.CheckoutView{
				BookingID:     view.ID,
				Status:        view.Status,
				PaymentStatus: view.PaymentStatus,
				Nights:        view.Nights,
				Breakdown:     breakdown,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+view.ID.String()+"/checkout", nil, "bearer-token")

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("200.00", body.Breakdown.Subtotal)
		s.Equal("20.00", body.Breakdown.Tax)
		s.Equal("220.00", body.Breakdown.Total)
		s.Equal("61160.00", body.Breakdown.ChargeTotal)
		s.Equal("PKR", body.Breakdown.ChargeCurrency)
	})

	s.Run("error: 403 outside branch", func() {
		s.mockQueries.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+view.ID.String()+"/checkout", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "forbidden")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/api/bookings/" + view.ID.String()

	s.Run("success: forwards partial fields and the override flag", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, view.ID, gomock.Any(), true).
			DoAndReturn(func(_ any, _ user.Actor, _ uuid.UUID, in commands.UpdateBookingInput, _ bool) (*queries.BookingView, error) {
				s.Require().NotNil(in.CheckOut)
				s.Equal("2025-06-14", in.CheckOut.Format("2006-01-02"))
				s.Require().NotNil(in.Status)
				s.Equal("cancelled", *in.Status)
				s.Nil(in.CheckIn)
				s.Nil(in.Notes)
				return view, nil
			}).Times(1)

		body := map[string]any{"checkOut": "2025-06-14", "status": "cancelled"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?allowStatusOverride=true", body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on validation errors", func() {
		for name, body := range map[string]map[string]any{
			"bad status":     {"status": "checked-in"},
			"bad amount":     {"totalAmount": "12.345"},
			"negative total": {"totalAmount": "-1.00"},
			"signed cents":   {"totalAmount": "1.+5"},
			"bad date":       {"checkIn": "2025-6-1"},
			"unknown field":  {"roomNumber": "101"},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "validation_failed")
			})
		}
	})

	s.Run("error: 409 on overlap", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).
			Return(nil, commands.ErrRoomUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"checkIn": "2025-06-11"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room_unavailable")
	})
}

// ================================================================================
// TestDelete / TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking_not_found")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusCancelled
		b.PaymentStatus = booking.PaymentCancelled
	}).BuildView()

	s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/cancel", nil, "bearer-token")

	var body resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("cancelled", body.Status)
	s.Equal("cancelled", body.PaymentStatus)
}

// ================================================================================
// TestConfirmPayment
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmPayment() {
	view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.PaymentStatus = booking.PaymentPaid
	}).BuildView()
	url := "/api/bookings/" + view.ID.String() + "/payment-confirmation"

	s.Run("success: empty body", func() {
		s.mockPayments.EXPECT().ConfirmPayment(gomock.Any(), s.actor, view.ID, gomock.Nil()).
			Return(&commands.ConfirmPaymentResult{Booking: view, RoomOccupied: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.PaymentConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("paid", body.PaymentStatus)
		s.True(body.RoomOccupied)
		s.False(body.AlreadyPaid)
	})

	s.Run("success: repeated confirmation", func() {
		s.mockPayments.EXPECT().ConfirmPayment(gomock.Any(), s.actor, view.ID, testutil.Ptr("online")).
			Return(&commands.ConfirmPaymentResult{Booking: view, AlreadyPaid: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"paymentMethod": "online"}, "bearer-token")

		var body resdto.PaymentConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.AlreadyPaid)
	})

	s.Run("error: 400 unknown method", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"paymentMethod": "barter"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "validation_failed")
	})

	s.Run("error: 409 cancelled booking", func() {
		s.mockPayments.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "booking_cancelled")
	})
}
