//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"coach-flow/internal/domain/booking"
	"coach-flow/internal/domain/user"
	"coach-flow/internal/handler/api"
	resdto "coach-flow/internal/handler/dto/response"
	"coach-flow/internal/usecase/commands"
	"coach-flow/internal/usecase/queries"
	"coach-flow/tests/common/builder"
	"coach-flow/tests/common/httptest"
	"coach-flow/tests/common/testutil"
	commandsmock "coach-flow/tests/mock/commands"
	queriesmock "coach-flow/tests/mock/queries"

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
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actorID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleClient)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.POST("/bookings/:id/approve", authMiddleware, s.handler.Approve)
	s.router.POST("/bookings/:id/reject", authMiddleware, s.handler.Reject)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateRequestDTO()
	returnView := bb.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), s.actorID, reqBody.TrainerID, reqBody.ServiceID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Status, body.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: trainer_id (required)", mutate: testutil.Field("trainer_id", nil)},
			{name: "missing field: service_id (required)", mutate: testutil.Field("service_id", nil)},
			{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil)},
			{name: "malformed trainer_id", mutate: testutil.Field("trainer_id", "not-a-uuid")},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "yesterday")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "start time in the past",
				commandsError:  commands.ErrPastTime,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cannot book a time in the past",
			},
			{
				name:           "client banned",
				commandsError:  commands.ErrClientBanned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Banned",
			},
			{
				name:           "service not found",
				commandsError:  commands.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "trainer not found",
				commandsError:  commands.ErrTrainerNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Trainer not found",
			},
			{
				name:           "service belongs to another trainer",
				commandsError:  commands.ErrServiceTrainerMismatch,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Service does not belong to the trainer",
			},
			{
				name:           "slot unavailable",
				commandsError:  commands.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateBooking(gomock.Any(), s.actorID, reqBody.TrainerID, reqBody.ServiceID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	url := "/bookings"

	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().BuildListItem(),
		builder.NewBookingBuilder().WithStatus(booking.StatusAccepted).BuildListItem(),
	}

	s.Run("success: returns booking list with default parameters", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.actorID, queries.BookingListFilters{}, 1, 20).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		bookings, ok := response["bookings"].([]any)
		s.True(ok)
		s.Equal(len(items), len(bookings))
	})

	s.Run("success: passes filters through", func() {
		status := booking.StatusPending
		role := user.RoleClient
		tf := queries.TimeFilterUpcoming
		expectedFilters := queries.BookingListFilters{Status: &status, Role: &role, Time: &tf}

		s.mockQueries.EXPECT().
			List(gomock.Any(), s.actorID, expectedFilters, 2, 10).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?status=pending&role=client&time=upcoming&page=2&limit=10", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on invalid filter", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.actorID, gomock.Any(), 1, 20).
			Return(nil, queries.ErrInvalidFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=confirmed", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.ClientEmail, response.ClientEmail)
		s.Equal(returnView.ServiceName, response.ServiceName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 403 Forbidden when actor is not a participant", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, bookingID).
			Return(nil, queries.ErrBookingAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 500 on unexpected error", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, bookingID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestTransitions - approve / reject / cancel share the same error mapping
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitions() {
	bookingID := uuid.New()

	type op struct {
		name   string
		path   string
		expect func() *gomock.Call
	}

	ops := []op{
		{
			name: "approve",
			path: "/bookings/" + bookingID.String() + "/approve",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), s.actorID, bookingID)
			},
		},
		{
			name: "reject",
			path: "/bookings/" + bookingID.String() + "/reject",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().RejectBooking(gomock.Any(), s.actorID, bookingID)
			},
		},
		{
			name: "cancel",
			path: "/bookings/" + bookingID.String() + "/cancel",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.actorID, bookingID)
			},
		},
	}

	for _, o := range ops {
		s.Run(o.name+": returns 204 No Content on success", func() {
			o.expect().Return(nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, o.path, nil, "bearer-token")
			s.Equal(http.StatusNoContent, rec.Code)
		})

		s.Run(o.name+": 404 when booking is missing or foreign", func() {
			o.expect().Return(commands.ErrBookingNotFound).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, o.path, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
		})

		s.Run(o.name+": 401 Unauthorized when unauthenticated", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, o.path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
		})
	}

	s.Run("approve: 409 Conflict when booking is not pending", func() {
		s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), s.actorID, bookingID).
			Return(commands.ErrBookingNotPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/bookings/"+bookingID.String()+"/approve", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not pending")
	})

	s.Run("cancel: 409 Conflict when booking is already terminal", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.actorID, bookingID).
			Return(commands.ErrBookingNotCancellable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/bookings/"+bookingID.String()+"/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot be cancelled")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/invalid-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}
