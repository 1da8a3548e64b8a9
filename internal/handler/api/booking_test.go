//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"estate-booking/internal/domain/plot"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/handler/api"
	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase/commands"
	"estate-booking/internal/usecase/queries"
	"estate-booking/tests/common/httptest"
	"estate-booking/tests/common/testutil"
	commandsmock "estate-booking/tests/mock/commands"
	queriesmock "estate-booking/tests/mock/queries"

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
	callerID     uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.callerID = uuid.New()

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	auth := fakeAuth(s.callerID)
	s.router.POST("/bookings", auth, h.BookPlot)
	s.router.GET("/bookings", auth, h.ListMine)
	s.router.GET("/bookings/:id", auth, h.Get)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestBookPlot
// ================================================================================

func (s *BookingHandlerTestSuite) TestBookPlot() {
	plotID, projectID := uuid.New(), uuid.New()
	reqBody := map[string]any{
		"plotId":    plotID.String(),
		"projectId": projectID.String(),
		"bookingDetails": map[string]any{
			"notes":  "corner plot please",
			"status": "sold",
		},
	}

	s.Run("success: returns 201 with booking id", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().
			BookPlot(gomock.Any(), s.callerID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req commands.BookPlotRequest) (*commands.BookPlotResult, error) {
				s.Equal(plotID, req.PlotID)
				s.Equal(projectID, req.ProjectID)
				s.Equal("corner plot please", req.Details["notes"])
				return &commands.BookPlotResult{
					Success:       true,
					BookingID:     bookingID,
					Message:       "Plot booked successfully",
					IgnoredFields: []string{"status"},
				}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "client")

		var body resdto.BookPlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal(bookingID, body.BookingID)
		s.Equal("Plot booked successfully", body.Message)
		s.Equal([]string{"status"}, body.IgnoredFields)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + bookingID.String()})
	})

	s.Run("missing plotId reaches the usecase as nil id", func() {
		s.mockCommands.EXPECT().
			BookPlot(gomock.Any(), s.callerID, commands.BookPlotRequest{ProjectID: projectID}).
			Return(nil, commands.ErrMissingPlotID)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("plotId", nil), testutil.Field("bookingDetails", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "client")

		res := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "plotId is required")
		s.Equal(string(errs.CodeInvalidArgument), res.Error.Code)
	})

	s.Run("error: malformed ids and payloads are 400 without calling the usecase", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "bad plot uuid", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("plotId", "nope"))},
			{name: "bad project uuid", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("projectId", "12"))},
			{name: "details not an object", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("bookingDetails", "x"))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", tc.body, "client")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "")
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
				name:           "plot not found",
				commandsError:  commands.ErrPlotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "plot not found",
			},
			{
				name:           "project not found",
				commandsError:  commands.ErrProjectNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "project not found",
			},
			{
				name: "plot not available",
				commandsError: commands.ErrPlotNotAvailable.
					WithDetail("status", plot.StatusSold.String()).
					WithCause(&plot.NotAvailableError{Status: plot.StatusSold}),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "plot is not available",
			},
			{
				name:           "unauthenticated",
				commandsError:  errs.ErrUnauthenticated,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "not authenticated",
			},
			{
				name:           "internal error does not leak",
				commandsError:  errs.Internal(errors.New("connection reset by peer")),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BookPlot(gomock.Any(), s.callerID, gomock.Any()).
					Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "client")
				body := httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "connection reset")
				if tc.name == "plot not available" {
					s.Equal("sold", body.Detail["status"])
				}
			})
		}
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	items := []*queries.BookingView{
		{ID: uuid.New(), ClientID: s.callerID, Status: "pending", CreatedAt: now, Details: map[string]string{"notes": "n"}},
		{ID: uuid.New(), ClientID: s.callerID, Status: "cancelled", CreatedAt: now.Add(-time.Hour)},
	}

	s.Run("success: passes cursor and limit and returns next cursor", func() {
		s.mockQueries.EXPECT().
			ListMyBookings(gomock.Any(), s.callerID, &queries.Cursor{After: "abc"}, 2).
			Return(items, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=abc&limit=2", nil, "client")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal(items[0].ID, body.Items[0].ID)
		s.Equal("n", body.Items[0].Details["notes"])
		s.Equal("cancelled", body.Items[1].Status)
		s.Equal("next", body.NextCursor)
	})

	s.Run("first page without cursor", func() {
		s.mockQueries.EXPECT().
			ListMyBookings(gomock.Any(), s.callerID, (*queries.Cursor)(nil), 0).
			Return([]*queries.BookingView{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "client")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Empty(body.NextCursor)
	})

	s.Run("error: invalid limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=abc", nil, "client")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: invalid cursor", func() {
		s.mockQueries.EXPECT().
			ListMyBookings(gomock.Any(), s.callerID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=zzz", nil, "client")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: forwards caller role", func() {
		s.mockQueries.EXPECT().
			GetBooking(gomock.Any(), bookingID, s.callerID, user.RoleManager).
			Return(&queries.BookingView{ID: bookingID, ClientName: "Ada"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "manager")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.ID)
		s.Equal("Ada", body.ClientName)
	})

	s.Run("error: 400 for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "client")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: another client's booking is 403", func() {
		s.mockQueries.EXPECT().
			GetBooking(gomock.Any(), bookingID, s.callerID, user.RoleClient).
			Return(nil, queries.ErrBookingAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "client")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another client")
	})

	s.Run("error: 404 for missing booking", func() {
		s.mockQueries.EXPECT().
			GetBooking(gomock.Any(), bookingID, s.callerID, user.RoleClient).
			Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "client")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}
