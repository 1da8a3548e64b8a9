//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/handler/dto/request"
	"estate-booking/internal/handler/dto/response"
	"estate-booking/internal/pkg/jwt"
	"estate-booking/tests/common/builder"
	"estate-booking/tests/common/dbtest"
	"estate-booking/tests/common/httptest"
	"estate-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	projectURL      = "/api/projects/%s"
	projectPlotsURL = "/api/projects/%s/plots"
	plotStatusURL   = "/api/projects/%s/plots/%s/status"
	tasksURL        = "/api/tasks"
)

type BookingSuite struct {
	e2e.SharedSuite

	adminToken   string
	managerID    uuid.UUID
	managerToken string
	projectID    uuid.UUID
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	t := s.T()

	adminID := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin), "")
	s.adminToken = s.JWT.GenerateToken(t, adminID, user.RoleAdmin)
	s.managerID = dbtest.CreateTestUser(t, s.DB, "manager@example.com", string(user.RoleManager), "tok-manager")
	s.managerToken = s.JWT.GenerateToken(t, s.managerID, user.RoleManager)

	var created response.CreatedResponse
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/projects",
		request.CreateProjectRequest{Name: "Palm Grove", Location: "Lagos"}, s.adminToken)
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	s.projectID = created.ID

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(projectURL, s.projectID)+"/managers",
		request.AssignManagerRequest{ManagerID: s.managerID}, s.adminToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func (s *BookingSuite) createPlot(number string) uuid.UUID {
	t := s.T()
	b := builder.NewPlotBuilder(s.projectID).WithNumber(number)
	var created response.CreatedResponse
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(projectPlotsURL, s.projectID),
		request.CreatePlotRequest{PlotNumber: b.PlotNumber, Price: b.Price, SizeSqm: b.SizeSqm}, s.managerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created.ID
}

// newClient signs up a client through the profile sync endpoint.
func (s *BookingSuite) newClient(email string) (uuid.UUID, string) {
	t := s.T()
	id := uuid.New()
	token := s.JWT.GenerateIdentityToken(t, jwt.Identity{UserID: id, Role: user.RoleClient, Email: email, Name: "Client " + email})
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/me", request.SyncProfileRequest{}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return id, token
}

func (s *BookingSuite) project() response.ProjectResponse {
	var p response.ProjectResponse
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(projectURL, s.projectID), nil, "")
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &p)
	return p
}

func (s *BookingSuite) book(plotID uuid.UUID, token string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, request.BookPlotRequest{
		PlotID:    plotID.String(),
		ProjectID: s.projectID.String(),
		BookingDetails: map[string]any{
			"notes":  "call me",
			"status": "approved",
		},
	}, token)
}

func (s *BookingSuite) TestBookPlot() {
	s.Run("books an available plot and updates counters", func() {
		t := s.T()
		plotID := s.createPlot("A-1")
		s.createPlot("A-2")
		clientID, token := s.newClient("buyer@example.com")

		w := s.book(plotID, token)
		var res response.BookPlotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		assert.True(t, res.Success)
		assert.Equal(t, []string{"status"}, res.IgnoredFields)
		assert.Equal(t, fmt.Sprintf("%s/%s", bookingsURL, res.BookingID), w.Header().Get("Location"))

		p := s.project()
		assert.Equal(t, int32(2), p.TotalPlots)
		assert.Equal(t, int32(1), p.AvailablePlots)
		assert.Equal(t, int32(1), p.ReservedPlots)

		var booking response.BookingResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+res.BookingID.String(), nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &booking)
		assert.Equal(t, clientID, booking.ClientID)
		assert.Equal(t, "pending", booking.Status)
		assert.Equal(t, map[string]string{"notes": "call me"}, booking.Details)

		var tasks []response.TaskResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, tasksURL, nil, s.managerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tasks)
		require.Len(t, tasks, 1)
		assert.Equal(t, res.BookingID, tasks[0].BookingID)

		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "activity_logs", "booking_id = $1", res.BookingID))
	})

	s.Run("second booking of the same plot conflicts", func() {
		t := s.T()
		plotID := s.createPlot("B-1")
		_, first := s.newClient("first@example.com")
		_, second := s.newClient("second@example.com")

		require.Equal(t, http.StatusCreated, s.book(plotID, first).Code)
		before := s.project()

		body := httptest.AssertErrorResponse(t, s.book(plotID, second), http.StatusConflict, "plot is not available")
		assert.Equal(t, "FAILED_PRECONDITION", body.Error.Code)
		assert.Equal(t, "booked", body.Detail["status"])
		assert.Equal(t, before, s.project())
	})

	s.Run("unknown plot is not found", func() {
		_, token := s.newClient("lost@example.com")
		httptest.AssertErrorResponse(s.T(), s.book(uuid.New(), token), http.StatusNotFound, "plot not found")
	})

	s.Run("guests cannot book", func() {
		t := s.T()
		plotID := s.createPlot("G-1")
		token := s.JWT.GenerateToken(t, uuid.New(), user.RoleGuest)
		httptest.AssertErrorResponse(t, s.book(plotID, token), http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *BookingSuite) TestBookPlot_Concurrent() {
	t := s.T()
	plotID := s.createPlot("C-1")

	const callers = 8
	tokens := make([]string, callers)
	for i := range tokens {
		_, tokens[i] = s.newClient(fmt.Sprintf("racer%d@example.com", i))
	}

	codes := make([]int, callers)
	var wg sync.WaitGroup
	for i, tok := range tokens {
		wg.Add(1)
		go func(i int, tok string) {
			defer wg.Done()
			codes[i] = s.book(plotID, tok).Code
		}(i, tok)
	}
	wg.Wait()

	created, conflicts := 0, 0
	for _, c := range codes {
		switch c {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, callers-1, conflicts)

	p := s.project()
	assert.Equal(t, int32(1), p.TotalPlots)
	assert.Equal(t, int32(0), p.AvailablePlots)
	assert.Equal(t, int32(1), p.ReservedPlots)
	assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "plot_id = $1", plotID))
}

func (s *BookingSuite) TestReleasePlot_CancelsBooking() {
	t := s.T()
	plotID := s.createPlot("R-1")
	_, token := s.newClient("release@example.com")

	var res response.BookPlotResponse
	httptest.AssertSuccessResponse(t, s.book(plotID, token), http.StatusCreated, &res)

	var status response.PlotStatusResponse
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(plotStatusURL, s.projectID, plotID),
		request.UpdatePlotStatusRequest{Status: "available"}, s.managerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &status)
	require.NotNil(t, status.CancelledBooking)
	assert.Equal(t, res.BookingID, *status.CancelledBooking)

	p := s.project()
	assert.Equal(t, int32(1), p.AvailablePlots)
	assert.Equal(t, int32(0), p.ReservedPlots)

	// the plot can be booked again
	require.Equal(t, http.StatusCreated, s.book(plotID, token).Code)
}
