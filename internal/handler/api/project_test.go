//go:build unit

package api_test

import (
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
	commandsmock "estate-booking/tests/mock/commands"
	queriesmock "estate-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProjectHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockProjects *commandsmock.MockProjectCommands
	mockPlots    *commandsmock.MockPlotCommands
	mockQueries  *queriesmock.MockProjectQueries
	callerID     uuid.UUID
	projectID    uuid.UUID
}

func (s *ProjectHandlerTestSuite) SetupTest() {
	s.router = newEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProjects = commandsmock.NewMockProjectCommands(s.mockCtrl)
	s.mockPlots = commandsmock.NewMockPlotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProjectQueries(s.mockCtrl)
	s.callerID = uuid.New()
	s.projectID = uuid.New()

	ph := api.NewProjectHandler(s.mockProjects, s.mockQueries)
	plh := api.NewPlotHandler(s.mockPlots, s.mockQueries)
	auth := fakeAuth(s.callerID)
	s.router.POST("/projects", auth, ph.Create)
	s.router.GET("/projects/:id", ph.Get)
	s.router.POST("/projects/:id/managers", auth, ph.AssignManager)
	s.router.GET("/projects/:id/activity", auth, ph.ListActivity)
	s.router.GET("/projects/:id/plots", plh.List)
	s.router.POST("/projects/:id/plots", auth, plh.Create)
	s.router.PATCH("/projects/:id/plots/:plotId/status", auth, plh.UpdateStatus)
	s.router.DELETE("/projects/:id/plots/:plotId", auth, plh.Delete)
}

func TestProjectHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}

func (s *ProjectHandlerTestSuite) url(suffix string) string {
	return "/projects/" + s.projectID.String() + suffix
}

func (s *ProjectHandlerTestSuite) TestCreate() {
	s.Run("success", func() {
		id := uuid.New()
		s.mockProjects.EXPECT().
			CreateProject(gomock.Any(), commands.Actor{ID: s.callerID, Role: user.RoleAdmin},
				commands.CreateProjectRequest{Name: "Palm Grove", Location: "Lagos"}).
			Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/projects",
			map[string]any{"name": "Palm Grove", "location": "Lagos"}, "admin")

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id, body.ID)
	})

	s.Run("error: name is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/projects",
			map[string]any{"location": "Lagos"}, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: permission denied is 403", func() {
		s.mockProjects.EXPECT().CreateProject(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrPermissionDenied.WithDetail("required_role", "admin"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/projects",
			map[string]any{"name": "Palm Grove"}, "manager")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "insufficient role")
		s.Equal("admin", body.Detail["required_role"])
	})
}

func (s *ProjectHandlerTestSuite) TestGet() {
	s.Run("success: returns counters", func() {
		s.mockQueries.EXPECT().GetProject(gomock.Any(), s.projectID).Return(&queries.ProjectView{
			ID: s.projectID, Name: "Palm Grove", Status: "active",
			TotalPlots: 10, AvailablePlots: 6, SoldPlots: 1, ReservedPlots: 3,
			CreatedAt: time.Now().UTC(),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(""), nil, "")

		var body resdto.ProjectResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int32(10), body.TotalPlots)
		s.Equal(int32(6), body.AvailablePlots)
		s.Equal(int32(1), body.SoldPlots)
		s.Equal(int32(3), body.ReservedPlots)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetProject(gomock.Any(), s.projectID).Return(nil, queries.ErrProjectNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(""), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "project not found")
	})
}

func (s *ProjectHandlerTestSuite) TestAssignManager() {
	managerID := uuid.New()

	s.Run("success: 204", func() {
		s.mockProjects.EXPECT().AssignManager(gomock.Any(), gomock.Any(), s.projectID, managerID).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/managers"),
			map[string]any{"managerId": managerID}, "admin")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: already assigned is 409", func() {
		s.mockProjects.EXPECT().AssignManager(gomock.Any(), gomock.Any(), s.projectID, managerID).
			Return(commands.ErrAlreadyAssigned)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/managers"),
			map[string]any{"managerId": managerID}, "admin")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already assigned")
		s.Equal(string(errs.CodeAlreadyExists), body.Error.Code)
	})

	s.Run("error: not a manager is 409 precondition", func() {
		s.mockProjects.EXPECT().AssignManager(gomock.Any(), gomock.Any(), s.projectID, managerID).
			Return(commands.ErrNotAManager)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/managers"),
			map[string]any{"managerId": managerID}, "admin")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not an active manager")
		s.Equal(string(errs.CodeFailedPrecondition), body.Error.Code)
	})
}

func (s *ProjectHandlerTestSuite) TestListActivity() {
	s.Run("success: role and limit forwarded", func() {
		bookingID := uuid.New()
		s.mockQueries.EXPECT().ListProjectActivity(gomock.Any(), s.projectID, user.RoleManager, 5).
			Return([]*queries.ActivityView{{ID: uuid.New(), Action: "booking_created", BookingID: &bookingID}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/activity?limit=5"), nil, "manager")

		var body []resdto.ActivityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("booking_created", body[0].Action)
		s.Equal(&bookingID, body[0].BookingID)
	})
}

func (s *ProjectHandlerTestSuite) TestPlots() {
	plotID := uuid.New()

	s.Run("list with status filter", func() {
		price := decimal.RequireFromString("150000.50")
		s.mockQueries.EXPECT().ListProjectPlots(gomock.Any(), s.projectID, "available").
			Return([]*queries.PlotView{{ID: plotID, PlotNumber: "A-1", Status: "available", Price: &price}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/plots?status=available"), nil, "")

		var body []resdto.PlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("A-1", body[0].PlotNumber)
		s.Require().NotNil(body[0].Price)
		s.True(price.Equal(*body[0].Price))
	})

	s.Run("list with bad filter", func() {
		s.mockQueries.EXPECT().ListProjectPlots(gomock.Any(), s.projectID, "gone").
			Return(nil, queries.ErrInvalidFilter.WithDetail("status", "gone"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/plots?status=gone"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid filter")
	})

	s.Run("create", func() {
		s.mockPlots.EXPECT().CreatePlot(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, actor commands.Actor, req commands.CreatePlotRequest) (uuid.UUID, error) {
				s.Equal(user.RoleManager, actor.Role)
				s.Equal(s.projectID, req.ProjectID)
				s.Equal("B-7", req.PlotNumber)
				s.Require().NotNil(req.SizeSqm)
				s.Equal("450", req.SizeSqm.String())
				return plotID, nil
			})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/plots"),
			map[string]any{"plotNumber": "B-7", "sizeSqm": 450}, "manager")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("create duplicate number", func() {
		s.mockPlots.EXPECT().CreatePlot(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrPlotNumberTaken)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/plots"),
			map[string]any{"plotNumber": "B-7"}, "manager")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("update status reports cancelled booking", func() {
		cancelled := uuid.New()
		s.mockPlots.EXPECT().UpdatePlotStatus(gomock.Any(), gomock.Any(), s.projectID, plotID, plot.StatusAvailable).
			Return(&commands.UpdatePlotStatusResult{Status: plot.StatusAvailable, CancelledBooking: &cancelled}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, s.url("/plots/"+plotID.String()+"/status"),
			map[string]any{"status": "available"}, "manager")

		var body resdto.PlotStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("available", body.Status)
		s.Equal(&cancelled, body.CancelledBooking)
	})

	s.Run("update status to booked is rejected by the usecase", func() {
		s.mockPlots.EXPECT().UpdatePlotStatus(gomock.Any(), gomock.Any(), s.projectID, plotID, plot.StatusBooked).
			Return(nil, commands.ErrInvalidInput.WithCause(plot.ErrBookedByWorkflow))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, s.url("/plots/"+plotID.String()+"/status"),
			map[string]any{"status": "booked"}, "manager")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid input")
	})

	s.Run("update status with bad plot id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, s.url("/plots/xyz/status"),
			map[string]any{"status": "sold"}, "manager")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid plotId")
	})

	s.Run("delete", func() {
		s.mockPlots.EXPECT().DeletePlot(gomock.Any(), gomock.Any(), s.projectID, plotID).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.url("/plots/"+plotID.String()), nil, "admin")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete missing plot", func() {
		s.mockPlots.EXPECT().DeletePlot(gomock.Any(), gomock.Any(), s.projectID, plotID).Return(commands.ErrPlotNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.url("/plots/"+plotID.String()), nil, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "plot not found")
	})
}
