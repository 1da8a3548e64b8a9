//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/handler"
	"estate-booking/internal/handler/api"
	"estate-booking/internal/handler/middleware"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/jwt"
	"estate-booking/internal/usecase"
	"estate-booking/internal/usecase/queries"
	"estate-booking/tests/common/httptest"
	commandsmock "estate-booking/tests/mock/commands"
	queriesmock "estate-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	engine   *gin.Engine
	jwt      *jwt.Service
	projects *commandsmock.MockProjectCommands
	taskQ    *queriesmock.MockTaskQueries
	projectQ *queriesmock.MockProjectQueries
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := &routerFixture{
		engine:   gin.New(),
		jwt:      jwt.NewService("router-secret", time.Hour),
		projects: commandsmock.NewMockProjectCommands(ctrl),
		taskQ:    queriesmock.NewMockTaskQueries(ctrl),
		projectQ: queriesmock.NewMockProjectQueries(ctrl),
	}
	users := commandsmock.NewMockUserCommands(ctrl)
	hs := handler.Handlers{
		Booking: api.NewBookingHandler(commandsmock.NewMockBookingCommands(ctrl), queriesmock.NewMockBookingQueries(ctrl)),
		Project: api.NewProjectHandler(f.projects, f.projectQ),
		Plot:    api.NewPlotHandler(commandsmock.NewMockPlotCommands(ctrl), f.projectQ),
		Task:    api.NewTaskHandler(f.taskQ),
		Me:      api.NewMeHandler(users, queriesmock.NewMockUserQueries(ctrl)),
	}
	handler.NewRouter(f.engine, config.NewTestConfig(), hs,
		middleware.NewAuthMiddleware(usecase.NewTokenValidator(f.jwt)))
	return f
}

func (f *routerFixture) token(t *testing.T, role user.Role) string {
	t.Helper()
	tok, err := f.jwt.GenerateToken(jwt.Identity{UserID: uuid.New(), Role: role})
	require.NoError(t, err)
	return tok
}

func TestRouter_Ops(t *testing.T) {
	f := newRouterFixture(t)

	rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(t, f.engine, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "estate_http_request_duration_seconds")
}

func TestRouter_RoleGuards(t *testing.T) {
	f := newRouterFixture(t)
	projectID := uuid.New()

	cases := []struct {
		name   string
		method string
		path   string
		role   user.Role
		want   int
	}{
		{name: "bookings need a token", method: http.MethodGet, path: "/api/bookings", want: http.StatusUnauthorized},
		{name: "guests cannot book", method: http.MethodPost, path: "/api/bookings", role: user.RoleGuest, want: http.StatusForbidden},
		{name: "clients cannot create projects", method: http.MethodPost, path: "/api/projects", role: user.RoleClient, want: http.StatusForbidden},
		{name: "managers cannot create projects", method: http.MethodPost, path: "/api/projects", role: user.RoleManager, want: http.StatusForbidden},
		{name: "managers cannot delete plots", method: http.MethodDelete, path: "/api/projects/" + projectID.String() + "/plots/" + uuid.NewString(), role: user.RoleManager, want: http.StatusForbidden},
		{name: "clients cannot list tasks", method: http.MethodGet, path: "/api/tasks", role: user.RoleClient, want: http.StatusForbidden},
		{name: "clients cannot read activity", method: http.MethodGet, path: "/api/projects/" + projectID.String() + "/activity", role: user.RoleClient, want: http.StatusForbidden},
		{name: "me needs a token", method: http.MethodGet, path: "/api/me", want: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok := ""
			if tc.role != "" {
				tok = f.token(t, tc.role)
			}
			rec := httptest.PerformRequest(t, f.engine, tc.method, tc.path, map[string]any{}, tok)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}

	t.Run("invalid token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/tasks", nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("superadmin passes the manager guard", func(t *testing.T) {
		f.taskQ.EXPECT().ListMyTasks(gomock.Any(), gomock.Any(), "").Return([]*queries.TaskView{}, nil)
		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/tasks", nil, f.token(t, user.RoleSuperAdmin))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("project reads are public", func(t *testing.T) {
		f.projectQ.EXPECT().GetProject(gomock.Any(), projectID).Return(&queries.ProjectView{ID: projectID}, nil)
		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/projects/"+projectID.String(), nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
