//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/handler/api"
	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/usecase/commands"
	"estate-booking/internal/usecase/queries"
	"estate-booking/tests/common/httptest"
	commandsmock "estate-booking/tests/mock/commands"
	queriesmock "estate-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MeHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockUsers *commandsmock.MockUserCommands
	mockUserQ *queriesmock.MockUserQueries
	mockTaskQ *queriesmock.MockTaskQueries
	callerID  uuid.UUID
}

func (s *MeHandlerTestSuite) SetupTest() {
	s.router = newEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockUserQ = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.mockTaskQ = queriesmock.NewMockTaskQueries(s.mockCtrl)
	s.callerID = uuid.New()

	me := api.NewMeHandler(s.mockUsers, s.mockUserQ)
	tasks := api.NewTaskHandler(s.mockTaskQ)
	auth := fakeAuth(s.callerID)
	s.router.GET("/me", auth, me.Get)
	s.router.POST("/me", auth, me.Sync)
	s.router.PUT("/me/notification-token", auth, me.RegisterNotificationToken)
	s.router.GET("/tasks", auth, tasks.ListMine)
}

func TestMeHandlerSuite(t *testing.T) {
	suite.Run(t, new(MeHandlerTestSuite))
}

func (s *MeHandlerTestSuite) view() *queries.UserView {
	return &queries.UserView{
		ID: s.callerID, Email: "caller@example.com", DisplayName: "Caller",
		Role: "client", IsActive: true, CreatedAt: time.Now().UTC(),
	}
}

func (s *MeHandlerTestSuite) TestSync() {
	s.Run("first sight creates the profile from token claims", func() {
		s.mockUsers.EXPECT().
			SyncProfile(gomock.Any(), commands.Actor{ID: s.callerID, Role: user.RoleClient},
				commands.SyncProfileRequest{Email: "caller@example.com", DisplayName: "Caller"}).
			Return(true, nil)
		s.mockUserQ.EXPECT().GetCurrentUser(gomock.Any(), s.callerID).Return(s.view(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/me", nil, "client")

		var body resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Created)
		s.Equal("caller@example.com", body.Email)
	})

	s.Run("display name override and existing profile", func() {
		s.mockUsers.EXPECT().
			SyncProfile(gomock.Any(), gomock.Any(),
				commands.SyncProfileRequest{Email: "caller@example.com", DisplayName: "Cal"}).
			Return(false, nil)
		s.mockUserQ.EXPECT().GetCurrentUser(gomock.Any(), s.callerID).Return(s.view(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/me",
			map[string]any{"displayName": "Cal"}, "client")

		var body resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Created)
	})
}

func (s *MeHandlerTestSuite) TestGet() {
	s.Run("not synced yet", func() {
		s.mockUserQ.EXPECT().GetCurrentUser(gomock.Any(), s.callerID).Return(nil, queries.ErrUserNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "client")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}

func (s *MeHandlerTestSuite) TestRegisterNotificationToken() {
	s.Run("success", func() {
		s.mockUsers.EXPECT().RegisterNotificationToken(gomock.Any(), s.callerID, "fcm-token").Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/me/notification-token",
			map[string]any{"token": "fcm-token"}, "client")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/me/notification-token",
			map[string]any{}, "client")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("unknown user", func() {
		s.mockUsers.EXPECT().RegisterNotificationToken(gomock.Any(), s.callerID, "fcm-token").
			Return(commands.ErrUserNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/me/notification-token",
			map[string]any{"token": "fcm-token"}, "client")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}

func (s *MeHandlerTestSuite) TestListTasks() {
	s.Run("success", func() {
		due := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
		s.mockTaskQ.EXPECT().ListMyTasks(gomock.Any(), s.callerID, "pending").
			Return([]*queries.TaskView{{ID: uuid.New(), Type: "booking_followup", Priority: "high", DueAt: due}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tasks?status=pending", nil, "manager")

		var body []resdto.TaskResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("high", body[0].Priority)
		s.True(due.Equal(body[0].DueAt))
	})

	s.Run("bad filter", func() {
		s.mockTaskQ.EXPECT().ListMyTasks(gomock.Any(), s.callerID, "later").
			Return(nil, queries.ErrInvalidFilter)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tasks?status=later", nil, "manager")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid filter")
	})
}
