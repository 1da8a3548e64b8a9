package api

import (
	"net/http"

	reqdto "estate-booking/internal/handler/dto/request"
	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/handler/httperr"
	"estate-booking/internal/handler/middleware"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase/commands"
	"estate-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	users commands.UserCommands
	q     queries.UserQueries
}

func NewMeHandler(users commands.UserCommands, q queries.UserQueries) *MeHandler {
	return &MeHandler{users: users, q: q}
}

// @Summary Get current user
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 404 {object} httperr.Response
// @Router /me [get]
func (h *MeHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	h.respond(c, actor, http.StatusOK, false)
}

// @Summary Sync profile
// @Description Creates the caller's user record from token claims on first sight
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SyncProfileRequest false "Profile overrides"
// @Success 200 {object} resdto.MeResponse
// @Success 201 {object} resdto.MeResponse
// @Failure 400 {object} httperr.Response
// @Router /me [post]
func (h *MeHandler) Sync(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.Abort(c, errs.ErrUnauthenticated)
		return
	}
	var req reqdto.SyncProfileRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	name := req.DisplayName
	if name == "" {
		name = id.Name
	}
	actor := commands.Actor{ID: id.UserID, Role: id.Role}
	created, err := h.users.SyncProfile(c.Request.Context(), actor, commands.SyncProfileRequest{
		Email:       id.Email,
		DisplayName: name,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.respond(c, actor, status, created)
}

// @Summary Register push notification token
// @Tags me
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.NotificationTokenRequest true "Token"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /me/notification-token [put]
func (h *MeHandler) RegisterNotificationToken(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.NotificationTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.users.RegisterNotificationToken(c.Request.Context(), actor.ID, req.Token); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MeHandler) respond(c *gin.Context, actor commands.Actor, status int, created bool) {
	view, err := h.q.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserView(view)
	if err != nil {
		abortMapping(c, err)
		return
	}
	res.Created = created
	c.JSON(status, res)
}
