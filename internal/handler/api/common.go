package api

import (
	"net/http"
	"strconv"

	"estate-booking/internal/handler/httperr"
	"estate-booking/internal/handler/middleware"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func actorFrom(c *gin.Context) (commands.Actor, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, errs.ErrUnauthenticated)
		return commands.Actor{}, false
	}
	role, _ := middleware.GetUserRole(c)
	return commands.Actor{ID: id, Role: role}, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid limit"), "Invalid limit", nil)
		return 0, false
	}
	return n, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}

func abortMapping(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}
