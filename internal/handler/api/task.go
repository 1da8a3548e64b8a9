package api

import (
	"net/http"

	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/handler/httperr"
	"estate-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	q queries.TaskQueries
}

func NewTaskHandler(q queries.TaskQueries) *TaskHandler {
	return &TaskHandler{q: q}
}

// @Summary List my tasks
// @Description Follow-up tasks assigned to the calling manager, by due date
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending|completed"
// @Success 200 {array} resdto.TaskResponse
// @Failure 400 {object} httperr.Response
// @Router /tasks [get]
func (h *TaskHandler) ListMine(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	tasks, err := h.q.ListMyTasks(c.Request.Context(), actor.ID, c.Query("status"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromTaskViews(tasks)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
