package api

import (
	"net/http"

	reqdto "estate-booking/internal/handler/dto/request"
	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/handler/httperr"
	"estate-booking/internal/handler/middleware"
	"estate-booking/internal/usecase/commands"
	"estate-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects commands.ProjectCommands
	q        queries.ProjectQueries
}

func NewProjectHandler(projects commands.ProjectCommands, q queries.ProjectQueries) *ProjectHandler {
	return &ProjectHandler{projects: projects, q: q}
}

// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProjectRequest true "Project"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.projects.CreateProject(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/projects/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get project
// @Description Project with its denormalized plot counters
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} resdto.ProjectResponse
// @Failure 404 {object} httperr.Response
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetProject(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromProjectView(view)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Assign manager
// @Tags projects
// @Accept json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body reqdto.AssignManagerRequest true "Manager"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /projects/{id}/managers [post]
func (h *ProjectHandler) AssignManager(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AssignManagerRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.projects.AssignManager(c.Request.Context(), actor, projectID, req.ManagerID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List project activity
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param limit query int false "Max entries"
// @Success 200 {array} resdto.ActivityResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /projects/{id}/activity [get]
func (h *ProjectHandler) ListActivity(c *gin.Context) {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)
	entries, err := h.q.ListProjectActivity(c.Request.Context(), projectID, role, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromActivityViews(entries)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
