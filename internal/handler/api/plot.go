package api

import (
	"net/http"

	reqdto "estate-booking/internal/handler/dto/request"
	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/handler/httperr"
	"estate-booking/internal/usecase/commands"
	"estate-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PlotHandler struct {
	plots commands.PlotCommands
	q     queries.ProjectQueries
}

func NewPlotHandler(plots commands.PlotCommands, q queries.ProjectQueries) *PlotHandler {
	return &PlotHandler{plots: plots, q: q}
}

// @Summary List project plots
// @Tags plots
// @Produce json
// @Param id path string true "Project ID"
// @Param status query string false "available|booked|sold|reserved"
// @Success 200 {array} resdto.PlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /projects/{id}/plots [get]
func (h *PlotHandler) List(c *gin.Context) {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	plots, err := h.q.ListProjectPlots(c.Request.Context(), projectID, c.Query("status"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPlotViews(plots)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create plot
// @Tags plots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body reqdto.CreatePlotRequest true "Plot"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /projects/{id}/plots [post]
func (h *PlotHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreatePlotRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.plots.CreatePlot(c.Request.Context(), actor, req.ToCommand(projectID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update plot status
// @Description Moving a plot back to available cancels its pending booking
// @Tags plots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param plotId path string true "Plot ID"
// @Param request body reqdto.UpdatePlotStatusRequest true "Status"
// @Success 200 {object} resdto.PlotStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /projects/{id}/plots/{plotId}/status [patch]
func (h *PlotHandler) UpdateStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	plotID, ok := pathUUID(c, "plotId")
	if !ok {
		return
	}
	var req reqdto.UpdatePlotStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.plots.UpdatePlotStatus(c.Request.Context(), actor, projectID, plotID, req.ToStatus())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PlotStatusResponse{
		ID:               plotID,
		Status:           result.Status.String(),
		CancelledBooking: result.CancelledBooking,
	})
}

// @Summary Delete plot
// @Tags plots
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param plotId path string true "Plot ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /projects/{id}/plots/{plotId} [delete]
func (h *PlotHandler) Delete(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	plotID, ok := pathUUID(c, "plotId")
	if !ok {
		return
	}
	if err := h.plots.DeletePlot(c.Request.Context(), actor, projectID, plotID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
