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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book a plot
// @Description Atomically books an available plot and updates project counters
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookPlotRequest true "Booking request"
// @Success 201 {object} resdto.BookPlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) BookPlot(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.BookPlotRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	result, err := h.cmds.BookPlot(c.Request.Context(), actor.ID, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+result.BookingID.String())
	c.JSON(http.StatusCreated, resdto.FromBookPlotResult(result))
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListMyBookings(c.Request.Context(), actor.ID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingList(items, next)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), id, actor.ID, actor.Role)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
