package components

import (
	"estate-booking/internal/handler"
	"estate-booking/internal/handler/api"
	"estate-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewProjectHandler,
		api.NewPlotHandler,
		api.NewTaskHandler,
		api.NewMeHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	booking *api.BookingHandler,
	project *api.ProjectHandler,
	plot *api.PlotHandler,
	task *api.TaskHandler,
	me *api.MeHandler,
) handler.Handlers {
	return handler.Handlers{Booking: booking, Project: project, Plot: plot, Task: task, Me: me}
}
