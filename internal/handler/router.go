package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/handler/api"
	"estate-booking/internal/handler/middleware"
	"estate-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Project *api.ProjectHandler
	Plot    *api.PlotHandler
	Task    *api.TaskHandler
	Me      *api.MeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, hs Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, hs, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, hs Handlers, auth *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	atLeast := auth.RequireRoleAtLeast

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		bookings.Use(auth.RequireAuth(), atLeast(user.RoleClient))
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: hs.Booking.BookPlot},
			{Method: http.MethodGet, Path: "", Handler: hs.Booking.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: hs.Booking.Get},
		})

		// reads are public; writes carry their own role guard
		projects := apiGroup.Group("/projects")
		addRoutes(projects, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: hs.Project.Get},
			{Method: http.MethodGet, Path: "/:id/plots", Handler: hs.Plot.List},
			{Method: http.MethodPost, Path: "", Handler: hs.Project.Create,
				Mw: []gin.HandlerFunc{auth.RequireAuth(), atLeast(user.RoleAdmin)}},
			{Method: http.MethodPost, Path: "/:id/managers", Handler: hs.Project.AssignManager,
				Mw: []gin.HandlerFunc{auth.RequireAuth(), atLeast(user.RoleAdmin)}},
			{Method: http.MethodGet, Path: "/:id/activity", Handler: hs.Project.ListActivity,
				Mw: []gin.HandlerFunc{auth.RequireAuth(), atLeast(user.RoleManager)}},
			{Method: http.MethodPost, Path: "/:id/plots", Handler: hs.Plot.Create,
				Mw: []gin.HandlerFunc{auth.RequireAuth(), atLeast(user.RoleManager)}},
			{Method: http.MethodPatch, Path: "/:id/plots/:plotId/status", Handler: hs.Plot.UpdateStatus,
				Mw: []gin.HandlerFunc{auth.RequireAuth(), atLeast(user.RoleManager)}},
			{Method: http.MethodDelete, Path: "/:id/plots/:plotId", Handler: hs.Plot.Delete,
				Mw: []gin.HandlerFunc{auth.RequireAuth(), atLeast(user.RoleAdmin)}},
		})

		tasks := apiGroup.Group("/tasks")
		tasks.Use(auth.RequireAuth(), atLeast(user.RoleManager))
		addRoutes(tasks, []route{
			{Method: http.MethodGet, Path: "", Handler: hs.Task.ListMine},
		})

		me := apiGroup.Group("/me")
		me.Use(auth.RequireAuth())
		addRoutes(me, []route{
			{Method: http.MethodGet, Path: "", Handler: hs.Me.Get},
			{Method: http.MethodPost, Path: "", Handler: hs.Me.Sync},
			{Method: http.MethodPut, Path: "/notification-token", Handler: hs.Me.RegisterNotificationToken},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
