package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"hydro-command/internal/domain/user"
	"hydro-command/internal/handler/api"
	"hydro-command/internal/handler/middleware"
	"hydro-command/internal/infra/ratelimit"
	"hydro-command/internal/pkg/config"
	"hydro-command/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine           *gin.Engine
	Config           config.Config
	Logger           *middleware.Logger
	Commands         *api.CommandHandler
	Thresholds       *api.ThresholdHandler
	Sensors          *api.SensorHandler
	Alerts           *api.AlertHandler
	Export           *api.ExportHandler
	Devices          *api.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
	DeviceMiddleware *middleware.DeviceAuthMiddleware
	IngestLimiter    ratelimit.Limiter `name:"ingest"`
	ExportLimiter    ratelimit.Limiter `name:"export"`
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := p.AuthMiddleware
	viewer := authMw.RequireRoleAtLeast(user.RoleViewer)
	operator := authMw.RequireRoleAtLeast(user.RoleOperator)
	admin := authMw.RequireRoleAtLeast(user.RoleAdmin)
	device := p.DeviceMiddleware.RequireDevice()

	apiGroup := engine.Group("/api")
	{
		// Device-facing routes authenticate with x-api-key
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/devices/:device_id/commands", Handler: p.Commands.Poll, Mw: []gin.HandlerFunc{device}},
			{Method: http.MethodGet, Path: "/sensors/ingest", Handler: p.Sensors.Status, Mw: []gin.HandlerFunc{device}},
			{Method: http.MethodPost, Path: "/sensors/ingest", Handler: p.Sensors.Ingest, Mw: []gin.HandlerFunc{
				device,
				middleware.RateLimit(p.IngestLimiter, "ingest"),
			}},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMw.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/devices", Handler: p.Devices.List, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodPost, Path: "/devices", Handler: p.Devices.Register, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPost, Path: "/devices/:device_id/api-keys", Handler: p.Devices.IssueAPIKey, Mw: []gin.HandlerFunc{admin}},

			{Method: http.MethodPost, Path: "/devices/:device_id/commands", Handler: p.Commands.Enqueue, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodGet, Path: "/devices/:device_id/commands/history", Handler: p.Commands.History, Mw: []gin.HandlerFunc{viewer}},

			{Method: http.MethodGet, Path: "/user/parameters", Handler: p.Thresholds.Get, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodPost, Path: "/user/parameters", Handler: p.Thresholds.Save, Mw: []gin.HandlerFunc{operator}},

			{Method: http.MethodGet, Path: "/sensors/latest/:device_id", Handler: p.Sensors.Latest, Mw: []gin.HandlerFunc{viewer}},

			{Method: http.MethodGet, Path: "/alerts", Handler: p.Alerts.List, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodPost, Path: "/alerts/dismiss", Handler: p.Alerts.Dismiss, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodGet, Path: "/alerts/stream", Handler: p.Alerts.Stream, Mw: []gin.HandlerFunc{viewer}},

			{Method: http.MethodGet, Path: "/export", Handler: p.Export.Export, Mw: []gin.HandlerFunc{
				viewer,
				middleware.RateLimit(p.ExportLimiter, "export"),
			}},
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
