package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-quote-sim/internal/handler/api"
	"event-quote-sim/internal/handler/middleware"
	"event-quote-sim/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Venue        *api.VenueHandler
	QuoteRequest *api.QuoteRequestHandler
	Quote        *api.QuoteHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/venues"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Venue.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Venue.Get},
		})

		addRoutes(apiGroup.Group("/quote-requests"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.QuoteRequest.Submit, Mw: []gin.HandlerFunc{middleware.RequireJSON()}},
			{Method: http.MethodGet, Path: "", Handler: h.QuoteRequest.List},
			{Method: http.MethodGet, Path: "/events", Handler: h.QuoteRequest.Events},
			{Method: http.MethodGet, Path: "/:id", Handler: h.QuoteRequest.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.QuoteRequest.Dismiss},
			{Method: http.MethodPost, Path: "/:id/retry", Handler: h.QuoteRequest.Retry},
		})

		addRoutes(apiGroup.Group("/quotes"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Quote.List},
			{Method: http.MethodGet, Path: "/counters", Handler: h.Quote.Counters},
			{Method: http.MethodPost, Path: "/compare", Handler: h.Quote.Compare, Mw: []gin.HandlerFunc{middleware.RequireJSON()}},
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
