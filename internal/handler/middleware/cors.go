package middleware

import (
	"log/slog"
	"slices"

	"event-quote-sim/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers the quote API depends on, added even when the environment
// overrides the lists.
var (
	requiredAllowHeaders  = []string{"Content-Type", "Idempotency-Key"}
	requiredExposeHeaders = []string{"Location", "X-Request-ID"}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withRequired(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    withRequired(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// cors rejects a wildcard origin combined with credentials
	if slices.Contains(cfg.AllowOrigins, "*") && !cfg.AllowCredentials {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = slices.DeleteFunc(slices.Clone(cfg.AllowOrigins), func(o string) bool { return o == "*" })
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_all", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}

func withRequired(list, required []string) []string {
	out := slices.Clone(list)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
