package handlers

import (
	"time"

	portssvc "github.com/SscSPs/forex_history_app/internal/core/ports/services"
	"github.com/SscSPs/forex_history_app/internal/middleware"
	"github.com/SscSPs/forex_history_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Scraping is expensive for the upstream source; keep the public sync
// endpoint at a handful of requests per minute per IP.
var syncRateLimit = limiter.Rate{Period: time.Minute, Limit: 5}

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIRoutes(r, cfg, services)
}

// setupAPIRoutes configures the /api group with CORS and delegates to the
// entity route registrations.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	api := r.Group("/api", cors.New(corsConfig))

	syncLimiter := middleware.RateLimit(limiter.New(memory.NewStore(), syncRateLimit))

	registerForexRoutes(api, services.Forex, services.Scraper, cfg, syncLimiter)
	registerCurrencyRoutes(api, services.Currency)
}
