package http

import (
	"github.com/gin-gonic/gin"
	"github.com/tanneryrow/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		mappings := v1.Group("/mappings")
		{
			mappings.POST("/resolve", handler.ResolveProduct)
			mappings.POST("/build", handler.BuildMapping)
			mappings.GET("/runs", handler.ListRuns)
			mappings.GET("/runs/:id", handler.GetRun)
		}

		panels := v1.Group("/panels")
		{
			panels.GET("/pending", handler.PendingPanels)
		}
	}

	return router
}
