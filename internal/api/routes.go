package api

import (
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/footydle/search-backend/internal/api/handlers"
	"github.com/footydle/search-backend/internal/config"
	"github.com/footydle/search-backend/internal/metrics"
)

func SetupRouter(cfg *config.Config, playerHandler, clubHandler *handlers.SearchHandler) *gin.Engine {
	router := gin.Default()

	// CORS configuration - allow origins from config or use defaults
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.App.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = false // Explicitly set
	router.Use(cors.New(corsConfig))

	router.Use(httpMetrics())

	// API routes
	api := router.Group("/api")
	{
		players := api.Group("/players")
		{
			players.GET("/search", playerHandler.Search)
			players.GET("/:id", playerHandler.GetEntity)
		}

		clubs := api.Group("/clubs")
		{
			clubs.GET("/search", clubHandler.Search)
			clubs.GET("/:id", clubHandler.GetEntity)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// httpMetrics records request counts and latency per route pattern.
func httpMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
