package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/team-updates-api/internal/config"
	"github.com/team-updates-api/internal/database"
	"github.com/team-updates-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, db *database.DB, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Wrong verb on a known path is a 405, not a 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(services, log)
	updatesHandler := NewUpdatesHandler(services, log)
	adminHandler := NewAdminUpdatesHandler(services, log)

	// Health check
	router.GET("/health", healthCheck(db))

	// API v1
	v1 := router.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		// Public read path: published updates only, no token required
		v1.GET("/updates", updatesHandler.ListPublished)

		// Admin CRUD, gated by the bearer-token middleware
		admin := v1.Group("/admin", authMiddleware(services.Auth, log))
		{
			admin.GET("/updates", adminHandler.List)
			admin.POST("/updates", adminHandler.Create)
			admin.PUT("/updates", adminHandler.Replace)
			admin.DELETE("/updates", adminHandler.Delete)
		}
	}

	return router
}

// healthCheck reports service health, including the database connection
// when one is wired in. A nil db keeps the endpoint purely static.
func healthCheck(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "team-updates-api",
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := db.HealthCheck(ctx); err != nil {
				body["status"] = "unhealthy"
				body["database"] = "unreachable"
				c.JSON(http.StatusServiceUnavailable, body)
				return
			}

			stats := db.Stats()
			body["database"] = gin.H{
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
			}
		}

		c.JSON(http.StatusOK, body)
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event = event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP())

		if username := c.GetString(usernameContextKey); username != "" {
			event = event.Str("user", username)
		}

		event.Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
