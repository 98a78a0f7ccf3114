package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/config"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/handler"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/middleware"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/token"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/pkg/telemetry"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Auth   *handler.AuthHandler
	Job    *handler.JobHandler
	Health *handler.HealthHandler
}

// New assembles the gin engine.
//
// Registration order matters: gin snapshots a route's handler chain
// when the route is registered, so the session endpoints and health
// probes are mounted before the gate is attached and stay reachable
// without a cookie. Everything registered after router.Use(gate) —
// including unmatched paths via NoRoute — goes through the gate.
func New(cfg *config.Config, tokens *token.Manager, h *Handlers) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware())
	}

	// Reachable without a session
	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)
	router.POST("/api/register", h.Auth.Register)
	router.POST("/api/login", h.Auth.Login)
	router.POST("/api/logout", h.Auth.Logout)

	// Everything below requires a session cookie, except the exact
	// public paths the gate lets through.
	router.Use(middleware.SessionGate(tokens))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Temu Kerja API"})
	})

	api := router.Group("/api")
	{
		api.GET("/me", h.Auth.Me)

		jobs := api.Group("/jobs")
		{
			jobs.POST("", h.Job.Create)
			jobs.GET("", h.Job.List)
			jobs.GET("/:id", h.Job.Get)
			jobs.DELETE("/:id", h.Job.Delete)
		}
	}

	// Page routes the web client navigates to; unauthenticated hits
	// redirect to /login via the gate before these run.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}
