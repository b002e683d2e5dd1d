// Package http provides the HTTP server that exposes the impersonation
// handoff endpoint and the platform admin JSON API.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avocadohq/admin-console/internal/config"
	eventsHTTP "github.com/avocadohq/admin-console/internal/events/http"
	impersonationHTTP "github.com/avocadohq/admin-console/internal/impersonation/http"
	"github.com/avocadohq/admin-console/internal/metrics"
	platformHTTP "github.com/avocadohq/admin-console/internal/platform/http"
	platformUseCase "github.com/avocadohq/admin-console/internal/platform/usecase"
)

// Server represents the main HTTP server.
type Server struct {
	server *http.Server
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB

	impersonationHandler *impersonationHTTP.ImpersonationHandler
	organizationHandler  *platformHTTP.OrganizationHandler
	adminHandler         *platformHTTP.AdminHandler
	eventHandler         *eventsHTTP.EventHandler
	adminContextUseCase  platformUseCase.AdminContextUseCase
	metricsProvider      *metrics.Provider
}

// NewServer creates a new HTTP server with all route handlers wired in.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	impersonationHandler *impersonationHTTP.ImpersonationHandler,
	organizationHandler *platformHTTP.OrganizationHandler,
	adminHandler *platformHTTP.AdminHandler,
	eventHandler *eventsHTTP.EventHandler,
	adminContextUseCase platformUseCase.AdminContextUseCase,
	metricsProvider *metrics.Provider,
) *Server {
	s := &Server{
		cfg:                  cfg,
		logger:               logger,
		db:                   db,
		impersonationHandler: impersonationHandler,
		organizationHandler:  organizationHandler,
		adminHandler:         adminHandler,
		eventHandler:         eventHandler,
		adminContextUseCase:  adminContextUseCase,
		metricsProvider:      metricsProvider,
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      s.setupRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRouter assembles the Gin engine with middleware and routes.
func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.metricsProvider.MeterProvider(), s.cfg.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Impersonation handoff. The form POST comes from the admin frontend, so
	// it lives outside the /v1 JSON surface. The handler performs its own
	// session resolution because failures redirect instead of returning JSON.
	impersonate := router.Group("/api/starter/impersonate")
	if s.cfg.RateLimitImpersonateEnabled {
		impersonate.Use(impersonationHTTP.RateLimitMiddleware(
			s.cfg.RateLimitImpersonatePerSec,
			s.cfg.RateLimitImpersonateBurst,
			s.logger,
		))
	}
	impersonate.POST("", s.impersonationHandler.PostHandler)
	impersonate.GET("", s.impersonationHandler.GetHandler)

	// JSON admin API, session-authenticated
	v1 := router.Group("/v1")
	v1.Use(platformHTTP.SessionMiddleware(s.adminContextUseCase, s.cfg.SessionCookieName, s.logger))
	{
		v1.GET("/organizations", s.organizationHandler.ListHandler)
		v1.GET("/organizations/:id", s.organizationHandler.GetHandler)
		v1.GET("/events", s.eventHandler.ListHandler)

		// Governance operations, MASTER only
		master := v1.Group("")
		master.Use(platformHTTP.RequireMasterMiddleware(s.logger))
		{
			master.PUT("/organizations/:id/platform-status", s.organizationHandler.SetPlatformStatusHandler)
			master.POST("/admins", s.adminHandler.CreateHandler)
			master.GET("/admins", s.adminHandler.ListHandler)
			master.PUT("/admins/:id/status", s.adminHandler.SetStatusHandler)
		}
	}

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. The database
// is the only hard dependency.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"components": gin.H{
				"database": "unavailable",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"components": gin.H{
			"database": "available",
		},
	})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
