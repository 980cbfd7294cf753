// Package http provides the API server, its middleware and the metrics server.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/bankvault/internal/auth/http"
	bankingHTTP "github.com/allisson/bankvault/internal/banking/http"
	bankingUseCase "github.com/allisson/bankvault/internal/banking/usecase"
	"github.com/allisson/bankvault/internal/config"
	"github.com/allisson/bankvault/internal/metrics"
)

// readinessCheck is one named component reported by /ready.
type readinessCheck struct {
	name  string
	check func(ctx context.Context) error
}

// Server represents the API server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	checks []readinessCheck
}

// NewServer creates a new API server. db is nil unless a SQL storage driver is in use.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	s := &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
	if db != nil {
		s.checks = append(s.checks, readinessCheck{name: "database", check: db.PingContext})
	}
	return s
}

// SetupRouter registers middleware and every API route. Background middleware work
// (rate limiter cleanup) stops when ctx is done.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	profileHandler *bankingHTTP.ProfileHandler,
	transactionHandler *bankingHTTP.TransactionHandler,
	lifecycleHandler *bankingHTTP.LifecycleHandler,
	pinHandler *authHTTP.PinHandler,
	lifecycleUseCase bankingUseCase.LifecycleUseCase,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	if lifecycleUseCase != nil {
		// Keys are created on first write, so only an unreachable key store fails the check.
		s.checks = append(s.checks, readinessCheck{name: "keys", check: func(ctx context.Context) error {
			_, err := lifecycleUseCase.IsEncryptionReady(ctx)
			return err
		}})
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(IPRateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	profile := v1.Group("/profile")
	{
		profile.GET("", profileHandler.GetHandler)
		profile.PUT("", profileHandler.ReplaceHandler)
		profile.PATCH("", profileHandler.UpdateHandler)
		profile.DELETE("", profileHandler.DeleteHandler)
		profile.GET("/masked-account-number", profileHandler.MaskedAccountNumberHandler)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", transactionHandler.ListHandler)
		transactions.PUT("", transactionHandler.ReplaceHandler)
		transactions.DELETE("", transactionHandler.DeleteAllHandler)
		transactions.POST("", transactionHandler.CreateHandler)
		transactions.PATCH("/:id", transactionHandler.UpdateHandler)
		transactions.DELETE("/:id", transactionHandler.DeleteHandler)
	}

	lifecycle := v1.Group("/lifecycle")
	{
		lifecycle.POST("/bootstrap", lifecycleHandler.BootstrapHandler)
		lifecycle.POST("/security-reset", lifecycleHandler.SecurityResetHandler)
		lifecycle.GET("/status", lifecycleHandler.StatusHandler)
	}

	pin := v1.Group("/pin")
	{
		pin.GET("", pinHandler.StatusHandler)
		pin.POST("", pinHandler.SetHandler)
		pin.DELETE("", pinHandler.DeleteHandler)

		verifyHandlers := []gin.HandlerFunc{}
		if cfg.RateLimitPinEnabled {
			verifyHandlers = append(verifyHandlers,
				IPRateLimitMiddleware(ctx, cfg.RateLimitPinRequestsPerSec, cfg.RateLimitPinBurst, s.logger),
			)
		}
		verifyHandlers = append(verifyHandlers, pinHandler.VerifyHandler)
		pin.POST("/verify", verifyHandlers...)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	ready := true
	components := make(map[string]string, len(s.checks))
	for _, rc := range s.checks {
		if err := rc.check(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.String("component", rc.name), slog.Any("error", err))
			components[rc.name] = "error"
			ready = false
			continue
		}
		components[rc.name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
