// Package server is the HTTP backend behind the summarize and send endpoints.
package server

import (
	"log/slog"
	"net/http"

	"github.com/alkime/recap/internal/config"
	"github.com/alkime/recap/internal/content"
	"github.com/alkime/recap/internal/mail"
	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	logger     *slog.Logger
	router     *gin.Engine
	summarizer content.Summarizer
	sender     mail.Sender
}

// New creates a new Server instance
func New(cfg *config.Config, logger *slog.Logger, summarizer content.Summarizer, sender mail.Sender) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	// Configure proxy trust for production (Fly.io)
	if cfg.IsProduction() {
		router.TrustedPlatform = gin.PlatformFlyIO
		logger.Debug("Configured trusted platform", "platform", "fly.io")
	}

	server := &Server{
		config:     cfg,
		logger:     logger,
		router:     router,
		summarizer: summarizer,
		sender:     sender,
	}

	useSecurityHeaders(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/summarize", s.handleSummarize)
		api.POST("/send", s.handleSend)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "recap",
	})
}
