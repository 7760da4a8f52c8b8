// Package ui exposes the analysis core over HTTP: a multipart analyze
// endpoint plus health endpoints, with CORS for browser clients.
package ui

import (
	"github.com/gin-gonic/gin"

	"guardrails/ai"
	"guardrails/internal"
	"guardrails/internal/config"
)

// Server represents the web server for the guardrails API
type Server struct {
	router   *gin.Engine
	config   *config.Config
	insights *ai.InsightGenerator
	logger   *internal.Logger
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:   gin.Default(),
		config:   cfg,
		insights: ai.NewInsightGenerator(cfg.AI),
		logger:   internal.DefaultLogger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/api", s.handleAPIRoot)
	s.router.GET("/api/health", s.handleHealth)
	s.router.POST("/api/analyze", s.handleAnalyze)
}

// Run starts the server on the configured port
func (s *Server) Run() error {
	addr := ":" + s.config.Server.Port
	s.logger.Info("[Server] Listening on %s", addr)
	return s.router.Run(addr)
}
