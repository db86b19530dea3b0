// Package api provides the HTTP API server and handlers for the Palette application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paletteapp/palette-server/internal/http/response"
	"github.com/paletteapp/palette-server/internal/service"
	"github.com/paletteapp/palette-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	moodboardService *service.MoodboardService
	validator        *validation.Validator
	router           *chi.Mux
	logger           *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(moodboardService *service.MoodboardService, logger *slog.Logger) *Server {
	s := &Server{
		moodboardService: moodboardService,
		validator:        validation.New(),
		router:           chi.NewRouter(),
		logger:           logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// Prometheus metrics.
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/aesthetics", s.handleListAesthetics)
		r.Post("/detect", s.handleDetect)
		r.Post("/moodboard", s.handleGenerateMoodboard)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
