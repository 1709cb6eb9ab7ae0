package web

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/creatorlens/influencer-studio/internal/config"
	"github.com/creatorlens/influencer-studio/internal/db"
	"github.com/creatorlens/influencer-studio/internal/insights"
	"github.com/creatorlens/influencer-studio/internal/openai"
	"github.com/creatorlens/influencer-studio/internal/perplexity"
	"github.com/creatorlens/influencer-studio/internal/qloo"
	"github.com/creatorlens/influencer-studio/internal/sounds"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr        string
	Config      config.Config
	Database    *db.DB
	TemplatesFS fs.FS
	StaticFS    fs.FS
}

// Server is the HTTP server for the web application.
type Server struct {
	router    chi.Router
	server    *http.Server
	templates *Templates
	sessions  *SessionStore
	handlers  *Handlers
}

// NewServer creates a new web server.
func NewServer(cfg ServerConfig) (*Server, error) {
	templates, err := NewTemplates(cfg.TemplatesFS)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	sessions := NewSessionStore()

	// Clients with missing keys still exist; their calls fail and the
	// services substitute fallback content.
	research := perplexity.NewClient(cfg.Config.PerplexityAPIKey)
	taste := qloo.NewClient(cfg.Config.QlooAPIKey)
	strategy := openai.NewClient(cfg.Config.OpenAIAPIKey)

	generator := insights.NewService(research)
	finder := sounds.NewService(research)

	var analyses AnalysisRecorder
	if cfg.Database != nil {
		analyses = cfg.Database.Analyses()
	}

	status := APIStatus{
		TasteGraph: cfg.Config.HasQloo(),
		Research:   cfg.Config.HasPerplexity(),
		Strategy:   cfg.Config.HasOpenAI(),
	}

	handlers := NewHandlers(sessions, templates, generator, taste, strategy, finder, analyses, status)

	router := chi.NewRouter()

	s := &Server{
		router:    router,
		templates: templates,
		sessions:  sessions,
		handlers:  handlers,
	}

	s.setupMiddleware()
	s.setupRoutes(cfg.StaticFS)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupMiddleware configures middleware for the router.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures routes for the application.
func (s *Server) setupRoutes(staticFS fs.FS) {
	// Static files
	fileServer := http.FileServer(http.FS(staticFS))
	s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	registerRoutes(s.router, s.handlers)
}

// registerRoutes wires the application handlers onto a router.
func registerRoutes(r chi.Router, h *Handlers) {
	r.Get("/", h.Home)
	r.Post("/chat", h.ChatSubmit)

	r.Get("/dashboard", h.Dashboard)
	r.Post("/dashboard/viral", h.PredictViral)
	r.Post("/dashboard/strategy", h.GrowthStrategy)
	r.Post("/dashboard/sounds", h.SoundSearch)
	r.Post("/dashboard/brands", h.BrandSearch)

	r.Post("/analysis/new", h.NewAnalysis)
	r.Get("/analyses", h.Analyses)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	log.Printf("Starting server at http://%s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
