package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/chat"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/config"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/logging"
)

const defaultIndexHTML = "<h1>API Server</h1><p>Use POST /api/chat</p>"

// Server hosts the HTTP boundary around the chat service.
type Server struct {
	service    *chat.Service
	cfg        config.Config
	model      string
	engine     *gin.Engine
	httpServer *http.Server
	logger     logging.Logger
	startTime  time.Time

	indexOnce sync.Once
	indexHTML string
}

// New builds the gin engine, middleware, and routes.
func New(cfg config.Config, service *chat.Service, model string, logger logging.Logger) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		service:   service,
		cfg:       cfg,
		model:     model,
		engine:    engine,
		logger:    logging.OrNop(logger),
		startTime: time.Now(),
	}

	engine.Use(RequestLoggingMiddleware(s.logger))

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "Authorization"}
	corsConfig.ExposeHeaders = []string{"Content-Length"}
	engine.Use(cors.New(corsConfig))

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // chat calls can sit in the queue behind retries
		IdleTimeout:  120 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	api := s.engine.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/status", s.handleStatus)
	api.POST("/chat", s.handleChat)

	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if s.cfg.StaticDir != "" {
		if info, err := os.Stat(s.cfg.StaticDir); err == nil && info.IsDir() {
			s.engine.Static("/static", s.cfg.StaticDir)
			s.logger.Info("Mounted static files from %s", s.cfg.StaticDir)
		}
	}

	// SPA catch-all: unknown API paths are 404s, everything else gets the app shell.
	s.engine.NoRoute(s.handleFallback)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Server listening on :%s", s.cfg.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleFallback(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "API endpoint not found"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(s.readIndex()))
}

// readIndex loads the SPA shell once; absent static assets fall back to a
// minimal landing page so the API still responds on bare deployments.
func (s *Server) readIndex() string {
	s.indexOnce.Do(func() {
		s.indexHTML = defaultIndexHTML
		if s.cfg.StaticDir == "" {
			return
		}
		indexPath := filepath.Join(s.cfg.StaticDir, "index.html")
		if data, err := os.ReadFile(indexPath); err == nil {
			s.indexHTML = string(data)
		}
	})
	return s.indexHTML
}
