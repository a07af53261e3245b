package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"menuapp/internal/cache"
	"menuapp/internal/handlers"
	applog "menuapp/internal/log"
	"menuapp/internal/repository"
	"menuapp/internal/service"
)

// Config captures the runtime configuration for the HTTP server.
type Config struct {
	Addr           string
	AllowedOrigins []string
	Database       *gorm.DB
	// Cache defaults to a no-op store.
	Cache cache.Store
	// Importer backs POST /api/v1/import; the route answers 503 when nil.
	Importer handlers.Synchronizer
}

// Server wraps an http.Server and exposes helpers for bootstrapping a
// production-ready web service.
type Server struct {
	config     Config
	service    *service.Service
	httpServer *http.Server
}

// New builds a new Server using the provided configuration.
func New(cfg Config) (*Server, error) {
	applog.Debug(context.Background(), "initializing server",
		"addr", cfg.Addr,
		"origins", cfg.AllowedOrigins,
	)

	if cfg.Cache == nil {
		applog.Debug(context.Background(), "cache not provided, using no-op store")
		cfg.Cache = cache.Noop{}
	}

	gin.SetMode(gin.ReleaseMode)

	svc := service.New(repository.New(cfg.Database), cfg.Cache)
	handlers.Configure(svc, cfg.Importer)

	applog.Debug(context.Background(), "handler dependencies configured")

	return &Server{
		config:  cfg,
		service: svc,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           newRouter(cfg.AllowedOrigins),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Start begins serving HTTP traffic using the underlying http.Server.
func (s *Server) Start() error {
	applog.Debug(context.Background(), "server starting listener", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the HTTP server with a timeout and drops the
// cached responses.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	applog.Debug(ctx, "server initiating graceful shutdown")
	err := s.httpServer.Shutdown(ctx)

	s.service.FlushCache(ctx)
	if cerr := s.config.Cache.Close(); cerr != nil {
		applog.Warn(ctx, "cache close failed", "error", cerr)
	}
	return err
}

// Handler exposes the configured HTTP handler, enabling integration tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
