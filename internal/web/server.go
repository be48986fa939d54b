package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emiliopalmerini/themestudio/internal/ports"
	"github.com/emiliopalmerini/themestudio/internal/shared/middleware"
	"github.com/emiliopalmerini/themestudio/internal/theme"
)

// maxBodyBytes bounds request bodies; theme documents are small.
const maxBodyBytes = 4 << 20

type Server struct {
	router          *http.ServeMux
	addr            string
	shutdownTimeout time.Duration

	configs   *theme.ConfigCache
	generator *theme.Generator
	simple    *theme.SimpleGenerator
	metrics   ports.MetricsExporter
}

func NewServer(addr string, shutdownTimeout time.Duration, configs *theme.ConfigCache, me ports.MetricsExporter) *Server {
	gen := theme.NewGenerator(configs, me)
	s := &Server{
		router:          http.NewServeMux(),
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		configs:         configs,
		generator:       gen,
		simple:          theme.NewSimpleGenerator(gen),
		metrics:         me,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("GET /metrics", promhttp.Handler())

	// Pages
	s.router.HandleFunc("GET /preview", s.handlePreview)

	// API endpoints
	s.router.HandleFunc("POST /api/generate-brand-palette", s.handleAPIGenerateBrandPalette)
	s.router.HandleFunc("POST /api/generate-neutral-palette", s.handleAPIGenerateNeutralPalette)
	s.router.HandleFunc("GET /api/tokens", s.handleAPITokens)
	s.router.HandleFunc("POST /api/resolve", s.handleAPIResolve)
	s.router.HandleFunc("POST /api/themes", s.handleAPIThemes)
	s.router.HandleFunc("POST /api/config/reload", s.handleAPIReloadConfig)
}

// Handler returns the router wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return middleware.RequestID(middleware.Observe(s.router))
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server at http://%s", displayAddr(s.addr))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
