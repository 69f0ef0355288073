// Package server exposes style resolution over HTTP.
//
// All endpoints speak JSON. Errors are rendered as
//
//	{"error": {"code": "INVALID_PRESET", "message": "..."}}
//
// with the status derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/matzehuels/tilestyle/pkg/errors"
	"github.com/matzehuels/tilestyle/pkg/resolve"
	"github.com/matzehuels/tilestyle/pkg/style"
)

const (
	// maxBodyBytes limits request bodies for POST endpoints.
	maxBodyBytes = 8 << 20

	shutdownTimeout = 5 * time.Second
)

// Server serves presets, property metadata, color conversion, merging and
// batch feature resolution.
type Server struct {
	registry *style.Registry
	base     style.Config
	resolver *resolve.Resolver
	logger   *log.Logger
}

// New creates a server. base is the effective style used when a request does
// not name a preset or carry its own style; nil selects the registry's
// default preset. A nil registry uses the built-in presets.
func New(registry *style.Registry, base style.Config, logger *log.Logger) *Server {
	if registry == nil {
		registry = style.Presets()
	}
	if base == nil {
		base = registry.NewCustom(style.PresetDefault)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		registry: registry,
		base:     base.Clone(),
		resolver: resolve.New(base),
		logger:   logger,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/presets", func(r chi.Router) {
		r.Get("/", s.handlePresets)
		r.Get("/{name}", s.handlePreset)
		r.Get("/{name}/colors", s.handlePresetColors)
	})
	r.Route("/properties", func(r chi.Router) {
		r.Get("/", s.handleProperties)
		r.Get("/{key}", s.handleProperty)
	})

	r.Get("/style", s.handleStyle)
	r.Get("/rgba", s.handleRGBA)
	r.Post("/merge", s.handleMerge)
	r.Post("/resolve", s.handleResolve)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, apperrors.New(apperrors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorStatus(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
