// Package server exposes the lidkit pipeline over HTTP.
//
// # Routes
//
//	GET    /healthz                      liveness and build info
//	POST   /v1/webs?format=&name=        parse an uploaded file, return the web
//	POST   /v1/webs/render?kind=&output= parse an uploaded file, return a chart
//	POST   /v1/average                   multipart files, return the mean web
//	GET    /v1/catalog                   list catalogued luminaires
//	GET    /v1/catalog/{id}              one entry
//	GET    /v1/catalog/{id}/web          the stored web
//	GET    /v1/catalog/{id}/render       chart of the stored web
//	DELETE /v1/catalog/{id}              remove an entry
//
// Uploads are either the raw file as the request body or a multipart form
// with one "file" part (several for /v1/average). Errors are JSON objects
// carrying the error code and, for parse faults, the line and token.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/lidkit/pkg/catalog"
	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/observability"
	"github.com/matzehuels/lidkit/pkg/pipeline"
)

// DefaultMaxUpload caps request bodies when Options.MaxUploadBytes is zero.
const DefaultMaxUpload = 16 << 20

// Options configures a Server.
type Options struct {
	MaxUploadBytes int64
	// Defaults are applied to render requests before query parameters.
	Defaults pipeline.RenderOptions
}

// Server serves the pipeline and catalog over HTTP.
type Server struct {
	runner  *pipeline.Runner
	catalog *catalog.Catalog
	logger  *log.Logger
	opts    Options
}

// New creates a server. cat may be nil, in which case the catalog routes
// answer 404.
func New(runner *pipeline.Runner, cat *catalog.Catalog, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUpload
	}
	return &Server{runner: runner, catalog: cat, logger: logger, opts: opts}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/webs", s.handleParse)
		r.Post("/webs/render", s.handleRenderUpload)
		r.Post("/average", s.handleAverage)

		r.Route("/catalog", func(r chi.Router) {
			r.Use(s.requireCatalog)
			r.Get("/", s.handleCatalogList)
			r.Get("/{id}", s.handleCatalogGet)
			r.Get("/{id}/web", s.handleCatalogWeb)
			r.Get("/{id}/render", s.handleCatalogRender)
			r.Delete("/{id}", s.handleCatalogRemove)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeIO, err, "listen on %s", addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down http api")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "shutdown")
	}
	return nil
}

// observe reports every request to the registered server hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"request_id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start))
	})
}

func (s *Server) requireCatalog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.catalog == nil {
			writeError(w, errors.New(errors.ErrCodeNotFound, "catalog is not enabled"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
