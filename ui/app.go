package ui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"synthml/internal"
	"synthml/internal/metrics"
)

// AdminApp is the operator listener: pprof, prometheus metrics and a
// health probe, kept off the public port.
type AdminApp struct {
	router  *chi.Mux
	metrics *metrics.Recorder
	logger  *internal.Logger
	server  *http.Server
}

// NewAdminApp creates the admin router
func NewAdminApp(rec *metrics.Recorder, logger *internal.Logger) *AdminApp {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	app := &AdminApp{
		router:  chi.NewRouter(),
		metrics: rec,
		logger:  logger.With("component", "admin"),
	}
	app.setupMiddleware()
	app.setupRoutes()
	app.server = &http.Server{Handler: app.router, ReadHeaderTimeout: 10 * time.Second}
	return app
}

// setupMiddleware configures HTTP middleware
func (a *AdminApp) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the admin routes
func (a *AdminApp) setupRoutes() {
	a.router.Mount("/debug", middleware.Profiler())
	if a.metrics != nil {
		a.router.Handle("/metrics", a.metrics.Handler())
	}
	a.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok"}`)
	})
}

// Handler exposes the router, mainly for tests.
func (a *AdminApp) Handler() http.Handler {
	return a.router
}

// Listen binds addr without serving.
func (a *AdminApp) Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return ln, nil
}

// Serve accepts connections on ln until Shutdown is called.
func (a *AdminApp) Serve(ln net.Listener) error {
	a.logger.Info("admin listener on %s (pprof, metrics)", ln.Addr())
	if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the admin listener. It may be called before Serve.
func (a *AdminApp) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
