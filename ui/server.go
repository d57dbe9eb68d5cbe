// Package ui serves the marketing site and the dashboard over gin.
package ui

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"synthml/internal"
	"synthml/internal/metrics"
	"synthml/internal/preferences"
	"synthml/internal/render"
	"synthml/internal/report"
	"synthml/internal/testkit"
)

//go:embed templates static
var embeddedFiles embed.FS

// Dependencies are the services the HTTP layer is built on. Logger and
// Metrics are optional.
type Dependencies struct {
	Kit         *testkit.TestKit
	Preferences *preferences.Service
	Renderer    *render.Renderer
	Exporter    *report.Exporter
	Metrics     *metrics.Recorder
	Logger      *internal.Logger
}

// Server represents the web server for the dashboard
type Server struct {
	router        *gin.Engine
	templates     *template.Template
	embeddedFiles fs.FS
	kit           *testkit.TestKit
	prefs         *preferences.Service
	renderer      *render.Renderer
	exporter      *report.Exporter
	metrics       *metrics.Recorder
	logger        *internal.Logger

	httpServer *http.Server
}

// NewServer creates a server with parsed templates and registered routes
func NewServer(deps Dependencies) (*Server, error) {
	if deps.Kit == nil || deps.Preferences == nil {
		return nil, errors.New("ui: test kit and preference service are required")
	}
	if deps.Logger == nil {
		deps.Logger = internal.DefaultLogger
	}
	if deps.Renderer == nil {
		deps.Renderer = render.NewRenderer(deps.Kit)
	}
	if deps.Exporter == nil {
		var obs report.Observer
		if deps.Metrics != nil {
			obs = deps.Metrics
		}
		deps.Exporter = report.NewExporter(deps.Kit, report.DefaultConcurrency, obs, deps.Logger)
	}

	s := &Server{
		router:        gin.New(),
		embeddedFiles: embeddedFiles,
		kit:           deps.Kit,
		prefs:         deps.Preferences,
		renderer:      deps.Renderer,
		exporter:      deps.Exporter,
		metrics:       deps.Metrics,
		logger:        deps.Logger.With("component", "ui"),
	}
	if err := s.Initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Initialize parses templates and wires middleware and routes
func (s *Server) Initialize() error {
	templatesFS, err := fs.Sub(s.embeddedFiles, "templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	s.templates = template.New("").Funcs(s.funcMap())
	var files []string
	err = fs.WalkDir(templatesFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".html" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	for _, file := range files {
		content, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", file, err)
		}
		if _, err := s.templates.New(file).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", file, err)
		}
	}
	s.logger.Debug("parsed %d templates", len(files))

	s.setupMiddleware()
	s.setupRoutes()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds addr without serving.
func (s *Server) Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return ln, nil
}

// Serve accepts connections on ln until Shutdown is called. After Shutdown
// it closes ln and returns nil at once.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("starting dashboard on http://%s", displayAddr(ln.Addr().String()))
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests. It may be called before Serve.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
