// Package app runs the dashboard process: the public gin server and the
// optional admin listener, sharing one container.
package app

import (
	"context"
	"errors"
	"net"

	"synthml/internal"
	"synthml/internal/config"
	"synthml/internal/container"
	"synthml/ui"
)

// Run serves until ctx is cancelled or a listener fails, then drains both
// listeners within the configured shutdown timeout. Both ports are bound
// before Run waits on ctx, and Run returns only after every Serve call has.
func Run(ctx context.Context, cfg *config.Config, logger *internal.Logger) (err error) {
	appContainer, err := container.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, appContainer.Shutdown(context.Background()))
	}()

	server, err := ui.NewServer(ui.Dependencies{
		Kit:         appContainer.TestKit,
		Preferences: appContainer.Preferences,
		Renderer:    appContainer.Renderer,
		Exporter:    appContainer.Exporter,
		Metrics:     appContainer.Metrics,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	ln, err := server.Listen(":" + cfg.Server.Port)
	if err != nil {
		return err
	}
	var (
		admin   *ui.AdminApp
		adminLn net.Listener
	)
	if cfg.Admin.Enabled {
		admin = ui.NewAdminApp(appContainer.Metrics, logger)
		if adminLn, err = admin.Listen(cfg.Admin.Addr()); err != nil {
			return errors.Join(err, ln.Close())
		}
	}

	errCh := make(chan error, 2)
	running := 1
	go func() { errCh <- server.Serve(ln) }()
	if admin != nil {
		running++
		go func() { errCh <- admin.Serve(adminLn) }()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case serveErr = <-errCh:
		running--
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	shutdownErr := server.Shutdown(shutdownCtx)
	if admin != nil {
		shutdownErr = errors.Join(shutdownErr, admin.Shutdown(shutdownCtx))
	}
	for ; running > 0; running-- {
		serveErr = errors.Join(serveErr, <-errCh)
	}
	return errors.Join(serveErr, shutdownErr)
}
