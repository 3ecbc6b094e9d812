package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 10 * time.Second

// Run maps handlers and serves HTTP until ctx is done or SIGINT/SIGTERM
// arrives, then shuts down within the configured timeout.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		srv.logger.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(srv.host, strconv.Itoa(srv.port)),
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		srv.logger.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		srv.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			srv.logger.Errorf(ctx, "HTTP server shutdown error: %v", err)
			return err
		}
		srv.logger.Info(ctx, "HTTP server stopped")
		return nil
	})

	return g.Wait()
}
