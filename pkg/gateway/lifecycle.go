package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/DeBrosOfficial/cachegate/pkg/logging"
	"go.uber.org/zap"
)

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (g *Gateway) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", g.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", g.cfg.ListenAddr, err)
	}
	return g.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled or the server fails, then shuts
// the server down within the configured shutdown timeout.
func (g *Gateway) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           g.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.startedAt = time.Now()
	g.logger.ComponentInfo(logging.ComponentGateway, "HTTP server starting",
		zap.String("listen_addr", ln.Addr().String()),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	g.logger.ComponentInfo(logging.ComponentGateway, "HTTP server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), g.cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		g.logger.ComponentError(logging.ComponentGateway, "HTTP server shutdown error", zap.Error(err))
		return err
	}

	g.logger.ComponentInfo(logging.ComponentGateway, "HTTP server shutdown complete",
		zap.Duration("uptime", time.Since(g.startedAt)),
	)
	return nil
}

// Close releases the cache backend.
func (g *Gateway) Close(ctx context.Context) {
	if g.backend == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, g.cfg.ShutdownTimeout)
	defer cancel()
	if err := g.backend.Close(ctx); err != nil {
		g.logger.ComponentWarn(logging.ComponentGateway, "error during cache client close", zap.Error(err))
	}
}
