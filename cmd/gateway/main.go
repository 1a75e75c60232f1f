package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DeBrosOfficial/cachegate/pkg/cache"
	"github.com/DeBrosOfficial/cachegate/pkg/config"
	"github.com/DeBrosOfficial/cachegate/pkg/gateway"
	"github.com/DeBrosOfficial/cachegate/pkg/logging"
	"github.com/DeBrosOfficial/cachegate/pkg/olric"
	"go.uber.org/zap"
)

func setupLogger(cfg config.LoggingConfig) *logging.ColoredLogger {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Level,
		Format: cfg.Format,
		Colors: cfg.Colors,
	})
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	cfg, path, err := parseGatewayConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cachegate: %v\n", err)
		os.Exit(2)
	}

	logger := setupLogger(cfg.Logging)
	defer func() { _ = logger.Sync() }()

	logger.ComponentInfo(logging.ComponentConfig, "Loaded gateway configuration",
		zap.String("file", path),
		zap.String("addr", cfg.Server.ListenAddr),
		zap.String("cache", cfg.Cache.Name),
		zap.String("mode", cfg.Cache.Mode),
		zap.Strings("servers", cfg.Cache.Servers),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := connectCache(ctx, cfg.Cache, logger)
	if err != nil {
		logger.ComponentError(logging.ComponentOlric, "failed to initialize cache client", zap.Error(err))
		os.Exit(1)
	}

	// An unreachable cache is not fatal: reads degrade and writes answer 503.
	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := client.Health(healthCtx); err != nil {
		logger.ComponentWarn(logging.ComponentOlric, "cache health check failed", zap.Error(err))
	}
	cancel()

	svc := cache.NewService(client, cfg.Cache.Name, cache.WithObserver(logging.NewCacheObserver(logger)))

	g, err := gateway.New(logger, gateway.Config{
		ListenAddr:      cfg.Server.ListenAddr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, svc, client)
	if err != nil {
		logger.ComponentError(logging.ComponentGateway, "failed to initialize gateway", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close(context.Background())

	if err := g.ListenAndServe(ctx); err != nil {
		logger.ComponentError(logging.ComponentGateway, "HTTP server error", zap.Error(err))
		g.Close(context.Background())
		os.Exit(1)
	}
	logger.ComponentInfo(logging.ComponentGeneral, "Gateway shutdown complete")
}

// connectCache returns a client for the configured cache mode.
func connectCache(ctx context.Context, cfg config.CacheConfig, logger *logging.ColoredLogger) (*olric.Client, error) {
	if cfg.Mode == config.ModeEmbedded {
		return olric.StartEmbedded(ctx, olric.EmbeddedConfig{
			BindAddr:       cfg.Embedded.BindAddr,
			BindPort:       cfg.Embedded.BindPort,
			MemberlistPort: cfg.Embedded.MemberlistPort,
		}, logger)
	}
	return olric.NewClient(olric.Config{
		Servers: cfg.Servers,
		Timeout: cfg.Timeout,
	}, logger.Logger)
}
