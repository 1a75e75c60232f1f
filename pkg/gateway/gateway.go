package gateway

import (
	"context"
	"errors"
	"time"

	cachehandlers "github.com/DeBrosOfficial/cachegate/pkg/gateway/handlers/cache"
	"github.com/DeBrosOfficial/cachegate/pkg/logging"
	"github.com/go-chi/chi/v5"
)

// Greeting is the body served on GET /hello.
const Greeting = "Hello from cachegate"

// Config holds the HTTP server settings of the gateway.
type Config struct {
	ListenAddr      string
	ShutdownTimeout time.Duration
}

// Backend is a resource the gateway releases on Close, typically the cache client.
type Backend interface {
	Close(ctx context.Context) error
}

// Gateway serves the greeting and cache routes.
type Gateway struct {
	logger    *logging.ColoredLogger
	cfg       Config
	cache     *cachehandlers.CacheHandlers
	backend   Backend
	router    chi.Router
	startedAt time.Time
}

// New creates a gateway over the cache service. backend may be nil.
func New(logger *logging.ColoredLogger, cfg Config, service cachehandlers.Service, backend Backend) (*Gateway, error) {
	if service == nil {
		return nil, errors.New("gateway: cache service is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	g := &Gateway{
		logger:    logger,
		cfg:       cfg,
		cache:     cachehandlers.NewCacheHandlers(logger, service),
		backend:   backend,
	}
	g.router = g.newRouter()
	return g, nil
}
