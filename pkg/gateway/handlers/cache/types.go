package cache

import (
	"context"

	"github.com/DeBrosOfficial/cachegate/pkg/logging"
)

// Response bodies.
const (
	MsgConnected        = "Olric is connected!"
	MsgConnectionFailed = "Olric connection failed!"
	MsgNotFound         = "Not found"
)

// Service is the part of cache.Service the handlers call into.
type Service interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, bool)
	IsConnected(ctx context.Context) bool
}

// CacheHandlers serves the /hello/cache routes over a cache Service.
type CacheHandlers struct {
	logger  *logging.ColoredLogger
	service Service
}

// NewCacheHandlers creates a new CacheHandlers instance with the provided logger and service.
func NewCacheHandlers(logger *logging.ColoredLogger, service Service) *CacheHandlers {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &CacheHandlers{
		logger:  logger,
		service: service,
	}
}
