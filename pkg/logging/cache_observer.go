package logging

import (
	"github.com/DeBrosOfficial/cachegate/pkg/cache"
	"go.uber.org/zap"
)

// CacheObserver logs the events of a cache.Service.
type CacheObserver struct {
	logger *ColoredLogger
}

var _ cache.Observer = (*CacheObserver)(nil)

// NewCacheObserver creates an observer that writes to logger.
func NewCacheObserver(logger *ColoredLogger) *CacheObserver {
	return &CacheObserver{logger: logger}
}

func (o *CacheObserver) Put(name, key, value string) {
	o.logger.ComponentInfo(ComponentCache, "Putting into cache",
		zap.String("cache", name),
		zap.String("key", key),
		zap.String("value", value))
}

func (o *CacheObserver) Get(name, key string) {
	o.logger.ComponentInfo(ComponentCache, "Getting from cache",
		zap.String("cache", name),
		zap.String("key", key))
}

func (o *CacheObserver) Clear(name string) {
	o.logger.ComponentInfo(ComponentCache, "Clearing cache", zap.String("cache", name))
}

func (o *CacheObserver) HandleUnavailable(name, op string, err error) {
	if err != nil {
		o.logger.ComponentError(ComponentCache, "Failed to get cache",
			zap.String("cache", name),
			zap.String("op", op),
			zap.Error(err))
		return
	}
	o.logger.ComponentWarn(ComponentCache, "Cache handle is absent",
		zap.String("cache", name),
		zap.String("op", op))
}

func (o *CacheObserver) OperationFailed(name, op string, err error) {
	o.logger.ComponentError(ComponentCache, "Cache operation failed",
		zap.String("cache", name),
		zap.String("op", op),
		zap.Error(err))
}

func (o *CacheObserver) ProbeSucceeded(name string, size int) {
	o.logger.ComponentInfo(ComponentCache, "Cache connected",
		zap.String("cache", name),
		zap.Int("size", size))
}

func (o *CacheObserver) ProbeFailed(name string, err error) {
	o.logger.ComponentError(ComponentCache, "Failed to connect to cache",
		zap.String("cache", name),
		zap.Error(err))
}
