package cache

import (
	"context"

	apperrors "github.com/DeBrosOfficial/cachegate/pkg/errors"
)

// Service is the cache façade used by the HTTP layer.
//
// Reads degrade: when the cache cannot be reached Get reports the key as
// absent, Clear does nothing and IsConnected returns false. Writes do not:
// Put returns a *errors.CacheUnavailableError when no handle is available and
// passes write errors from the client through unchanged.
type Service struct {
	manager  Manager
	name     string
	observer Observer
}

// Option configures a Service.
type Option func(*Service)

// WithObserver installs the observer that receives the service's events.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
		}
	}
}

// NewService creates a façade over the named cache of manager.
// An empty name selects DefaultName.
func NewService(manager Manager, name string, opts ...Option) *Service {
	if name == "" {
		name = DefaultName
	}
	s := &Service{
		manager:  manager,
		name:     name,
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the name of the cache behind the façade.
func (s *Service) Name() string {
	return s.name
}

// acquire returns the handle for op, or nil when the cache is unavailable.
// err is the acquisition error, if any; it is nil when the cache is absent.
func (s *Service) acquire(ctx context.Context, op string) (Handle, error) {
	if s.manager == nil {
		s.observer.HandleUnavailable(s.name, op, nil)
		return nil, nil
	}
	h, err := s.manager.GetCache(ctx, s.name)
	if err != nil {
		s.observer.HandleUnavailable(s.name, op, err)
		return nil, err
	}
	if h == nil {
		s.observer.HandleUnavailable(s.name, op, nil)
		return nil, nil
	}
	return h, nil
}

// Put stores value under key.
func (s *Service) Put(ctx context.Context, key, value string) error {
	s.observer.Put(s.name, key, value)
	h, err := s.acquire(ctx, "put")
	if h == nil {
		return apperrors.NewCacheUnavailableError(s.name, err)
	}
	return h.Put(ctx, key, value)
}

// Get returns the value stored under key, or ok=false when the key is unset
// or the cache is unavailable.
func (s *Service) Get(ctx context.Context, key string) (string, bool) {
	s.observer.Get(s.name, key)
	h, _ := s.acquire(ctx, "get")
	if h == nil {
		return "", false
	}
	value, found, err := h.Get(ctx, key)
	if err != nil {
		s.observer.OperationFailed(s.name, "get", err)
		return "", false
	}
	if !found {
		return "", false
	}
	return value, true
}

// Clear empties the cache. It is a no-op when the cache is unavailable.
func (s *Service) Clear(ctx context.Context) {
	s.observer.Clear(s.name)
	h, _ := s.acquire(ctx, "clear")
	if h == nil {
		return
	}
	if err := h.Clear(ctx); err != nil {
		s.observer.OperationFailed(s.name, "clear", err)
	}
}

// IsConnected reports whether the cache answers a size probe.
func (s *Service) IsConnected(ctx context.Context) bool {
	h, _ := s.acquire(ctx, "health")
	if h == nil {
		return false
	}
	size, err := h.Size(ctx)
	if err != nil {
		s.observer.ProbeFailed(s.name, err)
		return false
	}
	s.observer.ProbeSucceeded(s.name, size)
	return true
}
