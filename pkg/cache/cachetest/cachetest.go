// Package cachetest provides an in-memory cache.Manager for tests.
package cachetest

import (
	"context"
	"sync"

	"github.com/DeBrosOfficial/cachegate/pkg/cache"
)

// Store is an in-memory cache.Handle. The *Err fields, when set, are
// returned by the matching operation instead of touching the data.
type Store struct {
	mu   sync.Mutex
	data map[string]string

	PutErr   error
	GetErr   error
	ClearErr error
	SizeErr  error
}

var _ cache.Handle = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return s.PutErr
	}
	s.data[key] = value
	return nil
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.data = make(map[string]string)
	return nil
}

func (s *Store) Size(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SizeErr != nil {
		return 0, s.SizeErr
	}
	return len(s.data), nil
}

// Manager serves Store for every cache name. With Err set it fails every
// acquisition; with a nil Store it reports every cache as absent.
type Manager struct {
	Store *Store
	Err   error

	mu    sync.Mutex
	names []string
}

var _ cache.Manager = (*Manager)(nil)

// NewManager returns a manager backed by a fresh Store.
func NewManager() *Manager {
	return &Manager{Store: NewStore()}
}

func (m *Manager) GetCache(_ context.Context, name string) (cache.Handle, error) {
	m.mu.Lock()
	m.names = append(m.names, name)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Store == nil {
		return nil, nil
	}
	return m.Store, nil
}

// Requested returns the cache names asked for so far, in order.
func (m *Manager) Requested() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.names...)
}
