package olric

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DeBrosOfficial/cachegate/pkg/cache"
	apperrors "github.com/DeBrosOfficial/cachegate/pkg/errors"
	"github.com/google/uuid"
	olriclib "github.com/olric-data/olric"
	"github.com/olric-data/olric/config"
	"go.uber.org/zap"
)

// Client wraps an Olric client and hands out distributed maps as cache handles.
type Client struct {
	client olriclib.Client
	logger *zap.Logger

	mu    sync.Mutex
	dmaps map[string]*dmapHandle

	// shutdown stops the embedded member, if any, after the client is closed.
	shutdown func(context.Context) error
}

var _ cache.Manager = (*Client)(nil)

// Config holds configuration for the Olric client
type Config struct {
	// Servers is a list of Olric server addresses (e.g., ["localhost:3320"])
	// If empty, defaults to ["localhost:3320"]
	Servers []string

	// Timeout is the dial, read and write timeout of the client connections.
	// If zero, defaults to 10 seconds
	Timeout time.Duration
}

// NewClient creates a client for a remote Olric cluster.
// Connections are established lazily by the first operation.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	servers := cfg.Servers
	if len(servers) == 0 {
		servers = []string{"localhost:3320"}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	clientCfg := config.NewClient()
	clientCfg.DialTimeout = timeout
	clientCfg.ReadTimeout = timeout
	clientCfg.WriteTimeout = timeout

	client, err := olriclib.NewClusterClient(servers, olriclib.WithConfig(clientCfg))
	if err != nil {
		return nil, apperrors.NewServiceError("olric", "failed to create Olric cluster client", 0, err)
	}

	return newClient(client, logger), nil
}

func newClient(client olriclib.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		client: client,
		logger: logger,
		dmaps:  make(map[string]*dmapHandle),
	}
}

// GetCache returns a handle to the distributed map called name.
// Handles are created on first use and reused afterwards.
func (c *Client) GetCache(_ context.Context, name string) (cache.Handle, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.dmaps[name]; ok {
		return h, nil
	}

	dm, err := c.client.NewDMap(name)
	if err != nil {
		return nil, apperrors.Wrap(err, fmt.Sprintf("failed to create DMap %q", name))
	}
	h := &dmapHandle{dm: dm}
	c.dmaps[name] = h
	c.logger.Debug("Olric DMap handle created", zap.String("dmap", name))
	return h, nil
}

// Health checks if the Olric client is healthy with a put/get/delete round-trip
func (c *Client) Health(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errors.New("olric client not initialized")
	}
	dm, err := c.client.NewDMap("_health_check")
	if err != nil {
		return fmt.Errorf("failed to create DMap for health check: %w", err)
	}

	testKey := "_health_" + uuid.NewString()
	testValue := "ok"

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := dm.Put(ctx, testKey, testValue); err != nil {
		return fmt.Errorf("health check put failed: %w", err)
	}

	gr, err := dm.Get(ctx, testKey)
	if err != nil {
		return fmt.Errorf("health check get failed: %w", err)
	}

	val, err := gr.String()
	if err != nil {
		return fmt.Errorf("health check value decode failed: %w", err)
	}
	if val != testValue {
		return fmt.Errorf("health check value mismatch: expected %q, got %q", testValue, val)
	}

	_, _ = dm.Delete(ctx, testKey)
	return nil
}

// Close closes the Olric client connection and stops the embedded member
// when the client owns one.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	err := c.client.Close(ctx)
	if c.shutdown != nil {
		err = errors.Join(err, c.shutdown(ctx))
	}
	return err
}

// dmapHandle adapts an Olric DMap to cache.Handle. Values are stored as strings.
type dmapHandle struct {
	dm olriclib.DMap
}

func (h *dmapHandle) Put(ctx context.Context, key, value string) error {
	return h.dm.Put(ctx, key, value)
}

func (h *dmapHandle) Get(ctx context.Context, key string) (string, bool, error) {
	gr, err := h.dm.Get(ctx, key)
	if err != nil {
		if isKeyNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	value, err := gr.String()
	if err != nil {
		return "", false, fmt.Errorf("failed to decode value for key %q: %w", key, err)
	}
	return value, true, nil
}

// Clear destroys the DMap on every member. Olric recreates it on the next write.
func (h *dmapHandle) Clear(ctx context.Context) error {
	return h.dm.Destroy(ctx)
}

// Size counts the keys of the DMap with a cluster-wide scan.
func (h *dmapHandle) Size(ctx context.Context) (int, error) {
	it, err := h.dm.Scan(ctx)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	n := 0
	for it.Next() {
		n++
	}
	return n, nil
}

func isKeyNotFound(err error) bool {
	// Cluster clients sometimes return the error text without the sentinel.
	return errors.Is(err, olriclib.ErrKeyNotFound) || strings.Contains(err.Error(), "key not found")
}
