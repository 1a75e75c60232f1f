package olric

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/DeBrosOfficial/cachegate/pkg/logging"
	olriclib "github.com/olric-data/olric"
	"github.com/olric-data/olric/config"
	"go.uber.org/zap"
)

// EmbeddedConfig holds configuration for an in-process Olric member
type EmbeddedConfig struct {
	BindAddr       string        // Address to bind (e.g., "127.0.0.1")
	BindPort       int           // Olric protocol port
	MemberlistPort int           // Memberlist gossip port
	StartTimeout   time.Duration // How long to wait for the member to accept connections (default: 30s)
}

// EmbeddedError represents an error while starting the embedded member
type EmbeddedError struct {
	Message string
	Cause   error
}

func (e *EmbeddedError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *EmbeddedError) Unwrap() error {
	return e.Cause
}

// StartEmbedded starts a single-member Olric cluster inside the process and
// returns a Client bound to it. Closing the client shuts the member down.
func StartEmbedded(ctx context.Context, cfg EmbeddedConfig, logger *logging.ColoredLogger) (*Client, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	startTimeout := cfg.StartTimeout
	if startTimeout == 0 {
		startTimeout = 30 * time.Second
	}

	// Olric logs through a *log.Logger; route it into the component logger.
	out := logging.NewStandardLogger(logger, logging.ComponentOlric)

	c := config.New("local")
	c.BindAddr = cfg.BindAddr
	c.BindPort = cfg.BindPort
	c.MemberlistConfig.BindAddr = cfg.BindAddr
	c.MemberlistConfig.BindPort = cfg.MemberlistPort
	c.LogOutput = out
	c.Logger = log.New(out, "", 0)
	c.LogLevel = "WARN"

	started := make(chan struct{})
	c.Started = func() {
		close(started)
	}

	db, err := olriclib.New(c)
	if err != nil {
		return nil, &EmbeddedError{Message: "failed to create embedded Olric member", Cause: err}
	}

	logger.ComponentInfo(logging.ComponentOlric, "Starting embedded Olric member",
		zap.String("bind_addr", cfg.BindAddr),
		zap.Int("bind_port", cfg.BindPort),
		zap.Int("memberlist_port", cfg.MemberlistPort),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- db.Start()
	}()

	timer := time.NewTimer(startTimeout)
	defer timer.Stop()

	select {
	case <-started:
	case err := <-errCh:
		return nil, &EmbeddedError{Message: "embedded Olric member exited during startup", Cause: err}
	case <-timer.C:
		_ = db.Shutdown(context.Background())
		return nil, &EmbeddedError{Message: fmt.Sprintf("embedded Olric member not ready after %s", startTimeout)}
	case <-ctx.Done():
		_ = db.Shutdown(context.Background())
		return nil, &EmbeddedError{Message: "embedded Olric startup cancelled", Cause: ctx.Err()}
	}

	logger.ComponentInfo(logging.ComponentOlric, "Embedded Olric member ready")

	client := newClient(db.NewEmbeddedClient(), logger.Logger)
	client.shutdown = func(ctx context.Context) error {
		logger.ComponentInfo(logging.ComponentOlric, "Stopping embedded Olric member")
		if err := db.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shut down embedded Olric member: %w", err)
		}
		return nil
	}
	return client, nil
}
