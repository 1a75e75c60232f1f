package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/DeBrosOfficial/cachegate/pkg/config"
)

// parseGatewayConfig builds the gateway configuration.
// Priority: flags > env > config file > defaults.
func parseGatewayConfig(args []string, lookup func(string) (string, bool)) (*config.Config, string, error) {
	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to YAML config (default ./cachegate.yaml or ~/.cachegate/cachegate.yaml)")
	addr := fs.String("addr", "", "HTTP listen address (e.g., :8080)")
	cacheName := fs.String("cache-name", "", "Name of the cache behind /hello/cache")
	cacheMode := fs.String("cache-mode", "", "Cache mode: remote or embedded")
	servers := fs.String("servers", "", "Comma-separated Olric server addresses")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}

	path := strings.TrimSpace(*configPath)
	if path == "" {
		if p, ok := config.DefaultPath(); ok {
			path = p
		}
	}

	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		cfg = loaded
	}

	cfg.ApplyEnv(lookup)

	if v := strings.TrimSpace(*addr); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := strings.TrimSpace(*cacheName); v != "" {
		cfg.Cache.Name = v
	}
	if v := strings.TrimSpace(*cacheMode); v != "" {
		cfg.Cache.Mode = strings.ToLower(v)
	}
	if v := config.SplitList(*servers); len(v) > 0 {
		cfg.Cache.Servers = v
	}
	if v := strings.TrimSpace(*logLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	if err := cfg.ValidateAll(); err != nil {
		return nil, path, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, path, nil
}
