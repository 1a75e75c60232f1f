package config

import (
	"time"

	"github.com/DeBrosOfficial/cachegate/pkg/cache"
)

// Cache modes
const (
	ModeRemote   = "remote"   // connect to an existing Olric cluster
	ModeEmbedded = "embedded" // start an in-process Olric member
)

// Config represents the main configuration for the gateway
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	ListenAddr      string        `yaml:"listen_addr"`      // e.g. ":8080"
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // graceful shutdown budget
}

// CacheConfig contains remote cache configuration
type CacheConfig struct {
	Name     string         `yaml:"name"`    // name of the distributed map behind the façade
	Mode     string         `yaml:"mode"`    // remote | embedded
	Servers  []string       `yaml:"servers"` // Olric server addresses, remote mode only
	Timeout  time.Duration  `yaml:"timeout"` // dial/read/write timeout of the Olric client
	Embedded EmbeddedConfig `yaml:"embedded"`
}

// EmbeddedConfig contains the settings of the in-process Olric member
type EmbeddedConfig struct {
	BindAddr       string `yaml:"bind_addr"`
	BindPort       int    `yaml:"bind_port"`
	MemberlistPort int    `yaml:"memberlist_port"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	Colors bool   `yaml:"colors"` // console format only
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Cache: CacheConfig{
			Name:    cache.DefaultName,
			Mode:    ModeRemote,
			Servers: []string{"localhost:3320"},
			Timeout: 10 * time.Second,
			Embedded: EmbeddedConfig{
				BindAddr:       "127.0.0.1",
				BindPort:       3320,
				MemberlistPort: 3322,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Colors: true,
		},
	}
}
