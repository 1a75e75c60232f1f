package config

import (
	"os"
	"strings"
)

// Environment variables recognized by ApplyEnv
const (
	EnvListenAddr   = "CACHEGATE_ADDR"
	EnvCacheName    = "CACHEGATE_CACHE_NAME"
	EnvCacheMode    = "CACHEGATE_CACHE_MODE"
	EnvCacheServers = "CACHEGATE_CACHE_SERVERS"
	EnvLogLevel     = "CACHEGATE_LOG_LEVEL"
	EnvLogFormat    = "CACHEGATE_LOG_FORMAT"
	EnvLogColors    = "CACHEGATE_LOG_COLORS"
)

// ApplyEnv overrides cfg with the non-empty environment variables above.
// lookup is os.LookupEnv in production and a map lookup in tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvListenAddr); ok {
		c.Server.ListenAddr = v
	}
	if v, ok := get(EnvCacheName); ok {
		c.Cache.Name = v
	}
	if v, ok := get(EnvCacheMode); ok {
		c.Cache.Mode = strings.ToLower(v)
	}
	if v, ok := get(EnvCacheServers); ok {
		c.Cache.Servers = SplitList(v)
	}
	if v, ok := get(EnvLogLevel); ok {
		c.Logging.Level = strings.ToLower(v)
	}
	if v, ok := get(EnvLogFormat); ok {
		c.Logging.Format = strings.ToLower(v)
	}
	if v, ok := get(EnvLogColors); ok {
		c.Logging.Colors = ParseBool(v, c.Logging.Colors)
	}
}

// SplitList splits a comma-separated list, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if val := strings.TrimSpace(part); val != "" {
			out = append(out, val)
		}
	}
	return out
}

// ParseBool parses the usual spellings of a boolean, returning def otherwise.
func ParseBool(v string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return def
	}
}
