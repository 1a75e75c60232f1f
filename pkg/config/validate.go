package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/DeBrosOfficial/cachegate/pkg/cache"
)

// ValidationError represents a single validation error with context.
type ValidationError struct {
	Path    string // e.g., "cache.servers[0]"
	Message string // e.g., "invalid host:port"
	Hint    string // e.g., "expected host:port, e.g. localhost:3320"
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s; %s", e.Path, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate performs comprehensive validation of the entire config.
// It aggregates all errors and returns them, allowing the caller to print all issues at once.
func (c *Config) Validate() []error {
	var errs []error
	errs = append(errs, c.validateServer()...)
	errs = append(errs, c.validateCache()...)
	errs = append(errs, c.validateLogging()...)
	return errs
}

// ValidateAll joins the results of Validate into one error, or nil.
func (c *Config) ValidateAll() error {
	return errors.Join(c.Validate()...)
}

func (c *Config) validateServer() []error {
	var errs []error
	sc := c.Server

	if err := validateHostPort(sc.ListenAddr, true); err != nil {
		errs = append(errs, ValidationError{
			Path:    "server.listen_addr",
			Message: err.Error(),
			Hint:    "expected [host]:port, e.g. :8080",
		})
	}
	if sc.ShutdownTimeout < 0 {
		errs = append(errs, ValidationError{
			Path:    "server.shutdown_timeout",
			Message: "must not be negative",
		})
	}
	return errs
}

func (c *Config) validateCache() []error {
	var errs []error
	cc := c.Cache

	if strings.TrimSpace(cc.Name) == "" {
		errs = append(errs, ValidationError{
			Path:    "cache.name",
			Message: "must not be empty",
		})
	} else if !cache.ValidName(cc.Name) {
		errs = append(errs, ValidationError{
			Path:    "cache.name",
			Message: fmt.Sprintf("invalid cache name %q", cc.Name),
			Hint:    "use letters, digits, '.', '-' or '_' (max 128)",
		})
	}
	if cc.Timeout < 0 {
		errs = append(errs, ValidationError{
			Path:    "cache.timeout",
			Message: "must not be negative",
		})
	}

	switch cc.Mode {
	case ModeRemote:
		if len(cc.Servers) == 0 {
			errs = append(errs, ValidationError{
				Path:    "cache.servers",
				Message: "must not be empty in remote mode",
				Hint:    "list Olric server addresses or set cache.mode: embedded",
			})
		}
		for i, s := range cc.Servers {
			if err := validateHostPort(s, false); err != nil {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("cache.servers[%d]", i),
					Message: err.Error(),
					Hint:    "expected host:port, e.g. localhost:3320",
				})
			}
		}
	case ModeEmbedded:
		ec := cc.Embedded
		if ec.BindAddr == "" {
			errs = append(errs, ValidationError{
				Path:    "cache.embedded.bind_addr",
				Message: "must not be empty",
			})
		}
		if ec.BindPort <= 0 || ec.BindPort > 65535 {
			errs = append(errs, ValidationError{
				Path:    "cache.embedded.bind_port",
				Message: fmt.Sprintf("port %d out of range", ec.BindPort),
				Hint:    "expected 1-65535",
			})
		}
		if ec.MemberlistPort <= 0 || ec.MemberlistPort > 65535 {
			errs = append(errs, ValidationError{
				Path:    "cache.embedded.memberlist_port",
				Message: fmt.Sprintf("port %d out of range", ec.MemberlistPort),
				Hint:    "expected 1-65535",
			})
		} else if ec.MemberlistPort == ec.BindPort {
			errs = append(errs, ValidationError{
				Path:    "cache.embedded.memberlist_port",
				Message: "must differ from bind_port",
			})
		}
	default:
		errs = append(errs, ValidationError{
			Path:    "cache.mode",
			Message: fmt.Sprintf("invalid value %q", cc.Mode),
			Hint:    "allowed values: remote, embedded",
		})
	}
	return errs
}

func (c *Config) validateLogging() []error {
	var errs []error
	lc := c.Logging

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[lc.Level] {
		errs = append(errs, ValidationError{
			Path:    "logging.level",
			Message: fmt.Sprintf("invalid value %q", lc.Level),
			Hint:    "allowed values: debug, info, warn, error",
		})
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[lc.Format] {
		errs = append(errs, ValidationError{
			Path:    "logging.format",
			Message: fmt.Sprintf("invalid value %q", lc.Format),
			Hint:    "allowed values: json, console",
		})
	}
	return errs
}

func validateHostPort(addr string, allowEmptyHost bool) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid address %q", addr)
	}
	if host == "" && !allowEmptyHost {
		return fmt.Errorf("missing host in %q", addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", portStr)
	}
	return nil
}
