// Package cliconfig resolves framepub's configuration with the precedence
// flags > environment (FRAMEPUB_*) > TOML file > defaults, and watches the
// file for live tuning updates.
package cliconfig

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/noh-jun/framepub/internal/sample"
)

// Config holds the resolved CLI configuration.
type Config struct {
	Host string
	Port int

	Terminator string
	MinChunks  int
	MaxChunks  int
	Jitter     time.Duration

	DriverID int
	Seed     int64
	Debug    bool
}

// DefaultConfig returns a Config with the publisher's default values.
func DefaultConfig() Config {
	return Config{
		Host:       "127.0.0.1",
		Port:       8051,
		Terminator: string(sample.TerminatorNone),
		MinChunks:  1,
		MaxChunks:  16,
		Jitter:     5 * time.Millisecond,
		DriverID:   1,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be within 1~65535, got %d", c.Port)
	}
	if _, err := sample.ParseTerminator(c.Terminator); err != nil {
		return err
	}
	if c.MinChunks < 1 {
		return fmt.Errorf("min-chunk must be >= 1, got %d", c.MinChunks)
	}
	if c.MaxChunks < c.MinChunks {
		return fmt.Errorf("max-chunk must be >= min-chunk, got %d < %d", c.MaxChunks, c.MinChunks)
	}
	if c.Jitter < 0 {
		return fmt.Errorf("jitter must be >= 0, got %v", c.Jitter)
	}
	if c.DriverID < 1 {
		return fmt.Errorf("driver-id must be >= 1, got %d", c.DriverID)
	}
	return nil
}

// Addr returns the host:port dial target.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// configSetter helps apply configuration values while respecting flag
// precedence: a value is only applied when the matching flag was not
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

func (s *configSetter) setInt64FromString(flag, value string, dst *int64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

func (s *configSetter) setInt64(flag string, value int64, dst *int64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}
