package cliconfig

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:8051" {
		t.Fatalf("unexpected default addr %s", cfg.Addr())
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"empty host", func(c *Config) { c.Host = "" }, "host"},
		{"zero port", func(c *Config) { c.Port = 0 }, "port"},
		{"huge port", func(c *Config) { c.Port = 70000 }, "port"},
		{"bad terminator", func(c *Config) { c.Terminator = "crlf" }, "terminator"},
		{"zero min chunk", func(c *Config) { c.MinChunks = 0 }, "min-chunk"},
		{"max below min", func(c *Config) { c.MinChunks = 8; c.MaxChunks = 2 }, "max-chunk"},
		{"negative jitter", func(c *Config) { c.Jitter = -time.Millisecond }, "jitter"},
		{"zero driver id", func(c *Config) { c.DriverID = 0 }, "driver-id"},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
		if !strings.Contains(err.Error(), c.wantSub) {
			t.Fatalf("%s: error %q does not mention %q", c.name, err, c.wantSub)
		}
	}
}

func TestConfigSetter_RespectsChangedFlags(t *testing.T) {
	cfg := DefaultConfig()
	s := newConfigSetter(map[string]bool{"host": true})

	s.setString("host", "10.0.0.9", &cfg.Host)
	if cfg.Host != "127.0.0.1" {
		t.Fatalf("changed flag was overridden: %s", cfg.Host)
	}

	s.setString("terminator", "newline", &cfg.Terminator)
	if cfg.Terminator != "newline" {
		t.Fatalf("unchanged flag was not applied: %s", cfg.Terminator)
	}
}
