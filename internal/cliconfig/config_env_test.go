package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("FRAMEPUB_HOST", "env-host")
	t.Setenv("FRAMEPUB_PORT", "9100")
	t.Setenv("FRAMEPUB_MIN_CHUNK", "3")
	t.Setenv("FRAMEPUB_JITTER", "12ms")
	t.Setenv("FRAMEPUB_SEED", "-5")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err != nil {
		t.Fatalf("ApplyEnvConfig returned error: %v", err)
	}
	if cfg.Host != "env-host" || cfg.Port != 9100 {
		t.Fatalf("unexpected endpoint: %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.MinChunks != 3 {
		t.Fatalf("min chunks not applied: %d", cfg.MinChunks)
	}
	if cfg.Jitter != 12*time.Millisecond {
		t.Fatalf("jitter not applied: %v", cfg.Jitter)
	}
	if cfg.Seed != -5 {
		t.Fatalf("seed not applied: %d", cfg.Seed)
	}
}

func TestApplyEnvConfig_FlagWins(t *testing.T) {
	t.Setenv("FRAMEPUB_PORT", "9100")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{"port": true}); err != nil {
		t.Fatalf("ApplyEnvConfig returned error: %v", err)
	}
	if cfg.Port != 8051 {
		t.Fatalf("flag-set port was overridden: %d", cfg.Port)
	}
}

func TestApplyEnvConfig_BadValue(t *testing.T) {
	t.Setenv("FRAMEPUB_PORT", "eight")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Fatal("expected parse error")
	}
}
