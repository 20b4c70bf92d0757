package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses a string for the jitter duration to
// keep the TOML friendly. Zero values mean "not set in the file".
type FileConfig struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Terminator string `toml:"terminator"`
	MinChunks  int    `toml:"min_chunk"`
	MaxChunks  int    `toml:"max_chunk"`
	Jitter     string `toml:"jitter"`
	DriverID   int    `toml:"driver_instance_id"`
	Seed       int64  `toml:"seed"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.framepub/config.toml if the user home
// directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".framepub", "config.toml")
	}
	return ""
}

// FileExists reports whether p exists and is a regular file.
func FileExists(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}

// ApplyFileConfig applies file values to cfg, skipping any field whose flag
// was explicitly set.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("host", fc.Host, &cfg.Host)
	s.setInt("port", fc.Port, &cfg.Port)
	s.setString("terminator", fc.Terminator, &cfg.Terminator)
	s.setInt("min-chunk", fc.MinChunks, &cfg.MinChunks)
	s.setInt("max-chunk", fc.MaxChunks, &cfg.MaxChunks)
	if err := s.setDuration("jitter", fc.Jitter, &cfg.Jitter); err != nil {
		return err
	}
	s.setInt("driver-id", fc.DriverID, &cfg.DriverID)
	s.setInt64("seed", fc.Seed, &cfg.Seed)
	return nil
}
