package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (FRAMEPUB_*). Values are overridden by explicitly set flags and override
// the config file.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("host", os.Getenv("FRAMEPUB_HOST"), &cfg.Host)
	s.setString("terminator", os.Getenv("FRAMEPUB_TERMINATOR"), &cfg.Terminator)

	if err := s.setIntFromString("port", os.Getenv("FRAMEPUB_PORT"), &cfg.Port); err != nil {
		return err
	}
	if err := s.setIntFromString("min-chunk", os.Getenv("FRAMEPUB_MIN_CHUNK"), &cfg.MinChunks); err != nil {
		return err
	}
	if err := s.setIntFromString("max-chunk", os.Getenv("FRAMEPUB_MAX_CHUNK"), &cfg.MaxChunks); err != nil {
		return err
	}
	if err := s.setDuration("jitter", os.Getenv("FRAMEPUB_JITTER"), &cfg.Jitter); err != nil {
		return err
	}
	if err := s.setIntFromString("driver-id", os.Getenv("FRAMEPUB_DRIVER_ID"), &cfg.DriverID); err != nil {
		return err
	}
	if err := s.setInt64FromString("seed", os.Getenv("FRAMEPUB_SEED"), &cfg.Seed); err != nil {
		return err
	}
	return nil
}
