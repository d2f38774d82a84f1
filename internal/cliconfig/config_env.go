package cliconfig

import (
	"fmt"
	"os"
)

// ApplyEnvConfig applies MACLAURIN_* environment variables, skipping flags in
// changed. It fails if a numeric variable does not parse.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("iterations", os.Getenv(EnvPrefix+"ITERATIONS"), &cfg.Iterations); err != nil {
		return err
	}
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	s.setBoolFromString("trace", os.Getenv(EnvPrefix+"TRACE"), &cfg.Trace)
	s.setBoolFromString("watch", os.Getenv(EnvPrefix+"WATCH"), &cfg.Watch)
	s.setBoolFromString("stats", os.Getenv(EnvPrefix+"STATS"), &cfg.Stats)

	return nil
}

// Load layers the config file at path (if it exists) and the environment onto
// cfg, then validates the result.
func Load(cfg *Config, path string, changed map[string]bool) error {
	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		if err := ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}
