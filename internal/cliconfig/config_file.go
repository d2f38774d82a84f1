package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML representation of Config. Pointer fields
// distinguish "absent" from a zero value.
type FileConfig struct {
	Iterations *int   `toml:"iterations"`
	LogLevel   string `toml:"log_level"`
	Trace      *bool  `toml:"trace"`
	Watch      *bool  `toml:"watch"`
	Stats      *bool  `toml:"stats"`
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

// DefaultConfigPath returns ~/.maclaurin/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".maclaurin", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("iterations", fc.Iterations, &cfg.Iterations)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setBool("trace", fc.Trace, &cfg.Trace)
	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setBool("stats", fc.Stats, &cfg.Stats)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
