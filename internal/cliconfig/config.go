package cliconfig

import (
	"fmt"
	"strconv"

	mlog "github.com/bft-labs/maclaurin/pkg/log"
	"github.com/bft-labs/maclaurin/pkg/series"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "MACLAURIN_"

// Config holds CLI configuration for maclaurin.
type Config struct {
	// Iterations is the number of series terms summed per evaluation.
	Iterations int
	LogLevel   string

	Trace bool
	Watch bool
	Stats bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Iterations: series.DefaultIterations,
		LogLevel:   "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	if _, err := mlog.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// configSetter applies values only when the corresponding flag was not set
// explicitly on the command line.
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

// setInt sets an int from a pointer if not nil and flag not changed. Zero and
// negative values are kept so Validate can reject them.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
