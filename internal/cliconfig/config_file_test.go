package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				Iterations: intPtr(25),
				LogLevel:   "debug",
				Trace:      &trueVal,
				Watch:      &trueVal,
				Stats:      &falseVal,
			},
			changed: map[string]bool{},
			initial: Config{Iterations: 10, LogLevel: "info", Stats: true},
			expected: Config{
				Iterations: 25,
				LogLevel:   "debug",
				Trace:      true,
				Watch:      true,
				Stats:      false,
			},
		},
		{
			name:       "respects changed flags",
			fileConfig: FileConfig{Iterations: intPtr(25), LogLevel: "debug"},
			changed:    map[string]bool{"iterations": true},
			initial:    Config{Iterations: 3, LogLevel: "info"},
			expected:   Config{Iterations: 3, LogLevel: "debug"}, // flag wins
		},
		{
			name:       "missing keys leave values alone",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    Config{Iterations: 10, LogLevel: "warn", Trace: true},
			expected:   Config{Iterations: 10, LogLevel: "warn", Trace: true},
		},
		{
			name:       "negative iterations are carried to validation",
			fileConfig: FileConfig{Iterations: intPtr(-1)},
			changed:    map[string]bool{},
			initial:    Config{Iterations: 10},
			expected:   Config{Iterations: -1},
		},
		{
			name:       "explicit zero iterations are carried to validation",
			fileConfig: FileConfig{Iterations: intPtr(0)},
			changed:    map[string]bool{},
			initial:    Config{Iterations: 10},
			expected:   Config{Iterations: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			if err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed); err != nil {
				t.Fatalf("ApplyFileConfig() error = %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "config.toml")
		content := strings.TrimSpace(`
iterations = 15
log_level = "warn"
trace = true
`)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		fc, err := LoadFileConfig(path)
		if err != nil {
			t.Fatalf("LoadFileConfig() error = %v", err)
		}
		if fc.Iterations == nil || *fc.Iterations != 15 {
			t.Errorf("Iterations = %v, want 15", fc.Iterations)
		}
		if fc.LogLevel != "warn" {
			t.Errorf("LogLevel = %q, want warn", fc.LogLevel)
		}
		if fc.Trace == nil || !*fc.Trace {
			t.Errorf("Trace = %v, want true", fc.Trace)
		}
		if fc.Watch != nil {
			t.Errorf("Watch = %v, want nil", *fc.Watch)
		}
	})

	t.Run("absent iterations", func(t *testing.T) {
		path := filepath.Join(dir, "level.toml")
		if err := os.WriteFile(path, []byte("log_level = \"debug\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		fc, err := LoadFileConfig(path)
		if err != nil {
			t.Fatalf("LoadFileConfig() error = %v", err)
		}
		if fc.Iterations != nil {
			t.Errorf("Iterations = %d, want nil", *fc.Iterations)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		if err := os.WriteFile(path, []byte("iterations = ["), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFileConfig(path); err == nil {
			t.Error("expected error for malformed TOML")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFileConfig(filepath.Join(dir, "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	got := DefaultConfigPath()
	want := filepath.Join("/home/tester", ".maclaurin", "config.toml")
	if got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	if FileExists(path) {
		t.Error("FileExists() = true before creation")
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false after creation")
	}
}
