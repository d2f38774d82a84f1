package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/maclaurin/internal/cliconfig"
	"github.com/bft-labs/maclaurin/pkg/log"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"ITERATIONS", "LOG_LEVEL", "TRACE", "WATCH", "STATS"} {
		t.Setenv(cliconfig.EnvPrefix+k, "")
	}
}

func start(t *testing.T, path string, changed map[string]bool, target *Iterations, logger log.Logger) {
	t.Helper()
	w, err := New(path, cliconfig.DefaultConfig(), changed, target, logger)
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestWatcher_ReloadsIterations(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("iterations = 10\n"), 0o644))

	target := NewIterations(10)
	start(t, path, nil, target, log.NewNoopLogger())

	require.NoError(t, os.WriteFile(path, []byte("iterations = 25\n"), 0o644))
	require.Eventually(t, func() bool { return target.Iterations() == 25 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_CreatesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	target := NewIterations(10)
	start(t, path, nil, target, nil)

	require.NoError(t, os.WriteFile(path, []byte("iterations = 4\n"), 0o644))
	require.Eventually(t, func() bool { return target.Iterations() == 4 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_InvalidKeepsPrevious(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("iterations = 10\n"), 0o644))

	target := NewIterations(10)
	logs := log.NewRecorder()
	start(t, path, nil, target, logs)

	require.NoError(t, os.WriteFile(path, []byte("iterations = -2\n"), 0o644))
	require.Eventually(t, func() bool {
		for _, e := range logs.Entries() {
			if e.Msg == "config reload rejected" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 10, target.Iterations())
}

func TestWatcher_FlagWins(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("iterations = 10\n"), 0o644))

	target := NewIterations(10)
	logs := log.NewRecorder()
	start(t, path, map[string]bool{"iterations": true}, target, logs)

	require.NoError(t, os.WriteFile(path, []byte("iterations = 30\n"), 0o644))
	require.Eventually(t, func() bool {
		for _, e := range logs.Entries() {
			if e.Msg == "config reloaded" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 10, target.Iterations())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("iterations = 10\n"), 0o644))

	target := NewIterations(10)
	start(t, path, nil, target, nil)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("iterations = 99\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 10, target.Iterations())
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "config.toml"), cliconfig.DefaultConfig(), nil, NewIterations(10), nil)
	require.Error(t, err)
}

func TestIterations(t *testing.T) {
	i := NewIterations(3)
	assert.Equal(t, 3, i.Iterations())
	i.Set(8)
	assert.Equal(t, 8, i.Iterations())
}
