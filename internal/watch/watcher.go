// Package watch reloads the iteration count when the config file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/maclaurin/internal/cliconfig"
	"github.com/bft-labs/maclaurin/pkg/log"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher monitors a config file and republishes its iteration count.
type Watcher struct {
	path     string
	base     cliconfig.Config
	changed  map[string]bool
	target   *Iterations
	logger   log.Logger
	debounce time.Duration

	fsw *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

// New starts watching the directory containing path. base is the
// configuration before any file or environment values were applied, and
// changed lists the flags set on the command line, so a reload layers values
// with the same precedence as startup.
func New(path string, base cliconfig.Config, changed map[string]bool, target *Iterations, logger log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		base:     base,
		changed:  changed,
		target:   target,
		logger:   logger,
		debounce: DefaultDebounce,
		fsw:      fsw,
	}, nil
}

// Run processes file events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	w.fsw.Close()
}

// reload keeps the previous value when the file is unreadable or invalid.
func (w *Watcher) reload() {
	cfg := w.base
	if err := cliconfig.Load(&cfg, w.path, w.changed); err != nil {
		w.logger.Warn("config reload rejected", log.String("path", w.path), log.Err(err))
		return
	}

	prev := w.target.Iterations()
	w.logger.Debug("config reloaded", log.String("path", w.path), log.Int("iterations", cfg.Iterations))
	if cfg.Iterations == prev {
		return
	}
	w.target.Set(cfg.Iterations)
	w.logger.Info("iterations reloaded", log.Int("from", prev), log.Int("to", cfg.Iterations))
}
