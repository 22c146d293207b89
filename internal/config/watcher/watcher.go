// Package watcher reloads the codepad configuration when its file changes.
//
// The watcher observes the directory holding the config file so that
// editors which save through a rename are still seen. Bursts of events are
// debounced into a single reload.
package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/codepad/internal/config"
	"github.com/dshills/codepad/internal/logging"
)

// DefaultDebounce is the quiet period before a reload.
const DefaultDebounce = 100 * time.Millisecond

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("watcher closed")

// ReloadFunc receives each successfully reloaded configuration.
type ReloadFunc func(cfg *config.Config)

// ErrorFunc receives reload and watch errors.
type ErrorFunc func(err error)

// Watcher reloads a config file on change.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	onReload ReloadFunc
	onError  ErrorFunc
	debounce time.Duration
	load     func(path string) (*config.Config, error)
	logger   *logging.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the function receiving reload errors.
func WithErrorHandler(fn ErrorFunc) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher for the config file at path.
// The file does not need to exist yet, but its directory does.
func New(path string, onReload ReloadFunc, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		fsw:      fsw,
		onReload: onReload,
		debounce: DefaultDebounce,
		load:     config.Load,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.WithComponent("config.watcher")

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers reloads until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return ErrClosed
			}
			if filepath.Clean(ev.Name) != w.path || !relevant(ev.Op) {
				continue
			}
			w.logger.Debug("config file event", "path", ev.Name, "op", ev.Op.String())
			if w.debounce == 0 {
				w.reload()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return ErrClosed
			}
			w.report(err)

		case <-timerC:
			timerC = nil
			w.reload()
		}
	}
}

// Close stops watching and releases the underlying handle.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) reload() {
	cfg, err := w.load(w.path)
	if err != nil {
		w.report(err)
		return
	}
	w.logger.Info("config reloaded", "path", w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

func (w *Watcher) report(err error) {
	w.logger.Warn("config reload failed", "error", err)
	if w.onError != nil {
		w.onError(err)
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) ||
		op.Has(fsnotify.Rename) || op.Has(fsnotify.Remove)
}
