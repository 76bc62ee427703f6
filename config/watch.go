package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/core"
	"github.com/lixenwraith/gogo-ame/parameter"
)

// Watcher reloads a config file on change and delivers validated configs on Changes
// The directory is watched so editor rename-and-replace saves are seen
type Watcher struct {
	path    string
	log     *zap.Logger
	fsw     *fsnotify.Watcher
	changes chan *Config
	errs    chan error
	done    chan struct{}
}

// NewWatcher starts watching path; the caller must Close it
func NewWatcher(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		log:     log,
		fsw:     fsw,
		changes: make(chan *Config, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	core.Go(w.run)
	return w, nil
}

// Changes delivers each successfully reloaded config
func (w *Watcher) Changes() <-chan *Config { return w.changes }

// Errors delivers reload failures; the previous config stays in effect
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(parameter.ConfigReloadDebounce)
			} else {
				debounce.Reset(parameter.ConfigReloadDebounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", zap.Error(err))
			w.send(w.errs, err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("config reload rejected", zap.String("path", w.path), zap.Error(err))
		w.send(w.errs, err)
		return
	}
	w.log.Info("config reloaded", zap.String("path", w.path))

	// Keep only the newest pending config
	select {
	case <-w.changes:
	default:
	}
	select {
	case w.changes <- cfg:
	case <-w.done:
	}
}

func (w *Watcher) send(ch chan error, err error) {
	select {
	case ch <- err:
	default:
	}
}
