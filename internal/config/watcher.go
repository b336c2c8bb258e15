package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// ReloadedMsg carries the result of re-reading the config file.
type ReloadedMsg struct {
	Config *Config
	Err    error
}

// Watcher re-loads a config file whenever it changes on disk.
type Watcher struct {
	path   string
	fw     *fsnotify.Watcher
	events chan ReloadedMsg
	logger *slog.Logger
}

// NewWatcher starts watching path. The parent directory is watched instead
// of the file so editors that save by rename are still seen.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	path = filepath.Clean(ExpandPath(path))

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}

	w := &Watcher{
		path:   path,
		fw:     fw,
		events: make(chan ReloadedMsg, 1),
		logger: logger,
	}
	go w.run()
	return w, nil
}

// Events delivers one message per settled burst of writes. It is closed by
// Close.
func (w *Watcher) Events() <-chan ReloadedMsg {
	return w.events
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) run() {
	defer close(w.events)

	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("config changed", "path", w.path, "op", event.Op.String())
			timer.Reset(reloadDebounce)

		case <-timer.C:
			cfg, err := LoadFrom(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", "path", w.path, "err", err)
			}
			msg := ReloadedMsg{Config: cfg, Err: err}
			select {
			case w.events <- msg:
			default:
				// Drop the stale pending result in favor of this one
				select {
				case <-w.events:
				default:
				}
				w.events <- msg
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "err", err)
		}
	}
}
