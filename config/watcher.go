package config

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce window - editors fire several write events per save
const debounceInterval = 2 * time.Second

// Watch re-reads the config file on every write and hands the parsed result
// to the callback. Parse errors keep the previous config in effect.
// The returned function stops the watcher.
func Watch(configPath string, callback func(*Config)) (func(), error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// some editors replace the file instead of writing in place,
	// so watch the directory and filter by name
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var lastChange time.Time
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != absPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				now := time.Now()
				if now.Sub(lastChange) < debounceInterval {
					continue
				}
				lastChange = now

				cfg, err := NewConfig(absPath)
				if err != nil {
					slog.Error("error while reloading config", "path", absPath, "err", err)
					continue
				}
				slog.Info("config file changed, applying", "path", absPath)
				callback(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config watcher error", "err", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
