package shadertrack

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfigFile reloads the TOML file at path whenever it is written or
// replaced and passes each valid configuration to fn. Files that fail to load
// are logged and skipped. It blocks until ctx is done and is normally run in
// its own goroutine; fn runs on that goroutine.
func WatchConfigFile(ctx context.Context, path string, fn func(Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("shadertrack: watch config: %w", err)
	}
	defer w.Close()

	// Editors often replace the file, so the directory is watched.
	name := filepath.Clean(path)
	if err := w.Add(filepath.Dir(name)); err != nil {
		return fmt.Errorf("shadertrack: watch config %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := LoadConfigFile(name)
			if err != nil {
				Logger().Warn("config reload failed", "path", name, "err", err)
				continue
			}
			Logger().Info("config reloaded", "path", name)
			fn(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			Logger().Warn("config watch error", "path", name, "err", err)
		}
	}
}
