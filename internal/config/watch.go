package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the file at path whenever it is written or replaced and hands
// the result to onChange. The directory is watched rather than the file so
// editors that save through a rename are seen. Files that fail to parse are
// logged and skipped. Watch returns once the watcher is running; it stops
// when ctx is done.
func Watch(ctx context.Context, svc ConfigService, onChange func(*Config)) error {
	path, err := filepath.Abs(svc.Path())
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := svc.LoadFromPath(path)
				if err != nil {
					slog.Warn("Ignoring config change", "path", path, "error", err)
					continue
				}
				slog.Info("Config reloaded", "path", path, "commands", len(cfg.Commands))
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Config watcher error", "error", err)
			}
		}
	}()
	return nil
}
