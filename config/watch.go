package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mohinem/portfolio3d/logging"
)

const watchOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// Watch calls notify whenever the file at path is written or replaced, until
// ctx is done. notify runs on the watcher goroutine, so it should only signal
// the game loop, which then calls Load itself.
func Watch(ctx context.Context, path string, notify func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	// Editors often replace the file, so watch its directory
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) == target && ev.Op&watchOps != 0 {
					logging.Logger.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("config changed")
					notify()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Logger.Warn().Err(err).Msg("config watcher error")
			}
		}
	}()
	return nil
}
