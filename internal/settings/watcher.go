package settings

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/titoTito21/titan-menu/internal/logging"
)

// Watch reloads the store whenever its backing file changes on disk, until the
// context is cancelled. Watching the parent directory survives editors that
// replace the file instead of rewriting it.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
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
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := s.Reload(); err != nil {
					logging.Error(err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Error(err)
			}
		}
	}()
	return nil
}
