package cli

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/sprig"
)

const debounceDuration = 100 * time.Millisecond

// watchFile calls onChange after path is written, renamed into place or
// recreated. The parent directory is watched so editors that save by rename
// keep working. Bursts of events are debounced. Close the watcher to stop.
func watchFile(path string, onChange func()) (*fsnotify.Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var mu sync.Mutex
		var debounceTimer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				mu.Lock()
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, onChange)
				mu.Unlock()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				sprig.Logger().Warn("watch template", "error", err)
			}
		}
	}()
	return watcher, nil
}
