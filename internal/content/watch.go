package content

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Maze77-AH/portfolio/internal/platform/debounce"
)

// defaultQuietInterval coalesces editor write bursts into one reload.
const defaultQuietInterval = 75 * time.Millisecond

// Watch reloads the content file whenever it changes and hands each
// successfully parsed document to onLoad. Rapid write events are debounced;
// a failed reload logs and keeps the last good document. Watch returns once
// the watcher is installed and stops when ctx ends.
func Watch(ctx context.Context, path string, quiet time.Duration, onLoad func(Document)) error {
	if onLoad == nil {
		return fmt.Errorf("onLoad callback is required")
	}
	if quiet <= 0 {
		quiet = defaultQuietInterval
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	// Watch the directory: editors often replace the file, which drops a
	// watch installed on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch content dir %s: %w", dir, err)
	}

	reload := func() {
		doc, err := Load(path)
		if err != nil {
			log.Printf("content reload failed path=%s err=%v", path, err)
			return
		}
		log.Printf("content reloaded path=%s projects=%d", path, len(doc.Projects))
		onLoad(doc)
	}

	target := filepath.Clean(path)
	pending := debounce.New(quiet)

	go func() {
		defer watcher.Close()
		defer pending.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				pending.Trigger(reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("content watcher error path=%s err=%v", path, err)
			}
		}
	}()

	return nil
}
