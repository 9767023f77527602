package docwriter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/n2code/docwriter/internal/output"
)

func (d *docwriter) WatchTree(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watching %s impossible: %w", d.store.Location(), err)
	}
	defer watcher.Close()

	//saves replace the file, so the directory is watched
	location := filepath.Clean(d.store.Location())
	if err := watcher.Add(filepath.Dir(location)); err != nil {
		return fmt.Errorf("watching %s impossible: %w", d.store.Location(), err)
	}
	d.Print(output.Verbose, "watching %s\n", location)

	onChange()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) == location && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s failed: %w", location, err)
		}
	}
}
