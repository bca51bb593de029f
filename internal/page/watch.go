package page

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch re-loads the card whenever the config file changes and emits the new
// page on the returned channel. Invalid intermediate saves are logged and
// skipped so a half-typed edit never kills the running surface. The returned
// stop function releases the watcher and closes the channel; it is safe to
// call more than once.
func Watch(ctx context.Context, path string) (<-chan Page, func() error, error) {
	expanded, err := expandTilde(path)
	if err != nil {
		return nil, nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	// Watch the directory, not the file: editors commonly replace the file
	// on save, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(expanded)); err != nil {
		watcher.Close()
		return nil, nil, err
	}

	ch := make(chan Page, 1)
	go func() {
		defer close(ch)
		// Release the watcher on any exit path, including context
		// cancellation; the caller's stop double-close is harmless.
		defer watcher.Close() //nolint:errcheck // Teardown only.
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != expanded {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				p, err := Load(expanded)
				if err != nil {
					logrus.Warnf("Ignoring page config change: %v", err)
					continue
				}
				// Drop the pending page if the consumer is behind; only the
				// newest card matters.
				select {
				case <-ch:
				default:
				}
				ch <- p
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logrus.Warnf("Page config watcher: %v", err)
			}
		}
	}()
	return ch, watcher.Close, nil
}
