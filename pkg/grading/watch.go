package grading

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Watch re-imports score files whenever they change.
//
// It watches dir and, on every create/write/rename of a file matching the
// doublestar pattern (relative to dir), builds a fresh Gradebook from all
// matching files and delivers it on the returned channel. Consumers always
// see a fully imported book, never a partial one. The channel closes when
// ctx is cancelled.
func Watch(ctx context.Context, dir, pattern string, logger *slog.Logger) (<-chan *Gradebook, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	books := make(chan *Gradebook)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(books)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
					continue
				}

				rel, err := filepath.Rel(dir, event.Name)
				if err != nil {
					continue
				}
				if matched, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); !matched {
					continue
				}

				logger.Debug("score file changed, re-importing", "path", event.Name)

				book := NewGradebook(logger)
				accepted, skipped, err := book.ImportGlob(filepath.Join(dir, filepath.FromSlash(pattern)))
				if err != nil {
					logger.Error("re-import failed", "error", err)
					continue
				}
				logger.Info("re-import complete", "accepted", accepted, "skipped", len(skipped))

				select {
				case books <- book:
				case <-ctx.Done():
					return nil
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Error("watcher error", "error", err)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		logger.Error("watcher stopped", "error", err)
	}))

	return books, nil
}
