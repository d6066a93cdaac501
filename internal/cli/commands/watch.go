package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/msglint/internal/discover"
	"github.com/leapstack-labs/msglint/pkg/dialect"
)

// watchDebounce is how long the watcher waits for a burst of file events to
// settle before linting again.
const watchDebounce = 200 * time.Millisecond

type watchOptions struct {
	paths    []string
	discover discover.Options
}

// watchAndLint calls relint after source files under the watched paths
// change, until ctx is cancelled.
func watchAndLint(ctx context.Context, cmdCtx *CommandContext, opts watchOptions, relint func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dirs, err := discover.Dirs(ctx, opts.paths, opts.discover)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	r := cmdCtx.Renderer
	logger := cmdCtx.Logger
	r.Println(r.Styles().Muted.Render("Watching for changes (Ctrl+C to stop)..."))
	logger.Debug("watching directories", slog.Int("count", len(dirs)))

	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(watcher, event, opts.discover, logger) {
				continue
			}
			logger.Debug("file changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", slog.String("error", err.Error()))

		case <-timer.C:
			if err := relint(ctx); err != nil {
				return err
			}
		}
	}
}

// relevantEvent reports whether event should trigger a lint run. New
// directories are added to the watcher on the way.
func relevantEvent(w *fsnotify.Watcher, event fsnotify.Event, opts discover.Options, logger *slog.Logger) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if discover.Excluded(event.Name, opts) {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.Add(event.Name); err != nil {
				logger.Warn("failed to watch directory", slog.String("path", event.Name), slog.String("error", err.Error()))
			}
			return false
		}
	}

	if opts.Dialect != "" {
		return true
	}
	_, ok := dialect.ForExtension(filepath.Ext(event.Name))
	return ok
}
