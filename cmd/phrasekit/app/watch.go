package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/phrasekit/phrasekit"
	pkerrors "github.com/phrasekit/phrasekit/pkg/errors"
)

// debounceInterval coalesces bursts of filesystem events (editors often emit
// several writes per save) into a single reconcile run.
const debounceInterval = 300 * time.Millisecond

// NewWatchCommand creates the watch command.
func (a *App) NewWatchCommand() *cobra.Command {
	var dry bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reconcile continuously as message files change",
		Long: `Watch runs an initial reconcile, then watches the messages directory for
changes and re-runs the reconcile whenever a message file is created,
written, or removed. Press Ctrl-C to stop.`,
		Example: `  phrasekit watch                           # Reconcile on every change
  phrasekit watch --dry                     # Report only, never write`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.MessagesDir == "" {
				return &pkerrors.ConfigError{
					Component: "watch",
					Message:   "a messages directory is required, set --messages-dir",
				}
			}
			return a.runWatch(cmd.Context(), dry)
		},
	}

	cmd.Flags().BoolVar(&dry, "dry", false, "report changes without writing files")

	return cmd
}

// runWatch blocks until ctx is cancelled, reconciling on every change under
// the messages directory.
func (a *App) runWatch(ctx context.Context, dry bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := watchRoot(a.config.MessagesDir)
	if err := watcher.Add(dir); err != nil {
		return pkerrors.NewIOError("watch", dir, err)
	}
	a.logger.Info().Str("dir", dir).Msg("watching for message changes")

	// Initial run so the translation files are current before the first event.
	if err := a.reconcileOnce(dry); err != nil {
		a.logger.Err(err).Msg("reconcile failed")
	}

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	trigger := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceInterval, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case <-trigger:
			a.ResetManager()
			if err := a.reconcileOnce(dry); err != nil {
				a.logger.Err(err).Msg("reconcile failed")
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Err(watchErr).Msg("watcher error")
		}
	}
}

// reconcileOnce runs a single reconcile cycle and prints the short report.
func (a *App) reconcileOnce(dry bool) error {
	manager, err := a.Manager()
	if err != nil {
		return err
	}
	if err := manager.Report(phrasekit.ReportOptions{Short: true}); err != nil {
		return err
	}
	if dry {
		return nil
	}
	return manager.WriteFiles()
}

// watchRoot returns the directory to watch for a messages path that may be a
// glob pattern: the longest leading segment without glob metacharacters.
func watchRoot(pattern string) string {
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern
	}
	dir := pattern
	for strings.ContainsAny(dir, "*?[") {
		dir = filepath.Dir(dir)
	}
	return dir
}
