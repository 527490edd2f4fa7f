package cmd

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"localfm/logger"
)

// watchDebounce batches rapid filesystem events (a copy of an album
// fires hundreds) into a single sync pass.
const watchDebounce = 2 * time.Second

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the music directory and re-sync on changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		root := a.cfg.MusicDir

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		// Watch the whole tree; fsnotify is not recursive on its own.
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if werr := watcher.Add(path); werr != nil {
					logger.Warn("failed to watch directory",
						logger.String("path", path), logger.ErrorField(werr))
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Initial pass so the cache starts consistent.
		if err := a.cache.Sync(ctx, root, nil); err != nil {
			return err
		}
		color.Cyan("Watching %s for changes (ctrl-c to stop)", root)

		dirty := make(chan struct{}, 1)
		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
						continue
					}
					// New directories need their own watch.
					if ev.Op&fsnotify.Create != 0 {
						if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
							_ = watcher.Add(ev.Name)
						}
					}
					select {
					case dirty <- struct{}{}:
					default:
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.Warn("watcher error", logger.ErrorField(err))
				}
			}
		})

		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-dirty:
					timer := time.NewTimer(watchDebounce)
					select {
					case <-ctx.Done():
						timer.Stop()
						return ctx.Err()
					case <-timer.C:
					}
					if err := a.cache.Sync(ctx, root, nil); err != nil {
						logger.Error("watch sync failed", logger.ErrorField(err))
					} else {
						color.Green("Library re-synced at %s", time.Now().Format(time.Kitchen))
					}
				}
			}
		})

		if err := g.Wait(); err != nil && err != context.Canceled {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
