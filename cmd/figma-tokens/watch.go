package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

func newWatchCmd(opts *cliOptions) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate tokens whenever the local Figma export changes",
		Long:  "Watch the file given with --input and run a full generation every time it is written",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.input == "" {
				return errors.New("watch needs a local document, set --input")
			}
			logger := opts.logger(cmd.OutOrStdout())

			regenerate := func() {
				if err := generate(cmd, opts, opts.input); err != nil {
					logger.Errorf("%v", err)
				}
			}

			regenerate()
			logger.Infof("Watching %s for changes...", opts.input)
			return watchFile(cmd.Context(), opts.input, debounce, regenerate)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "Wait this long after the last change before regenerating")

	return cmd
}

// watchFile calls onChange after path is written or recreated, once per burst of events.
// The parent directory is watched so that editors replacing the file by rename are noticed.
// It returns when ctx is done.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	var (
		timer *time.Timer
		fire  = make(chan struct{}, 1)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Errorf("file watcher: %w", err)
		}
	}
}
