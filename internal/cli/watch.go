package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceWindow coalesces the write bursts editors produce on save.
const debounceWindow = 200 * time.Millisecond

// watchCommand creates the watch command, which re-renders on every change
// to the dataset file until interrupted.
func (c *CLI) watchCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "watch [dataset]",
		Short: "Re-render a dataset whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runWatch(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height in pixels")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for blip placement")
	cmd.Flags().BoolVar(&opts.noSidebars, "no-sidebars", false, "omit the sector and ring sidebars")
	cmd.Flags().BoolVar(&opts.static, "static", false, "omit the embedded interaction script")

	return cmd
}

// runWatch renders once, then re-renders on every change until the context
// is cancelled. Renders are serialized; events arriving during a render
// coalesce into one followup pass.
func (c *CLI) runWatch(ctx context.Context, input string, opts *renderOpts) error {
	// Watch caching defeats the point: the file changed, render it.
	opts.noCache = true

	if err := c.runRender(ctx, input, opts); err != nil {
		// A broken first render should not end the watch; the next save
		// may fix the dataset.
		printWarning("%s", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors that save via
	// rename replace the inode and silently detach a file watch.
	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	target, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	printInfo("Watching %s", input)

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path, err := filepath.Abs(event.Name)
			if err != nil || path != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			c.Logger.Debug("dataset changed", "path", input)
			if err := c.runRender(ctx, input, opts); err != nil {
				printWarning("%s", err)
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.Logger.Warn("watch error", "err", watchErr)
		}
	}
}
