package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mapload/mapload/pkg/console"
	"github.com/mapload/mapload/pkg/constants"
	"github.com/mapload/mapload/pkg/loader"
	"github.com/spf13/cobra"
)

// WatchConfig configures WatchMappings
type WatchConfig struct {
	Dir         string
	Extensions  []string
	Concurrency int
	Verbose     bool
	Stdout      io.Writer
	// Debounce defaults to constants.WatchDebounce
	Debounce time.Duration
	// Ready, when set, is closed once the initial pass finished and the
	// watcher is listening
	Ready chan<- struct{}
}

// WatchMappings validates every mapping file under cfg.Dir, then revalidates
// files as they are written until ctx is cancelled. Writes arriving within
// the debounce window are batched.
func WatchMappings(ctx context.Context, l *loader.Loader, cfg WatchConfig) error {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = constants.WatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, cfg.Dir); err != nil {
		return err
	}

	fmt.Fprintf(cfg.Stdout, "Watching for mapping changes in %s...\n", cfg.Dir)
	files, err := FindMappingFiles([]string{cfg.Dir}, cfg.Extensions)
	if err != nil {
		fmt.Fprintln(cfg.Stdout, console.FormatWarningMessage(err.Error()))
	}
	reportWatchResults(cfg.Stdout, ValidateMappings(ctx, l, files, cfg.Concurrency, nil))
	if cfg.Ready != nil {
		close(cfg.Ready)
	}

	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if cfg.Verbose {
				fmt.Fprintln(cfg.Stdout, console.FormatInfoMessage("Stopping watch mode"))
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil && cfg.Verbose {
						fmt.Fprintln(cfg.Stdout, console.FormatWarningMessage(err.Error()))
					}
					continue
				}
			}
			if !IsMappingFile(event.Name, cfg.Extensions) {
				continue
			}
			if cfg.Verbose {
				fmt.Fprintln(cfg.Stdout, console.FormatVerboseMessage(fmt.Sprintf("Detected change: %s (%s)", event.Name, event.Op)))
			}
			switch {
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				delete(pending, event.Name)
				fmt.Fprintln(cfg.Stdout, console.FormatInfoMessage("Removed "+console.ToRelativePath(event.Name)))
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				pending[event.Name] = struct{}{}
				if timer == nil {
					timer = time.NewTimer(cfg.Debounce)
				} else {
					timer.Reset(cfg.Debounce)
				}
				fire = timer.C
			}

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			clear(pending)
			sort.Strings(changed)
			fmt.Fprintln(cfg.Stdout, console.FormatProgressMessage("Reloading "+strings.Join(relativePaths(changed), ", ")))
			reportWatchResults(cfg.Stdout, ValidateMappings(ctx, l, changed, cfg.Concurrency, nil))

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if cfg.Verbose {
				fmt.Fprintln(cfg.Stdout, console.FormatWarningMessage(fmt.Sprintf("Watcher error: %v", err)))
			}
		}
	}
}

// watchTree adds dir and its non-hidden subdirectories to w. fsnotify does
// not watch recursively.
func watchTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		return nil
	})
}

func reportWatchResults(w io.Writer, results []ValidationResult) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprint(w, FormatLoadError(r.Err, r.Path))
			continue
		}
		fmt.Fprintln(w, console.FormatSuccessMessage(fmt.Sprintf("%s: %s", console.ToRelativePath(r.Path), describeRoot(r.Root.Dialect.String(), r.Root.Version))))
	}
}

func describeRoot(dialect, version string) string {
	if version == "" {
		return dialect
	}
	return dialect + " " + version
}

func relativePaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = console.ToRelativePath(p)
	}
	return out
}

// NewWatchCommand creates the watch command
func NewWatchCommand(g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Revalidate mapping files whenever they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.Settings(cmd)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			cfg := WatchConfig{
				Extensions:  s.Extensions,
				Concurrency: s.Concurrency,
				Verbose:     g.Verbose,
				Stdout:      cmd.OutOrStdout(),
			}
			if len(args) > 0 {
				cfg.Dir = args[0]
			}
			if g.Verbose {
				fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop watching.")
			}
			return WatchMappings(cmd.Context(), NewLoader(s, g.Logger()), cfg)
		},
	}
}
