package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mapload/mapload/pkg/console"
	"github.com/mapload/mapload/pkg/loader"
	"github.com/mapload/mapload/pkg/mapping"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

// ValidationResult is the outcome of loading one mapping file
type ValidationResult struct {
	Path     string
	Root     mapping.Root
	Err      error
	Duration time.Duration
}

// ProgressFunc is called after each file completes
type ProgressFunc func(done, total int, path string)

// ValidateMappings loads files with at most concurrency loads in flight.
// Results are sorted by path. Files not started before ctx is cancelled
// report the context error.
func ValidateMappings(ctx context.Context, l *loader.Loader, files []string, concurrency int, progress ProgressFunc) []ValidationResult {
	if len(files) == 0 {
		return []ValidationResult{}
	}
	if concurrency < 1 {
		concurrency = 1
	}

	var done atomic.Int64
	p := pool.NewWithResults[ValidationResult]().WithMaxGoroutines(concurrency)
	for _, path := range files {
		p.Go(func() ValidationResult {
			result := ValidationResult{Path: path}
			if err := ctx.Err(); err != nil {
				result.Err = err
			} else {
				start := time.Now()
				result.Root, result.Err = l.LoadFile(path)
				result.Duration = time.Since(start)
			}
			if progress != nil {
				progress(int(done.Add(1)), len(files), path)
			}
			return result
		})
	}

	results := p.Wait()
	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results
}

// ValidateConfig configures RunValidate
type ValidateConfig struct {
	Paths       []string
	Extensions  []string
	Concurrency int
	Verbose     bool
	Stdout      io.Writer
	Stderr      io.Writer
}

// RunValidate validates every mapping file under cfg.Paths, printing located
// errors and a summary table. It returns an error when any file failed.
func RunValidate(ctx context.Context, l *loader.Loader, cfg ValidateConfig) error {
	files, err := FindMappingFiles(cfg.Paths, cfg.Extensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cfg.Stdout, console.FormatWarningMessage("No mapping files found"))
		return nil
	}

	if cfg.Verbose {
		fmt.Fprintln(cfg.Stderr, console.FormatInfoMessage(fmt.Sprintf("Validating %d mapping files (validation %s)", len(files), onOff(l.ValidationEnabled()))))
	}

	spinner := console.NewSpinner("Loading mapping files...")
	spinner.Start()
	results := ValidateMappings(ctx, l, files, cfg.Concurrency, func(done, total int, path string) {
		spinner.Progress(done, total, console.ToRelativePath(path))
	})
	spinner.Stop()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprint(cfg.Stderr, FormatLoadError(r.Err, r.Path))
		}
	}

	fmt.Fprint(cfg.Stdout, console.RenderTable(summaryTable(results, failed)))

	if cfg.Verbose {
		stats := l.Cache().Stats()
		fmt.Fprintln(cfg.Stderr, console.FormatVerboseMessage(fmt.Sprintf("Schemas compiled: %s (%d failed loads)", strings.Join(stats.Compiled, ", "), stats.Failures)))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d mapping files failed to load", failed, len(results))
	}
	fmt.Fprintln(cfg.Stdout, console.FormatSuccessMessage(fmt.Sprintf("All %d mapping files loaded", len(results))))
	return nil
}

func summaryTable(results []ValidationResult, failed int) console.TableConfig {
	rows := make([][]string, 0, len(results))
	declarations := 0
	for _, r := range results {
		status, dialect, count := "ok", "-", "-"
		if r.Err != nil {
			status = "failed (" + errorKind(r.Err) + ")"
		} else {
			dialect = describeRoot(r.Root.Dialect.String(), r.Root.Version)
			n := declarationCount(r.Root.Summarize())
			declarations += n
			count = strconv.Itoa(n)
		}
		rows = append(rows, []string{console.ToRelativePath(r.Path), dialect, count, status})
	}
	return console.TableConfig{
		Title:     "Mapping validation",
		Headers:   []string{"File", "Dialect", "Declarations", "Status"},
		Rows:      rows,
		ShowTotal: true,
		TotalRow: []string{
			fmt.Sprintf("TOTAL (%d)", len(results)),
			"",
			strconv.Itoa(declarations),
			fmt.Sprintf("%d ok, %d failed", len(results)-failed, failed),
		},
	}
}

func declarationCount(s mapping.Summary) int {
	return s.Classes + s.Entities + s.Embeddable + s.Superclass + s.Queries
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// NewValidateCommand creates the validate command
func NewValidateCommand(g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Load mapping files and report the first problem in each",
		Long: `Load hibernate-mapping and entity-mappings documents, validating them against
their XSD unless --no-validate is given.

Directories are searched for files ending in one of the configured extensions.

Examples:
  mapload validate                        # all mapping files below the current directory
  mapload validate src/main/resources     # a directory
  mapload validate Order.hbm.xml --no-validate
  mapload validate --concurrency 8 --schema-dir ./xsd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.Settings(cmd)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return RunValidate(cmd.Context(), NewLoader(s, g.Logger()), ValidateConfig{
				Paths:       args,
				Extensions:  s.Extensions,
				Concurrency: s.Concurrency,
				Verbose:     g.Verbose,
				Stdout:      cmd.OutOrStdout(),
				Stderr:      cmd.ErrOrStderr(),
			})
		},
	}
}
