package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mapload/mapload/pkg/constants"
	"github.com/mapload/mapload/pkg/loader"
	"github.com/mapload/mapload/pkg/schema"
	"github.com/mapload/mapload/pkg/settings"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Globals holds the persistent flags shared by every command
type Globals struct {
	ConfigPath  string
	SchemaDir   string
	Concurrency int
	Validate    bool
	NoValidate  bool
	Verbose     bool
}

// Bind registers the flags on the root command
func (g *Globals) Bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&g.ConfigPath, "config", "", "Settings file (default "+constants.DefaultConfigFile+" when present)")
	flags.StringVar(&g.SchemaDir, "schema-dir", "", "Directory searched for XSD files before the built-in schemas")
	flags.IntVar(&g.Concurrency, "concurrency", constants.DefaultConcurrency, "Number of mapping files loaded in parallel")
	flags.BoolVar(&g.Validate, "validate", true, "Validate mapping files against their XSD")
	flags.BoolVar(&g.NoValidate, "no-validate", false, "Skip XSD validation")
	flags.BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose output showing detailed information")
}

// Settings loads the settings file and applies the flags the user set
func (g *Globals) Settings(cmd *cobra.Command) (*settings.Settings, error) {
	s, err := g.loadFile()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("schema-dir") {
		s.SchemaDir = g.SchemaDir
	}
	if flags.Changed("concurrency") {
		if g.Concurrency < 1 {
			return nil, fmt.Errorf("--concurrency must be at least 1, got %d", g.Concurrency)
		}
		s.Concurrency = g.Concurrency
	}
	if flags.Changed("validate") {
		s.Validate = g.Validate
	}
	if flags.Changed("no-validate") && g.NoValidate {
		s.Validate = false
	}
	return s, nil
}

func (g *Globals) loadFile() (*settings.Settings, error) {
	if g.ConfigPath != "" {
		return settings.Load(g.ConfigPath)
	}
	s, err := settings.Load(constants.DefaultConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		return settings.Default(), nil
	}
	return s, err
}

// Logger returns a development logger with --verbose and a no-op one
// otherwise
func (g *Globals) Logger() *zap.Logger {
	if !g.Verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

// NewLoader builds a loader configured by s
func NewLoader(s *settings.Settings, logger *zap.Logger) *loader.Loader {
	return loader.New(
		loader.WithValidation(s.Validate),
		loader.WithLocator(schema.DefaultLocator(s.SchemaDir)),
		loader.WithLogger(logger),
	)
}
