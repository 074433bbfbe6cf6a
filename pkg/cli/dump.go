package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/davecgh/go-spew/spew"
	"github.com/mapload/mapload/pkg/loader"
	"github.com/mapload/mapload/pkg/mapping"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DumpFormats lists the output formats accepted by RunDump
var DumpFormats = []string{"json", "yaml", "spew"}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpConfig configures RunDump
type DumpConfig struct {
	Path   string
	Format string
	// DOM parses the file into an element tree first and loads the tree
	DOM bool
}

// RunDump loads one mapping file and writes the typed root to w
func RunDump(w io.Writer, l *loader.Loader, cfg DumpConfig) error {
	root, err := loadForDump(l, cfg)
	if err != nil {
		return err
	}
	return writeRoot(w, root, cfg.Format)
}

func loadForDump(l *loader.Loader, cfg DumpConfig) (mapping.Root, error) {
	if !cfg.DOM {
		return l.LoadFile(cfg.Path)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(cfg.Path); err != nil {
		return mapping.Root{}, fmt.Errorf("failed to parse %s: %w", cfg.Path, err)
	}
	return l.LoadTree(doc, mapping.NewOrigin(mapping.OriginDOM, cfg.Path))
}

func writeRoot(w io.Writer, root mapping.Root, format string) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(root)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "spew":
		spewConfig.Fdump(w, root)
		return nil
	}
	return fmt.Errorf("unknown format %q (expected one of %v)", format, DumpFormats)
}

// NewDumpCommand creates the dump command
func NewDumpCommand(g *Globals) *cobra.Command {
	var cfg DumpConfig
	cmd := &cobra.Command{
		Use:   "dump <mapping-file>",
		Short: "Print the typed tree a mapping file loads into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.Settings(cmd)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			cfg.Path = args[0]
			if err := RunDump(cmd.OutOrStdout(), NewLoader(s, g.Logger()), cfg); err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), FormatLoadError(err, cfg.Path))
				return ErrReported
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfg.Format, "format", "f", "json", "Output format: json, yaml or spew")
	cmd.Flags().BoolVar(&cfg.DOM, "dom", false, "Parse into an element tree first and load from the tree")
	return cmd
}
