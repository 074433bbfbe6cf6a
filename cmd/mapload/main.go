package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mapload/mapload/pkg/cli"
	"github.com/mapload/mapload/pkg/console"
	"github.com/mapload/mapload/pkg/constants"
	"github.com/spf13/cobra"
)

// Build-time variables set by GoReleaser
var (
	version = "dev"
)

var globals cli.Globals

var rootCmd = &cobra.Command{
	Use:   constants.CLIName,
	Short: "Load and validate Hibernate mapping documents",
	Long: `mapload reads hibernate-mapping (hbm.xml) and entity-mappings (orm.xml) documents,
validates them against the matching XSD and binds them to a typed tree.

Legacy documents without a namespace are accepted and normalized before
validation. Errors point at the line and column of the first problem.`,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("%s version %s", constants.CLIName, version)))
	},
}

func init() {
	globals.Bind(rootCmd)

	rootCmd.AddCommand(cli.NewValidateCommand(&globals))
	rootCmd.AddCommand(cli.NewDumpCommand(&globals))
	rootCmd.AddCommand(cli.NewWatchCommand(&globals))
	rootCmd.AddCommand(cli.NewMCPServerCommand(&globals, version))
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintln(os.Stderr, strings.TrimRight(cli.FormatCommandError(err), "\n"))
		}
		os.Exit(1)
	}
}
