package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/karyolab/synlink/internal/cmd/output"
)

// Execute dispatches args through the root command. This is the entry
// point main calls once with a signal context.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.createRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// createRootCommand builds the cobra root with the global flags and
// every subcommand attached.
func (a *App) createRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "synlink",
		Short:   "Synteny ideogram tables from BUSCO markers",
		Version: a.build.version,
		Long: `Synlink compares two genome assemblies through their shared BUSCO
markers and produces the tables an RIdeogram synteny figure is built
from.

Given a karyotype and a BUSCO full table per species, it matches
single-copy markers across the assemblies, colors each species one
chromosome from a palette, and writes the color maps, the matched
marker table, the synteny links and the merged dual karyotype. With
--plot it also renders the figure through Rscript.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "tools", Title: "Tool Commands:"},
	)

	// Each global flag defaults to the value LoadConfig resolved, so
	// flags the user does not pass leave config file and environment
	// settings alone.
	flags := root.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", a.config.ConfigFile, "config file (default is $HOME/.synlink.yaml)")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVarP(&a.config.Format, "format", "o", a.config.Format, "output format: table, json, yaml, wide")
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	root.SetVersionTemplate("synlink {{.Version}}\n")

	a.registerCommands(root)
	return root
}

// setupCommand runs after flag parsing for every command. The global
// flags write straight into the configuration, so it only has to
// validate them and rebuild the logger.
func (a *App) setupCommand(*cobra.Command, []string) error {
	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	logger := NewLogger(a.config)
	a.logger = &logger
	return nil
}

// ExitOnError prints err to stderr and exits nonzero. Meant for main.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
