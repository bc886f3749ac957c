package app

import (
	"github.com/spf13/cobra"
)

// registerCommands attaches every subcommand to the root.
func (a *App) registerCommands(root *cobra.Command) {
	root.AddCommand(a.NewRunCommand())

	root.AddCommand(a.NewPaletteCommand())
	root.AddCommand(a.NewValidateCommand())

	root.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("synlink %s\n", a.build.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.build.commit)
				cmd.Printf("  built:    %s\n", a.build.date)
				cmd.Printf("  built by: %s\n", a.build.builtBy)
			}
		},
	}
}
