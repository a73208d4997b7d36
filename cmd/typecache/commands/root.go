// Package commands implements the CLI commands for the typecache tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/typecache/internal/app"
	"go.trai.ch/typecache/internal/build"
	"go.trai.ch/typecache/internal/logging"
)

// CLI represents the command line interface for typecache.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "typecache",
		Short:         "A cached type enumerator for Go packages and module manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("log-level", "info", "Minimum log level (debug, info, warn, error)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		name, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
		level, err := logging.ParseLevel(name)
		if err != nil {
			return err
		}
		c.app.SetLogLevel(level)
		return nil
	}

	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newManifestCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
