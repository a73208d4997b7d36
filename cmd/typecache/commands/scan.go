package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/typecache/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [patterns...]",
		Short: "Enumerate the types declared by Go packages",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			exported, _ := cmd.Flags().GetBool("exported")
			return c.app.Scan(cmd.Context(), args, app.ScanOptions{
				ExportedOnly: exported,
			})
		},
	}
	cmd.Flags().BoolP("exported", "e", false, "Enumerate exported types only")
	return cmd
}
