package cli

import (
	"github.com/spf13/cobra"

	"taskpick/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every runnable task without picking one",
	RunE: func(cmd *cobra.Command, args []string) error {
		override, err := overrideManager()
		if err != nil {
			return err
		}

		start, err := startDir()
		if err != nil {
			return err
		}

		ws := scanWorkspace(start, cfg, override)
		ui.PrintCatalog(ws.Sources)
		return nil
	},
}
