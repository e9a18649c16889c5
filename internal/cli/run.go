package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskpick/internal/ui"
	"taskpick/pkg/manager"
)

var runCmd = &cobra.Command{
	Use:   "run <task>",
	Short: "Run a task by name without the picker",
	Long: `Run a named task directly. Sources are searched nearest first;
within a source, items are matched in catalog order, so fixed commands
(install, outdated) take precedence over a script with the same name.`,
	Args: cobra.ExactArgs(1),
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
		if len(ws.Sources) == 0 {
			ui.MutedMsg("No package.json found")
			return nil
		}

		src, item := findTask(ws.Sources, args[0])
		if item == nil {
			return fmt.Errorf("%w: %s", ErrNoTask, args[0])
		}

		req := src.Request(item)
		if cfg.Output.Verbose {
			ui.InfoMsg("%s (in %s)", req.Command(), req.Dir)
		}
		return runner.Run(cmd.Context(), req.Dir, req.Manager.String(), req.Args...)
	},
}

// findTask locates a task by label, searching sources nearest first.
func findTask(sources []manager.Source, name string) (*manager.Source, manager.Item) {
	for i := range sources {
		for _, it := range sources[i].Items {
			if it.Label() == name {
				return &sources[i], it
			}
		}
	}
	return nil, nil
}
