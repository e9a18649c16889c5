package cli

import (
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"taskpick/internal/executor"
	"taskpick/internal/ui"
	"taskpick/pkg/manager"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which package managers are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		override, err := overrideManager()
		if err != nil {
			return err
		}

		start, err := startDir()
		if err != nil {
			return err
		}

		available := make(map[manager.Manager]bool)
		versions := make(map[manager.Manager]string)
		// Probes always execute, even under --dry-run.
		probeExec := executor.New(false, false)
		probe := func() error {
			for _, m := range []manager.Manager{manager.NPM, manager.Yarn, manager.Pnpm, manager.Bun} {
				if _, lookErr := exec.LookPath(m.String()); lookErr != nil {
					available[m] = false
					continue
				}
				available[m] = true
				out, verErr := probeExec.Output(cmd.Context(), "", m.String(), "--version")
				if verErr == nil {
					versions[m] = strings.TrimSpace(strings.SplitN(out, "\n", 2)[0])
				}
			}
			return nil
		}
		if err := ui.WithSpinner("Probing package managers...", probe); err != nil {
			return err
		}

		ws := scanWorkspace(start, cfg, override)
		ui.PrintManagers(available, versions, ws.Manager)

		if len(ws.Dirs) == 0 {
			ui.MutedMsg("\nNo package.json found from %s", start)
		} else {
			ui.InfoMsg("\n%d manifest(s) found; %s governs this workspace", len(ws.Dirs), ws.Manager)
			if !available[ws.Manager] {
				ui.WarningMsg("%s is the detected manager but is not on PATH", ws.Manager)
			}
		}
		return nil
	},
}
