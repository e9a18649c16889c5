// Package cli implements the command-line interface for taskpick.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"taskpick/internal/config"
	"taskpick/internal/executor"
	"taskpick/internal/tui"
	"taskpick/internal/ui"
	"taskpick/pkg/manager"
)

var (
	// Global flags
	cfgFile     string
	workDir     string
	managerFlag string
	plain       bool
	dryRun      bool
	verbose     bool
	noColor     bool

	// Global state
	cfg    *config.Config
	runner *executor.Executor
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taskpick",
	Short: "Pick and run package.json tasks with the right package manager",
	Long: `Taskpick figures out which package manager governs the current
directory tree (npm, yarn, pnpm, or bun) by looking at lockfiles, walks
upward collecting up to two package.json manifests, and offers their
scripts plus a fixed command set (install, outdated) in an interactive
picker. The chosen task runs in its manifest's directory through the
detected manager.

Examples:
  taskpick                  # pick a task interactively
  taskpick list             # print every runnable task
  taskpick run build        # run the "build" script directly
  taskpick -m yarn run test # force yarn regardless of lockfiles`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker(cmd.Context())
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "C", "", "directory to start detection from")
	rootCmd.PersistentFlags().StringVarP(&managerFlag, "manager", "m", "", "package manager override (npm, yarn, pnpm, bun)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "use the line-based prompt picker")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would run without executing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.ErrorMsg("%v", err)
		return err
	}
	return nil
}

// initializeApp sets up the application state.
func initializeApp() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if dryRun {
		cfg.General.DryRun = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}
	if plain {
		cfg.General.Plain = true
	}

	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)

	runner = executor.New(cfg.General.DryRun, cfg.Output.Verbose)
	return nil
}

// overrideManager validates the --manager flag.
func overrideManager() (manager.Manager, error) {
	if managerFlag == "" {
		return "", nil
	}
	m, ok := manager.ParseManager(managerFlag)
	if !ok {
		return "", ErrUnknownManager
	}
	return m, nil
}

// runPicker is the default action: scan, pick, execute.
func runPicker(ctx context.Context) error {
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

	var (
		src  *manager.Source
		item manager.Item
	)
	if cfg.General.Plain {
		src, item, err = plainPick(ws.Sources)
	} else {
		src, item, err = tui.Pick(ws.Sources)
	}
	if err != nil {
		return err
	}
	if src == nil || item == nil {
		// Picker dismissed: nothing runs.
		return nil
	}

	req := src.Request(item)
	if cfg.Output.Verbose {
		ui.InfoMsg("%s (in %s)", req.Command(), req.Dir)
	}
	return runner.Run(ctx, req.Dir, req.Manager.String(), req.Args...)
}

// plainPick is the line-based fallback picker: choose a source, then a
// task, then confirm.
func plainPick(sources []manager.Source) (*manager.Source, manager.Item, error) {
	src, err := ui.SelectSource(sources, "Project")
	if err != nil {
		return nil, nil, nil
	}

	item, err := ui.SelectTask(src, "Task")
	if err != nil {
		return nil, nil, nil
	}

	ok, err := ui.Confirm("Run "+src.Request(item).Command()+"?", true)
	if err != nil || !ok {
		return nil, nil, nil
	}
	return src, item, nil
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print taskpick version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("taskpick version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
