package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskpick/internal/config"
	"taskpick/internal/ui"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage taskpick configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration to the config path so lockfile
precedence, the fallback manager, and the fixed command set can be
edited. Refuses to overwrite an existing file unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigPath()
		if cfgFile != "" {
			path = cfgFile
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		var err error
		if cfgFile != "" {
			err = config.Default().SaveTo(path)
		} else {
			err = config.Default().Save()
		}
		if err != nil {
			return err
		}

		ui.SuccessMsg("Wrote %s", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			ui.Println("%s", cfgFile)
			return
		}
		ui.Println("%s", config.ConfigPath())
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
