package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"taskpick/pkg/manager"
)

// Config represents the complete taskpick configuration.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Output    OutputConfig    `toml:"output"`
	Lockfiles []LockfileEntry `toml:"lockfiles"`
	Commands  []CommandEntry  `toml:"commands"`
}

// GeneralConfig contains general taskpick settings.
type GeneralConfig struct {
	// DefaultManager is used when no configured lockfile is found.
	DefaultManager string `toml:"default_manager"`

	// Plain uses the line-based prompt picker instead of the
	// full-screen one.
	Plain bool `toml:"plain"`

	// DryRun shows what would run without executing when true.
	DryRun bool `toml:"dry_run"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose enables detailed output.
	Verbose bool `toml:"verbose"`
}

// LockfileEntry maps a lockfile name to a manager id. Order in the
// config file is the detection precedence order.
type LockfileEntry struct {
	File    string `toml:"file"`
	Manager string `toml:"manager"`
}

// CommandEntry is a fixed command offered for every manifest.
type CommandEntry struct {
	ID          string `toml:"id"`
	Description string `toml:"description"`
}

// Default returns the default configuration.
func Default() *Config {
	cfg := &Config{
		General: GeneralConfig{
			DefaultManager: manager.DefaultManager.String(),
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
	}

	for _, lf := range manager.DefaultLockfiles() {
		cfg.Lockfiles = append(cfg.Lockfiles, LockfileEntry{File: lf.File, Manager: lf.Manager.String()})
	}
	for _, c := range manager.DefaultCommands() {
		cfg.Commands = append(cfg.Commands, CommandEntry{ID: c.ID, Description: c.Description})
	}

	return cfg
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	// A config file replaces the lockfile and command lists wholesale
	// rather than merging with the defaults, so precedence order stays
	// exactly what the user wrote.
	cfg := &Config{
		General: GeneralConfig{DefaultManager: manager.DefaultManager.String()},
		Output:  OutputConfig{Color: true, Unicode: true},
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	if len(cfg.Lockfiles) == 0 {
		cfg.Lockfiles = Default().Lockfiles
	}
	if len(cfg.Commands) == 0 {
		cfg.Commands = Default().Commands
	}

	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// LockfileOrder returns the configured lockfile mapping with entries
// naming unknown managers skipped.
func (c *Config) LockfileOrder() []manager.Lockfile {
	var order []manager.Lockfile
	for _, e := range c.Lockfiles {
		m, ok := manager.ParseManager(e.Manager)
		if !ok || e.File == "" {
			continue
		}
		order = append(order, manager.Lockfile{File: e.File, Manager: m})
	}
	return order
}

// FixedCommands returns the configured fixed command list.
func (c *Config) FixedCommands() []manager.CommandSpec {
	var cmds []manager.CommandSpec
	for _, e := range c.Commands {
		if e.ID == "" {
			continue
		}
		cmds = append(cmds, manager.CommandSpec{ID: e.ID, Description: e.Description})
	}
	return cmds
}

// FallbackManager returns the configured default manager, falling back
// to npm when the configured id is not a known manager.
func (c *Config) FallbackManager() manager.Manager {
	if m, ok := manager.ParseManager(c.General.DefaultManager); ok {
		return m
	}
	return manager.DefaultManager
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
