package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"taskpick/pkg/manager"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.General.DefaultManager != "npm" {
		t.Errorf("expected npm default manager, got %s", cfg.General.DefaultManager)
	}

	if len(cfg.Lockfiles) != 5 {
		t.Errorf("expected 5 lockfile entries, got %d", len(cfg.Lockfiles))
	}
	if cfg.Lockfiles[0].File != "package-lock.json" {
		t.Errorf("expected package-lock.json first, got %s", cfg.Lockfiles[0].File)
	}

	if len(cfg.Commands) != 2 {
		t.Errorf("expected 2 fixed commands, got %d", len(cfg.Commands))
	}

	if !cfg.Output.Color {
		t.Error("expected Color to be true by default")
	}
	if !cfg.Output.Unicode {
		t.Error("expected Unicode to be true by default")
	}
	if cfg.Output.Verbose {
		t.Error("expected Verbose to be false by default")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.General.DefaultManager != "npm" {
		t.Errorf("missing file should yield defaults, got manager %s", cfg.General.DefaultManager)
	}
	if len(cfg.LockfileOrder()) != 5 {
		t.Errorf("missing file should yield default lockfile order")
	}
}

func TestLoadFromOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[general]
default_manager = "bun"

[[lockfiles]]
file = "yarn.lock"
manager = "yarn"

[[lockfiles]]
file = "package-lock.json"
manager = "npm"

[[commands]]
id = "install"
description = "Install packages"

[[commands]]
id = "test"
description = "Run the test suite"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.FallbackManager() != manager.Bun {
		t.Errorf("FallbackManager() = %s, want bun", cfg.FallbackManager())
	}

	order := cfg.LockfileOrder()
	if len(order) != 2 {
		t.Fatalf("got %d lockfile entries, want 2 (config replaces defaults)", len(order))
	}
	if order[0].Manager != manager.Yarn {
		t.Errorf("first configured lockfile should win precedence, got %s", order[0].Manager)
	}

	cmds := cfg.FixedCommands()
	if len(cmds) != 2 || cmds[1].ID != "test" {
		t.Errorf("FixedCommands() = %v, want configured list", cmds)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is not toml ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should fail on invalid TOML")
	}
}

func TestLoadFromStatError(t *testing.T) {
	// A path component longer than the filesystem allows makes os.Stat
	// fail with something other than "does not exist". That must surface
	// as an error, not silently yield the defaults.
	path := filepath.Join(t.TempDir(), strings.Repeat("x", 300), "config.toml")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should report stat failures for an unreadable path")
	}
}

func TestLockfileOrderSkipsUnknownManagers(t *testing.T) {
	cfg := Default()
	cfg.Lockfiles = []LockfileEntry{
		{File: "deno.lock", Manager: "deno"},
		{File: "yarn.lock", Manager: "yarn"},
		{File: "", Manager: "npm"},
	}

	order := cfg.LockfileOrder()
	if len(order) != 1 {
		t.Fatalf("got %d entries, want 1", len(order))
	}
	if order[0].Manager != manager.Yarn {
		t.Errorf("surviving entry = %v, want yarn", order[0])
	}
}

func TestFallbackManagerUnknown(t *testing.T) {
	cfg := Default()
	cfg.General.DefaultManager = "cargo"

	if got := cfg.FallbackManager(); got != manager.NPM {
		t.Errorf("FallbackManager() = %s, want npm for unknown id", got)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.General.DefaultManager = "pnpm"
	cfg.Output.Unicode = false

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if loaded.General.DefaultManager != "pnpm" {
		t.Errorf("round-trip lost default manager: %s", loaded.General.DefaultManager)
	}
	if loaded.Output.Unicode {
		t.Error("round-trip lost unicode setting")
	}
	if len(loaded.LockfileOrder()) != 5 {
		t.Errorf("round-trip lost lockfile order")
	}
}

func TestSaveDefaultPath(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("default config dir ignores XDG_CONFIG_HOME on this platform")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.General.DefaultManager = "yarn"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if _, err := os.Stat(ConfigPath()); err != nil {
		t.Fatalf("Save() did not create %s: %v", ConfigPath(), err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.General.DefaultManager != "yarn" {
		t.Errorf("round-trip through the default path lost settings: %s", loaded.General.DefaultManager)
	}
}

func TestShouldUseColor(t *testing.T) {
	cfg := Default()

	t.Setenv("NO_COLOR", "")
	if !cfg.ShouldUseColor() {
		t.Error("expected color with defaults")
	}

	t.Setenv("NO_COLOR", "1")
	if cfg.ShouldUseColor() {
		t.Error("NO_COLOR should disable color")
	}
}
