// Package manager provides the core model for JavaScript package managers
// and the run-able task catalog built from package.json manifests.
package manager

// ManifestName is the project descriptor file this tool looks for.
const ManifestName = "package.json"

// Manager identifies a JavaScript package manager. It carries no state
// beyond its identity and is used purely as a command prefix.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	Pnpm Manager = "pnpm"
	Bun  Manager = "bun"
)

// String returns the manager's command name.
func (m Manager) String() string {
	return string(m)
}

// ParseManager maps an identifier to a known Manager. The set is closed:
// anything outside npm/yarn/pnpm/bun is rejected.
func ParseManager(s string) (Manager, bool) {
	switch Manager(s) {
	case NPM, Yarn, Pnpm, Bun:
		return Manager(s), true
	}
	return "", false
}

// Lockfile pairs a lockfile name with the manager whose presence it
// signals. The configured order of these pairs is the tie-break when a
// directory contains more than one lockfile.
type Lockfile struct {
	File    string
	Manager Manager
}

// DefaultLockfiles returns the built-in lockfile precedence order.
func DefaultLockfiles() []Lockfile {
	return []Lockfile{
		{File: "package-lock.json", Manager: NPM},
		{File: "bun.lock", Manager: Bun},
		{File: "bun.lockb", Manager: Bun},
		{File: "yarn.lock", Manager: Yarn},
		{File: "pnpm-lock.yaml", Manager: Pnpm},
	}
}

// DefaultManager is the fallback when no lockfile identifies a manager.
const DefaultManager = NPM

// CommandSpec describes a fixed manager subcommand that is offered for
// every manifest, independent of its scripts.
type CommandSpec struct {
	ID          string
	Description string
}

// DefaultCommands returns the built-in fixed command list.
func DefaultCommands() []CommandSpec {
	return []CommandSpec{
		{ID: "install", Description: "Install packages"},
		{ID: "outdated", Description: "Outdated packages"},
	}
}

// Script is one named command from a manifest's scripts table.
type Script struct {
	Name    string
	Command string
}

// Manifest is the parsed view of one package.json, scoped to the
// directory that contains it.
type Manifest struct {
	Path    string // absolute path to the package.json file
	Dir     string // directory containing it
	Manager Manager
	Root    bool // true for the topmost manifest of the walk
	Name    string
	Scripts []Script // declaration order preserved
}
