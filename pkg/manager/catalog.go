package manager

import (
	"path/filepath"
	"strings"
)

// RootMarker is appended to the title of the topmost manifest's source.
const RootMarker = " (root)"

// Item is one selectable entry in a source. The two implementations are
// CommandItem (fixed manager subcommand) and ScriptItem (manifest script).
type Item interface {
	// Label is the name shown in the picker.
	Label() string

	// Description is the help text shown next to the label.
	Description() string

	// Args returns the manager subcommand arguments to execute.
	Args() []string
}

// CommandItem is a fixed manager subcommand such as "install". It runs
// as `<manager> <id>`.
type CommandItem struct {
	ID   string
	Desc string
}

func (c CommandItem) Label() string       { return c.ID }
func (c CommandItem) Description() string { return c.Desc }
func (c CommandItem) Args() []string      { return []string{c.ID} }

// ScriptItem is a named script from a manifest. It runs as
// `<manager> run <name>`; the raw command text is shown as a preview but
// never executed directly, so the manager's own resolution and
// environment setup still apply.
type ScriptItem struct {
	Name    string
	Command string
}

func (s ScriptItem) Label() string       { return s.Name }
func (s ScriptItem) Description() string { return s.Command }
func (s ScriptItem) Args() []string      { return []string{"run", s.Name} }

// Source is one selectable list of tasks, backed by a single manifest.
type Source struct {
	Title   string
	Dir     string
	Manager Manager
	Items   []Item
}

// Request is the execution order handed to the executor: run the
// manager with these arguments, in this directory.
type Request struct {
	Dir     string
	Manager Manager
	Args    []string
}

// Command renders the full command line, e.g. "yarn run build".
func (r Request) Command() string {
	return strings.Join(append([]string{r.Manager.String()}, r.Args...), " ")
}

// Request builds the execution request for one of this source's items.
func (s Source) Request(it Item) Request {
	return Request{Dir: s.Dir, Manager: s.Manager, Args: it.Args()}
}

// Build produces one Source per located manifest directory, nearest
// first. All sources share the single manager the caller resolved
// against the topmost (outermost) directory: in a monorepo the root's
// lockfile governs every nested project, even when an inner directory
// carries its own.
//
// Each source lists the fixed commands first, then the manifest's
// scripts in declaration order.
func Build(dirs []string, mgr Manager, commands []CommandSpec) []Source {
	if len(dirs) == 0 {
		return nil
	}

	topmost := dirs[len(dirs)-1]

	sources := make([]Source, 0, len(dirs))
	for _, dir := range dirs {
		name, scripts := ParseManifest(filepath.Join(dir, ManifestName))

		title := name
		if dir == topmost {
			title += RootMarker
		}

		items := make([]Item, 0, len(commands)+len(scripts))
		for _, c := range commands {
			items = append(items, CommandItem{ID: c.ID, Desc: c.Description})
		}
		for _, sc := range scripts {
			items = append(items, ScriptItem{Name: sc.Name, Command: sc.Command})
		}

		sources = append(sources, Source{
			Title:   title,
			Dir:     dir,
			Manager: mgr,
			Items:   items,
		})
	}

	return sources
}
