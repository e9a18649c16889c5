package manager

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifestIn(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildItemOrder(t *testing.T) {
	// Fixed commands come first, scripts follow in declaration order.
	dir := t.TempDir()
	writeManifestIn(t, dir, `{"name":"web","scripts":{"build":"x"}}`)

	sources := Build([]string{dir}, Yarn, DefaultCommands())
	if len(sources) != 1 {
		t.Fatalf("Build() returned %d sources, want 1", len(sources))
	}

	wantLabels := []string{"install", "outdated", "build"}
	items := sources[0].Items
	if len(items) != len(wantLabels) {
		t.Fatalf("got %d items, want %d", len(items), len(wantLabels))
	}
	for i, label := range wantLabels {
		if items[i].Label() != label {
			t.Errorf("items[%d].Label() = %q, want %q", i, items[i].Label(), label)
		}
	}
}

func TestBuildRootMarker(t *testing.T) {
	root := t.TempDir()
	inner := filepath.Join(root, "packages", "app")
	if err := os.MkdirAll(inner, 0755); err != nil {
		t.Fatal(err)
	}
	writeManifestIn(t, root, `{"name":"mono"}`)
	writeManifestIn(t, inner, `{"name":"app"}`)

	sources := Build([]string{inner, root}, Pnpm, DefaultCommands())
	if len(sources) != 2 {
		t.Fatalf("Build() returned %d sources, want 2", len(sources))
	}

	if sources[0].Title != "app" {
		t.Errorf("inner title = %q, want %q", sources[0].Title, "app")
	}
	if sources[1].Title != "mono (root)" {
		t.Errorf("outer title = %q, want %q", sources[1].Title, "mono (root)")
	}
}

func TestBuildSharedManager(t *testing.T) {
	// The caller resolves the manager once against the topmost manifest;
	// every source uses it, whatever the inner directory contains.
	root := t.TempDir()
	inner := filepath.Join(root, "app")
	if err := os.Mkdir(inner, 0755); err != nil {
		t.Fatal(err)
	}
	writeManifestIn(t, root, `{"name":"mono"}`)
	writeManifestIn(t, inner, `{"name":"app"}`)
	// Inner lockfile that would resolve differently on its own.
	if err := os.WriteFile(filepath.Join(inner, "yarn.lock"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	sources := Build([]string{inner, root}, Pnpm, DefaultCommands())
	for i, src := range sources {
		if src.Manager != Pnpm {
			t.Errorf("sources[%d].Manager = %s, want pnpm", i, src.Manager)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	if got := Build(nil, NPM, DefaultCommands()); got != nil {
		t.Errorf("Build(nil) = %v, want nil", got)
	}
}

func TestBuildUnreadableManifest(t *testing.T) {
	// A broken manifest still yields a source with just the fixed
	// commands.
	dir := t.TempDir()
	writeManifestIn(t, dir, `{invalid`)

	sources := Build([]string{dir}, NPM, DefaultCommands())
	if len(sources) != 1 {
		t.Fatalf("Build() returned %d sources, want 1", len(sources))
	}
	if len(sources[0].Items) != 2 {
		t.Errorf("got %d items, want only the 2 fixed commands", len(sources[0].Items))
	}
	if sources[0].Title != RootMarker {
		t.Errorf("title = %q, want bare root marker for nameless manifest", sources[0].Title)
	}
}

func TestSourceRequest(t *testing.T) {
	src := Source{Dir: "/proj", Manager: Yarn}

	tests := []struct {
		name string
		item Item
		want string
	}{
		{"fixed command", CommandItem{ID: "install", Desc: "Install packages"}, "yarn install"},
		{"script", ScriptItem{Name: "build", Command: "tsc"}, "yarn run build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := src.Request(tt.item)
			if req.Dir != "/proj" {
				t.Errorf("req.Dir = %q, want /proj", req.Dir)
			}
			if req.Command() != tt.want {
				t.Errorf("req.Command() = %q, want %q", req.Command(), tt.want)
			}
		})
	}
}

func TestItemDescriptions(t *testing.T) {
	cmd := CommandItem{ID: "outdated", Desc: "Outdated packages"}
	if cmd.Description() != "Outdated packages" {
		t.Errorf("CommandItem description = %q", cmd.Description())
	}

	// A script's description is the raw command text, shown as a
	// preview only.
	script := ScriptItem{Name: "build", Command: "tsc -p ."}
	if script.Description() != "tsc -p ." {
		t.Errorf("ScriptItem description = %q", script.Description())
	}
}
