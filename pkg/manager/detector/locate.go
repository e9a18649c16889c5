package detector

import (
	"os"
	"path/filepath"
	"strings"

	"taskpick/pkg/manager"
)

// maxManifests bounds the upward walk: the nearest manifest plus at
// most one ancestor.
const maxManifests = 2

// Locate walks upward from start and returns the directories that
// directly contain a package.json, nearest first. The walk stops at the
// ceiling computed by Ceiling, after maxManifests hits, or at the
// filesystem root. No manifest anywhere yields an empty slice.
func Locate(start string) []string {
	return LocateWithin(start, Ceiling(start))
}

// LocateWithin is Locate with an explicit ceiling directory. The ceiling
// itself is still examined; directories above it are not.
func LocateWithin(start, ceiling string) []string {
	// A relative start would stall the walk: filepath.Dir(".") is "."
	// again, so ancestors above the first level would never be seen.
	start = absClean(start)
	ceiling = absClean(ceiling)

	var found []string
	dir := start
	for {
		if fileExists(filepath.Join(dir, manager.ManifestName)) {
			found = append(found, dir)
			if len(found) == maxManifests {
				break
			}
		}
		if dir == ceiling {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root has no further ancestor.
			break
		}
		dir = parent
	}
	return found
}

// Ceiling returns the upward walk's boundary for a starting directory:
// the user's home directory when start lies under it, otherwise the
// filesystem root.
func Ceiling(start string) string {
	start = absClean(start)

	if home, err := os.UserHomeDir(); err == nil {
		home = filepath.Clean(home)
		if isWithin(start, home) {
			return home
		}
	}

	root := filepath.VolumeName(start) + string(filepath.Separator)
	return filepath.Clean(root)
}

// absClean resolves a possibly relative path against the working
// directory. When resolution fails the cleaned input is returned and
// the walk degrades to the old single-level behavior.
func absClean(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// isWithin reports whether path equals base or lies below it.
func isWithin(path, base string) bool {
	if path == base {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(path, strings.TrimSuffix(base, sep)+sep)
}
