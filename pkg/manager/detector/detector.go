// Package detector infers which package manager governs a directory and
// locates the package.json manifests that apply to it.
package detector

import (
	"os"
	"path/filepath"

	"taskpick/pkg/manager"
)

// Resolve maps a directory to a package manager by probing for known
// lockfiles in the configured order. The first lockfile present wins;
// when none is found the fallback manager is returned.
//
// A stat that fails for any reason counts as "does not exist", so
// resolution itself can never fail.
func Resolve(dir string, lockfiles []manager.Lockfile, fallback manager.Manager) manager.Manager {
	for _, lf := range lockfiles {
		if fileExists(filepath.Join(dir, lf.File)) {
			return lf.Manager
		}
	}
	return fallback
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
