package cli

import (
	"os"
	"path/filepath"

	"taskpick/internal/config"
	"taskpick/pkg/manager"
	"taskpick/pkg/manager/detector"
)

// locate is swappable so tests can pin the walk's ceiling.
var locate = detector.Locate

// workspace is everything detection produced for one invocation.
type workspace struct {
	Dirs    []string // manifest directories, nearest first
	Manager manager.Manager
	Sources []manager.Source // one per manifest directory, nearest first
}

// scanWorkspace performs the full detection pass: locate manifests
// upward from start, resolve the governing manager against the topmost
// one, and build the task catalog. An override manager skips lockfile
// resolution entirely.
func scanWorkspace(start string, cfg *config.Config, override manager.Manager) workspace {
	dirs := locate(start)

	ws := workspace{Dirs: dirs}
	if len(dirs) == 0 {
		ws.Manager = cfg.FallbackManager()
		if override != "" {
			ws.Manager = override
		}
		return ws
	}

	// The topmost manifest's directory decides the manager for every
	// source below it.
	topmost := dirs[len(dirs)-1]
	ws.Manager = detector.Resolve(topmost, cfg.LockfileOrder(), cfg.FallbackManager())
	if override != "" {
		ws.Manager = override
	}

	ws.Sources = manager.Build(dirs, ws.Manager, cfg.FixedCommands())
	return ws
}

// startDir returns the directory detection starts from: the --dir flag
// when given, the working directory otherwise. The result is always
// absolute so the upward walk can reach every ancestor.
func startDir() (string, error) {
	if workDir != "" {
		return filepath.Abs(workDir)
	}
	return os.Getwd()
}
