package cli

import "errors"

var (
	// ErrUnknownManager is returned when --manager names an id outside
	// the supported set.
	ErrUnknownManager = errors.New("unknown package manager (expected npm, yarn, pnpm, or bun)")

	// ErrNoTask is returned when `run` cannot find the requested task
	// in any discovered source.
	ErrNoTask = errors.New("no such task")
)
