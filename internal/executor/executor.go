// Package executor handles launching package manager commands in a
// project directory.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Executor runs manager commands with stdio passed through to the
// terminal.
type Executor struct {
	dryRun  bool
	verbose bool
}

// New creates a new Executor with the given options.
func New(dryRun, verbose bool) *Executor {
	return &Executor{
		dryRun:  dryRun,
		verbose: verbose,
	}
}

// SetDryRun enables or disables dry-run mode.
func (e *Executor) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// Run executes a command in the given working directory, streaming
// output to the terminal. The command's exit status is the returned
// error.
func (e *Executor) Run(ctx context.Context, dir, name string, args ...string) error {
	if e.dryRun {
		e.printDryRun(dir, name, args)
		return nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Printf("Executing (in %s): %s %s\n", dir, name, strings.Join(args, " "))
	}

	return cmd.Run()
}

// Output runs a command in the given working directory and returns its
// stdout.
func (e *Executor) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(dir, name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Printf("Executing (in %s): %s %s\n", dir, name, strings.Join(args, " "))
	}

	err := cmd.Run()
	return stdout.String(), err
}

func (e *Executor) printDryRun(dir, name string, args []string) {
	fmt.Printf("[dry-run] Would execute (in %s): %s %s\n", dir, name, strings.Join(args, " "))
}
