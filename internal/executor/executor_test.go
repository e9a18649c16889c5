package executor

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	exec := New(false, false)
	if exec == nil {
		t.Fatal("New() returned nil")
	}
}

func TestOutput(t *testing.T) {
	exec := New(false, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	output, err := exec.Output(ctx, "", "echo", "hello")
	if err != nil {
		t.Fatalf("Output() error: %v", err)
	}

	if !strings.Contains(output, "hello") {
		t.Errorf("Output() = %s, want to contain 'hello'", output)
	}
}

func TestOutputHonorsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	exec := New(false, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	output, err := exec.Output(ctx, dir, "pwd")
	if err != nil {
		t.Fatalf("Output() error: %v", err)
	}

	got := strings.TrimSpace(output)
	// macOS tempdirs can come back through a symlink; compare resolved
	// paths.
	wantResolved, _ := filepath.EvalSymlinks(dir)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("pwd = %s, want %s", got, dir)
	}
}

func TestOutputDryRun(t *testing.T) {
	exec := New(true, false) // dry-run mode
	ctx := context.Background()

	output, err := exec.Output(ctx, "", "echo", "hello")
	if err != nil {
		t.Fatalf("Output() in dry-run mode error: %v", err)
	}

	if output != "" {
		t.Errorf("Output() in dry-run mode should be empty, got: %s", output)
	}
}

func TestRun(t *testing.T) {
	exec := New(false, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := exec.Run(ctx, "", "true")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
}

func TestRunFailing(t *testing.T) {
	exec := New(false, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := exec.Run(ctx, "", "false")
	if err == nil {
		t.Error("Run() should return error for failing command")
	}
}

func TestRunDryRun(t *testing.T) {
	exec := New(true, false)
	ctx := context.Background()

	// Even a nonexistent binary succeeds in dry-run mode because
	// nothing is launched.
	if err := exec.Run(ctx, "", "definitely-not-a-real-binary"); err != nil {
		t.Errorf("Run() in dry-run mode error: %v", err)
	}
}

func TestSetDryRun(t *testing.T) {
	exec := New(false, false)
	exec.SetDryRun(true)

	if err := exec.Run(context.Background(), "", "definitely-not-a-real-binary"); err != nil {
		t.Errorf("SetDryRun(true) should prevent execution, got: %v", err)
	}
}
