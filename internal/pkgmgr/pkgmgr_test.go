package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// installStub writes an executable shell script named name into a temp
// directory and puts only that directory on PATH.
func installStub(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not supported on windows")
	}
	binDir := t.TempDir()
	path := filepath.Join(binDir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir)
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name     string
		initArgs string
	}{
		{"npm", "init -y"},
		{"pnpm", "init"},
		{"yarn", "init -y"},
	}
	for _, tt := range tests {
		m := Dispatch(tt.name)
		b, ok := m.(*Binary)
		if !ok {
			t.Fatalf("Dispatch(%q) returned %T, want *Binary", tt.name, m)
		}
		if got := strings.Join(b.InitArgs, " "); got != tt.initArgs {
			t.Errorf("Dispatch(%q) init args = %q, want %q", tt.name, got, tt.initArgs)
		}
		if m.Name() != tt.name {
			t.Errorf("Name() = %q, want %q", m.Name(), tt.name)
		}
	}
}

func TestDispatch_Unknown(t *testing.T) {
	m := Dispatch("bun")
	if _, ok := m.(*unknownManager); !ok {
		t.Fatalf("Dispatch(\"bun\") returned %T, want *unknownManager", m)
	}
	if err := m.Init(context.Background(), t.TempDir()); err == nil {
		t.Error("expected error from unknown package manager")
	}
}

func TestCommands(t *testing.T) {
	m := Dispatch("npm")
	if got := m.InstallCommand(); got != "npm install" {
		t.Errorf("InstallCommand() = %q", got)
	}
	if got := m.RunCommand("dev"); got != "npm run dev" {
		t.Errorf("RunCommand() = %q", got)
	}
}

func TestInit_RunsInTargetDir(t *testing.T) {
	installStub(t, "npm", `echo "init $*"
printf '{"name":"demo"}' > package.json
`)

	dir := t.TempDir()
	var stdout bytes.Buffer
	b := &Binary{Bin: "npm", InitArgs: []string{"init", "-y"}, Stdout: &stdout, Stderr: &bytes.Buffer{}}

	if err := b.Init(context.Background(), dir); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if !strings.Contains(stdout.String(), "init -y") {
		t.Errorf("subprocess output not passed through, got %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "package.json")); err != nil {
		t.Errorf("package.json not written in target dir: %v", err)
	}
}

func TestInit_NonZeroExit(t *testing.T) {
	installStub(t, "npm", "echo 'npm ERR!' >&2\nexit 3\n")

	var stderr bytes.Buffer
	b := &Binary{Bin: "npm", InitArgs: []string{"init", "-y"}, Stdout: &bytes.Buffer{}, Stderr: &stderr}

	err := b.Init(context.Background(), t.TempDir())
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %v", err)
	}
	if exitErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", exitErr.ExitCode)
	}
	if exitErr.Command != "npm init -y" {
		t.Errorf("Command = %q, want %q", exitErr.Command, "npm init -y")
	}
	if !strings.Contains(stderr.String(), "npm ERR!") {
		t.Errorf("stderr not passed through, got %q", stderr.String())
	}
}

func TestInit_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	b := &Binary{Bin: "npm", InitArgs: []string{"init", "-y"}}
	err := b.Init(context.Background(), t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestToolVersion(t *testing.T) {
	installStub(t, "npm", "echo '10.2.4'\n")

	got, err := ToolVersion(context.Background(), "npm")
	if err != nil {
		t.Fatalf("ToolVersion() error: %v", err)
	}
	if got != "10.2.4" {
		t.Errorf("ToolVersion() = %q, want %q", got, "10.2.4")
	}
}

func TestInit_ContextCancelStopsSubprocess(t *testing.T) {
	installStub(t, "npm", "while :; do :; done\n")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	b := &Binary{Bin: "npm", InitArgs: []string{"init", "-y"}, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	start := time.Now()
	err := b.Init(ctx, t.TempDir())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Errorf("a cancelled run should not be reported as an exit status: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Init took %v after cancellation", elapsed)
	}
}

func TestInit_CanceledBeforeStart(t *testing.T) {
	installStub(t, "npm", ": > started\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dir := t.TempDir()
	b := &Binary{Bin: "npm", InitArgs: []string{"init", "-y"}}

	if err := b.Init(ctx, dir); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "started")); !os.IsNotExist(err) {
		t.Error("subprocess ran despite a cancelled context")
	}
}

func TestBinaryVersion(t *testing.T) {
	installStub(t, "pnpm", "echo '9.1.0'\n")

	b, ok := Dispatch(PNPM).(*Binary)
	if !ok {
		t.Fatal("Dispatch(pnpm) should return *Binary")
	}
	got, err := b.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error: %v", err)
	}
	if got != "9.1.0" {
		t.Errorf("Version() = %q, want %q", got, "9.1.0")
	}
}
