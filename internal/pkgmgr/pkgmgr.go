package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"
)

// Manager bootstraps and describes a package manager.
type Manager interface {
	// Name returns the executable name, e.g. "npm".
	Name() string
	// Init writes a default package.json into dir without prompting.
	Init(ctx context.Context, dir string) error
	// InstallCommand is the shell command that installs dependencies.
	InstallCommand() string
	// RunCommand is the shell command that runs a package.json script.
	RunCommand(script string) string
}

// Supported package manager names.
const (
	NPM  = "npm"
	PNPM = "pnpm"
	Yarn = "yarn"
)

// waitDelay bounds how long Init waits for output pipes after the
// subprocess is killed; grandchildren may keep them open.
const waitDelay = 2 * time.Second

// ErrNotFound is returned when the package manager executable is not on PATH.
var ErrNotFound = errors.New("package manager not found")

// ExitError reports a package manager command that exited non-zero.
type ExitError struct {
	Command  string
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%q exited with status %d", e.Command, e.ExitCode)
}

// Binary is a Manager backed by an executable on PATH.
type Binary struct {
	Bin        string
	InitArgs   []string
	MinVersion string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Dispatch returns the Manager for name. Unknown names produce a Manager
// whose Init always fails.
func Dispatch(name string) Manager {
	switch name {
	case NPM:
		return &Binary{Bin: NPM, InitArgs: []string{"init", "-y"}, MinVersion: "7.0.0"}
	case PNPM:
		return &Binary{Bin: PNPM, InitArgs: []string{"init"}, MinVersion: "7.0.0"}
	case Yarn:
		return &Binary{Bin: Yarn, InitArgs: []string{"init", "-y"}, MinVersion: "1.22.0"}
	default:
		return &unknownManager{name: name}
	}
}

// Name implements Manager.
func (b *Binary) Name() string { return b.Bin }

// InstallCommand implements Manager.
func (b *Binary) InstallCommand() string { return b.Bin + " install" }

// RunCommand implements Manager.
func (b *Binary) RunCommand(script string) string { return b.Bin + " run " + script }

// Init runs `<bin> <init args>` with dir as the working directory. The
// subprocess output passes straight through to the configured writers.
// SIGINT is trapped only while the subprocess runs; it cancels ctx and Init
// returns the context error.
func (b *Binary) Init(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s not started: %w", b.commandLine(), err)
	}
	bin, err := exec.LookPath(b.Bin)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotFound, b.Bin, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cmd := exec.CommandContext(ctx, bin, b.InitArgs...)
	cmd.Dir = dir
	cmd.Stdout = writerOr(b.Stdout, os.Stdout)
	cmd.Stderr = writerOr(b.Stderr, os.Stderr)
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s interrupted: %w", b.commandLine(), ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: b.commandLine(), ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %q: %w", b.commandLine(), err)
	}
	return nil
}

// Version returns the trimmed output of `<bin> --version`.
func (b *Binary) Version(ctx context.Context) (string, error) {
	return ToolVersion(ctx, b.Bin)
}

func (b *Binary) commandLine() string {
	return strings.Join(append([]string{b.Bin}, b.InitArgs...), " ")
}

// ToolVersion runs `<name> --version` and returns its trimmed output.
func ToolVersion(ctx context.Context, name string) (string, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s --version: %w", name, err)
	}
	return strings.TrimSpace(out.String()), nil
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}

// unknownManager is returned when the package manager name is not recognized.
type unknownManager struct {
	name string
}

func (u *unknownManager) Name() string                    { return u.name }
func (u *unknownManager) InstallCommand() string          { return u.name + " install" }
func (u *unknownManager) RunCommand(script string) string { return u.name + " run " + script }

func (u *unknownManager) Init(_ context.Context, _ string) error {
	return fmt.Errorf("unknown package manager %q: supported are %q, %q and %q", u.name, NPM, PNPM, Yarn)
}
