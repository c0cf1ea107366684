//go:build unix

package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

func TestInit_InterruptCancelsSubprocess(t *testing.T) {
	installStub(t, "npm", ": > started\nwhile :; do :; done\n")

	dir := t.TempDir()
	go func() {
		// Signal only once the child is running, when the handler is in place.
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if _, err := os.Stat(filepath.Join(dir, "started")); err == nil {
				_ = syscall.Kill(os.Getpid(), syscall.SIGINT)
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}()

	b := &Binary{Bin: "npm", InitArgs: []string{"init", "-y"}, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := b.Init(ctx, dir)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled after SIGINT, got %v", err)
	}
}
