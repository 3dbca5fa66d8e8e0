// Package internal_test contains security tests for behaviorkit.
package internal_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/joeycumines/behaviorkit/internal/behavior"
	"github.com/joeycumines/behaviorkit/internal/blackboard"
	"github.com/joeycumines/behaviorkit/internal/config"
)

// ============================================================================
// Config Path Tests
// ============================================================================

func TestPathTraversalPrevention_SymlinkEscape(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	realDir := filepath.Join(tmpDir, "real")
	if err := os.MkdirAll(realDir, 0755); err != nil {
		t.Fatalf("Failed to create real directory: %v", err)
	}
	target := filepath.Join(realDir, "config.yaml")
	if err := os.WriteFile(target, []byte("tick:\n  max: 7\n"), 0600); err != nil {
		t.Fatalf("Failed to create target config: %v", err)
	}
	link := filepath.Join(tmpDir, "config.yaml")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("Symlinks not supported: %v", err)
	}

	cfg, err := config.LoadFromPath(link)
	if err == nil {
		t.Fatalf("Config loaded through symlink: %+v", cfg)
	}
	if !strings.Contains(err.Error(), "symlink") {
		t.Errorf("Unexpected error: %v", err)
	}

	cfg, err = config.LoadFromPath(target)
	if err != nil {
		t.Fatalf("Direct load failed: %v", err)
	}
	if cfg.Tick.Max != 7 {
		t.Errorf("Expected tick.max=7, got %d", cfg.Tick.Max)
	}
}

func TestPathTraversalPrevention_NullByteInjection(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"valid\x00path", "config\x00.yaml"} {
		if _, err := config.LoadFromPath(path); err == nil {
			t.Errorf("Config path with null byte accepted: %q", path)
		}
	}
}

func TestFilePermissionHandling_Directory(t *testing.T) {
	t.Parallel()

	if _, err := config.LoadFromPath(t.TempDir()); err == nil {
		t.Error("Loading a directory as config should fail")
	}
}

// ============================================================================
// Config Input Validation Tests
// ============================================================================

func TestConfigInjection_UnknownKeysRejected(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"tick:\n  interval: 1s\n  command: rm -rf /\n",
		"exec: /bin/sh\n",
		"log:\n  file: out.log\n  mode: 0777\n",
	}
	for _, in := range inputs {
		if _, err := config.LoadFromReader(strings.NewReader(in)); err == nil {
			t.Errorf("Config with unknown key accepted: %q", in)
		}
	}
}

func TestConfigInjection_MalformedYAML(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"tick: [",
		"tick:\n  interval: forever\n",
		"tick:\n  max: -1\n",
		"clock:\n  scale: 0\n",
		"log:\n  format: \"$(whoami)\"\n",
	}
	for _, in := range inputs {
		if _, err := config.LoadFromReader(strings.NewReader(in)); err == nil {
			t.Errorf("Invalid config accepted: %q", in)
		}
	}
}

func TestResourceLimits_ExtremelyLongConfigValues(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 1<<20)
	cfg, err := config.LoadFromReader(strings.NewReader("metrics:\n  addr: " + long + "\n"))
	if err != nil {
		t.Fatalf("Long value rejected: %v", err)
	}
	if len(cfg.Metrics.Addr) != len(long) {
		t.Errorf("Long value truncated to %d bytes", len(cfg.Metrics.Addr))
	}
}

// ============================================================================
// Protocol Violation Tests
// ============================================================================

func TestProtocolViolation_StoppedNodeNeverRerunsCallbacks(t *testing.T) {
	t.Parallel()

	calls := 0
	n := behavior.Execute(func() { calls++ })
	if got := n.Update(); got != behavior.Success {
		t.Fatalf("Expected success, got %s", got)
	}

	for _, op := range []func(){func() { n.Update() }, n.Cancel} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, behavior.ErrStopped) {
					t.Errorf("Expected ErrStopped panic, got %v", r)
				}
			}()
			op()
		}()
	}

	if calls != 1 {
		t.Errorf("Action ran %d times after protocol violations", calls)
	}
}

// ============================================================================
// Shared State Isolation Tests
// ============================================================================

func TestBlackboardIsolation_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	var bb blackboard.Blackboard
	var wg sync.WaitGroup
	const workers, iterations = 8, 1000
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				bb.Incr("counter")
				_ = bb.Snapshot()
			}
		}()
	}
	wg.Wait()

	if got := bb.Int("counter"); got != workers*iterations {
		t.Errorf("Expected %d, got %d", workers*iterations, got)
	}
}

func TestBlackboardIsolation_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	var bb blackboard.Blackboard
	bb.Set("secret", "s3cr3t")
	snap := bb.Snapshot()
	snap["secret"] = "leaked"
	delete(snap, "secret")

	if got := bb.Get("secret"); got != "s3cr3t" {
		t.Errorf("Snapshot mutation leaked into blackboard: %v", got)
	}
}
