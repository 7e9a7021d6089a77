// ABOUTME: Tests for the style catalog
// ABOUTME: Covers index/name resolution, user style loading, and failure degradation

package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCatalog_Builtins(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	if c.Count() == 0 {
		t.Fatal("catalog has no built-in styles")
	}
	if _, ok := c.IndexOf("aura"); !ok {
		t.Error("expected built-in style \"aura\"")
	}
}

func TestCatalog_ResolveOutOfRange(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	for _, idx := range []int{-1, c.Count(), c.Count() + 10} {
		if a := c.Resolve(idx); a != nil {
			t.Errorf("Resolve(%d) = %v, want nil", idx, a.Name())
		}
	}
}

func TestCatalog_ResolveReturnsFreshHandles(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	a := c.Resolve(0)
	b := c.Resolve(0)
	if a == nil || b == nil {
		t.Fatal("Resolve(0) returned nil")
	}
	a.Start()
	a.Advance()
	if b.Frame() != c.Resolve(0).Frame() {
		t.Error("playback state leaked between resolved handles")
	}
}

func TestCatalog_ResolveNameFuzzySuggestion(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	_, err := c.ResolveName("puls")
	if err == nil {
		t.Fatal("expected error for unknown style name")
	}
	if !strings.Contains(err.Error(), `"pulse"`) {
		t.Errorf("error %q does not suggest \"pulse\"", err)
	}

	a, err := c.ResolveName("dot")
	if err != nil || a == nil {
		t.Fatalf("ResolveName(dot) = %v, %v", a, err)
	}
}

func TestCatalog_LoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := "name: breathe\ninterval_ms: 100\nframes:\n  - \"( )\"\n  - \"(o)\"\n"
	bad := "frames: []\n"
	if err := os.WriteFile(filepath.Join(dir, "breathe.yaml"), []byte(good), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}

	c := NewCatalog()
	before := c.Count()
	if err := c.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	if c.Count() != before+1 {
		t.Errorf("Count() = %d, want %d (invalid file must be skipped)", c.Count(), before+1)
	}
	idx, ok := c.IndexOf("breathe")
	if !ok {
		t.Fatal("user style \"breathe\" not loaded")
	}
	if a := c.Resolve(idx); a == nil || a.Frame() != "( )" {
		t.Errorf("resolved user style has wrong first frame")
	}
}

func TestCatalog_LoadDirMissing(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	if err := c.LoadDir(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Errorf("missing style dir must not be an error, got %v", err)
	}
}

func TestCatalog_LoadDirReplacesByName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	override := "name: dot\nframes:\n  - \"x\"\n"
	if err := os.WriteFile(filepath.Join(dir, "dot.yaml"), []byte(override), 0o600); err != nil {
		t.Fatal(err)
	}

	c := NewCatalog()
	origIdx, _ := c.IndexOf("dot")
	before := c.Count()
	if err := c.LoadDir(dir); err != nil {
		t.Fatal(err)
	}
	if c.Count() != before {
		t.Errorf("override changed style count: %d -> %d", before, c.Count())
	}
	idx, _ := c.IndexOf("dot")
	if idx != origIdx {
		t.Errorf("override moved index %d -> %d", origIdx, idx)
	}
	if a := c.Resolve(idx); a.Frame() != "x" {
		t.Errorf("override not applied, frame = %q", a.Frame())
	}
}
