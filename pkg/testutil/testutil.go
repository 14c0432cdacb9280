// Package testutil provides filesystem helpers for decorate tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree creates the given relative file paths under root with
// placeholder content, creating intermediate directories as needed.
func WriteTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, rel := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte("content of "+rel+"\n"), 0644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
}

// MkdirAll creates a directory tree under root, for empty-directory cases.
func MkdirAll(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, rel := range dirs {
		if err := os.MkdirAll(filepath.Join(root, rel), 0755); err != nil {
			t.Fatalf("creating directory %s: %v", rel, err)
		}
	}
}

// AssertSymlink fails unless path is a symlink whose stored value equals
// want.
func AssertSymlink(t *testing.T, path, want string) {
	t.Helper()
	info, err := os.Lstat(path)
	if err != nil {
		t.Fatalf("expected symlink at %s: %v", path, err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("expected %s to be a symlink, mode is %v", path, info.Mode())
	}
	got, err := os.Readlink(path)
	if err != nil {
		t.Fatalf("reading link %s: %v", path, err)
	}
	if got != want {
		t.Fatalf("symlink %s stores %q, want %q", path, got, want)
	}
}

// AssertResolvesTo fails unless the symlink at path resolves to target.
func AssertResolvesTo(t *testing.T, path, target string) {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("resolving %s: %v", path, err)
	}
	expected, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatalf("resolving %s: %v", target, err)
	}
	if resolved != expected {
		t.Fatalf("%s resolves to %s, want %s", path, resolved, expected)
	}
}

// AssertNotExists fails when anything (including a broken symlink) is
// present at path.
func AssertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Fatalf("expected nothing at %s", path)
	}
}
