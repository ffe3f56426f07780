package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "family.gtr")
	require.NoError(t, os.WriteFile(path, []byte("gtree-format: 1\n"), 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("gtree-format: 1\n\nPERSON\nid: 1\n"), 0644))

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification after write")
	}
}

func TestWatcher_ReportsRenameOver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "family.gtr")
	require.NoError(t, os.WriteFile(path, []byte("gtree-format: 1\n"), 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// Atomic save: write a temp file, rename it over the target.
	tmp := filepath.Join(dir, ".tmp-save")
	require.NoError(t, os.WriteFile(tmp, []byte("gtree-format: 1\n\nPERSON\nid: 1\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification after rename")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "family.gtr")
	require.NoError(t, os.WriteFile(path, []byte("gtree-format: 1\n"), 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case <-w.Changes():
		t.Fatal("unrelated file triggered a notification")
	case <-time.After(300 * time.Millisecond):
	}
}
