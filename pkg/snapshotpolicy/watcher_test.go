package snapshotpolicy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherFirstScanPrimesBaseline(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("12345"), 0o644))

	w := newChangeWatcher([]string{dir}, nil, nil, nil)
	assert.Equal(t, int64(0), w.scan())
}

func TestWatcherReportsNewAndModifiedBytes(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("12345"), 0o644))

	w := newChangeWatcher([]string{dir}, nil, nil, nil)
	w.scan()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("1234567890"), 0o644))
	require.NoError(t, os.WriteFile(a, []byte("123456"), 0o644))
	// Force a distinct mtime in case the writes land within the
	// filesystem's timestamp granularity.
	require.NoError(t, os.Chtimes(a, time.Now(), time.Now().Add(time.Second)))

	assert.Equal(t, int64(16), w.scan())
}

func TestWatcherCountsDeletedFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("12345"), 0o644))

	w := newChangeWatcher([]string{dir}, nil, nil, nil)
	w.scan()

	require.NoError(t, os.Remove(a))
	assert.Equal(t, int64(5), w.scan())
}

func TestWatcherAppliesPatterns(t *testing.T) {
	dir := t.TempDir()
	w := newChangeWatcher([]string{dir}, nil, []string{"*.go"}, []string{"*_test.go"})
	w.scan()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("1234"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main_test.go"), []byte("123456"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("12"), 0o644))

	assert.Equal(t, int64(4), w.scan(), "only main.go matches the include minus exclude patterns")
}

func TestWatcherExcludesPaths(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "cache")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	w := newChangeWatcher([]string{dir}, []string{sub}, nil, nil)
	w.scan()

	require.NoError(t, os.WriteFile(filepath.Join(sub, "blob"), []byte("123456789"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kept"), []byte("123"), 0o644))

	assert.Equal(t, int64(3), w.scan())
}
