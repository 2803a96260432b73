package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cuemby/warren/pkg/cas"
	"github.com/cuemby/warren/pkg/storage"
	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSnapshotter(t *testing.T) (*Snapshotter, *cas.Store, storage.Store) {
	t.Helper()

	blobs, err := cas.New(cas.Config{Root: t.TempDir()})
	require.NoError(t, err)

	store, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	s, err := New(nil, blobs, store, nil, &noopEngine{}, Config{WorkDir: t.TempDir()})
	require.NoError(t, err)
	return s, blobs, store
}

// noopEngine stands in for CRIU so snapshot logic runs without root.
type noopEngine struct{}

func (*noopEngine) Dump(int, string, bool) error       { return nil }
func (*noopEngine) PreDump(int, string, string) error  { return nil }
func (*noopEngine) Restore(string) error               { return nil }

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestTarDriverRoundTrip(t *testing.T) {
	blobs, err := cas.New(cas.Config{Root: t.TempDir()})
	require.NoError(t, err)
	driver, err := NewDriver("auto", blobs)
	require.NoError(t, err)

	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"etc/hostname":    "capsule-1",
		"var/data/db.txt": "payload",
	})

	d, err := driver.Snapshot(context.Background(), src)
	require.NoError(t, err)

	dst := t.TempDir()
	require.NoError(t, driver.Restore(context.Background(), d, dst))

	got, err := os.ReadFile(filepath.Join(dst, "var/data/db.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestTarDriverDigestIsDeterministic(t *testing.T) {
	blobs, err := cas.New(cas.Config{Root: t.TempDir()})
	require.NoError(t, err)
	driver, err := NewDriver("auto", blobs)
	require.NoError(t, err)

	a, b := t.TempDir(), t.TempDir()
	files := map[string]string{"app/config": "same bytes"}
	writeTree(t, a, files)
	writeTree(t, b, files)

	da, err := driver.Snapshot(context.Background(), a)
	require.NoError(t, err)
	db, err := driver.Snapshot(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestMetadataRoundTrip(t *testing.T) {
	doc := encodeMetadata("FILESYSTEM_SNAPSHOT_v1", [][2]string{
		{"capsule_id", "c1"},
		{"filesystem_digest", "sha256:abc"},
	})

	header, kv, err := parseMetadata(doc)
	require.NoError(t, err)
	assert.Equal(t, "FILESYSTEM_SNAPSHOT_v1", header)
	assert.Equal(t, "c1", kv["capsule_id"])
	assert.Equal(t, "sha256:abc", kv["filesystem_digest"])
}

func TestParseMetadataRejectsMalformedLine(t *testing.T) {
	_, _, err := parseMetadata([]byte("MEMORY_DUMP_v1\nno-colon-here"))
	assert.ErrorIs(t, err, ErrInvalidCheckpoint)
}

func TestTakePersistsRecordAndBlobs(t *testing.T) {
	s, blobs, store := newTestSnapshotter(t)

	rootfs := t.TempDir()
	writeTree(t, rootfs, map[string]string{"data.txt": "state"})
	cap := &types.Capsule{ID: "cap-1", RootfsPath: rootfs}

	snap, err := s.Take(context.Background(), cap, TakeOptions{Trigger: "manual"})
	require.NoError(t, err)
	require.NotEmpty(t, snap.FilesystemDigest)
	assert.True(t, blobs.Has(snap.FilesystemDigest))

	stored, err := store.GetSnapshot(snap.Name)
	require.NoError(t, err)
	assert.Equal(t, snap.FilesystemDigest, stored.FilesystemDigest)

	metaDigest := types.Digest(snap.Metadata["filesystem_metadata"])
	data, err := blobs.Get(metaDigest)
	require.NoError(t, err)
	header, kv, err := parseMetadata(data)
	require.NoError(t, err)
	assert.Equal(t, "FILESYSTEM_SNAPSHOT_v1", header)
	assert.Equal(t, "cap-1", kv["capsule_id"])
}

func TestRollbackRestoresFilesystemAndTakesBackup(t *testing.T) {
	s, _, store := newTestSnapshotter(t)

	rootfs := t.TempDir()
	writeTree(t, rootfs, map[string]string{"state.txt": "version-1"})
	cap := &types.Capsule{ID: "cap-roll", RootfsPath: rootfs}

	s1, err := s.Take(context.Background(), cap, TakeOptions{Name: "s1"})
	require.NoError(t, err)

	writeTree(t, rootfs, map[string]string{"state.txt": "version-2"})

	require.NoError(t, s.Rollback(context.Background(), cap, s1.TakenAt))

	got, err := os.ReadFile(filepath.Join(rootfs, "state.txt"))
	require.NoError(t, err)
	assert.Equal(t, "version-1", string(got))

	// An automatic backup of the pre-rollback state must exist.
	snaps, err := store.ListSnapshotsByCapsule("cap-roll")
	require.NoError(t, err)
	var backup *types.Snapshot
	for _, snap := range snaps {
		if snap.Trigger == "before-rollback" {
			backup = snap
		}
	}
	require.NotNil(t, backup)
	assert.NotEqual(t, s1.FilesystemDigest, backup.FilesystemDigest)
}

func TestRollbackUnknownTimeFails(t *testing.T) {
	s, _, _ := newTestSnapshotter(t)
	cap := &types.Capsule{ID: "cap-x", RootfsPath: t.TempDir()}

	err := s.Rollback(context.Background(), cap, timeAt(t, "2020-01-01T00:00:00Z"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	s, _, _ := newTestSnapshotter(t)

	rootfs := t.TempDir()
	writeTree(t, rootfs, map[string]string{"f": "x"})
	cap := &types.Capsule{ID: "cap-list", RootfsPath: rootfs}

	first, err := s.Take(context.Background(), cap, TakeOptions{Name: "first"})
	require.NoError(t, err)
	second, err := s.Take(context.Background(), cap, TakeOptions{Name: "second"})
	require.NoError(t, err)

	snaps, err := s.List("cap-list")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, second.Name, snaps[0].Name)
	assert.Equal(t, first.Name, snaps[1].Name)
}
