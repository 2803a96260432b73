package cas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	s, err := New(Config{Root: root})
	require.NoError(t, err)
	return s, root
}

func TestPutGetRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	d, err := s.Put([]byte("hello"), types.ObjectKindLayer)
	require.NoError(t, err)
	assert.Equal(t, "sha256", d.Algo())

	got, err := s.Get(d)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestDedup(t *testing.T) {
	s, root := newTestStore(t)

	d1, err := s.Put([]byte("hello"), types.ObjectKindLayer)
	require.NoError(t, err)
	d2, err := s.Put([]byte("hello"), types.ObjectKindLayer)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	// Exactly one object file exists under objects/, sized 5 bytes.
	var files []string
	var total int64
	err = filepath.Walk(filepath.Join(root, "objects"), func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			files = append(files, path)
			total += fi.Size()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, int64(5), total)
}

func TestGetMissing(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Get("sha256:0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHashMismatchQuarantine(t *testing.T) {
	s, root := newTestStore(t)

	d, err := s.Put([]byte("pristine"), types.ObjectKindLayer)
	require.NoError(t, err)

	// Corrupt the stored object behind the store's back.
	hex := string(d)[len("sha256:"):]
	path := filepath.Join(root, "objects", hex[:2], hex[2:])
	require.NoError(t, os.WriteFile(path, []byte("tampered"), 0o644))

	_, err = s.Get(d)
	assert.ErrorIs(t, err, ErrHashMismatch)

	// The corrupt object is quarantined: the next read is a miss.
	_, err = s.Get(d)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutPathMemoizes(t *testing.T) {
	s, _ := newTestStore(t)

	file := filepath.Join(t.TempDir(), "layer.bin")
	require.NoError(t, os.WriteFile(file, []byte("layer bytes"), 0o644))

	d1, err := s.PutPath(file, types.ObjectKindLayer)
	require.NoError(t, err)
	d2, err := s.PutPath(file, types.ObjectKindLayer)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.True(t, s.Has(d1))
}

func TestStat(t *testing.T) {
	s, _ := newTestStore(t)

	d, err := s.Put([]byte("12345678"), types.ObjectKindConfig)
	require.NoError(t, err)

	size, err := s.Stat(d)
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)
}

func TestGC(t *testing.T) {
	s, _ := newTestStore(t)

	keep, err := s.Put([]byte("keep me"), types.ObjectKindManifest)
	require.NoError(t, err)
	drop, err := s.Put([]byte("sweep me"), types.ObjectKindLayer)
	require.NoError(t, err)

	removed, err := s.GC([]types.Digest{keep})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.True(t, s.Has(keep))
	assert.False(t, s.Has(drop))
}
