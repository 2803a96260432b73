package cas

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/types"
	digest "github.com/opencontainers/go-digest"
	"github.com/rs/zerolog"
)

// Sentinel errors for the content-store failure modes.
var (
	ErrNotFound       = errors.New("cas: object not found")
	ErrHashMismatch   = errors.New("cas: stored bytes do not hash to digest")
	ErrInvalidContent = errors.New("cas: invalid content")
	ErrStorage        = errors.New("cas: storage error")
)

// Store is a content-addressed, deduplicated blob store.
// Layout on disk: <root>/objects/<first-2-hex>/<remaining-hex>, with
// writes staged at <root>/tmp/<digest> before an atomic rename, exactly
// the write-then-rename discipline pkg/storage uses for BoltDB's own file.
type Store struct {
	root string

	mu    sync.Mutex // serializes put_path's per-path dedup cache
	index map[string]types.Digest

	logger zerolog.Logger
}

// Config configures a Store.
type Config struct {
	// Root is the base directory under which objects/ and tmp/ live.
	Root string
}

// New creates a Store rooted at cfg.Root, creating the directory layout if
// it does not already exist.
func New(cfg Config) (*Store, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("%w: empty root", ErrInvalidContent)
	}
	for _, d := range []string{"objects", "tmp"} {
		if err := os.MkdirAll(filepath.Join(cfg.Root, d), 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
	}
	return &Store{
		root:   cfg.Root,
		index:  make(map[string]types.Digest),
		logger: log.WithComponent("cas"),
	}, nil
}

// Put computes bytes' digest and persists it, if absent, via write-temp-
// then-rename. Repeated Put of equal bytes is idempotent: it
// returns the same digest without rewriting.
func (s *Store) Put(data []byte, kind types.ObjectKind) (types.Digest, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.CASPutLatency)

	d := digestOf(data)
	path := s.objectPath(d)

	if _, err := os.Stat(path); err == nil {
		return d, nil // already present — idempotent put
	}

	tmpPath := filepath.Join(s.root, "tmp", string(d.Algo())+"-"+randSuffix())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	metrics.CASObjectsWritten.Inc()
	metrics.CASBytesWritten.Add(float64(len(data)))
	s.logger.Debug().Str("digest", string(d)).Str("kind", string(kind)).Int("bytes", len(data)).Msg("cas object written")
	return d, nil
}

// PutPath reads path, memoizing the hash-and-write through a per-path
// dedup cache so repeated calls for the same path skip re-hashing. It is
// otherwise identical to Put.
func (s *Store) PutPath(path string, kind types.ObjectKind) (types.Digest, error) {
	s.mu.Lock()
	if d, ok := s.index[path]; ok {
		s.mu.Unlock()
		if _, err := os.Stat(s.objectPath(d)); err == nil {
			return d, nil
		}
	}
	s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	d, err := s.Put(data, kind)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.index[path] = d
	s.mu.Unlock()
	return d, nil
}

// Get reads the object stored under d, re-hashing the bytes on read. A
// mismatch between the re-hash and d is HashMismatch — the caller MUST
// quarantine (delete) the object and, if possible, re-fetch.
func (s *Store) Get(d types.Digest) ([]byte, error) {
	path := s.objectPath(d)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, d)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if got := digestOf(data); got != d {
		s.logger.Warn().Str("want", string(d)).Str("got", string(got)).Msg("hash mismatch, quarantining object")
		_ = s.Quarantine(d)
		metrics.CASHashMismatches.Inc()
		return nil, fmt.Errorf("%w: %s", ErrHashMismatch, d)
	}
	return data, nil
}

// Open is the streaming counterpart of Get. It does not re-hash; callers
// that need the integrity guarantee should use Get.
func (s *Store) Open(d types.Digest) (io.ReadCloser, error) {
	f, err := os.Open(s.objectPath(d))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, d)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return f, nil
}

// Quarantine removes the offending object so a subsequent Get fails
// NotFound instead of repeatedly serving corrupt bytes.
func (s *Store) Quarantine(d types.Digest) error {
	return os.Remove(s.objectPath(d))
}

// Stat reports the size of the object stored under d without reading it.
func (s *Store) Stat(d types.Digest) (int64, error) {
	fi, err := os.Stat(s.objectPath(d))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, d)
		}
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return fi.Size(), nil
}

// Has reports whether d is present without reading or re-hashing it.
func (s *Store) Has(d types.Digest) bool {
	_, err := os.Stat(s.objectPath(d))
	return err == nil
}

// GC performs a best-effort mark-and-sweep: everything reachable from
// roots (image manifests, snapshots, build outputs — passed by the caller
// as a flat digest list, since pkg/cas has no notion of "reference" on its
// own) is kept; everything else under objects/ is removed.
func (s *Store) GC(roots []types.Digest) (removed int, err error) {
	keep := make(map[types.Digest]bool, len(roots))
	for _, d := range roots {
		keep[d] = true
	}

	objectsDir := filepath.Join(s.root, "objects")
	shards, err := os.ReadDir(objectsDir)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	for _, shard := range shards {
		if !shard.IsDir() {
			continue
		}
		shardDir := filepath.Join(objectsDir, shard.Name())
		entries, err := os.ReadDir(shardDir)
		if err != nil {
			return removed, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		for _, e := range entries {
			d := types.Digest("sha256:" + shard.Name() + e.Name())
			if keep[d] {
				continue
			}
			if err := os.Remove(filepath.Join(shardDir, e.Name())); err != nil {
				return removed, fmt.Errorf("%w: %v", ErrStorage, err)
			}
			removed++
		}
	}
	s.logger.Info().Int("removed", removed).Msg("cas gc complete")
	return removed, nil
}

// objectPath returns the sharded on-disk path for digest d:
// <root>/objects/<first-2-hex>/<remaining-hex>.
func (s *Store) objectPath(d types.Digest) string {
	hex := hexPart(d)
	if len(hex) < 2 {
		return filepath.Join(s.root, "objects", "_", hex)
	}
	return filepath.Join(s.root, "objects", hex[:2], hex[2:])
}

func hexPart(d types.Digest) string {
	s := string(d)
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return s[i+1:]
		}
	}
	return s
}

func digestOf(data []byte) types.Digest {
	dg := digest.Canonical.FromBytes(data) // sha256
	return types.Digest(dg.String())
}

var suffixCounter = newCounter()

func randSuffix() string {
	return fmt.Sprintf("%d-%d", os.Getpid(), suffixCounter.next())
}

type counter struct {
	mu sync.Mutex
	n  uint64
}

func newCounter() *counter { return &counter{} }

func (c *counter) next() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.n
}
