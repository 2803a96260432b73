package snapshot

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cuemby/warren/pkg/capsule"
	"github.com/cuemby/warren/pkg/cas"
	"github.com/cuemby/warren/pkg/events"
	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/storage"
	"github.com/cuemby/warren/pkg/types"
	"github.com/rs/zerolog"
)

var (
	ErrSnapshotFailed        = errors.New("snapshot: failed")
	ErrRestoreFailed         = errors.New("snapshot: restore failed")
	ErrNetworkTransferFailed = errors.New("snapshot: network transfer failed")
	ErrStateCorrupted        = errors.New("snapshot: state corrupted")
	ErrInvalidCheckpoint     = errors.New("snapshot: invalid checkpoint")
	ErrResourceUnavailable   = errors.New("snapshot: resource unavailable")
	ErrNotFound              = errors.New("snapshot: not found")
)

// Snapshotter produces and restores capsule snapshots. Memory and
// filesystem bytes land in the CAS; the persisted record carries digests
// and the captured network/process state.
type Snapshotter struct {
	runtime *capsule.Runtime
	blobs   *cas.Store
	store   storage.Store
	fs      FilesystemDriver
	engine  CheckpointEngine
	broker  *events.Broker
	workDir string
	logger  zerolog.Logger
}

// Config configures a Snapshotter.
type Config struct {
	// WorkDir holds per-snapshot scratch directories (CRIU image dirs).
	WorkDir string

	// Filesystem selects the filesystem driver: "auto", "btrfs", "zfs".
	Filesystem string
}

// New creates a Snapshotter. engine may be nil, in which case the CRIU
// engine is probed; on hosts without CRIU memory capture is skipped and
// snapshots carry filesystem and state only.
func New(runtime *capsule.Runtime, blobs *cas.Store, store storage.Store, broker *events.Broker, engine CheckpointEngine, cfg Config) (*Snapshotter, error) {
	if cfg.WorkDir == "" {
		return nil, fmt.Errorf("%w: empty work dir", ErrSnapshotFailed)
	}
	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	fs, err := NewDriver(cfg.Filesystem, blobs)
	if err != nil {
		return nil, err
	}
	logger := log.WithComponent("snapshot")
	if engine == nil {
		engine, err = NewCriuEngine()
		if err != nil {
			logger.Warn().Err(err).Msg("CRIU unavailable, snapshots will omit memory images")
			engine = nil
		}
	}
	return &Snapshotter{
		runtime: runtime,
		blobs:   blobs,
		store:   store,
		fs:      fs,
		engine:  engine,
		broker:  broker,
		workDir: cfg.WorkDir,
		logger:  logger,
	}, nil
}

// TakeOptions modifies a single Take call.
type TakeOptions struct {
	// Name labels the snapshot; empty snapshots are keyed by capsule id
	// and timestamp.
	Name        string
	Description string
	Trigger     string
	KeepForever bool

	// LeaveRunning keeps the capsule executing after the memory dump.
	// Live migration's final pass clears it.
	LeaveRunning bool
}

// Take captures a consistent snapshot of cap: memory image (when CRIU is
// available), filesystem, network state, and process state.
func (s *Snapshotter) Take(ctx context.Context, cap *types.Capsule, opts TakeOptions) (*types.Snapshot, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.SnapshotDuration)

	snap := &types.Snapshot{
		CapsuleID:   cap.ID,
		TakenAt:     time.Now(),
		Name:        opts.Name,
		Description: opts.Description,
		Trigger:     opts.Trigger,
		KeepForever: opts.KeepForever,
		Metadata:    map[string]string{},
	}
	if snap.Name == "" {
		snap.Name = fmt.Sprintf("%s-%d", cap.ID, snap.TakenAt.UnixNano())
	}

	pid := cap.PID
	if pid == 0 && cap.RuntimeID != "" {
		if p, err := s.runtime.GetCapsulePID(ctx, cap.RuntimeID); err == nil {
			pid = p
		}
	}

	if pid > 0 {
		if st, err := captureProcessState(pid); err == nil {
			snap.Process = st
		} else {
			s.logger.Warn().Err(err).Int("pid", pid).Msg("Process state capture failed")
		}
	}
	if st, err := captureNetworkState(); err == nil {
		snap.Network = st
	}

	if s.engine != nil && pid > 0 {
		memDigest, err := s.dumpMemory(ctx, pid, snap, opts.LeaveRunning)
		if err != nil {
			return nil, err
		}
		snap.MemoryDigest = memDigest
	}

	if cap.RootfsPath != "" {
		fsDigest, err := s.fs.Snapshot(ctx, cap.RootfsPath)
		if err != nil {
			return nil, err
		}
		snap.FilesystemDigest = fsDigest
		meta, err := s.blobs.Put(encodeMetadata("FILESYSTEM_SNAPSHOT_v1", [][2]string{
			{"capsule_id", cap.ID},
			{"taken_at", snap.TakenAt.UTC().Format(time.RFC3339Nano)},
			{"filesystem_digest", string(fsDigest)},
		}), types.ObjectKindCapsule)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
		}
		snap.Metadata["filesystem_metadata"] = string(meta)
	}

	if err := s.store.CreateSnapshot(snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}

	metrics.SnapshotsTotal.WithLabelValues(triggerLabel(opts.Trigger)).Inc()
	if s.broker != nil {
		s.broker.Publish(&events.Event{
			Type:      events.EventSnapshotTaken,
			Timestamp: time.Now(),
			Message:   fmt.Sprintf("snapshot %s taken for capsule %s", snap.Name, cap.ID),
			Metadata:  map[string]string{"snapshot": snap.Name, "capsule_id": cap.ID, "trigger": opts.Trigger},
		})
	}
	s.logger.Info().
		Str("snapshot", snap.Name).
		Str("capsule_id", cap.ID).
		Str("fs_digest", string(snap.FilesystemDigest)).
		Str("mem_digest", string(snap.MemoryDigest)).
		Msg("Snapshot taken")
	return snap, nil
}

// dumpMemory checkpoints pid's tree into a scratch dir, tars the CRIU
// images into one CAS blob, and records its metadata blob.
func (s *Snapshotter) dumpMemory(ctx context.Context, pid int, snap *types.Snapshot, leaveRunning bool) (types.Digest, error) {
	imagesDir, err := os.MkdirTemp(s.workDir, "dump-")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	defer os.RemoveAll(imagesDir)

	if err := s.engine.Dump(pid, imagesDir, leaveRunning); err != nil {
		return "", err
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	data, err := tarDir(imagesDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	memDigest, err := s.blobs.Put(data, types.ObjectKindCapsule)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}

	meta, err := s.blobs.Put(encodeMetadata("MEMORY_DUMP_v1", [][2]string{
		{"capsule_id", snap.CapsuleID},
		{"taken_at", snap.TakenAt.UTC().Format(time.RFC3339Nano)},
		{"memory_digest", string(memDigest)},
		{"pid", fmt.Sprintf("%d", pid)},
	}), types.ObjectKindCapsule)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	snap.Metadata["memory_metadata"] = string(meta)
	return memDigest, nil
}

// Restore reinstates snap onto cap's host: filesystem first, then the
// CRIU image resumes threads, sockets, and file descriptors. The capsule
// id is preserved.
func (s *Snapshotter) Restore(ctx context.Context, snap *types.Snapshot, cap *types.Capsule) error {
	if snap.FilesystemDigest != "" {
		if cap.RootfsPath == "" {
			return fmt.Errorf("%w: capsule has no rootfs path", ErrRestoreFailed)
		}
		if err := s.fs.Restore(ctx, snap.FilesystemDigest, cap.RootfsPath); err != nil {
			return err
		}
	}

	if snap.MemoryDigest != "" {
		if s.engine == nil {
			return fmt.Errorf("%w: memory image present but CRIU unavailable", ErrResourceUnavailable)
		}
		imagesDir, err := os.MkdirTemp(s.workDir, "restore-")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
		}
		defer os.RemoveAll(imagesDir)

		data, err := s.blobs.Get(snap.MemoryDigest)
		if err != nil {
			if errors.Is(err, cas.ErrHashMismatch) {
				return fmt.Errorf("%w: memory image corrupt: %v", ErrStateCorrupted, err)
			}
			return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
		}
		if err := untarDir(data, imagesDir); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCheckpoint, err)
		}
		if err := s.engine.Restore(imagesDir); err != nil {
			return err
		}
	}

	s.logger.Info().
		Str("snapshot", snap.Name).
		Str("capsule_id", cap.ID).
		Msg("Snapshot restored")
	return nil
}

// Rollback selects the snapshot of cap taken at takenAt, stops the
// current instance, restores, and restarts. A fresh backup snapshot is
// taken first so the rollback itself can be undone.
func (s *Snapshotter) Rollback(ctx context.Context, cap *types.Capsule, takenAt time.Time) error {
	target, err := s.FindByTime(cap.ID, takenAt)
	if err != nil {
		return err
	}

	backup, err := s.Take(ctx, cap, TakeOptions{
		Name:         fmt.Sprintf("%s-pre-rollback-%d", cap.ID, time.Now().UnixNano()),
		Description:  fmt.Sprintf("automatic backup before rollback to %s", target.Name),
		Trigger:      "before-rollback",
		LeaveRunning: true,
	})
	if err != nil {
		return fmt.Errorf("%w: backup before rollback: %v", ErrSnapshotFailed, err)
	}

	if cap.RuntimeID != "" {
		grace := 10 * time.Second
		if cap.StopTimeout > 0 {
			grace = time.Duration(cap.StopTimeout) * time.Second
		}
		if err := s.runtime.StopCapsule(ctx, cap.RuntimeID, grace); err != nil {
			return fmt.Errorf("%w: stop before rollback: %v", ErrRestoreFailed, err)
		}
	}

	if err := s.Restore(ctx, target, cap); err != nil {
		return err
	}

	s.logger.Info().
		Str("capsule_id", cap.ID).
		Str("rolled_back_to", target.Name).
		Str("backup", backup.Name).
		Msg("Rollback complete")
	return nil
}

// FindByTime returns the snapshot of capsuleID taken at takenAt.
func (s *Snapshotter) FindByTime(capsuleID string, takenAt time.Time) (*types.Snapshot, error) {
	snaps, err := s.store.ListSnapshotsByCapsule(capsuleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	for _, snap := range snaps {
		if snap.TakenAt.Equal(takenAt) {
			return snap, nil
		}
	}
	return nil, fmt.Errorf("%w: capsule %s at %s", ErrNotFound, capsuleID, takenAt.Format(time.RFC3339))
}

// List returns the snapshots of capsuleID, newest first.
func (s *Snapshotter) List(capsuleID string) ([]*types.Snapshot, error) {
	snaps, err := s.store.ListSnapshotsByCapsule(capsuleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].TakenAt.After(snaps[j].TakenAt) })
	return snaps, nil
}

// Delete removes a snapshot record. Blob removal is left to CAS garbage
// collection, which treats remaining snapshot records as roots.
func (s *Snapshotter) Delete(name string) error {
	if _, err := s.store.GetSnapshot(name); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s.store.DeleteSnapshot(name)
}

// encodeMetadata renders a line-oriented metadata document: the version
// header, then key:value lines in the given order.
func encodeMetadata(header string, kv [][2]string) []byte {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, pair := range kv {
		b.WriteString(pair[0])
		b.WriteByte(':')
		b.WriteString(pair[1])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// parseMetadata splits a metadata document back into its header and
// key:value pairs.
func parseMetadata(data []byte) (header string, kv map[string]string, err error) {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return "", nil, fmt.Errorf("%w: empty metadata document", ErrInvalidCheckpoint)
	}
	header = lines[0]
	kv = make(map[string]string, len(lines)-1)
	for _, line := range lines[1:] {
		i := strings.IndexByte(line, ':')
		if i < 0 {
			return "", nil, fmt.Errorf("%w: malformed metadata line %q", ErrInvalidCheckpoint, line)
		}
		kv[line[:i]] = line[i+1:]
	}
	return header, kv, nil
}

func triggerLabel(trigger string) string {
	if trigger == "" {
		return "manual"
	}
	return trigger
}

// tarDir flattens dir into an uncompressed tar archive.
func tarDir(dir string) ([]byte, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	err := filepath.Walk(dir, func(file string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, file)
		if err != nil || rel == "." {
			return err
		}
		hdr, err := tar.FileInfoHeader(fi, "")
		if err != nil {
			return err
		}
		hdr.Name = rel
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// untarDir unpacks an archive produced by tarDir into dir.
func untarDir(data []byte, dir string) error {
	tr := tar.NewReader(bytes.NewReader(data))
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		target, err := securePath(dir, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(hdr.Mode)); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			f, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(hdr.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return err
			}
			f.Close()
		}
	}
}
