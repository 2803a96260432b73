package snapshot

import (
	"fmt"
	"os"

	criu "github.com/checkpoint-restore/go-criu/v7"
	"github.com/checkpoint-restore/go-criu/v7/rpc"
	"google.golang.org/protobuf/proto"
)

// minCriuVersion is the oldest CRIU version with stable lazy-pages and
// pre-dump support.
const minCriuVersion = 31600

// CheckpointEngine dumps and restores a process tree's memory and kernel
// state. The CRIU implementation is the production path; tests substitute
// a fake so snapshot logic stays runnable without root.
type CheckpointEngine interface {
	// Dump checkpoints the tree rooted at pid into imagesDir. With
	// leaveRunning the tree keeps executing after the dump (pre-copy
	// passes); without it the tree is stopped as part of the dump.
	Dump(pid int, imagesDir string, leaveRunning bool) error

	// PreDump writes an incremental memory-tracking dump into imagesDir,
	// chained to a previous pass via parentDir when non-empty.
	PreDump(pid int, imagesDir, parentDir string) error

	// Restore resumes a dumped tree from imagesDir.
	Restore(imagesDir string) error
}

// criuEngine drives the CRIU binary over its RPC socket.
type criuEngine struct{}

// NewCriuEngine verifies the CRIU binary is present and recent enough and
// returns the production checkpoint engine.
func NewCriuEngine() (CheckpointEngine, error) {
	c := criu.MakeCriu()
	version, err := c.GetCriuVersion()
	if err != nil {
		return nil, fmt.Errorf("%w: criu unavailable: %v", ErrResourceUnavailable, err)
	}
	if version < minCriuVersion {
		return nil, fmt.Errorf("%w: criu %d too old, need >= %d", ErrResourceUnavailable, version, minCriuVersion)
	}
	return &criuEngine{}, nil
}

// SupportsMemTrack reports whether the kernel and CRIU build support dirty
// memory tracking, which the pre-copy migration path depends on.
func SupportsMemTrack() bool {
	features, err := criu.MakeCriu().FeatureCheck(&rpc.CriuFeatures{
		MemTrack: proto.Bool(true),
	})
	if err != nil {
		return false
	}
	return features.GetMemTrack()
}

func (e *criuEngine) Dump(pid int, imagesDir string, leaveRunning bool) error {
	dir, err := os.Open(imagesDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	defer dir.Close()

	opts := &rpc.CriuOpts{
		ImagesDirFd:    proto.Int32(int32(dir.Fd())),
		Pid:            proto.Int32(int32(pid)),
		LeaveRunning:   proto.Bool(leaveRunning),
		TcpEstablished: proto.Bool(true),
		FileLocks:      proto.Bool(true),
		ShellJob:       proto.Bool(true),
		LogLevel:       proto.Int32(4),
		LogFile:        proto.String("dump.log"),
	}
	if err := criu.MakeCriu().Dump(opts, criu.NoNotify{}); err != nil {
		return fmt.Errorf("%w: criu dump: %v", ErrSnapshotFailed, err)
	}
	return nil
}

func (e *criuEngine) PreDump(pid int, imagesDir, parentDir string) error {
	dir, err := os.Open(imagesDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	defer dir.Close()

	opts := &rpc.CriuOpts{
		ImagesDirFd:    proto.Int32(int32(dir.Fd())),
		Pid:            proto.Int32(int32(pid)),
		TrackMem:       proto.Bool(true),
		LeaveRunning:   proto.Bool(true),
		TcpEstablished: proto.Bool(true),
		ShellJob:       proto.Bool(true),
		LogLevel:       proto.Int32(4),
		LogFile:        proto.String("pre-dump.log"),
	}
	if parentDir != "" {
		opts.ParentImg = proto.String(parentDir)
	}
	if err := criu.MakeCriu().PreDump(opts, criu.NoNotify{}); err != nil {
		return fmt.Errorf("%w: criu pre-dump: %v", ErrSnapshotFailed, err)
	}
	return nil
}

func (e *criuEngine) Restore(imagesDir string) error {
	dir, err := os.Open(imagesDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}
	defer dir.Close()

	opts := &rpc.CriuOpts{
		ImagesDirFd:    proto.Int32(int32(dir.Fd())),
		TcpEstablished: proto.Bool(true),
		FileLocks:      proto.Bool(true),
		ShellJob:       proto.Bool(true),
		LogLevel:       proto.Int32(4),
		LogFile:        proto.String("restore.log"),
	}
	if err := criu.MakeCriu().Restore(opts, criu.NoNotify{}); err != nil {
		return fmt.Errorf("%w: criu restore: %v", ErrRestoreFailed, err)
	}
	return nil
}
