package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cuemby/warren/pkg/cas"
	"github.com/cuemby/warren/pkg/fabric"
	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// preCopyPasses is how many incremental memory dumps run before the
// source is paused. More passes shrink the final delta at the cost of a
// longer total migration.
const preCopyPasses = 3

// Transport moves a snapshot and its blobs to another node and drives the
// remote restore. The fabric implementation is the production path; tests
// substitute an in-memory one.
type Transport interface {
	// TransferSnapshot ships snap's record and every CAS blob it
	// references to nodeID.
	TransferSnapshot(ctx context.Context, nodeID string, snap *types.Snapshot) error

	// RequestRestore asks nodeID to restore the named snapshot and start
	// the capsule. An error means the restore did not reach running.
	RequestRestore(ctx context.Context, nodeID string, snapName string) error

	// RequestDiscard asks nodeID to drop a transferred snapshot and any
	// partially restored capsule.
	RequestDiscard(ctx context.Context, nodeID string, snapName string) error
}

// VerifyFunc decides whether a restored capsule is healthy. The
// orchestrator supplies its own steady-state criteria; nil accepts the
// restore as soon as the target reports it running.
type VerifyFunc func(ctx context.Context, capsuleID string) error

// Migrator runs the live-migration pipeline.
type Migrator struct {
	snapshotter *Snapshotter
	transport   Transport
	logger      zerolog.Logger
}

// NewMigrator creates a Migrator moving snapshots over transport.
func NewMigrator(snapshotter *Snapshotter, transport Transport) *Migrator {
	return &Migrator{
		snapshotter: snapshotter,
		transport:   transport,
		logger:      log.WithComponent("migrate"),
	}
}

// Migrate moves cap from this node to targetNodeID, keeping at most one
// live instance at every point: the source keeps running through
// pre-copy, pauses for the final dump, and is only torn down after the
// target verifies healthy. On any failure the source is resumed and the
// target's partial state discarded.
func (m *Migrator) Migrate(ctx context.Context, cap *types.Capsule, targetNodeID string, verify VerifyFunc) (*types.Migration, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.MigrationDuration)

	migration := &types.Migration{
		ID:           uuid.New().String(),
		CapsuleID:    cap.ID,
		SourceNodeID: cap.NodeID,
		TargetNodeID: targetNodeID,
		Phase:        types.MigrationPhasePreCopy,
		StartedAt:    time.Now(),
	}

	pid := cap.PID
	if pid == 0 && cap.RuntimeID != "" {
		if p, err := m.snapshotter.runtime.GetCapsulePID(ctx, cap.RuntimeID); err == nil {
			pid = p
		}
	}

	// Pre-copy: iterative dirty-page dumps while the source runs. Skipped
	// when the engine or mem-tracking is unavailable; the final dump then
	// carries everything.
	if m.snapshotter.engine != nil && pid > 0 && SupportsMemTrack() {
		if err := m.preCopy(ctx, pid); err != nil {
			m.logger.Warn().Err(err).Msg("Pre-copy failed, falling back to full final dump")
		}
	}

	migration.Phase = types.MigrationPhasePaused
	paused := false
	if cap.RuntimeID != "" {
		if err := m.snapshotter.runtime.PauseCapsule(ctx, cap.RuntimeID); err != nil {
			return m.fail(migration, fmt.Errorf("%w: pause source: %v", ErrSnapshotFailed, err))
		}
		paused = true
	}
	resumeSource := func() {
		if paused {
			if err := m.snapshotter.runtime.ResumeCapsule(context.Background(), cap.RuntimeID); err != nil {
				m.logger.Error().Err(err).Str("capsule_id", cap.ID).Msg("Failed to resume source after aborted migration")
			}
		}
	}

	migration.Phase = types.MigrationPhaseSnapshot
	snap, err := m.snapshotter.Take(ctx, cap, TakeOptions{
		Name:    fmt.Sprintf("%s-migrate-%s", cap.ID, migration.ID),
		Trigger: "migration",
	})
	if err != nil {
		resumeSource()
		return m.fail(migration, err)
	}

	migration.Phase = types.MigrationPhaseTransfer
	if err := m.transport.TransferSnapshot(ctx, targetNodeID, snap); err != nil {
		resumeSource()
		return m.fail(migration, fmt.Errorf("%w: %v", ErrNetworkTransferFailed, err))
	}

	migration.Phase = types.MigrationPhaseRestore
	if err := m.transport.RequestRestore(ctx, targetNodeID, snap.Name); err != nil {
		_ = m.transport.RequestDiscard(context.Background(), targetNodeID, snap.Name)
		resumeSource()
		return m.fail(migration, fmt.Errorf("%w: %v", ErrRestoreFailed, err))
	}

	migration.Phase = types.MigrationPhaseVerify
	if verify != nil {
		if err := verify(ctx, cap.ID); err != nil {
			_ = m.transport.RequestDiscard(context.Background(), targetNodeID, snap.Name)
			resumeSource()
			migration.Phase = types.MigrationPhaseRolledBack
			migration.FinishedAt = time.Now()
			migration.Error = err.Error()
			metrics.MigrationsTotal.WithLabelValues("rolled_back").Inc()
			return migration, fmt.Errorf("%w: verification: %v", ErrRestoreFailed, err)
		}
	}

	// The target is live and verified: tear the source down. Only now
	// does the source stop being the single live instance.
	if cap.RuntimeID != "" {
		if err := m.snapshotter.runtime.StopCapsule(ctx, cap.RuntimeID, 10*time.Second); err != nil {
			m.logger.Error().Err(err).Str("capsule_id", cap.ID).Msg("Failed to tear down source after migration")
		}
		if err := m.snapshotter.runtime.DeleteCapsule(ctx, cap.RuntimeID); err != nil {
			m.logger.Error().Err(err).Str("capsule_id", cap.ID).Msg("Failed to delete source capsule")
		}
	}

	migration.Phase = types.MigrationPhaseComplete
	migration.FinishedAt = time.Now()
	metrics.MigrationsTotal.WithLabelValues("complete").Inc()
	m.logger.Info().
		Str("capsule_id", cap.ID).
		Str("target_node", targetNodeID).
		Dur("took", migration.FinishedAt.Sub(migration.StartedAt)).
		Msg("Live migration complete")
	return migration, nil
}

func (m *Migrator) preCopy(ctx context.Context, pid int) error {
	parent := ""
	for pass := 0; pass < preCopyPasses; pass++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		dir, err := os.MkdirTemp(m.snapshotter.workDir, fmt.Sprintf("precopy-%d-", pass))
		if err != nil {
			return err
		}
		if err := m.snapshotter.engine.PreDump(pid, dir, parent); err != nil {
			return err
		}
		parent = dir
	}
	return nil
}

func (m *Migrator) fail(migration *types.Migration, err error) (*types.Migration, error) {
	migration.FinishedAt = time.Now()
	migration.Error = err.Error()
	metrics.MigrationsTotal.WithLabelValues("failed").Inc()
	return migration, err
}

// Fabric message kinds for the migration side channel. Payloads are JSON
// envelopes carried under the per-service encryption the fabric applies.
const (
	msgSnapshotRecord = "SNAPSHOT_RECORD"
	msgSnapshotBlob   = "SNAPSHOT_BLOB"
	msgRestoreRequest = "RESTORE_REQUEST"
	msgDiscardRequest = "DISCARD_REQUEST"
)

// migrationServiceName is the fabric service each node registers to
// receive migration traffic addressed to it.
func migrationServiceName(nodeID string) string {
	return "migrate-" + nodeID
}

type migrationEnvelope struct {
	Kind     string          `json:"kind"`
	Snapshot *types.Snapshot `json:"snapshot,omitempty"`
	SnapName string          `json:"snap_name,omitempty"`
	Digest   types.Digest    `json:"digest,omitempty"`
	Blob     []byte          `json:"blob,omitempty"`
}

// FabricTransport ships snapshots over the node-to-node fabric.
type FabricTransport struct {
	fabric *fabric.Fabric
	blobs  *cas.Store
	logger zerolog.Logger
}

// NewFabricTransport creates the production migration transport.
func NewFabricTransport(f *fabric.Fabric, blobs *cas.Store) *FabricTransport {
	return &FabricTransport{
		fabric: f,
		blobs:  blobs,
		logger: log.WithComponent("migrate-transport"),
	}
}

func (t *FabricTransport) TransferSnapshot(ctx context.Context, nodeID string, snap *types.Snapshot) error {
	service := migrationServiceName(nodeID)

	for _, d := range []types.Digest{snap.MemoryDigest, snap.FilesystemDigest} {
		if d == "" {
			continue
		}
		data, err := t.blobs.Get(d)
		if err != nil {
			return fmt.Errorf("%w: read blob %s: %v", ErrNetworkTransferFailed, d, err)
		}
		if err := t.send(ctx, service, migrationEnvelope{Kind: msgSnapshotBlob, Digest: d, Blob: data}); err != nil {
			return err
		}
	}
	return t.send(ctx, service, migrationEnvelope{Kind: msgSnapshotRecord, Snapshot: snap})
}

func (t *FabricTransport) RequestRestore(ctx context.Context, nodeID string, snapName string) error {
	return t.send(ctx, migrationServiceName(nodeID), migrationEnvelope{Kind: msgRestoreRequest, SnapName: snapName})
}

func (t *FabricTransport) RequestDiscard(ctx context.Context, nodeID string, snapName string) error {
	return t.send(ctx, migrationServiceName(nodeID), migrationEnvelope{Kind: msgDiscardRequest, SnapName: snapName})
}

func (t *FabricTransport) send(ctx context.Context, service string, env migrationEnvelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkTransferFailed, err)
	}
	if err := t.fabric.Send(ctx, service, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkTransferFailed, err)
	}
	return nil
}

// Receiver handles inbound migration traffic on the target node: it lands
// transferred blobs in the local CAS, persists snapshot records, and
// restores on request.
type Receiver struct {
	snapshotter *Snapshotter
	logger      zerolog.Logger
}

// NewReceiver creates the target-side migration handler. Wire its Handle
// into the node's fabric message dispatch for the migrate-<node-id>
// service.
func NewReceiver(snapshotter *Snapshotter) *Receiver {
	return &Receiver{
		snapshotter: snapshotter,
		logger:      log.WithComponent("migrate-receiver"),
	}
}

// Handle processes one migration envelope.
func (r *Receiver) Handle(ctx context.Context, payload []byte) error {
	var env migrationEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCheckpoint, err)
	}
	switch env.Kind {
	case msgSnapshotBlob:
		d, err := r.snapshotter.blobs.Put(env.Blob, types.ObjectKindCapsule)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNetworkTransferFailed, err)
		}
		if d != env.Digest {
			_ = r.snapshotter.blobs.Quarantine(d)
			return fmt.Errorf("%w: blob digest mismatch: got %s want %s", ErrStateCorrupted, d, env.Digest)
		}
		return nil
	case msgSnapshotRecord:
		if env.Snapshot == nil {
			return fmt.Errorf("%w: record envelope without snapshot", ErrInvalidCheckpoint)
		}
		return r.snapshotter.store.CreateSnapshot(env.Snapshot)
	case msgRestoreRequest:
		snap, err := r.snapshotter.store.GetSnapshot(env.SnapName)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrNotFound, env.SnapName)
		}
		cap := &types.Capsule{
			ID:         snap.CapsuleID,
			RootfsPath: r.restorePath(snap),
		}
		return r.snapshotter.Restore(ctx, snap, cap)
	case msgDiscardRequest:
		if err := r.snapshotter.store.DeleteSnapshot(env.SnapName); err != nil {
			r.logger.Warn().Err(err).Str("snapshot", env.SnapName).Msg("Discard of unknown snapshot")
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown envelope kind %q", ErrInvalidCheckpoint, env.Kind)
	}
}

func (r *Receiver) restorePath(snap *types.Snapshot) string {
	return fmt.Sprintf("%s/restore-%s", r.snapshotter.workDir, snap.CapsuleID)
}
