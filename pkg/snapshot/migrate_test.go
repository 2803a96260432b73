package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEnvelope(t *testing.T, env migrationEnvelope) []byte {
	t.Helper()
	payload, err := json.Marshal(env)
	require.NoError(t, err)
	return payload
}

func timeAt(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return parsed
}

// fakeTransport records the migration calls it receives.
type fakeTransport struct {
	transferred []string
	restored    []string
	discarded   []string

	transferErr error
	restoreErr  error
}

func (f *fakeTransport) TransferSnapshot(_ context.Context, nodeID string, snap *types.Snapshot) error {
	if f.transferErr != nil {
		return f.transferErr
	}
	f.transferred = append(f.transferred, snap.Name)
	return nil
}

func (f *fakeTransport) RequestRestore(_ context.Context, nodeID string, snapName string) error {
	if f.restoreErr != nil {
		return f.restoreErr
	}
	f.restored = append(f.restored, snapName)
	return nil
}

func (f *fakeTransport) RequestDiscard(_ context.Context, nodeID string, snapName string) error {
	f.discarded = append(f.discarded, snapName)
	return nil
}

func newTestMigrator(t *testing.T) (*Migrator, *fakeTransport, *types.Capsule) {
	t.Helper()
	s, _, _ := newTestSnapshotter(t)
	transport := &fakeTransport{}

	rootfs := t.TempDir()
	writeTree(t, rootfs, map[string]string{"app": "bytes"})
	cap := &types.Capsule{ID: "cap-mig", NodeID: "node-a", RootfsPath: rootfs}

	return NewMigrator(s, transport), transport, cap
}

func TestMigrateCompletes(t *testing.T) {
	m, transport, cap := newTestMigrator(t)

	migration, err := m.Migrate(context.Background(), cap, "node-b", nil)
	require.NoError(t, err)
	assert.Equal(t, types.MigrationPhaseComplete, migration.Phase)
	assert.Equal(t, "node-a", migration.SourceNodeID)
	assert.Equal(t, "node-b", migration.TargetNodeID)
	require.Len(t, transport.transferred, 1)
	require.Len(t, transport.restored, 1)
	assert.Empty(t, transport.discarded)
}

func TestMigrateVerifyFailureDiscardsTarget(t *testing.T) {
	m, transport, cap := newTestMigrator(t)

	verify := func(context.Context, string) error { return errors.New("health probe failed") }
	migration, err := m.Migrate(context.Background(), cap, "node-b", verify)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRestoreFailed)
	assert.Equal(t, types.MigrationPhaseRolledBack, migration.Phase)
	require.Len(t, transport.discarded, 1)
}

func TestMigrateTransferFailureAbortsBeforeRestore(t *testing.T) {
	m, transport, cap := newTestMigrator(t)
	transport.transferErr = errors.New("peer unreachable")

	_, err := m.Migrate(context.Background(), cap, "node-b", nil)
	assert.ErrorIs(t, err, ErrNetworkTransferFailed)
	assert.Empty(t, transport.restored)
}

func TestMigrateRestoreFailureDiscardsTarget(t *testing.T) {
	m, transport, cap := newTestMigrator(t)
	transport.restoreErr = errors.New("restore refused")

	_, err := m.Migrate(context.Background(), cap, "node-b", nil)
	assert.ErrorIs(t, err, ErrRestoreFailed)
	require.Len(t, transport.discarded, 1)
}

func TestReceiverStoresBlobAndRecord(t *testing.T) {
	s, blobs, store := newTestSnapshotter(t)
	r := NewReceiver(s)

	blob := []byte("memory pages")
	d, err := blobs.Put(blob, types.ObjectKindCapsule)
	require.NoError(t, err)
	require.NoError(t, blobs.Quarantine(d)) // simulate a fresh target CAS

	payload := mustEnvelope(t, migrationEnvelope{Kind: msgSnapshotBlob, Digest: d, Blob: blob})
	require.NoError(t, r.Handle(context.Background(), payload))
	assert.True(t, blobs.Has(d))

	snap := &types.Snapshot{Name: "incoming", CapsuleID: "cap-r", TakenAt: time.Now()}
	payload = mustEnvelope(t, migrationEnvelope{Kind: msgSnapshotRecord, Snapshot: snap})
	require.NoError(t, r.Handle(context.Background(), payload))

	stored, err := store.GetSnapshot("incoming")
	require.NoError(t, err)
	assert.Equal(t, "cap-r", stored.CapsuleID)
}

func TestReceiverRejectsCorruptBlob(t *testing.T) {
	s, _, _ := newTestSnapshotter(t)
	r := NewReceiver(s)

	payload := mustEnvelope(t, migrationEnvelope{
		Kind:   msgSnapshotBlob,
		Digest: "sha256:0000000000000000000000000000000000000000000000000000000000000000",
		Blob:   []byte("tampered"),
	})
	err := r.Handle(context.Background(), payload)
	assert.ErrorIs(t, err, ErrStateCorrupted)
}
