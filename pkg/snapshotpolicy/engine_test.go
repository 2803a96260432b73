package snapshotpolicy

import (
	"context"
	"testing"
	"time"

	"github.com/cuemby/warren/pkg/cas"
	"github.com/cuemby/warren/pkg/snapshot"
	"github.com/cuemby/warren/pkg/storage"
	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopEngine struct{}

func (*noopEngine) Dump(int, string, bool) error      { return nil }
func (*noopEngine) PreDump(int, string, string) error { return nil }
func (*noopEngine) Restore(string) error              { return nil }

func newTestEngine(t *testing.T, spec types.SnapshotsSpec) (*Engine, storage.Store) {
	t.Helper()

	blobs, err := cas.New(cas.Config{Root: t.TempDir()})
	require.NoError(t, err)

	store, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	snapshotter, err := snapshot.New(nil, blobs, store, nil, &noopEngine{}, snapshot.Config{WorkDir: t.TempDir()})
	require.NoError(t, err)

	return New(snapshotter, store, spec), store
}

func runningCapsule(t *testing.T, store storage.Store, id string) {
	t.Helper()
	require.NoError(t, store.CreateCapsule(&types.Capsule{
		ID:          id,
		ActualState: types.CapsuleStateRunning,
		RootfsPath:  t.TempDir(),
	}))
}

func TestOnOperationTakesSnapshotWhenArmed(t *testing.T) {
	e, store := newTestEngine(t, types.SnapshotsSpec{
		Enabled:  true,
		Triggers: types.SnapshotTriggers{BeforeSurgeUp: true},
	})
	runningCapsule(t, store, "cap-1")

	require.NoError(t, e.OnOperation(context.Background(), OpBeforeSurgeUp))

	snaps, err := store.ListSnapshotsByCapsule("cap-1")
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, OpBeforeSurgeUp, snaps[0].Trigger)
}

func TestOnOperationSkipsWhenUnarmed(t *testing.T) {
	e, store := newTestEngine(t, types.SnapshotsSpec{Enabled: true})
	runningCapsule(t, store, "cap-1")

	require.NoError(t, e.OnOperation(context.Background(), OpBeforeBuild))

	snaps, err := store.ListSnapshotsByCapsule("cap-1")
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestOnOperationRejectsUnknownOp(t *testing.T) {
	e, _ := newTestEngine(t, types.SnapshotsSpec{Enabled: true})
	assert.Error(t, e.OnOperation(context.Background(), "after-lunch"))
}

func TestOnOperationCreatesNamedSnapshots(t *testing.T) {
	e, store := newTestEngine(t, types.SnapshotsSpec{
		Enabled: true,
		NamedSnapshots: []types.NamedSnapshotPolicy{
			{Name: "golden", Trigger: OpBeforeUpdate, AutoCreate: true, KeepForever: true},
		},
	})
	runningCapsule(t, store, "cap-1")

	require.NoError(t, e.OnOperation(context.Background(), OpBeforeUpdate))

	snaps, err := store.ListSnapshotsByCapsule("cap-1")
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "golden-cap-1", snaps[0].Name)
	assert.True(t, snaps[0].KeepForever)
}

func TestApplyRetentionPrunes(t *testing.T) {
	e, store := newTestEngine(t, types.SnapshotsSpec{
		Enabled:   true,
		Retention: types.RetentionPolicy{KeepHourly: 1},
	})

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"new", "older", "oldest"} {
		require.NoError(t, store.CreateSnapshot(&types.Snapshot{
			Name:      name,
			CapsuleID: "cap-1",
			TakenAt:   base.Add(-time.Duration(i) * time.Hour),
		}))
	}

	require.NoError(t, e.ApplyRetention())

	snaps, err := store.ListSnapshotsByCapsule("cap-1")
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "new", snaps[0].Name)
}
