package snapshotpolicy

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/snapshot"
	"github.com/cuemby/warren/pkg/storage"
	"github.com/cuemby/warren/pkg/types"
	"github.com/rs/zerolog"
)

// Operation names the platform operations that can trigger a snapshot.
const (
	OpBeforeBuild   = "before-build"
	OpBeforeSurgeUp = "before-surge-up"
	OpBeforeUpdate  = "before-update"
)

// retentionInterval is how often the retention sweep runs.
const retentionInterval = 15 * time.Minute

// Engine applies a SnapshotsSpec: it arms timer triggers, exposes the
// operation hook the orchestrator and builder call, polls for file
// changes, and prunes by retention.
type Engine struct {
	snapshotter *snapshot.Snapshotter
	store       storage.Store
	spec        types.SnapshotsSpec
	logger      zerolog.Logger

	mu      sync.Mutex
	watcher *changeWatcher
	stopCh  chan struct{}
	stopped bool
}

// New creates a policy engine for spec. It does nothing until Start.
func New(snapshotter *snapshot.Snapshotter, store storage.Store, spec types.SnapshotsSpec) *Engine {
	e := &Engine{
		snapshotter: snapshotter,
		store:       store,
		spec:        spec,
		logger:      log.WithComponent("snapshotpolicy"),
		stopCh:      make(chan struct{}),
	}
	if fc := spec.Triggers.OnFileChanges; fc != nil {
		e.watcher = newChangeWatcher(fc.WatchPaths, fc.ExcludePaths, fc.FilePatterns, fc.ExcludePatterns)
	}
	return e
}

// Start launches the timer, change-detection, and retention loops.
func (e *Engine) Start(ctx context.Context) {
	if !e.spec.Enabled {
		return
	}
	type timed struct {
		enabled  bool
		interval time.Duration
		trigger  string
	}
	for _, tt := range []timed{
		{e.spec.Triggers.Hourly, time.Hour, "hourly"},
		{e.spec.Triggers.Daily, 24 * time.Hour, "daily"},
		{e.spec.Triggers.Weekly, 7 * 24 * time.Hour, "weekly"},
		{e.spec.Triggers.Monthly, 30 * 24 * time.Hour, "monthly"},
		{e.spec.Triggers.Yearly, 365 * 24 * time.Hour, "yearly"},
	} {
		if tt.enabled {
			go e.timerLoop(ctx, tt.interval, tt.trigger)
		}
	}

	if e.watcher != nil {
		interval := e.spec.Triggers.ChangeDetectInterval
		if interval <= 0 {
			interval = time.Minute
		}
		go e.watchLoop(ctx, interval)
	}

	go e.retentionLoop(ctx)
}

// Stop terminates all loops.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.stopped {
		e.stopped = true
		close(e.stopCh)
	}
}

// OnOperation is the hook callers invoke before a triggering operation:
// before-build, before-surge-up, before-update. It snapshots every
// running capsule when the spec arms that trigger, and additionally takes
// any auto-create named snapshots bound to it.
func (e *Engine) OnOperation(ctx context.Context, op string) error {
	if !e.spec.Enabled {
		return nil
	}
	armed := false
	switch op {
	case OpBeforeBuild:
		armed = e.spec.Triggers.BeforeBuild
	case OpBeforeSurgeUp:
		armed = e.spec.Triggers.BeforeSurgeUp
	case OpBeforeUpdate:
		armed = e.spec.Triggers.BeforeUpdate
	default:
		return fmt.Errorf("unknown snapshot trigger operation %q", op)
	}
	if armed {
		e.snapshotAll(ctx, op)
	}
	for _, named := range e.spec.NamedSnapshots {
		if named.AutoCreate && named.Trigger == op {
			e.snapshotAllNamed(ctx, named)
		}
	}
	return nil
}

func (e *Engine) timerLoop(ctx context.Context, interval time.Duration, trigger string) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.snapshotAll(ctx, trigger)
		case <-e.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (e *Engine) watchLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			changed := e.watcher.scan()
			if changed >= e.spec.Triggers.MinChangeThreshold && changed > 0 {
				e.logger.Info().Int64("changed_bytes", changed).Msg("File-change threshold crossed")
				e.snapshotAll(ctx, "file-change")
			}
		case <-e.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (e *Engine) retentionLoop(ctx context.Context) {
	ticker := time.NewTicker(retentionInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := e.ApplyRetention(); err != nil {
				e.logger.Error().Err(err).Msg("Retention sweep failed")
			}
		case <-e.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// snapshotAll takes a snapshot of every running capsule.
func (e *Engine) snapshotAll(ctx context.Context, trigger string) {
	capsules, err := e.store.ListCapsules()
	if err != nil {
		e.logger.Error().Err(err).Msg("Failed to list capsules for snapshot trigger")
		return
	}
	for _, cap := range capsules {
		if cap.ActualState != types.CapsuleStateRunning {
			continue
		}
		if _, err := e.snapshotter.Take(ctx, cap, snapshot.TakeOptions{
			Trigger:      trigger,
			LeaveRunning: true,
		}); err != nil {
			e.logger.Error().Err(err).Str("capsule_id", cap.ID).Str("trigger", trigger).Msg("Triggered snapshot failed")
		}
	}
}

func (e *Engine) snapshotAllNamed(ctx context.Context, named types.NamedSnapshotPolicy) {
	capsules, err := e.store.ListCapsules()
	if err != nil {
		return
	}
	for _, cap := range capsules {
		if cap.ActualState != types.CapsuleStateRunning {
			continue
		}
		if _, err := e.snapshotter.Take(ctx, cap, snapshot.TakeOptions{
			Name:         fmt.Sprintf("%s-%s", named.Name, cap.ID),
			Description:  named.Description,
			Trigger:      named.Trigger,
			KeepForever:  named.KeepForever,
			LeaveRunning: true,
		}); err != nil {
			e.logger.Error().Err(err).Str("capsule_id", cap.ID).Str("named", named.Name).Msg("Named snapshot failed")
		}
	}
}

// ApplyRetention prunes every capsule's snapshots down to what the
// retention policy keeps. Keep-forever snapshots are never deleted.
func (e *Engine) ApplyRetention() error {
	all, err := e.store.ListSnapshots()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	byCapsule := make(map[string][]*types.Snapshot)
	for _, snap := range all {
		byCapsule[snap.CapsuleID] = append(byCapsule[snap.CapsuleID], snap)
	}

	for capsuleID, snaps := range byCapsule {
		keep := selectRetained(snaps, e.spec.Retention)
		for _, snap := range snaps {
			if keep[snap.Name] {
				continue
			}
			if err := e.store.DeleteSnapshot(snap.Name); err != nil {
				e.logger.Error().Err(err).Str("snapshot", snap.Name).Msg("Failed to prune snapshot")
				continue
			}
			metrics.SnapshotsPruned.Inc()
			e.logger.Debug().Str("snapshot", snap.Name).Str("capsule_id", capsuleID).Msg("Snapshot pruned")
		}
	}
	return nil
}
