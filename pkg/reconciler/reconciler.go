package reconciler

import (
	"fmt"
	"sync"
	"time"

	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/manager"
	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/types"
	"github.com/rs/zerolog"
)

// Reconciler ensures actual cluster state matches desired state
type Reconciler struct {
	manager *manager.Manager
	logger  zerolog.Logger
	mu      sync.RWMutex
	stopCh  chan struct{}
}

// NewReconciler creates a new reconciler
func NewReconciler(mgr *manager.Manager) *Reconciler {
	return &Reconciler{
		manager: mgr,
		logger:  log.WithComponent("reconciler"),
		stopCh:  make(chan struct{}),
	}
}

// Start begins the reconciliation loop
func (r *Reconciler) Start() {
	go r.run()
}

// Stop stops the reconciler
func (r *Reconciler) Stop() {
	close(r.stopCh)
}

// run is the main reconciliation loop
func (r *Reconciler) run() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	r.logger.Info().Msg("Reconciler started")

	for {
		select {
		case <-ticker.C:
			if err := r.reconcile(); err != nil {
				// Log error but continue
				r.logger.Error().Err(err).Msg("Reconciliation cycle failed")
			}
		case <-r.stopCh:
			r.logger.Info().Msg("Reconciler stopped")
			return
		}
	}
}

// reconcile performs one reconciliation cycle
func (r *Reconciler) reconcile() error {
	// Start timing the reconciliation cycle
	timer := metrics.NewTimer()
	defer func() {
		timer.ObserveDuration(metrics.ReconciliationDuration)
		metrics.ReconciliationCyclesTotal.Inc()
	}()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Reconcile nodes
	if err := r.reconcileNodes(); err != nil {
		r.logger.Error().Err(err).Msg("Failed to reconcile nodes")
	}

	// Reconcile capsules
	if err := r.reconcileCapsules(); err != nil {
		r.logger.Error().Err(err).Msg("Failed to reconcile capsules")
	}

	return nil
}

// reconcileNodes checks node health and updates status
func (r *Reconciler) reconcileNodes() error {
	nodes, err := r.manager.ListNodes()
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}

	now := time.Now()
	for _, node := range nodes {
		// Check if node is down (no heartbeat in 30 seconds)
		if now.Sub(node.LastHeartbeat) > 30*time.Second {
			if node.Status != types.NodeStatusDown {
				r.logger.Warn().
					Str("node_id", node.ID).
					Dur("no_heartbeat_duration", now.Sub(node.LastHeartbeat)).
					Msg("Node is down, marking as down")
				node.Status = types.NodeStatusDown
				if err := r.manager.UpdateNode(node); err != nil {
					r.logger.Error().
						Err(err).
						Str("node_id", node.ID).
						Msg("Failed to mark node as down")
				}
			}
		}
	}

	return nil
}

// reconcileCapsules ensures failed capsules are replaced
func (r *Reconciler) reconcileCapsules() error {
	capsules, err := r.manager.ListCapsules()
	if err != nil {
		return fmt.Errorf("failed to list capsules: %w", err)
	}

	for _, capsule := range capsules {
		// Handle failed capsules
		if capsule.ActualState == types.CapsuleStateFailed && capsule.DesiredState == types.CapsuleStateRunning {
			r.logger.Info().
				Str("capsule_id", capsule.ID).
				Str("node_id", capsule.NodeID).
				Msg("Capsule failed, marking for cleanup")

			// Mark capsule as shutdown (scheduler will create replacement)
			capsule.DesiredState = types.CapsuleStateShutdown
			if err := r.manager.UpdateCapsule(capsule); err != nil {
				r.logger.Error().
					Err(err).
					Str("capsule_id", capsule.ID).
					Msg("Failed to mark capsule for cleanup")
			}
		}

		// Handle unhealthy capsules
		if capsule.ActualState == types.CapsuleStateRunning && capsule.DesiredState == types.CapsuleStateRunning {
			if capsule.HealthStatus != nil && !capsule.HealthStatus.Healthy {
				// Check if capsule has exceeded failure threshold
				// For now, we use a simple check: if unhealthy, mark as failed
				r.logger.Warn().
					Str("capsule_id", capsule.ID).
					Int("consecutive_failures", capsule.HealthStatus.ConsecutiveFailures).
					Str("health_message", capsule.HealthStatus.Message).
					Msg("Capsule is unhealthy, marking as failed")

				// Mark capsule as failed so it gets replaced
				capsule.ActualState = types.CapsuleStateFailed
				capsule.Error = fmt.Sprintf("health check failed: %s", capsule.HealthStatus.Message)
				if err := r.manager.UpdateCapsule(capsule); err != nil {
					r.logger.Error().
						Err(err).
						Str("capsule_id", capsule.ID).
						Msg("Failed to mark unhealthy capsule as failed")
				}
			}
		}

		// Handle capsules on down nodes
		node, err := r.manager.GetNode(capsule.NodeID)
		if err != nil {
			r.logger.Debug().
				Err(err).
				Str("capsule_id", capsule.ID).
				Str("node_id", capsule.NodeID).
				Msg("Could not get node for capsule")
			continue
		}

		if node.Status == types.NodeStatusDown && capsule.DesiredState == types.CapsuleStateRunning {
			r.logger.Info().
				Str("capsule_id", capsule.ID).
				Str("node_id", node.ID).
				Msg("Capsule on down node, marking for rescheduling")

			// Mark capsule as failed so scheduler can create replacement
			capsule.ActualState = types.CapsuleStateFailed
			capsule.DesiredState = types.CapsuleStateShutdown
			if err := r.manager.UpdateCapsule(capsule); err != nil {
				r.logger.Error().
					Err(err).
					Str("capsule_id", capsule.ID).
					Msg("Failed to mark capsule as failed")
			}
		}

		// Clean up completed shutdown capsules
		if capsule.DesiredState == types.CapsuleStateShutdown && capsule.ActualState == types.CapsuleStateComplete {
			// Capsule can be deleted after some grace period
			if time.Since(capsule.FinishedAt) > 5*time.Minute {
				r.logger.Debug().
					Str("capsule_id", capsule.ID).
					Msg("Deleting completed capsule")
				if err := r.manager.DeleteCapsule(capsule.ID); err != nil {
					r.logger.Error().
						Err(err).
						Str("capsule_id", capsule.ID).
						Msg("Failed to delete completed capsule")
				}
			}
		}
	}

	return nil
}
