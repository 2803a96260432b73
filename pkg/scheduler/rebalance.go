package scheduler

import (
	"context"
	"time"

	"github.com/cuemby/warren/pkg/types"
)

const (
	// overloadedThreshold is the per-core utilization above which a node
	// sheds capsules.
	overloadedThreshold = 0.8

	// targetThreshold is the per-core utilization a migration target must
	// stay below.
	targetThreshold = 0.5
)

// MigrationCandidate names one capsule worth moving and where to.
type MigrationCandidate struct {
	CapsuleID  string
	SourceNode string
	TargetNode string
	CPU        float64
	Memory     int64
	Storage    int64
}

// Rebalance scans for overloaded nodes and returns migration candidates:
// for each capsule on a node above the overload threshold, the first node
// below the target threshold that still fits the assignment's original
// resource needs. The actual moves are the migration engine's job.
func (s *Scheduler) Rebalance() ([]MigrationCandidate, error) {
	nodes, err := s.manager.ListNodes()
	if err != nil {
		return nil, err
	}

	var candidates []MigrationCandidate
	for _, node := range nodes {
		if !schedulable(node) || cpuUtilization(node) <= overloadedThreshold {
			continue
		}
		for _, a := range node.Assignments {
			target := findRebalanceTarget(nodes, node.ID, a)
			if target == nil {
				continue
			}
			candidates = append(candidates, MigrationCandidate{
				CapsuleID:  a.CapsuleID,
				SourceNode: node.ID,
				TargetNode: target.ID,
				CPU:        a.CPU,
				Memory:     a.Memory,
				Storage:    a.Storage,
			})
		}
	}
	if len(candidates) > 0 {
		s.logger.Info().Int("candidates", len(candidates)).Msg("Rebalance pass found migration candidates")
	}
	return candidates, nil
}

func findRebalanceTarget(nodes []*types.Node, sourceID string, a types.CapsuleAssignment) *types.Node {
	req := types.ResourceTriple{CPU: a.CPU, Memory: a.Memory, Storage: a.Storage}
	for _, node := range nodes {
		if node.ID == sourceID || !schedulable(node) {
			continue
		}
		if cpuUtilization(node) >= targetThreshold {
			continue
		}
		if fits(node, req) {
			return node
		}
	}
	return nil
}

// detectFailures marks nodes whose heartbeat is older than
// HeartbeatTimeout as failed and reschedules their assignments.
func (s *Scheduler) detectFailures() {
	nodes, err := s.manager.ListNodes()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failure detection could not list nodes")
		return
	}
	cutoff := time.Now().Add(-HeartbeatTimeout)
	for _, node := range nodes {
		if node.Status != types.NodeStatusReady || node.LastHeartbeat.After(cutoff) {
			continue
		}
		s.handleNodeFailure(node)
	}
}

// handleNodeFailure marks node failed, drops its usage, and reschedules
// each of its assignments least-loaded with the original requirements.
func (s *Scheduler) handleNodeFailure(node *types.Node) {
	s.logger.Warn().
		Str("node_id", node.ID).
		Time("last_heartbeat", node.LastHeartbeat).
		Msg("Node failed heartbeat timeout, rescheduling its capsules")

	orphaned := node.Assignments
	node.Status = types.NodeStatusFailed
	node.Assignments = nil
	node.Usage = types.NodeResources{}
	if err := s.manager.UpdateNode(node); err != nil {
		s.logger.Error().Err(err).Str("node_id", node.ID).Msg("Failed to persist node failure")
		return
	}

	for _, a := range orphaned {
		cap, err := s.manager.GetCapsule(a.CapsuleID)
		if err != nil {
			continue
		}
		// Return the failed node's quota charge before Schedule re-charges
		// it for the new placement.
		req := types.ResourceTriple{CPU: a.CPU, Memory: a.Memory, Storage: a.Storage}
		s.releaseQuota(req)

		cap.ActualState = types.CapsuleStatePending
		if _, err := s.Schedule(context.Background(), cap, req, Constraints{}, LeastLoaded{}); err != nil {
			s.logger.Error().Err(err).Str("capsule_id", cap.ID).Msg("Failed to reschedule capsule off failed node")
			cap.ActualState = types.CapsuleStateFailed
		}
		if err := s.manager.UpdateCapsule(cap); err != nil {
			s.logger.Error().Err(err).Str("capsule_id", cap.ID).Msg("Failed to persist rescheduled capsule")
		}
	}
}
