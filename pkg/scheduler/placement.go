package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/quota"
	"github.com/cuemby/warren/pkg/types"
)

var (
	ErrInsufficientResources = errors.New("scheduler: insufficient resources")
	ErrSchedulingFailed      = errors.New("scheduler: scheduling failed")
	ErrInvalidNodeState      = errors.New("scheduler: invalid node state")
)

// Schedule places cap on a node: filter healthy candidates that fit req
// and satisfy constraints, charge the quotas, apply the policy, debit the
// chosen node's usage, and record the assignment. Placements on another
// node are forwarded as a DEPLOY_CAPSULE message over the fabric.
func (s *Scheduler) Schedule(ctx context.Context, cap *types.Capsule, req types.ResourceTriple, constraints Constraints, policy Policy) (*types.Node, error) {
	if policy == nil {
		policy = LeastLoaded{}
	}

	nodes, err := s.manager.ListNodes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchedulingFailed, err)
	}
	capsules, err := s.manager.ListCapsules()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchedulingFailed, err)
	}

	candidates := FilterCandidates(nodes, capsules, req, constraints)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidate fits cpu=%.1f memory=%d storage=%d", ErrInsufficientResources, req.CPU, req.Memory, req.Storage)
	}

	if s.quota != nil {
		if err := s.allocateQuota(req); err != nil {
			return nil, err
		}
	}

	node := policy.Select(candidates, req, constraints)
	if node == nil {
		s.releaseQuota(req)
		return nil, fmt.Errorf("%w: policy %s selected no node", ErrSchedulingFailed, policy.Name())
	}

	node.Usage.CPUCores += req.CPU
	node.Usage.MemoryBytes += req.Memory
	node.Usage.StorageGB += req.Storage
	node.Assignments = append(node.Assignments, types.CapsuleAssignment{
		CapsuleID: cap.ID,
		NodeID:    node.ID,
		CPU:       req.CPU,
		Memory:    req.Memory,
		Storage:   req.Storage,
	})
	if err := s.manager.UpdateNode(node); err != nil {
		s.releaseQuota(req)
		return nil, fmt.Errorf("%w: %v", ErrSchedulingFailed, err)
	}

	cap.NodeID = node.ID

	if s.fabric != nil && s.localNodeID != "" && node.ID != s.localNodeID {
		msg := []byte("DEPLOY_CAPSULE:" + cap.ID)
		if err := s.fabric.Send(ctx, "deploy-"+node.ID, msg); err != nil {
			s.logger.Warn().Err(err).Str("node_id", node.ID).Msg("Deploy forward failed, worker will pick the capsule up on its next sync")
		}
	}

	s.logger.Info().
		Str("capsule_id", cap.ID).
		Str("node_id", node.ID).
		Str("policy", policy.Name()).
		Float64("cpu", req.CPU).
		Msg("Capsule placed")
	return node, nil
}

// Release undoes a placement: the assignment is removed, the node's usage
// credited, and the quotas returned. It is total — releasing an unknown
// capsule is a no-op.
func (s *Scheduler) Release(capsuleID string) {
	nodes, err := s.manager.ListNodes()
	if err != nil {
		return
	}
	for _, node := range nodes {
		for i, a := range node.Assignments {
			if a.CapsuleID != capsuleID {
				continue
			}
			node.Assignments = append(node.Assignments[:i], node.Assignments[i+1:]...)
			node.Usage.CPUCores -= a.CPU
			node.Usage.MemoryBytes -= a.Memory
			node.Usage.StorageGB -= a.Storage
			clampUsage(&node.Usage)
			if err := s.manager.UpdateNode(node); err != nil {
				s.logger.Error().Err(err).Str("node_id", node.ID).Msg("Failed to persist assignment release")
				return
			}
			s.releaseQuota(types.ResourceTriple{CPU: a.CPU, Memory: a.Memory, Storage: a.Storage})
			return
		}
	}
}

// FilterCandidates keeps nodes that are healthy, can schedule req, carry
// the required labels, and host none of the anti-affinity capsules.
func FilterCandidates(nodes []*types.Node, capsules []*types.Capsule, req types.ResourceTriple, constraints Constraints) []*types.Node {
	capsuleNode := make(map[string]string, len(capsules))
	for _, c := range capsules {
		capsuleNode[c.ID] = c.NodeID
	}

	var out []*types.Node
	for _, node := range nodes {
		if !schedulable(node) {
			continue
		}
		if !fits(node, req) {
			continue
		}
		if !hasLabels(node, constraints.Labels) {
			continue
		}
		conflict := false
		for _, avoid := range constraints.AntiAffinity {
			if capsuleNode[avoid] == node.ID {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		out = append(out, node)
	}
	return out
}

func schedulable(node *types.Node) bool {
	if node.Status != types.NodeStatusReady {
		return false
	}
	return node.Role == types.NodeRoleWorker || node.Role == types.NodeRoleHybrid
}

func fits(node *types.Node, req types.ResourceTriple) bool {
	return node.Usage.CPUCores+req.CPU <= node.Capacity.CPUCores &&
		node.Usage.MemoryBytes+req.Memory <= node.Capacity.MemoryBytes &&
		node.Usage.StorageGB+req.Storage <= node.Capacity.StorageGB
}

func hasLabels(node *types.Node, labels map[string]string) bool {
	for k, v := range labels {
		if node.Labels[k] != v {
			return false
		}
	}
	return true
}

func clampUsage(u *types.NodeResources) {
	if u.CPUCores < 0 {
		u.CPUCores = 0
	}
	if u.MemoryBytes < 0 {
		u.MemoryBytes = 0
	}
	if u.StorageGB < 0 {
		u.StorageGB = 0
	}
}

// allocateQuota charges the default cluster quota for req, atomically per
// resource with rollback of the resources already charged on denial.
func (s *Scheduler) allocateQuota(req types.ResourceTriple) error {
	charged := make([]types.ResourceKind, 0, 3)
	charge := func(kind types.ResourceKind, amount float64) error {
		if amount <= 0 {
			return nil
		}
		if err := s.quota.Allocate(types.QuotaScopeCluster, "default", kind, amount); err != nil {
			return err
		}
		charged = append(charged, kind)
		return nil
	}

	var err error
	if err = charge(types.ResourceCPU, req.CPU); err == nil {
		if err = charge(types.ResourceMemory, float64(req.Memory)); err == nil {
			err = charge(types.ResourceStorage, float64(req.Storage))
		}
	}
	if err == nil {
		return nil
	}

	for _, kind := range charged {
		amount := req.CPU
		switch kind {
		case types.ResourceMemory:
			amount = float64(req.Memory)
		case types.ResourceStorage:
			amount = float64(req.Storage)
		}
		s.quota.Deallocate(types.QuotaScopeCluster, "default", kind, amount)
	}
	if errors.Is(err, quota.ErrQuotaExceeded) {
		metrics.CapsulesFailed.Inc()
		return fmt.Errorf("%w: %v", ErrInsufficientResources, err)
	}
	return fmt.Errorf("%w: %v", ErrSchedulingFailed, err)
}

func (s *Scheduler) releaseQuota(req types.ResourceTriple) {
	if s.quota == nil {
		return
	}
	if req.CPU > 0 {
		s.quota.Deallocate(types.QuotaScopeCluster, "default", types.ResourceCPU, req.CPU)
	}
	if req.Memory > 0 {
		s.quota.Deallocate(types.QuotaScopeCluster, "default", types.ResourceMemory, float64(req.Memory))
	}
	if req.Storage > 0 {
		s.quota.Deallocate(types.QuotaScopeCluster, "default", types.ResourceStorage, float64(req.Storage))
	}
}

// requirementsOf extracts the placement triple from a capsule's declared
// resources; zero-valued requirements schedule anywhere.
func requirementsOf(res *types.ResourceRequirements) types.ResourceTriple {
	if res == nil {
		return types.ResourceTriple{}
	}
	cpu := res.CPUReservation
	if cpu == 0 {
		cpu = res.CPULimit
	}
	mem := res.MemoryReservation
	if mem == 0 {
		mem = res.MemoryLimit
	}
	return types.ResourceTriple{CPU: cpu, Memory: mem}
}

// HeartbeatTimeout is how stale a node's heartbeat may be before the
// failure detector declares it failed.
const HeartbeatTimeout = 30 * time.Second
