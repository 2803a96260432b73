package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cuemby/warren/pkg/fabric"
	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/manager"
	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/quota"
	"github.com/cuemby/warren/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	reconcileInterval = 5 * time.Second
	rebalanceInterval = time.Minute
)

// Scheduler reconciles desired service state into capsule placements and
// watches node health.
type Scheduler struct {
	manager     *manager.Manager
	quota       *quota.Manager
	fabric      *fabric.Fabric
	localNodeID string
	logger      zerolog.Logger
	mu          sync.RWMutex
	stopCh      chan struct{}

	// OnMigrationCandidate, when set, receives each candidate a rebalance
	// pass identifies. The migration engine performs the actual move.
	OnMigrationCandidate func(MigrationCandidate)
}

// NewScheduler creates a scheduler driving placements through mgr. The
// quota manager and fabric are optional: without a quota manager no quota
// gating happens, without a fabric all placements are assumed local.
func NewScheduler(mgr *manager.Manager) *Scheduler {
	return &Scheduler{
		manager:     mgr,
		localNodeID: mgr.NodeID(),
		logger:      log.WithComponent("scheduler"),
		stopCh:      make(chan struct{}),
	}
}

// WithQuota gates placements through q.
func (s *Scheduler) WithQuota(q *quota.Manager) *Scheduler {
	s.quota = q
	return s
}

// WithFabric forwards non-local placements over f.
func (s *Scheduler) WithFabric(f *fabric.Fabric) *Scheduler {
	s.fabric = f
	return s
}

// Start begins the reconcile, rebalance, and failure-detection loops.
func (s *Scheduler) Start() {
	go s.run()
	go s.runRebalance()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	close(s.stopCh)
}

// run is the main reconcile loop.
func (s *Scheduler) run() {
	ticker := time.NewTicker(reconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.detectFailures()
			if err := s.schedule(); err != nil {
				s.logger.Error().Err(err).Msg("Scheduling cycle failed")
			}
		case <-s.stopCh:
			return
		}
	}
}

// runRebalance periodically scans for overloaded nodes.
func (s *Scheduler) runRebalance() {
	ticker := time.NewTicker(rebalanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			candidates, err := s.Rebalance()
			if err != nil {
				s.logger.Error().Err(err).Msg("Rebalance pass failed")
				continue
			}
			if s.OnMigrationCandidate != nil {
				for _, c := range candidates {
					s.OnMigrationCandidate(c)
				}
			}
		case <-s.stopCh:
			return
		}
	}
}

// schedule performs one reconcile cycle over every service.
func (s *Scheduler) schedule() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	services, err := s.manager.ListServices()
	if err != nil {
		return fmt.Errorf("failed to list services: %w", err)
	}

	nodes, err := s.manager.ListNodes()
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}

	readyNodes := filterSchedulableNodes(nodes)
	if len(readyNodes) == 0 {
		s.logger.Warn().Msg("No schedulable nodes available. If this is a new cluster, ensure 'warren cluster init' completed (hybrid mode enabled by default)")
		return nil
	}

	for _, service := range services {
		if err := s.scheduleService(service, readyNodes); err != nil {
			s.logger.Error().
				Err(err).
				Str("service_name", service.Name).
				Str("service_id", service.ID).
				Msg("Failed to schedule service")
			continue
		}
	}

	return nil
}

// scheduleService ensures the service has the correct number of capsules.
func (s *Scheduler) scheduleService(service *types.Service, nodes []*types.Node) error {
	capsules, err := s.manager.ListCapsulesByService(service.ID)
	if err != nil {
		return fmt.Errorf("failed to list capsules: %w", err)
	}

	if service.Mode == types.ServiceModeGlobal {
		return s.scheduleGlobalService(service, nodes, capsules)
	}
	return s.scheduleReplicatedService(service, nodes, capsules)
}

// capsuleFromService stamps out one desired capsule for a service.
func capsuleFromService(service *types.Service) *types.Capsule {
	return &types.Capsule{
		ID:            uuid.New().String(),
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		DesiredState:  types.CapsuleStateRunning,
		ActualState:   types.CapsuleStatePending,
		Image:         service.Image,
		Env:           service.Env,
		Ports:         service.Ports,
		Mounts:        service.Volumes,
		Secrets:       service.Secrets,
		Resources:     service.Resources,
		HealthCheck:   service.HealthCheck,
		RestartPolicy: service.RestartPolicy,
		StopTimeout:   service.StopTimeout,
		CreatedAt:     time.Now(),
	}
}

// scheduleGlobalService ensures one capsule per node for global services.
func (s *Scheduler) scheduleGlobalService(service *types.Service, nodes []*types.Node, capsules []*types.Capsule) error {
	nodeCapsuleMap := make(map[string]*types.Capsule)
	for _, cap := range capsules {
		if cap.DesiredState == types.CapsuleStateRunning &&
			(cap.ActualState == types.CapsuleStatePending || cap.ActualState == types.CapsuleStateRunning) {
			nodeCapsuleMap[cap.NodeID] = cap
		}
	}

	for _, node := range nodes {
		if _, exists := nodeCapsuleMap[node.ID]; !exists {
			timer := metrics.NewTimer()
			cap := capsuleFromService(service)
			cap.NodeID = node.ID

			if err := s.manager.CreateCapsule(cap); err != nil {
				metrics.CapsulesFailed.Inc()
				return fmt.Errorf("failed to create capsule: %w", err)
			}

			timer.ObserveDuration(metrics.SchedulingLatency)
			metrics.CapsulesScheduled.Inc()

			s.logger.Info().
				Str("capsule_id", cap.ID).
				Str("service_name", service.Name).
				Str("node_id", node.ID).
				Msg("Created global capsule")
		}
	}

	// Remove capsules for nodes that no longer exist.
	for _, cap := range capsules {
		if cap.DesiredState != types.CapsuleStateRunning {
			continue
		}

		nodeExists := false
		for _, node := range nodes {
			if node.ID == cap.NodeID {
				nodeExists = true
				break
			}
		}

		if !nodeExists {
			cap.DesiredState = types.CapsuleStateShutdown
			if err := s.manager.UpdateCapsule(cap); err != nil {
				s.logger.Error().Err(err).Str("capsule_id", cap.ID).Msg("Failed to shutdown capsule")
				continue
			}
			s.logger.Info().
				Str("capsule_id", cap.ID).
				Str("node_id", cap.NodeID).
				Msg("Removed global capsule (node no longer exists)")
		}
	}

	return nil
}

// scheduleReplicatedService converges a replicated service onto its
// declared replica count.
func (s *Scheduler) scheduleReplicatedService(service *types.Service, nodes []*types.Node, capsules []*types.Capsule) error {
	activeCapsules := 0
	for _, cap := range capsules {
		if cap.DesiredState == types.CapsuleStateRunning &&
			(cap.ActualState == types.CapsuleStatePending || cap.ActualState == types.CapsuleStateRunning) {
			activeCapsules++
		}
	}

	desired := service.Replicas
	toCreate := desired - activeCapsules

	if toCreate > 0 {
		for i := 0; i < toCreate; i++ {
			timer := metrics.NewTimer()

			cap := capsuleFromService(service)
			node, err := s.selectNodeForService(service, nodes, capsules, cap)
			if err != nil {
				metrics.CapsulesFailed.Inc()
				return fmt.Errorf("failed to select node: %w", err)
			}
			if node == nil {
				metrics.CapsulesFailed.Inc()
				return fmt.Errorf("%w: no suitable node found", ErrInsufficientResources)
			}
			cap.NodeID = node.ID

			if err := s.manager.CreateCapsule(cap); err != nil {
				s.Release(cap.ID)
				metrics.CapsulesFailed.Inc()
				return fmt.Errorf("failed to create capsule: %w", err)
			}

			timer.ObserveDuration(metrics.SchedulingLatency)
			metrics.CapsulesScheduled.Inc()

			s.logger.Info().
				Str("capsule_id", cap.ID).
				Str("service_name", service.Name).
				Str("node_id", node.ID).
				Msg("Created capsule")
		}
	}

	if toCreate < 0 {
		toRemove := -toCreate
		removed := 0
		for _, cap := range capsules {
			if removed >= toRemove {
				break
			}
			if cap.DesiredState == types.CapsuleStateRunning {
				cap.DesiredState = types.CapsuleStateShutdown
				if err := s.manager.UpdateCapsule(cap); err != nil {
					s.logger.Error().Err(err).Str("capsule_id", cap.ID).Msg("Failed to shutdown capsule")
					continue
				}
				s.Release(cap.ID)
				removed++
			}
		}
	}

	return nil
}

// selectNodeForService selects a node for a service, considering volume
// affinity before the placement policy.
func (s *Scheduler) selectNodeForService(service *types.Service, nodes []*types.Node, existing []*types.Capsule, cap *types.Capsule) (*types.Node, error) {
	if len(service.Volumes) > 0 {
		for _, volumeMount := range service.Volumes {
			volume, err := s.manager.GetVolumeByName(volumeMount.Source)
			if err != nil {
				// Volume doesn't exist yet, will be created on the
				// selected node.
				continue
			}

			if volume.NodeID != "" {
				for _, node := range nodes {
					if node.ID == volume.NodeID {
						s.logger.Debug().
							Str("node_id", node.ID).
							Str("service_name", service.Name).
							Str("volume_name", volume.Name).
							Msg("Selected node for service (volume affinity)")
						return node, nil
					}
				}
				return nil, fmt.Errorf("volume %s requires node %s which is not available", volume.Name, volume.NodeID)
			}
		}
	}

	// No volume affinity: run the full placement pipeline so quota
	// gating, usage debits, and assignments all happen.
	req := requirementsOf(service.Resources)
	constraints := Constraints{
		PreferredNodes: service.PreferredNodes,
		AntiAffinity:   service.AntiAffinity,
	}
	node, err := s.Schedule(context.Background(), cap, req, constraints, PolicyByName(service.PlacementPolicy))
	if err != nil {
		return nil, err
	}
	return node, nil
}

// selectNode picks the candidate hosting the fewest active capsules. It
// is the fallback used when no resource requirements are declared.
func (s *Scheduler) selectNode(nodes []*types.Node, existingCapsules []*types.Capsule) *types.Node {
	if len(nodes) == 0 {
		return nil
	}

	capsuleCounts := make(map[string]int)
	for _, cap := range existingCapsules {
		if cap.DesiredState == types.CapsuleStateRunning {
			capsuleCounts[cap.NodeID]++
		}
	}

	var selectedNode *types.Node
	minCapsules := int(^uint(0) >> 1) // max int

	for _, node := range nodes {
		count := capsuleCounts[node.ID]
		if count < minCapsules {
			minCapsules = count
			selectedNode = node
		}
	}

	return selectedNode
}

// filterSchedulableNodes returns nodes that can run workloads (workers
// and hybrid nodes).
func filterSchedulableNodes(nodes []*types.Node) []*types.Node {
	var ready []*types.Node
	for _, node := range nodes {
		if (node.Role == types.NodeRoleWorker || node.Role == types.NodeRoleHybrid) &&
			node.Status == types.NodeStatusReady {
			ready = append(ready, node)
		}
	}
	return ready
}
