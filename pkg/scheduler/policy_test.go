package scheduler

import (
	"testing"

	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id string, cores, usedCores float64) *types.Node {
	return &types.Node{
		ID:     id,
		Role:   types.NodeRoleWorker,
		Status: types.NodeStatusReady,
		Capacity: types.NodeResources{
			CPUCores:    cores,
			MemoryBytes: 64 << 30,
			StorageGB:   500,
		},
		Usage: types.NodeResources{CPUCores: usedCores},
	}
}

func TestLeastLoadedPicksLowestPerCoreUtilization(t *testing.T) {
	nodes := []*types.Node{
		node("busy", 8, 7),
		node("idle-a", 8, 0),
		node("half", 8, 4),
	}

	chosen := LeastLoaded{}.Select(nodes, types.ResourceTriple{CPU: 2}, Constraints{})
	require.NotNil(t, chosen)
	assert.Equal(t, "idle-a", chosen.ID)
}

func TestRoundRobinCoversAllCandidates(t *testing.T) {
	nodes := []*types.Node{node("a", 8, 0), node("b", 8, 0), node("c", 8, 0)}

	chosen := RoundRobin{}.Select(nodes, types.ResourceTriple{}, Constraints{})
	require.NotNil(t, chosen)
	assert.Contains(t, []string{"a", "b", "c"}, chosen.ID)
}

func TestResourceBalancedAvoidsSkewedNodes(t *testing.T) {
	// skewed has maxed memory: placing there widens the spread between
	// its utilizations; even keeps all three axes level.
	skewed := node("skewed", 8, 1)
	skewed.Usage.MemoryBytes = 60 << 30
	even := node("even", 8, 2)
	even.Usage.MemoryBytes = 16 << 30
	even.Usage.StorageGB = 125

	chosen := ResourceBalanced{}.Select([]*types.Node{skewed, even}, types.ResourceTriple{CPU: 1, Memory: 1 << 30, Storage: 10}, Constraints{})
	require.NotNil(t, chosen)
	assert.Equal(t, "even", chosen.ID)
}

func TestAffinityAwarePrefersListedNode(t *testing.T) {
	nodes := []*types.Node{node("a", 8, 0), node("b", 8, 7)}

	chosen := AffinityAware{}.Select(nodes, types.ResourceTriple{}, Constraints{PreferredNodes: []string{"b"}})
	require.NotNil(t, chosen)
	assert.Equal(t, "b", chosen.ID)
}

func TestAffinityAwareFallsBackToLeastLoaded(t *testing.T) {
	nodes := []*types.Node{node("a", 8, 6), node("b", 8, 1)}

	chosen := AffinityAware{}.Select(nodes, types.ResourceTriple{}, Constraints{PreferredNodes: []string{"gone"}})
	require.NotNil(t, chosen)
	assert.Equal(t, "b", chosen.ID)
}

func TestPolicyByName(t *testing.T) {
	assert.Equal(t, "round-robin", PolicyByName("round-robin").Name())
	assert.Equal(t, "least-loaded", PolicyByName("").Name())
	assert.Equal(t, "resource-balanced", PolicyByName("resource-balanced").Name())
	assert.Equal(t, "affinity-aware", PolicyByName("affinity-aware").Name())
}

func TestFilterCandidatesResourceFit(t *testing.T) {
	nodes := []*types.Node{
		node("full", 8, 7),
		node("free", 8, 1),
	}

	out := FilterCandidates(nodes, nil, types.ResourceTriple{CPU: 2}, Constraints{})
	require.Len(t, out, 1)
	assert.Equal(t, "free", out[0].ID)
}

func TestFilterCandidatesAntiAffinity(t *testing.T) {
	nodes := []*types.Node{node("a", 8, 0), node("b", 8, 0)}
	capsules := []*types.Capsule{{ID: "db-1", NodeID: "a"}}

	out := FilterCandidates(nodes, capsules, types.ResourceTriple{CPU: 1}, Constraints{AntiAffinity: []string{"db-1"}})
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestFilterCandidatesExcludesUnhealthyNodes(t *testing.T) {
	failed := node("failed", 8, 0)
	failed.Status = types.NodeStatusFailed
	draining := node("draining", 8, 0)
	draining.Status = types.NodeStatusDraining
	manager := node("mgr", 8, 0)
	manager.Role = types.NodeRoleManager

	out := FilterCandidates([]*types.Node{failed, draining, manager, node("ok", 8, 0)}, nil, types.ResourceTriple{}, Constraints{})
	require.Len(t, out, 1)
	assert.Equal(t, "ok", out[0].ID)
}

func TestFilterCandidatesLabels(t *testing.T) {
	gpu := node("gpu", 8, 0)
	gpu.Labels = map[string]string{"accelerator": "gpu"}

	out := FilterCandidates([]*types.Node{gpu, node("plain", 8, 0)}, nil, types.ResourceTriple{}, Constraints{Labels: map[string]string{"accelerator": "gpu"}})
	require.Len(t, out, 1)
	assert.Equal(t, "gpu", out[0].ID)
}

func TestRebalanceTargetSelection(t *testing.T) {
	// Mirrors three 8-core nodes with one hot: a capsule on the hot node
	// should find a target at under half utilization.
	hot := node("hot", 8, 6.5)
	hot.Assignments = []types.CapsuleAssignment{
		{CapsuleID: "cap-1", NodeID: "hot", CPU: 2},
	}
	cool := node("cool", 8, 1)
	warm := node("warm", 8, 5)

	target := findRebalanceTarget([]*types.Node{hot, cool, warm}, "hot", hot.Assignments[0])
	require.NotNil(t, target)
	assert.Equal(t, "cool", target.ID)
}

func TestRebalanceNoTargetWhenAllBusy(t *testing.T) {
	hot := node("hot", 8, 7)
	a := types.CapsuleAssignment{CapsuleID: "cap-1", NodeID: "hot", CPU: 2}
	busy := node("busy", 8, 5)

	assert.Nil(t, findRebalanceTarget([]*types.Node{hot, busy}, "hot", a))
}

func TestRequirementsOfFallsBackToLimits(t *testing.T) {
	req := requirementsOf(&types.ResourceRequirements{CPULimit: 4, MemoryLimit: 2 << 30})
	assert.Equal(t, 4.0, req.CPU)
	assert.Equal(t, int64(2<<30), req.Memory)

	req = requirementsOf(&types.ResourceRequirements{CPUReservation: 1, CPULimit: 4})
	assert.Equal(t, 1.0, req.CPU)

	assert.Equal(t, types.ResourceTriple{}, requirementsOf(nil))
}
