package scheduler

import (
	"time"

	"github.com/cuemby/warren/pkg/types"
)

// Policy picks one node from an already-filtered candidate list. The
// candidates are healthy, fit the requested resources, and satisfy
// anti-affinity; a Policy only decides which of them wins.
type Policy interface {
	Name() string
	Select(candidates []*types.Node, req types.ResourceTriple, constraints Constraints) *types.Node
}

// Constraints narrows and biases placement.
type Constraints struct {
	// AntiAffinity lists capsule IDs that must not share a node with the
	// new capsule.
	AntiAffinity []string

	// PreferredNodes biases affinity-aware placement, in order.
	PreferredNodes []string

	// Labels must all be present on the chosen node.
	Labels map[string]string
}

// PolicyByName resolves a placement policy by its wire name, defaulting
// to least-loaded.
func PolicyByName(name string) Policy {
	switch name {
	case "round-robin":
		return RoundRobin{}
	case "resource-balanced":
		return ResourceBalanced{}
	case "affinity-aware":
		return AffinityAware{}
	default:
		return LeastLoaded{}
	}
}

// RoundRobin rotates through the candidates on a timestamp index.
type RoundRobin struct{}

func (RoundRobin) Name() string { return "round-robin" }

func (RoundRobin) Select(candidates []*types.Node, _ types.ResourceTriple, _ Constraints) *types.Node {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[int(time.Now().Unix())%len(candidates)]
}

// LeastLoaded minimizes per-core CPU utilization.
type LeastLoaded struct{}

func (LeastLoaded) Name() string { return "least-loaded" }

func (LeastLoaded) Select(candidates []*types.Node, _ types.ResourceTriple, _ Constraints) *types.Node {
	var best *types.Node
	bestLoad := 0.0
	for _, node := range candidates {
		load := cpuUtilization(node)
		if best == nil || load < bestLoad {
			best = node
			bestLoad = load
		}
	}
	return best
}

// ResourceBalanced minimizes the post-placement variance across the CPU,
// memory, and storage utilizations, favoring nodes that stay even across
// all three axes instead of maxing one out.
type ResourceBalanced struct{}

func (ResourceBalanced) Name() string { return "resource-balanced" }

func (ResourceBalanced) Select(candidates []*types.Node, req types.ResourceTriple, _ Constraints) *types.Node {
	var best *types.Node
	bestVariance := 0.0
	for _, node := range candidates {
		v := utilizationVariance(node, req)
		if best == nil || v < bestVariance {
			best = node
			bestVariance = v
		}
	}
	return best
}

// AffinityAware prefers the first candidate appearing in PreferredNodes;
// with no preferred candidate available it degrades to least-loaded.
type AffinityAware struct{}

func (AffinityAware) Name() string { return "affinity-aware" }

func (AffinityAware) Select(candidates []*types.Node, req types.ResourceTriple, constraints Constraints) *types.Node {
	byID := make(map[string]*types.Node, len(candidates))
	for _, node := range candidates {
		byID[node.ID] = node
	}
	for _, preferred := range constraints.PreferredNodes {
		if node, ok := byID[preferred]; ok {
			return node
		}
	}
	return LeastLoaded{}.Select(candidates, req, constraints)
}

func cpuUtilization(node *types.Node) float64 {
	if node.Capacity.CPUCores <= 0 {
		return 1.0
	}
	return node.Usage.CPUCores / node.Capacity.CPUCores
}

// utilizationVariance is the variance of the three resource utilizations
// after hypothetically placing req on node.
func utilizationVariance(node *types.Node, req types.ResourceTriple) float64 {
	utils := []float64{
		ratio(node.Usage.CPUCores+req.CPU, node.Capacity.CPUCores),
		ratio(float64(node.Usage.MemoryBytes+req.Memory), float64(node.Capacity.MemoryBytes)),
		ratio(float64(node.Usage.StorageGB+req.Storage), float64(node.Capacity.StorageGB)),
	}
	mean := (utils[0] + utils[1] + utils[2]) / 3
	var v float64
	for _, u := range utils {
		v += (u - mean) * (u - mean)
	}
	return v / 3
}

func ratio(used, capacity float64) float64 {
	if capacity <= 0 {
		return 1.0
	}
	return used / capacity
}
