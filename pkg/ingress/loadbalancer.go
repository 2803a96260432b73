package ingress

import (
	"context"
	"fmt"
	"sync"

	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/types"
	"google.golang.org/grpc"
)

// LoadBalancer handles backend selection and load balancing
type LoadBalancer struct {
	managerAddr string
	grpcClient  *grpc.ClientConn

	// Round-robin state
	mu      sync.Mutex
	indexes map[string]int // service name -> current index
}

// NewLoadBalancer creates a new load balancer
func NewLoadBalancer(managerAddr string, grpcClient *grpc.ClientConn) *LoadBalancer {
	return &LoadBalancer{
		managerAddr: managerAddr,
		grpcClient:  grpcClient,
		indexes:     make(map[string]int),
	}
}

// Backend represents a backend endpoint
type Backend struct {
	ServiceName string
	IP          string
	Port        int
	Healthy     bool
}

// SelectBackend selects a backend for the given service
// Returns the backend IP:port or error
func (lb *LoadBalancer) SelectBackend(ctx context.Context, serviceName string, port int) (string, error) {
	capsules, err := lb.getServiceCapsules(ctx, serviceName)
	if err != nil {
		return "", fmt.Errorf("failed to get service capsules: %w", err)
	}

	if len(capsules) == 0 {
		log.Debug(fmt.Sprintf("No capsules found for service %s, using localhost fallback", serviceName))
		return fmt.Sprintf("127.0.0.1:%d", port), nil
	}

	healthyCapsules := make([]*types.Capsule, 0)
	for _, capsule := range capsules {
		if capsule.ActualState != types.CapsuleStateRunning {
			continue
		}
		if capsule.HealthCheck != nil {
			if capsule.HealthStatus != nil && capsule.HealthStatus.Healthy {
				healthyCapsules = append(healthyCapsules, capsule)
			} else if capsule.HealthStatus == nil {
				healthyCapsules = append(healthyCapsules, capsule)
			}
		} else {
			healthyCapsules = append(healthyCapsules, capsule)
		}
	}

	if len(healthyCapsules) == 0 {
		return "", fmt.Errorf("no healthy capsules found for service: %s", serviceName)
	}

	lb.mu.Lock()
	index := lb.indexes[serviceName] % len(healthyCapsules)
	lb.indexes[serviceName] = (index + 1) % len(healthyCapsules)
	lb.mu.Unlock()

	selected := healthyCapsules[index]

	// Host-network mode: the node's own address doubles as the capsule address.
	// TODO: support overlay Fabric addressing once per-capsule IPs land.
	node, err := lb.getNode(ctx, selected.NodeID)
	if err != nil {
		log.Warn(fmt.Sprintf("Failed to get node %s: %v, using localhost", selected.NodeID, err))
		return fmt.Sprintf("127.0.0.1:%d", port), nil
	}

	return fmt.Sprintf("%s:%d", node.Address, port), nil
}

// getServiceCapsules queries the manager API for a service's capsules.
func (lb *LoadBalancer) getServiceCapsules(ctx context.Context, serviceName string) ([]*types.Capsule, error) {
	log.Debug(fmt.Sprintf("LoadBalancer: Getting capsules for service %s", serviceName))

	// TODO: wire to the manager's gRPC query surface; until then the proxy
	// falls back to localhost:port for local testing.

	return []*types.Capsule{}, nil
}

// getNode queries the manager API for node information
func (lb *LoadBalancer) getNode(ctx context.Context, nodeID string) (*types.Node, error) {
	log.Debug(fmt.Sprintf("LoadBalancer: Getting node %s", nodeID))

	return nil, fmt.Errorf("no cluster query path available, using localhost fallback")
}
