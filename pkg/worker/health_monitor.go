package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/cuemby/warren/api/proto"
	"github.com/cuemby/warren/pkg/health"
	"github.com/cuemby/warren/pkg/types"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// HealthMonitor manages health checks for capsules
type HealthMonitor struct {
	worker    *Worker
	monitors  map[string]*capsuleHealthMonitor
	cancelFns map[string]context.CancelFunc
	stopCh    chan struct{}
}

// capsuleHealthMonitor tracks health check state for a single capsule
type capsuleHealthMonitor struct {
	capsule *types.Capsule
	checker health.Checker
	status  *health.Status
	config  health.Config
}

// NewHealthMonitor creates a new health monitor
func NewHealthMonitor(w *Worker) *HealthMonitor {
	return &HealthMonitor{
		worker:    w,
		monitors:  make(map[string]*capsuleHealthMonitor),
		cancelFns: make(map[string]context.CancelFunc),
		stopCh:    make(chan struct{}),
	}
}

// Start starts the health monitor
func (hm *HealthMonitor) Start() {
	go hm.monitorLoop()
}

// Stop stops the health monitor
func (hm *HealthMonitor) Stop() {
	close(hm.stopCh)
	// Cancel all running health checks
	for _, cancel := range hm.cancelFns {
		cancel()
	}
}

// monitorLoop monitors capsules and starts/stops health checks as needed
func (hm *HealthMonitor) monitorLoop() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			hm.syncHealthChecks()
		case <-hm.stopCh:
			return
		}
	}
}

// syncHealthChecks syncs health checks with current capsules
func (hm *HealthMonitor) syncHealthChecks() {
	hm.worker.capsulesMu.RLock()
	currentCapsules := make(map[string]*types.Capsule)
	for id, capsule := range hm.worker.capsules {
		currentCapsules[id] = capsule
	}
	hm.worker.capsulesMu.RUnlock()

	// Stop health checks for capsules that no longer exist
	for capsuleID, cancel := range hm.cancelFns {
		if _, exists := currentCapsules[capsuleID]; !exists {
			cancel()
			delete(hm.cancelFns, capsuleID)
			delete(hm.monitors, capsuleID)
		}
	}

	// Start health checks for new capsules that have health checks configured
	for capsuleID, capsule := range currentCapsules {
		if _, exists := hm.monitors[capsuleID]; exists {
			continue // Already monitoring
		}

		if capsule.HealthCheck == nil {
			continue // No health check configured
		}

		if capsule.ActualState != types.CapsuleStateRunning {
			continue // Only monitor running capsules
		}

		// Start monitoring this capsule
		if err := hm.startHealthCheck(capsule); err != nil {
			fmt.Printf("Failed to start health check for capsule %s: %v\n", capsuleID, err)
		}
	}
}

// startHealthCheck starts a health check goroutine for a capsule
func (hm *HealthMonitor) startHealthCheck(capsule *types.Capsule) error {
	// Create health checker based on type
	checker, err := hm.createChecker(capsule)
	if err != nil {
		return fmt.Errorf("failed to create health checker: %w", err)
	}

	// Create health config
	config := health.Config{
		Interval:    capsule.HealthCheck.Interval,
		Timeout:     capsule.HealthCheck.Timeout,
		Retries:     capsule.HealthCheck.Retries,
		StartPeriod: 0, // TODO: Get from capsule.HealthCheck if we add StartPeriod field
	}

	// Create monitor
	monitor := &capsuleHealthMonitor{
		capsule: capsule,
		checker:   checker,
		status: &health.Status{
			StartedAt: time.Now(),
			Healthy:   true, // Assume healthy initially
		},
		config: config,
	}

	hm.monitors[capsule.ID] = monitor

	// Start health check loop
	ctx, cancel := context.WithCancel(context.Background())
	hm.cancelFns[capsule.ID] = cancel

	go hm.healthCheckLoop(ctx, monitor)

	return nil
}

// healthCheckLoop runs health checks for a capsule
func (hm *HealthMonitor) healthCheckLoop(ctx context.Context, monitor *capsuleHealthMonitor) {
	ticker := time.NewTicker(monitor.config.Interval)
	defer ticker.Stop()

	// Run initial check immediately
	hm.runHealthCheck(ctx, monitor)

	for {
		select {
		case <-ticker.C:
			hm.runHealthCheck(ctx, monitor)
		case <-ctx.Done():
			return
		case <-hm.stopCh:
			return
		}
	}
}

// runHealthCheck performs a single health check and reports the result
func (hm *HealthMonitor) runHealthCheck(ctx context.Context, monitor *capsuleHealthMonitor) {
	// Create context with timeout
	checkCtx, cancel := context.WithTimeout(ctx, monitor.config.Timeout)
	defer cancel()

	// Perform health check
	result := monitor.checker.Check(checkCtx)

	// Update status
	monitor.status.Update(result, monitor.config)

	// Report to manager
	if err := hm.reportHealth(monitor); err != nil {
		fmt.Printf("Failed to report health for capsule %s: %v\n", monitor.capsule.ID, err)
	}
}

// reportHealth reports health status to the manager
func (hm *HealthMonitor) reportHealth(monitor *capsuleHealthMonitor) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := hm.worker.client.ReportCapsuleHealth(ctx, &proto.ReportCapsuleHealthRequest{
		CapsuleId:            monitor.capsule.ID,
		Healthy:              monitor.status.Healthy,
		Message:              monitor.status.LastResult.Message,
		CheckedAt:            timestamppb.New(monitor.status.LastCheck),
		ConsecutiveFailures:  int32(monitor.status.ConsecutiveFailures),
		ConsecutiveSuccesses: int32(monitor.status.ConsecutiveSuccesses),
	})

	return err
}

// createChecker creates the appropriate health checker for a capsule
func (hm *HealthMonitor) createChecker(capsule *types.Capsule) (health.Checker, error) {
	switch capsule.HealthCheck.Type {
	case types.HealthCheckHTTP:
		// Parse endpoint to get URL
		// For now, construct URL from the capsule IP and endpoint
		url := fmt.Sprintf("http://localhost%s", capsule.HealthCheck.Endpoint)
		return health.NewHTTPChecker(url), nil

	case types.HealthCheckTCP:
		// Parse endpoint to get address
		address := fmt.Sprintf("localhost%s", capsule.HealthCheck.Endpoint)
		return health.NewTCPChecker(address), nil

	case types.HealthCheckExec:
		// Create exec checker with command and runtime ID
		return health.NewExecChecker(capsule.HealthCheck.Command).WithContainer(capsule.RuntimeID), nil

	default:
		return nil, fmt.Errorf("unsupported health check type: %s", capsule.HealthCheck.Type)
	}
}
