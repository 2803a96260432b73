/*
Package worker implements the Warren worker node that executes containerized capsules.

The worker package is the data plane of Warren, responsible for running capsules,
reporting health status, and maintaining connectivity with the manager cluster.
Workers are stateless agents that receive capsule assignments from managers and
execute them using containerd.

# Architecture

A Warren worker is a single-purpose agent that bridges managers and capsules:

	┌─────────────────────── WORKER NODE ────────────────────────┐
	│                                                              │
	│  ┌──────────────────────────────────────────────┐          │
	│  │              Worker Agent                     │          │
	│  │  - gRPC client to manager                     │          │
	│  │  - Heartbeat loop (5s)                        │          │
	│  │  - Capsule sync loop (3s)                        │          │
	│  │  - Status reporting                           │          │
	│  └──────┬──────────────────────────┬─────────────┘          │
	│         │                          │                         │
	│  ┌──────▼───────┐          ┌──────▼───────────┐            │
	│  │  Handlers    │          │  Local Cache     │            │
	│  │  - Secrets   │          │  - Capsule map      │            │
	│  │  - Volumes   │          │  - Capsule IDs │            │
	│  │  - DNS       │          │  - Status        │            │
	│  │  - Health    │          └──────────────────┘            │
	│  │  - Ports     │                                           │
	│  └──────┬───────┘                                           │
	│         │                                                    │
	│  ┌──────▼──────────────────────────────────────┐           │
	│  │          Containerd Runtime                  │           │
	│  │  - Pull images                               │           │
	│  │  - Create capsules                         │           │
	│  │  - Start/stop capsules                     │           │
	│  │  - Monitor capsule status                  │           │
	│  │  - Apply resource limits                     │           │
	│  └──────────────────────────────────────────────┘           │
	└──────────────────────────────────────────────────────────┘

# Core Components

Worker:
  - Main worker agent
  - Maintains gRPC connection to manager
  - Executes heartbeat and sync loops
  - Coordinates all handlers

SecretsHandler:
  - Fetches encrypted secrets from manager
  - Decrypts using cluster encryption key
  - Mounts secrets as tmpfs in capsules
  - Cleans up on capsule removal

VolumesHandler:
  - Manages volume lifecycle
  - Mounts volumes into capsules
  - Ensures volume affinity (local volumes)
  - Tracks volume usage

HealthMonitor:
  - Executes health checks (HTTP/TCP/Exec)
  - Reports health status to manager
  - Triggers capsule replacement on failure
  - Integrates with reconciler

DNSHandler:
  - Configures capsule DNS
  - Points capsules to manager DNS server
  - Enables service discovery

HostPortPublisher:
  - Publishes capsule ports on host
  - Manages iptables rules (Linux)
  - Handles port conflicts
  - Cleans up on capsule removal

# Worker Lifecycle

Registration:

 1. Worker starts with join token
 2. Connects to manager via gRPC
 3. Registers with node resources (CPU, memory)
 4. Receives unique node ID
 5. Begins heartbeat loop

Heartbeat Loop (5 seconds):

 1. Send heartbeat to manager
 2. Report node resources and status
 3. Receive acknowledgment
 4. Update last heartbeat timestamp

Capsule Sync Loop (3 seconds):

 1. Fetch assigned capsules from manager
 2. Compare with local capsule cache
 3. Start new capsules
 4. Stop removed capsules
 5. Report capsule status updates

Capsule Execution:

 1. Receive capsule assignment
 2. Prepare: Mount secrets and volumes
 3. Pull capsule image (if not cached)
 4. Create capsule with runtime
 5. Configure DNS, network, resources
 6. Start capsule
 7. Monitor health checks
 8. Report running status

Capsule Removal:

 1. Receive stop command
 2. Stop capsule (SIGTERM, grace period)
 3. Force kill if timeout exceeded
 4. Unmount secrets and volumes
 5. Remove iptables rules
 6. Clean up capsule
 7. Report complete status

# Usage

Creating a Worker:

	cfg := &worker.Config{
		NodeID:           "worker-1",
		ManagerAddr:      "192.168.1.10:8080",
		DataDir:          "/var/lib/warren/worker-1",
		JoinToken:        "worker-join-token-xyz789",
		EncryptionKey:    clusterKey,
		ContainerdSocket: "", // Auto-detect
		Capacity: types.NodeResources{
			CPUCores:    4,
			MemoryBytes: 8 * 1024 * 1024 * 1024, // 8GB
			StorageGB:   100, // 100GB
		},
	}

	w, err := worker.NewWorker(cfg)
	if err != nil {
		log.Fatal(err)
	}

Starting the Worker:

	// Connects to manager and begins loops
	err := w.Start()
	if err != nil {
		log.Fatal(err)
	}

Stopping the Worker:

	// Graceful shutdown with capsule cleanup
	err := w.Stop()
	if err != nil {
		log.Fatal(err)
	}

# Capsule Execution

The worker executes capsules through multiple phases:

Preparing Phase:

  - Fetch and decrypt secrets from manager
  - Mount secrets as tmpfs at /run/secrets/<name>
  - Ensure volumes exist (create if local driver)
  - Prepare volume mount points

Starting Phase:

  - Pull capsule image if not present
  - Create capsule with:
  - Environment variables
  - Secret mounts (tmpfs)
  - Volume mounts (bind or named)
  - DNS configuration (manager IP)
  - Resource limits (CPU, memory)
  - Health check configuration
  - Configure host port publishing (iptables)
  - Start capsule process

Running Phase:

  - Monitor capsule status
  - Execute health checks periodically
  - Report status updates to manager
  - Handle capsule restarts (restart policy)

Stopping Phase:

  - Send SIGTERM to capsule
  - Wait for grace period (default 10s)
  - Send SIGKILL if timeout exceeded
  - Unmount secrets (tmpfs)
  - Remove iptables rules
  - Clean up capsule

# Secrets Handling

Workers handle secrets securely:

Fetch and Decrypt:

  - Fetch encrypted secret data from manager
  - Decrypt using cluster encryption key
  - Store decrypted data in memory only

Mount as tmpfs:

  - Create tmpfs mount at /run/secrets/<name>
  - Write secret data to tmpfs
  - Set permissions (0400, capsule user)
  - tmpfs is memory-only (never touches disk)

Capsule Access:

  - Capsule mounts /run/secrets/<name>
  - Application reads secret as regular file
  - Secret data never written to disk
  - tmpfs cleared on unmount

Cleanup:

  - Unmount tmpfs when capsule stops
  - Memory automatically cleared
  - No disk cleanup required

# Volume Handling

Workers manage volume lifecycle:

Local Volumes:

  - Created at /var/lib/warren/volumes/<volume-name>
  - Mounted as bind mount into capsule
  - Persists across capsule restarts
  - Affinity ensures same node (local storage)

Volume Mounts:

  - Source: Volume name (e.g., "db-data")
  - Target: Capsule path (e.g., "/var/lib/postgresql")
  - ReadOnly: Optional read-only mount
  - UID/GID mapping handled by runtime

Volume Cleanup:

  - Volumes persist after capsule stops
  - Manual deletion via "warren volume delete"
  - Prevents accidental data loss

# Health Monitoring

Workers execute health checks and report results:

HTTP Health Checks:

  - Send HTTP GET to specified endpoint
  - Expected status code: 200-399
  - Timeout and retry configuration
  - Reports healthy/unhealthy to manager

TCP Health Checks:

  - Attempt TCP connection to port
  - Connection success = healthy
  - Connection failure = unhealthy
  - Useful for databases, caches

Exec Health Checks:

  - Run command inside capsule
  - Exit code 0 = healthy
  - Non-zero exit = unhealthy
  - Useful for custom health logic

Health Failure:

  - After N failed checks, mark unhealthy
  - Report to manager
  - Reconciler replaces unhealthy capsule
  - Old capsule stops, new capsule starts

# Port Publishing

Workers publish capsule ports to host:

Host Mode (PublishModeHost):

  - Maps capsule port to host port
  - Creates iptables rules:
  - PREROUTING: DNAT to capsule IP
  - POSTROUTING: MASQUERADE for responses
  - Port available only on hosting node
  - Used for health checks, ingress backends

Ingress Mode (PublishModeIngress):

  - Future: Routing mesh (not yet implemented)
  - Will route to any capsule replica
  - Load balancing across capsules

Port Conflicts:

  - Worker detects port conflicts
  - Reports error to manager
  - Scheduler avoids conflicting placements

# Failure Scenarios

Manager Disconnection:

  - Worker continues running capsules
  - Heartbeat loop retries connection
  - Exponential backoff (up to 30s)
  - Capsules keep running (autonomy)

Capsule Failure:

  - Worker detects exit via containerd
  - Restarts based on RestartPolicy
  - Reports failure to manager
  - Reconciler may reschedule

Containerd Failure:

  - Worker cannot execute new capsules
  - Reports error to manager
  - Existing capsules may continue (containerd recovery)
  - Worker marked unhealthy

Worker Crash:

  - Capsules keep running (containerd daemon)
  - Worker restart re-syncs state
  - Orphaned capsules detected and cleaned

# Performance Characteristics

Resource Usage:

  - Base worker: 20MB memory
  - Per capsule: ~5MB memory
  - Typical worker (10 capsules): ~70MB total

Loop Frequencies:

  - Heartbeat: Every 5 seconds
  - Capsule sync: Every 3 seconds
  - Health checks: Per service config (30s typical)

Capsule Operations:

  - Capsule start time: 2-5s (image cached)
  - Capsule start time: 10-60s (image pull)
  - Capsule stop time: <10s (grace period)
  - Capsule cleanup: <1s

# Integration Points

This package integrates with:

  - pkg/capsule: Executes capsules via containerd
  - pkg/security: Decrypts secrets and handles certificates
  - pkg/volume: Manages volume mounts
  - pkg/health: Executes health check probes
  - pkg/network: Publishes ports via iptables
  - pkg/dns: Configures capsule DNS
  - api/proto: Communicates with manager via gRPC

# Design Patterns

Agent Pattern:

  - Stateless agent design
  - All state stored in manager
  - Worker restarts are transparent
  - Capsule cache for performance only

Handler Pattern:

  - Separate handlers for concerns
  - Secrets, volumes, DNS, health, ports
  - Each handler has specific lifecycle
  - Coordinated by main Worker

Reconciliation Pattern:

  - Desired state from manager
  - Current state from containerd
  - Reconcile: Start new, stop removed
  - Eventually consistent

# Security

Join Token Authentication:

  - Worker authenticates with join token
  - Token validated by manager
  - Token single-use (optional)
  - Connection uses gRPC (TLS ready)

Secrets Encryption:

  - Secrets encrypted at rest in manager
  - Decrypted in worker memory only
  - Mounted as tmpfs (no disk write)
  - Cleared on unmount

Capsule Isolation:

  - Capsules run as non-root (when specified)
  - Linux namespaces (PID, network, mount)
  - Cgroups for resource limits
  - Seccomp profiles (future)

# Troubleshooting

Common Issues:

Worker Won't Connect:

  - Check manager address reachable
  - Verify join token is valid
  - Check firewall allows port 8080
  - Review worker logs

Capsules Not Starting:

  - Check containerd is running
  - Verify image can be pulled
  - Check disk space for volumes
  - Review capsule logs in containerd

Health Checks Failing:

  - Verify capsule is running
  - Test endpoint manually (HTTP)
  - Check network connectivity
  - Adjust timeout/retries

Ports Not Accessible:

  - Verify iptables rules created
  - Check capsule listening on port
  - Test from host machine first
  - Review firewall rules

# Monitoring

Key metrics to monitor:

Worker Health:

  - worker_heartbeat_failures: Connection issues
  - worker_tasks_running: Active capsule count
  - worker_task_start_duration: Performance
  - worker_task_failures: Capsule reliability

Resource Usage:

  - node_cpu_used: CPU utilization
  - node_memory_used: Memory utilization
  - node_disk_used: Disk utilization

Capsule Health:

  - container_restarts: Restart frequency
  - health_check_failures: Health check issues
  - container_oom_kills: Memory limit hits

# See Also

  - pkg/capsule for containerd integration
  - pkg/security for secrets handling
  - pkg/health for health check execution
  - docs/concepts/services.md for service concepts
  - docs/troubleshooting.md for common issues
*/
package worker
