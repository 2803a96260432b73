package worker

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"time"

	specs "github.com/opencontainers/runtime-spec/specs-go"

	"github.com/cuemby/warren/api/proto"
	"github.com/cuemby/warren/pkg/network"
	"github.com/cuemby/warren/pkg/capsule"
	"github.com/cuemby/warren/pkg/security"
	"github.com/cuemby/warren/pkg/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// Worker represents a Warren worker node
type Worker struct {
	nodeID      string
	managerAddr string
	dataDir     string

	client         proto.WarrenAPIClient
	conn           *grpc.ClientConn
	runtime        *capsule.Runtime
	secretsHandler *SecretsHandler
	volumesHandler *VolumesHandler
	healthMonitor  *HealthMonitor
	dnsHandler     *DNSHandler
	portPublisher  *network.HostPortPublisher

	capsules   map[string]*types.Capsule
	capsulesMu sync.RWMutex

	stopCh chan struct{}
}

// Config holds worker configuration
type Config struct {
	NodeID           string
	ManagerAddr      string
	DataDir          string
	Resources        *types.NodeResources
	EncryptionKey    []byte // Cluster-wide encryption key for secrets
	ContainerdSocket string // Containerd socket path (empty = auto-detect)
	JoinToken        string // Join token for initial authentication
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) (*Worker, error) {
	// Initialize containerd runtime
	rt, err := capsule.New(cfg.ContainerdSocket)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize containerd runtime: %w", err)
	}

	w := &Worker{
		nodeID:      cfg.NodeID,
		managerAddr: cfg.ManagerAddr,
		dataDir:     cfg.DataDir,
		runtime:     rt,
		capsules:    make(map[string]*types.Capsule),
		stopCh:      make(chan struct{}),
	}

	// Initialize secrets handler if encryption key provided
	if len(cfg.EncryptionKey) > 0 {
		sh, err := NewSecretsHandler(w, cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize secrets handler: %w", err)
		}
		w.secretsHandler = sh

		// Ensure secrets base directory exists
		if err := EnsureSecretsBaseDir(); err != nil {
			return nil, fmt.Errorf("failed to ensure secrets directory: %w", err)
		}
	}

	// Initialize volumes handler
	vh, err := NewVolumesHandler(w)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize volumes handler: %w", err)
	}
	w.volumesHandler = vh

	// Initialize DNS handler
	managerIP := ExtractManagerIP(cfg.ManagerAddr)
	dh, err := NewDNSHandler(w, managerIP)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize DNS handler: %w", err)
	}
	w.dnsHandler = dh

	// Initialize health monitor
	w.healthMonitor = NewHealthMonitor(w)

	// Initialize port publisher for host mode port publishing
	w.portPublisher = network.NewHostPortPublisher()

	return w, nil
}

// NewEmbeddedWorker creates a worker optimized for in-process embedding with a manager (hybrid mode)
// This is identical to NewWorker but documents the intended use case for embedded workers
func NewEmbeddedWorker(cfg *Config) (*Worker, error) {
	// Embedded workers work exactly like regular workers, but they:
	// 1. Connect to localhost manager (same process)
	// 2. Share the same node ID as the manager
	// 3. Don't need separate certificate request (same process, trusted)
	return NewWorker(cfg)
}

// Start starts the worker and connects to manager
func (w *Worker) Start(resources *types.NodeResources, joinToken string) error {
	// Ensure worker has a certificate
	certDir, err := security.GetCertDir("worker", w.nodeID)
	if err != nil {
		return fmt.Errorf("failed to get cert directory: %w", err)
	}

	// Request certificate if not exists
	if !security.CertExists(certDir) {
		fmt.Println("Worker certificate not found, requesting from manager...")
		if err := w.requestCertificate(joinToken); err != nil {
			return fmt.Errorf("failed to request certificate: %w", err)
		}
		fmt.Printf("✓ Certificate obtained and saved to %s\n", certDir)
	} else {
		fmt.Printf("✓ Using existing certificate from %s\n", certDir)
	}

	// Connect to manager with mTLS
	conn, err := w.connectWithMTLS(certDir)
	if err != nil {
		return fmt.Errorf("failed to connect to manager: %w", err)
	}
	w.conn = conn
	w.client = proto.NewWarrenAPIClient(conn)

	// Register with manager
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := w.client.RegisterNode(ctx, &proto.RegisterNodeRequest{
		Id:      w.nodeID,
		Role:    "worker",
		Address: "localhost", // TODO: Get actual address
		Resources: &proto.NodeResources{
			CpuCores:      resources.CPUCores,
			MemoryBytes:   resources.MemoryBytes,
			StorageGb:     resources.StorageGB,
			BandwidthMbps: resources.BandwidthMB,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to register with manager: %w", err)
	}

	fmt.Printf("Worker registered with manager\n")
	fmt.Printf("  Node ID: %s\n", resp.Node.Id)
	fmt.Printf("  Overlay IP: %s\n", resp.OverlayIp)

	// Start heartbeat loop
	go w.heartbeatLoop()

	// Start capsule executor loop
	go w.capsuleExecutorLoop()

	// Start health monitor
	w.healthMonitor.Start()

	return nil
}

// Stop stops the worker
func (w *Worker) Stop() error {
	close(w.stopCh)

	// Stop health monitor
	if w.healthMonitor != nil {
		w.healthMonitor.Stop()
	}

	if w.conn != nil {
		w.conn.Close()
	}

	if w.runtime != nil {
		w.runtime.Close()
	}

	return nil
}

// heartbeatLoop sends periodic heartbeats to manager
func (w *Worker) heartbeatLoop() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.sendHeartbeat(); err != nil {
				fmt.Printf("Heartbeat error: %v\n", err)
			}
		case <-w.stopCh:
			return
		}
	}
}

// sendHeartbeat sends a heartbeat with capsule status to manager
func (w *Worker) sendHeartbeat() error {
	w.capsulesMu.RLock()
	capsuleStatuses := make([]*proto.CapsuleStatus, 0, len(w.capsules))
	for _, capsule := range w.capsules {
		capsuleStatuses = append(capsuleStatuses, &proto.CapsuleStatus{
			CapsuleId:   capsule.ID,
			ActualState: string(capsule.ActualState),
			RuntimeId:   capsule.RuntimeID,
			Error:       capsule.Error,
		})
	}
	w.capsulesMu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := w.client.Heartbeat(ctx, &proto.HeartbeatRequest{
		NodeId:          w.nodeID,
		CapsuleStatuses: capsuleStatuses,
	})

	return err
}

// capsuleExecutorLoop polls for capsule assignments and executes them
func (w *Worker) capsuleExecutorLoop() {
	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.syncCapsules(); err != nil {
				fmt.Printf("Capsule sync error: %v\n", err)
			}
		case <-w.stopCh:
			return
		}
	}
}

// syncCapsules fetches assigned capsules from manager and executes them
func (w *Worker) syncCapsules() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Get all capsules assigned to this node
	resp, err := w.client.ListCapsules(ctx, &proto.ListCapsulesRequest{
		NodeId: w.nodeID,
	})
	if err != nil {
		return fmt.Errorf("failed to list capsules: %w", err)
	}

	for _, protoCapsule := range resp.Capsules {
		capsuleID := protoCapsule.Id

		w.capsulesMu.Lock()
		existing, exists := w.capsules[capsuleID]
		w.capsulesMu.Unlock()

		// New capsule - start it
		if !exists && protoCapsule.DesiredState == "running" {
			var mounts []*types.VolumeMount
			for _, pv := range protoCapsule.Volumes {
				mounts = append(mounts, &types.VolumeMount{
					Source:   pv.Source,
					Target:   pv.Target,
					ReadOnly: pv.ReadOnly,
				})
			}

			capsule := &types.Capsule{
				ID:           protoCapsule.Id,
				ServiceID:    protoCapsule.ServiceId,
				ServiceName:  protoCapsule.ServiceName,
				NodeID:       protoCapsule.NodeId,
				DesiredState: types.CapsuleState(protoCapsule.DesiredState),
				ActualState:  types.CapsuleStatePending,
				Image:        protoCapsule.Image,
				Secrets:      protoCapsule.Secrets,
				Mounts:       mounts,
			}

			w.capsulesMu.Lock()
			w.capsules[capsuleID] = capsule
			w.capsulesMu.Unlock()

			go w.executeCapsule(capsule)
		}

		// Existing capsule - handle shutdown
		if exists && protoCapsule.DesiredState == "shutdown" {
			go w.stopCapsule(existing)
		}
	}

	return nil
}

// executeCapsule executes a single capsule using containerd
func (w *Worker) executeCapsule(capsule *types.Capsule) {
	ctx := context.Background()
	fmt.Printf("Starting capsule %s (service: %s, image: %s)\n", capsule.ID, capsule.ServiceName, capsule.Image)

	// Pull the image first
	fmt.Printf("Pulling image %s...\n", capsule.Image)
	if err := w.runtime.PullImage(ctx, capsule.Image); err != nil {
		w.capsulesMu.Lock()
		capsule.ActualState = types.CapsuleStateFailed
		capsule.Error = fmt.Sprintf("failed to pull image: %v", err)
		w.capsulesMu.Unlock()
		fmt.Printf("Capsule %s failed to pull image: %v\n", capsule.ID, err)
		return
	}
	fmt.Printf("Image %s pulled successfully\n", capsule.Image)

	// Mount secrets if capsule has them
	var secretsPath string
	if len(capsule.Secrets) > 0 && w.secretsHandler != nil {
		fmt.Printf("Mounting %d secret(s) for capsule %s...\n", len(capsule.Secrets), capsule.ID)
		var err error
		secretsPath, err = w.secretsHandler.MountSecretsForCapsule(capsule)
		if err != nil {
			w.capsulesMu.Lock()
			capsule.ActualState = types.CapsuleStateFailed
			capsule.Error = fmt.Sprintf("failed to mount secrets: %v", err)
			w.capsulesMu.Unlock()
			fmt.Printf("Capsule %s failed to mount secrets: %v\n", capsule.ID, err)
			return
		}
		fmt.Printf("Secrets mounted at %s\n", secretsPath)

		// Ensure cleanup on exit
		defer func() {
			if err := w.secretsHandler.CleanupSecretsForCapsule(capsule.ID); err != nil {
				fmt.Printf("Warning: failed to cleanup secrets for capsule %s: %v\n", capsule.ID, err)
			}
		}()
	}

	// Prepare volumes if capsule has them
	var volumeMounts []specs.Mount
	if len(capsule.Mounts) > 0 && w.volumesHandler != nil {
		fmt.Printf("Preparing %d volume(s) for capsule %s...\n", len(capsule.Mounts), capsule.ID)
		var err error
		volumeMounts, err = w.volumesHandler.PrepareVolumesForCapsule(capsule)
		if err != nil {
			w.capsulesMu.Lock()
			capsule.ActualState = types.CapsuleStateFailed
			capsule.Error = fmt.Sprintf("failed to prepare volumes: %v", err)
			w.capsulesMu.Unlock()
			fmt.Printf("Capsule %s failed to prepare volumes: %v\n", capsule.ID, err)
			return
		}
		fmt.Printf("Volumes prepared: %d mount(s)\n", len(volumeMounts))

		// Ensure cleanup on exit
		defer func() {
			if err := w.volumesHandler.CleanupVolumesForCapsule(capsule); err != nil {
				fmt.Printf("Warning: failed to cleanup volumes for capsule %s: %v\n", capsule.ID, err)
			}
		}()
	}

	// Get DNS configuration (resolv.conf path)
	var resolvConfPath string
	var err error
	if w.dnsHandler != nil {
		resolvConfPath, err = w.dnsHandler.GetResolvConfPath()
		if err != nil {
			fmt.Printf("Warning: failed to get DNS config for capsule %s: %v (continuing without DNS)\n", capsule.ID, err)
			resolvConfPath = "" // Continue without DNS if it fails
		} else {
			fmt.Printf("Using DNS config from %s\n", resolvConfPath)
		}
	}

	// Create the capsule with secrets, volumes, and DNS config
	var runtimeID string
	if secretsPath != "" || len(volumeMounts) > 0 || resolvConfPath != "" {
		runtimeID, err = w.runtime.CreateCapsuleWithMounts(ctx, capsule, secretsPath, volumeMounts, resolvConfPath)
	} else {
		runtimeID, err = w.runtime.CreateCapsule(ctx, capsule)
	}

	if err != nil {
		w.capsulesMu.Lock()
		capsule.ActualState = types.CapsuleStateFailed
		capsule.Error = fmt.Sprintf("failed to create capsule: %v", err)
		w.capsulesMu.Unlock()
		fmt.Printf("Capsule %s failed to create runtime instance: %v\n", capsule.ID, err)
		return
	}
	fmt.Printf("Capsule runtime instance %s created\n", runtimeID)

	// Start the capsule
	if err := w.runtime.StartCapsule(ctx, runtimeID); err != nil {
		w.capsulesMu.Lock()
		capsule.ActualState = types.CapsuleStateFailed
		capsule.Error = fmt.Sprintf("failed to start capsule: %v", err)
		w.capsulesMu.Unlock()
		fmt.Printf("Capsule %s failed to start: %v\n", capsule.ID, err)
		return
	}

	// Update capsule state to running
	w.capsulesMu.Lock()
	capsule.ActualState = types.CapsuleStateRunning
	capsule.RuntimeID = runtimeID
	capsule.StartedAt = time.Now()
	w.capsulesMu.Unlock()
	fmt.Printf("Capsule %s is running (runtime id: %s)\n", capsule.ID, runtimeID)

	// Publish ports if capsule has any
	if len(capsule.Ports) > 0 && w.portPublisher != nil {
		// Get capsule IP from runtime
		capsuleIP, err := w.runtime.GetCapsuleIP(ctx, runtimeID)
		if err != nil {
			fmt.Printf("Warning: failed to get capsule IP for port publishing: %v\n", err)
		} else {
			// Convert []*PortMapping to []PortMapping for publisher
			var ports []types.PortMapping
			for _, p := range capsule.Ports {
				if p != nil {
					ports = append(ports, *p)
				}
			}

			fmt.Printf("Publishing %d port(s) for capsule %s (capsule IP: %s)\n",
				len(ports), capsule.ID, capsuleIP)

			if err := w.portPublisher.PublishPorts(capsule.ID, capsuleIP, ports); err != nil {
				fmt.Printf("Warning: failed to publish ports for capsule %s: %v\n", capsule.ID, err)
				// Don't fail the capsule if port publishing fails - log and continue
			} else {
				fmt.Printf("✓ Ports published for capsule %s\n", capsule.ID)
			}
		}
	}

	// Monitor runtime status
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Check if capsule should be stopped
			w.capsulesMu.RLock()
			currentCapsule := w.capsules[capsule.ID]
			w.capsulesMu.RUnlock()

			if currentCapsule == nil || currentCapsule.DesiredState == types.CapsuleStateShutdown {
				return
			}

			// Check runtime status
			status, err := w.runtime.GetCapsuleStatus(ctx, runtimeID)
			if err != nil {
				fmt.Printf("Failed to get capsule status: %v\n", err)
				continue
			}

			// Update capsule state if the runtime instance failed
			if status == types.CapsuleStateFailed || status == types.CapsuleStateComplete {
				w.capsulesMu.Lock()
				capsule.ActualState = status
				if status == types.CapsuleStateFailed {
					capsule.Error = "capsule runtime exited unexpectedly"
				}
				w.capsulesMu.Unlock()
				fmt.Printf("Capsule %s runtime instance stopped (status: %s)\n", capsule.ID, status)
				return
			}

		case <-w.stopCh:
			return
		}
	}
}

// stopCapsule stops a running capsule
func (w *Worker) stopCapsule(capsule *types.Capsule) {
	ctx := context.Background()
	fmt.Printf("Stopping capsule %s (runtime: %s)\n", capsule.ID, capsule.RuntimeID)

	// Determine stop timeout (default: 10 seconds)
	stopTimeout := 10 * time.Second
	if capsule.StopTimeout > 0 {
		stopTimeout = time.Duration(capsule.StopTimeout) * time.Second
	}

	// Stop the runtime instance
	if capsule.RuntimeID != "" {
		fmt.Printf("Sending SIGTERM to runtime %s (timeout: %v)\n", capsule.RuntimeID, stopTimeout)
		if err := w.runtime.StopCapsule(ctx, capsule.RuntimeID, stopTimeout); err != nil {
			fmt.Printf("Failed to stop runtime %s: %v\n", capsule.RuntimeID, err)
		}

		// Delete the runtime instance
		if err := w.runtime.DeleteCapsule(ctx, capsule.RuntimeID); err != nil {
			fmt.Printf("Failed to delete runtime %s: %v\n", capsule.RuntimeID, err)
		}
	}

	// Cleanup secrets if capsule had any
	if len(capsule.Secrets) > 0 && w.secretsHandler != nil {
		if err := w.secretsHandler.CleanupSecretsForCapsule(capsule.ID); err != nil {
			fmt.Printf("Warning: failed to cleanup secrets for capsule %s: %v\n", capsule.ID, err)
		} else {
			fmt.Printf("Secrets cleaned up for capsule %s\n", capsule.ID)
		}
	}

	// Cleanup published ports if capsule had any
	if len(capsule.Ports) > 0 && w.portPublisher != nil {
		if err := w.portPublisher.UnpublishPorts(capsule.ID); err != nil {
			fmt.Printf("Warning: failed to unpublish ports for capsule %s: %v\n", capsule.ID, err)
		} else {
			fmt.Printf("Ports unpublished for capsule %s\n", capsule.ID)
		}
	}

	w.capsulesMu.Lock()
	capsule.ActualState = types.CapsuleStateComplete
	capsule.FinishedAt = time.Now()
	w.capsulesMu.Unlock()

	// Remove from local capsule map after reporting
	time.Sleep(2 * time.Second)
	w.capsulesMu.Lock()
	delete(w.capsules, capsule.ID)
	w.capsulesMu.Unlock()

	fmt.Printf("Capsule %s stopped\n", capsule.ID)
}

// requestCertificate requests a certificate from the manager using a join token
func (w *Worker) requestCertificate(token string) error {
	// Connect with TLS but without client certificate (token provides authentication)
	// Skip server verification temporarily since we don't have the CA cert yet
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true, // Skip server cert verification for initial connection
		MinVersion:         tls.VersionTLS13,
	}
	creds := credentials.NewTLS(tlsConfig)

	conn, err := grpc.NewClient(w.managerAddr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return fmt.Errorf("failed to connect to manager: %w", err)
	}
	defer conn.Close()

	client := proto.NewWarrenAPIClient(conn)

	// Request certificate
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.RequestCertificate(ctx, &proto.RequestCertificateRequest{
		NodeId: w.nodeID,
		Token:  token,
	})
	if err != nil {
		return fmt.Errorf("failed to request certificate: %w", err)
	}

	// Get certificate directory
	certDir, err := security.GetCertDir("worker", w.nodeID)
	if err != nil {
		return fmt.Errorf("failed to get cert directory: %w", err)
	}

	// Create directory
	if err := os.MkdirAll(certDir, 0700); err != nil {
		return fmt.Errorf("failed to create cert directory: %w", err)
	}

	// Save certificate files
	certPath := certDir + "/node.crt"
	keyPath := certDir + "/node.key"
	caPath := certDir + "/ca.crt"

	if err := os.WriteFile(certPath, resp.Certificate, 0600); err != nil {
		return fmt.Errorf("failed to write certificate: %w", err)
	}

	if err := os.WriteFile(keyPath, resp.PrivateKey, 0600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}

	if err := os.WriteFile(caPath, resp.CaCert, 0644); err != nil {
		return fmt.Errorf("failed to write CA certificate: %w", err)
	}

	return nil
}

// connectWithMTLS establishes a gRPC connection with mTLS
func (w *Worker) connectWithMTLS(certDir string) (*grpc.ClientConn, error) {
	// Load worker certificate
	cert, err := security.LoadCertFromFile(certDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker certificate: %w", err)
	}

	// Load CA certificate for server verification
	caCert, err := security.LoadCACertFromFile(certDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load CA certificate: %w", err)
	}

	// Create cert pool for server verification
	certPool := x509.NewCertPool()
	certPool.AddCert(caCert)

	// Configure TLS
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{*cert},
		RootCAs:      certPool,
		MinVersion:   tls.VersionTLS13,
	}

	// Create gRPC connection with TLS
	creds := credentials.NewTLS(tlsConfig)
	conn, err := grpc.NewClient(w.managerAddr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to dial manager: %w", err)
	}

	return conn, nil
}
