package capsule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/containerd/containerd"
	"github.com/containerd/containerd/cio"
	"github.com/containerd/containerd/content"
	"github.com/containerd/containerd/images"
	"github.com/containerd/containerd/namespaces"
	"github.com/containerd/containerd/oci"
	"github.com/containerd/containerd/platforms"
	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/types"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	specs "github.com/opencontainers/runtime-spec/specs-go"
	"github.com/rs/zerolog"
)

const (
	// DefaultNamespace is the containerd namespace Warren capsules run in.
	DefaultNamespace = "warren"

	// DefaultSocketPath is the default containerd socket.
	DefaultSocketPath = "/run/containerd/containerd.sock"

	// MaxHostnameLen bounds a capsule hostname.
	MaxHostnameLen = 64
)

var (
	ErrInvalidConfiguration = errors.New("capsule: invalid configuration")
	ErrPermissionDenied     = errors.New("capsule: permission denied")
)

// Runtime drives a Capsule's containerd-backed kernel objects: image, OCI
// spec, snapshot, and task.
type Runtime struct {
	client    *containerd.Client
	namespace string
	devices   DeviceAllocator
	logger    zerolog.Logger
}

// New creates a Runtime connected to containerd at socketPath (or
// DefaultSocketPath if empty).
func New(socketPath string) (*Runtime, error) {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	client, err := containerd.New(socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to containerd: %w", err)
	}

	return &Runtime{
		client:    client,
		namespace: DefaultNamespace,
		devices:   NewInMemoryDeviceAllocator(),
		logger:    log.WithComponent("capsule"),
	}, nil
}

// Close closes the containerd client connection.
func (r *Runtime) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// PullImage pulls a capsule's base image from a registry.
func (r *Runtime) PullImage(ctx context.Context, imageRef string) error {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.ImagePullDuration)

	if _, err := r.client.Pull(ctx, imageRef, containerd.WithPullUnpack); err != nil {
		return fmt.Errorf("failed to pull image %s: %w", imageRef, err)
	}
	return nil
}

// ResolveImageManifest returns the OCI manifest of an already-pulled
// image, resolving a manifest list to the current platform's entry.
func (r *Runtime) ResolveImageManifest(ctx context.Context, imageRef string) (ocispec.Manifest, error) {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	image, err := r.client.GetImage(ctx, imageRef)
	if err != nil {
		return ocispec.Manifest{}, fmt.Errorf("failed to get image %s: %w", imageRef, err)
	}

	manifest, err := images.Manifest(ctx, r.client.ContentStore(), image.Target(), platforms.Default())
	if err != nil {
		return ocispec.Manifest{}, fmt.Errorf("failed to read manifest for %s: %w", imageRef, err)
	}
	return manifest, nil
}

// ReadContent reads the full bytes of a content-addressed blob already
// present in containerd's content store (a manifest's config or a
// layer), for copying into the platform's own CAS.
func (r *Runtime) ReadContent(ctx context.Context, desc ocispec.Descriptor) ([]byte, error) {
	ctx = namespaces.WithNamespace(ctx, r.namespace)
	return content.ReadBlob(ctx, r.client.ContentStore(), desc)
}

// CreateCapsule materializes a Capsule's OCI spec and snapshot without
// starting it.
func (r *Runtime) CreateCapsule(ctx context.Context, cap *types.Capsule) (string, error) {
	return r.CreateCapsuleWithMounts(ctx, cap, "", nil, "")
}

// CreateCapsuleWithMounts is CreateCapsule plus secret/volume/DNS mounts.
func (r *Runtime) CreateCapsuleWithMounts(ctx context.Context, cap *types.Capsule, secretsPath string, volumeMounts []specs.Mount, resolvConfPath string) (string, error) {
	if err := validateConfig(cap); err != nil {
		return "", err
	}

	ctx = namespaces.WithNamespace(ctx, r.namespace)

	image, err := r.client.GetImage(ctx, cap.Image)
	if err != nil {
		return "", fmt.Errorf("failed to get image %s: %w", cap.Image, err)
	}

	opts := []oci.SpecOpts{
		oci.WithImageConfig(image),
		oci.WithEnv(cap.Env),
	}

	if cap.Resources != nil {
		if cap.Resources.CPULimit > 0 {
			// CPU shares: relative weight (1024 = 1 core).
			// CPU quota: period=100000us, quota=CPULimit*100000.
			shares := uint64(cap.Resources.CPULimit * 1024)
			quota := int64(cap.Resources.CPULimit * 100000)
			period := uint64(100000)
			opts = append(opts, oci.WithCPUShares(shares))
			opts = append(opts, oci.WithCPUCFS(quota, period))
		}
		if cap.Resources.MemoryLimit > 0 {
			opts = append(opts, oci.WithMemoryLimit(uint64(cap.Resources.MemoryLimit)))
		}
	}

	var mounts []specs.Mount
	if secretsPath != "" {
		mounts = append(mounts, specs.Mount{
			Source:      secretsPath,
			Destination: "/run/secrets",
			Type:        "bind",
			Options:     []string{"ro", "bind"},
		})
	}
	mounts = append(mounts, volumeMounts...)
	if resolvConfPath != "" {
		mounts = append(mounts, specs.Mount{
			Source:      resolvConfPath,
			Destination: "/etc/resolv.conf",
			Type:        "bind",
			Options:     []string{"ro", "bind"},
		})
	}
	if len(mounts) > 0 {
		opts = append(opts, oci.WithMounts(mounts))
	}

	timer := metrics.NewTimer()
	ctrdContainer, err := r.client.NewContainer(
		ctx,
		cap.ID,
		containerd.WithImage(image),
		containerd.WithNewSnapshot(cap.ID+"-snapshot", image),
		containerd.WithNewSpec(opts...),
	)
	timer.ObserveDuration(metrics.CapsuleCreateDuration)
	if err != nil {
		return "", fmt.Errorf("failed to create capsule: %w", err)
	}

	return ctrdContainer.ID(), nil
}

// validateConfig rejects configurations the kernel would accept but that
// violate the platform's invariants: a zero memory cap (which would OOM
// the capsule at its first allocation) and over-long hostnames.
func validateConfig(cap *types.Capsule) error {
	if cap.Resources != nil && cap.Resources.MemoryLimit < 0 {
		return fmt.Errorf("%w: negative memory limit", ErrInvalidConfiguration)
	}
	if cap.Resources != nil && cap.Resources.MemoryLimit == 0 && cap.Resources.MemoryReservation > 0 {
		return fmt.Errorf("%w: memory reservation without a limit", ErrInvalidConfiguration)
	}
	if len(cap.Hostname) > MaxHostnameLen {
		return fmt.Errorf("%w: hostname exceeds %d bytes", ErrInvalidConfiguration, MaxHostnameLen)
	}
	return nil
}

// Rootless reports whether the runtime is operating without root
// privileges. Operations that need privileges fail explicitly with
// ErrPermissionDenied instead of degrading silently, so callers can back
// off or surface the condition.
func Rootless() bool {
	return os.Geteuid() != 0
}

// RequirePrivileged returns ErrPermissionDenied when running rootless;
// privileged code paths (host port publishing, cgroup writes outside a
// delegated subtree) call it before touching the kernel.
func RequirePrivileged(op string) error {
	if Rootless() {
		return fmt.Errorf("%w: %s requires root", ErrPermissionDenied, op)
	}
	return nil
}

// StartCapsule starts a previously created capsule's runtime task.
func (r *Runtime) StartCapsule(ctx context.Context, runtimeID string) error {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.CapsuleStartDuration)

	c, err := r.client.LoadContainer(ctx, runtimeID)
	if err != nil {
		return fmt.Errorf("failed to load capsule %s: %w", runtimeID, err)
	}

	task, err := c.NewTask(ctx, cio.NullIO)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	if err := task.Start(ctx); err != nil {
		return fmt.Errorf("failed to start task: %w", err)
	}

	metrics.CapsulesTotal.WithLabelValues("running").Inc()
	return nil
}

// StopCapsule sends SIGTERM, waits up to timeout, then SIGKILLs and deletes
// the task.
func (r *Runtime) StopCapsule(ctx context.Context, runtimeID string, timeout time.Duration) error {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.CapsuleStopDuration)

	c, err := r.client.LoadContainer(ctx, runtimeID)
	if err != nil {
		return fmt.Errorf("failed to load capsule %s: %w", runtimeID, err)
	}

	task, err := c.Task(ctx, nil)
	if err != nil {
		return nil // no task: capsule is not running
	}

	stopCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := task.Kill(stopCtx, syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal task: %w", err)
	}

	statusC, err := task.Wait(stopCtx)
	if err != nil {
		return fmt.Errorf("failed to wait for task: %w", err)
	}

	select {
	case <-statusC:
	case <-stopCtx.Done():
		if err := task.Kill(ctx, syscall.SIGKILL); err != nil {
			return fmt.Errorf("failed to force kill task: %w", err)
		}
	}

	if _, err := task.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ExecCapsule runs an additional process inside a running capsule's
// namespaces and waits for it, returning its exit code.
func (r *Runtime) ExecCapsule(ctx context.Context, runtimeID string, argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, fmt.Errorf("%w: empty exec argv", ErrInvalidConfiguration)
	}
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	c, err := r.client.LoadContainer(ctx, runtimeID)
	if err != nil {
		return 0, fmt.Errorf("failed to load capsule %s: %w", runtimeID, err)
	}
	task, err := c.Task(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get task for %s: %w", runtimeID, err)
	}

	spec, err := c.Spec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read capsule spec: %w", err)
	}
	pspec := spec.Process
	pspec.Args = argv

	execID := fmt.Sprintf("exec-%d", time.Now().UnixNano())
	process, err := task.Exec(ctx, execID, pspec, cio.NullIO)
	if err != nil {
		return 0, fmt.Errorf("failed to exec in capsule %s: %w", runtimeID, err)
	}
	defer func() { _, _ = process.Delete(ctx) }()

	statusC, err := process.Wait(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to wait for exec process: %w", err)
	}
	if err := process.Start(ctx); err != nil {
		return 0, fmt.Errorf("failed to start exec process: %w", err)
	}

	status := <-statusC
	code, _, err := status.Result()
	if err != nil {
		return 0, fmt.Errorf("exec process wait: %w", err)
	}
	return int(code), nil
}

// RestartCapsule stops a capsule's task and starts a fresh one with the
// same configuration, honoring grace before SIGKILL.
func (r *Runtime) RestartCapsule(ctx context.Context, runtimeID string, grace time.Duration) error {
	if err := r.StopCapsule(ctx, runtimeID, grace); err != nil {
		return err
	}
	return r.StartCapsule(ctx, runtimeID)
}

// PauseCapsule freezes a capsule's task via the cgroup freezer.
func (r *Runtime) PauseCapsule(ctx context.Context, runtimeID string) error {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	c, err := r.client.LoadContainer(ctx, runtimeID)
	if err != nil {
		return fmt.Errorf("failed to load capsule %s: %w", runtimeID, err)
	}
	task, err := c.Task(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to get task for %s: %w", runtimeID, err)
	}
	if err := task.Pause(ctx); err != nil {
		return fmt.Errorf("failed to pause task: %w", err)
	}
	return nil
}

// ResumeCapsule unfreezes a paused capsule's task.
func (r *Runtime) ResumeCapsule(ctx context.Context, runtimeID string) error {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	c, err := r.client.LoadContainer(ctx, runtimeID)
	if err != nil {
		return fmt.Errorf("failed to load capsule %s: %w", runtimeID, err)
	}
	task, err := c.Task(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to get task for %s: %w", runtimeID, err)
	}
	if err := task.Resume(ctx); err != nil {
		return fmt.Errorf("failed to resume task: %w", err)
	}
	return nil
}

// GetCapsulePID returns the host PID of a running capsule's init process.
func (r *Runtime) GetCapsulePID(ctx context.Context, runtimeID string) (int, error) {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	c, err := r.client.LoadContainer(ctx, runtimeID)
	if err != nil {
		return 0, fmt.Errorf("failed to load capsule %s: %w", runtimeID, err)
	}
	task, err := c.Task(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get task for %s: %w", runtimeID, err)
	}
	return int(task.Pid()), nil
}

// DeleteCapsule stops (if running) and removes a capsule and its snapshot.
func (r *Runtime) DeleteCapsule(ctx context.Context, runtimeID string) error {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	c, err := r.client.LoadContainer(ctx, runtimeID)
	if err != nil {
		return nil // already gone
	}

	if err := r.StopCapsule(ctx, runtimeID, 10*time.Second); err != nil {
		r.logger.Warn().Err(err).Str("runtime_id", runtimeID).Msg("failed to stop capsule before delete")
	}

	if err := c.Delete(ctx, containerd.WithSnapshotCleanup); err != nil {
		return fmt.Errorf("failed to delete capsule: %w", err)
	}
	return nil
}

// GetCapsuleStatus maps the underlying containerd task status to a
// CapsuleState.
func (r *Runtime) GetCapsuleStatus(ctx context.Context, runtimeID string) (types.CapsuleState, error) {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	c, err := r.client.LoadContainer(ctx, runtimeID)
	if err != nil {
		return types.CapsuleStateFailed, fmt.Errorf("failed to load capsule %s: %w", runtimeID, err)
	}

	task, err := c.Task(ctx, nil)
	if err != nil {
		return types.CapsuleStatePending, nil
	}

	status, err := task.Status(ctx)
	if err != nil {
		return types.CapsuleStateFailed, fmt.Errorf("failed to get task status: %w", err)
	}

	switch status.Status {
	case containerd.Running:
		return types.CapsuleStateRunning, nil
	case containerd.Stopped:
		if status.ExitStatus == 0 {
			return types.CapsuleStateComplete, nil
		}
		return types.CapsuleStateFailed, nil
	case containerd.Paused:
		return types.CapsuleStatePaused, nil
	default:
		return types.CapsuleStatePending, nil
	}
}

// GetCapsuleLogs streams a capsule's log output. Deferred: requires a
// cio.LogFile wired at task creation rather than after the fact.
func (r *Runtime) GetCapsuleLogs(ctx context.Context, runtimeID string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("capsule logs require cio.LogFile at task creation, not yet wired")
}

// IsRunning reports whether runtimeID's task is currently Running.
func (r *Runtime) IsRunning(ctx context.Context, runtimeID string) bool {
	status, err := r.GetCapsuleStatus(ctx, runtimeID)
	return err == nil && status == types.CapsuleStateRunning
}

// ListCapsules returns every runtime ID in the Warren containerd namespace.
func (r *Runtime) ListCapsules(ctx context.Context) ([]string, error) {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	containers, err := r.client.Containers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list capsules: %w", err)
	}

	ids := make([]string, 0, len(containers))
	for _, c := range containers {
		ids = append(ids, c.ID())
	}
	return ids, nil
}

// GetCapsuleIP inspects a running capsule's eth0 via nsenter. Host-network
// mode capsules have no namespace of their own and will fail this call; the
// caller should fall back to the node's address in that case.
func (r *Runtime) GetCapsuleIP(ctx context.Context, runtimeID string) (string, error) {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	c, err := r.client.LoadContainer(ctx, runtimeID)
	if err != nil {
		return "", fmt.Errorf("failed to load capsule %s: %w", runtimeID, err)
	}

	task, err := c.Task(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get task: %w", err)
	}

	status, err := task.Status(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get task status: %w", err)
	}
	if status.Status != containerd.Running {
		return "", fmt.Errorf("capsule is not running")
	}

	pid := task.Pid()
	if pid == 0 {
		return "", fmt.Errorf("capsule task has no PID")
	}

	cmd := exec.CommandContext(ctx, "nsenter", "-t", fmt.Sprintf("%d", pid), "-n", "ip", "-4", "addr", "show", "eth0")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to get capsule IP: %w (output: %s)", err, string(output))
	}

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "inet ") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		ip, _, err := net.ParseCIDR(parts[1])
		if err != nil {
			return "", fmt.Errorf("failed to parse IP address %s: %w", parts[1], err)
		}
		return ip.String(), nil
	}
	return "", fmt.Errorf("no IP address found for capsule")
}

// Device is a claimed device handle returned by DeviceAllocator.Allocate.
type Device struct {
	Kind      string
	Path      string
	Exclusive bool
}

// DeviceAllocator claims host devices (GPUs, FPGAs, PCI passthrough) for a
// capsule, enforcing exclusive-vs-shared access.
type DeviceAllocator interface {
	Allocate(kind string, exclusive bool) (Device, error)
	Release(kind string, path string)
}

// InMemoryDeviceAllocator hands out devices from a registered pool,
// enforcing exclusivity via a claimed-path set and shared access via a
// refcount. It does not talk to any real GPU runtime.
type InMemoryDeviceAllocator struct {
	mu       sync.Mutex
	pool     map[string][]string // kind -> device paths, registration order
	claimed  map[string]bool     // path -> exclusively claimed
	refcount map[string]int
}

// NewInMemoryDeviceAllocator creates an allocator with one default device
// per requested kind; RegisterDevice adds more.
func NewInMemoryDeviceAllocator() *InMemoryDeviceAllocator {
	return &InMemoryDeviceAllocator{
		pool:     make(map[string][]string),
		claimed:  make(map[string]bool),
		refcount: make(map[string]int),
	}
}

// RegisterDevice adds a device path to kind's pool.
func (a *InMemoryDeviceAllocator) RegisterDevice(kind, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pool[kind] = append(a.pool[kind], path)
}

// Allocate claims a device of kind. Exclusive requests take the first
// device with no claims at all; shared requests join an already-shared
// device or take a free one. No eligible device is an error.
func (a *InMemoryDeviceAllocator) Allocate(kind string, exclusive bool) (Device, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.pool[kind]) == 0 {
		// A single default device per kind keeps the allocator usable
		// without explicit registration.
		a.pool[kind] = []string{fmt.Sprintf("/dev/%s0", kind)}
	}

	if !exclusive {
		// Prefer joining an existing shared device.
		for _, path := range a.pool[kind] {
			if a.refcount[path] > 0 && !a.claimed[path] {
				a.refcount[path]++
				return Device{Kind: kind, Path: path, Exclusive: false}, nil
			}
		}
	}
	for _, path := range a.pool[kind] {
		if a.claimed[path] || a.refcount[path] > 0 {
			continue
		}
		if exclusive {
			a.claimed[path] = true
		} else {
			a.refcount[path]++
		}
		return Device{Kind: kind, Path: path, Exclusive: exclusive}, nil
	}
	return Device{}, fmt.Errorf("no %s device available", kind)
}

// Release frees a previously allocated device.
func (a *InMemoryDeviceAllocator) Release(kind string, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.claimed[path] {
		delete(a.claimed, path)
		return
	}
	if a.refcount[path] > 0 {
		a.refcount[path]--
	}
}
