package surge

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cuemby/warren/pkg/buildcache"
	"github.com/cuemby/warren/pkg/dns"
	"github.com/cuemby/warren/pkg/fabric"
	"github.com/cuemby/warren/pkg/image"
	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/manager"
	"github.com/cuemby/warren/pkg/quota"
	"github.com/cuemby/warren/pkg/scheduler"
	"github.com/cuemby/warren/pkg/snapshotpolicy"
	"github.com/cuemby/warren/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Exit codes reported by the surge CLI surface.
const (
	ExitOK               = 0
	ExitInvalidSpec      = 2
	ExitDependencyCycle  = 3
	ExitImageNotFound    = 4
	ExitQuotaExceeded    = 5
	ExitSchedulingFailed = 6
	ExitNodeUnreachable  = 7
)

// ExitCode maps an orchestration error onto the CLI exit code contract.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrDependencyCycle):
		return ExitDependencyCycle
	case errors.Is(err, ErrInvalidSpec), errors.Is(err, ErrSpecNotFound):
		return ExitInvalidSpec
	case errors.Is(err, image.ErrImageNotFound):
		return ExitImageNotFound
	case errors.Is(err, quota.ErrQuotaExceeded):
		return ExitQuotaExceeded
	case errors.Is(err, scheduler.ErrInsufficientResources), errors.Is(err, scheduler.ErrSchedulingFailed):
		return ExitSchedulingFailed
	case errors.Is(err, fabric.ErrSendFailed), errors.Is(err, fabric.ErrServiceDiscoveryFailed):
		return ExitNodeUnreachable
	default:
		return 1
	}
}

// Orchestrator applies project specs against the cluster. The image
// store, builder, fabric, resolver, and snapshot-policy engine are
// optional collaborators: a nil image store skips pulling (services keep
// their reference and the workers pull lazily), a nil fabric skips
// service announcement, and so on.
type Orchestrator struct {
	manager   *manager.Manager
	scheduler *scheduler.Scheduler
	images    *image.Store
	builder   *buildcache.Builder
	fabric    *fabric.Fabric
	resolver  *dns.Server
	policy    *snapshotpolicy.Engine
	logger    zerolog.Logger

	buildSpecs map[string]types.BuildSpec
}

// NewOrchestrator creates an Orchestrator driving mgr and sched.
func NewOrchestrator(mgr *manager.Manager, sched *scheduler.Scheduler) *Orchestrator {
	return &Orchestrator{
		manager:    mgr,
		scheduler:  sched,
		logger:     log.WithComponent("surge"),
		buildSpecs: make(map[string]types.BuildSpec),
	}
}

// WithImages wires an image store used to resolve service images.
func (o *Orchestrator) WithImages(images *image.Store) *Orchestrator {
	o.images = images
	return o
}

// WithBuilder wires the reproducible builder behind `build:` services.
func (o *Orchestrator) WithBuilder(b *buildcache.Builder) *Orchestrator {
	o.builder = b
	return o
}

// WithFabric wires the fabric used for service announcement.
func (o *Orchestrator) WithFabric(f *fabric.Fabric) *Orchestrator {
	o.fabric = f
	return o
}

// WithResolver wires the name-resolution server.
func (o *Orchestrator) WithResolver(r *dns.Server) *Orchestrator {
	o.resolver = r
	return o
}

// WithSnapshotPolicy wires the snapshot policy engine, arming its
// before-surge-up trigger.
func (o *Orchestrator) WithSnapshotPolicy(p *snapshotpolicy.Engine) *Orchestrator {
	o.policy = p
	return o
}

// RegisterBuildSpec makes a named build spec available to `build:`
// services.
func (o *Orchestrator) RegisterBuildSpec(name string, spec types.BuildSpec) {
	o.buildSpecs[name] = spec
}

// Up applies spec: snapshot-policy hook, fabric and resolver bring-up,
// networks, volumes, then each service in dependency order.
func (o *Orchestrator) Up(ctx context.Context, spec *types.ProjectSpec) error {
	if spec == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}

	if o.policy != nil {
		if err := o.policy.OnOperation(ctx, snapshotpolicy.OpBeforeSurgeUp); err != nil {
			o.logger.Warn().Err(err).Msg("Pre-up snapshot trigger failed")
		}
	}

	if spec.Fabric != nil && spec.Fabric.Enabled && o.fabric != nil {
		if err := o.fabric.Listen(ctx); err != nil {
			return fmt.Errorf("%w: fabric listen: %v", ErrServiceStartFailed, err)
		}
	}
	if spec.Resolver != nil && spec.Resolver.Enabled && o.resolver != nil {
		go func() {
			if err := o.resolver.Start(ctx); err != nil {
				o.logger.Error().Err(err).Msg("Resolver server stopped")
			}
		}()
	}

	order, err := sortServices(spec.Services)
	if err != nil {
		return err
	}

	if err := o.createNetworks(spec); err != nil {
		return err
	}
	if err := o.createVolumes(spec); err != nil {
		return err
	}

	for _, name := range order {
		if err := o.upService(ctx, spec, name, spec.Services[name]); err != nil {
			return fmt.Errorf("service %s: %w", name, err)
		}
	}

	o.logger.Info().
		Str("project", spec.Project).
		Int("services", len(order)).
		Msg("Project up")
	return nil
}

// Down stops spec's services gracefully (SIGTERM, then grace) in reverse
// dependency order and removes their service records.
func (o *Orchestrator) Down(ctx context.Context, spec *types.ProjectSpec) error {
	return o.teardown(ctx, spec, false)
}

// Kill stops spec's services immediately (SIGKILL) in reverse dependency
// order and removes their service records.
func (o *Orchestrator) Kill(ctx context.Context, spec *types.ProjectSpec) error {
	return o.teardown(ctx, spec, true)
}

func (o *Orchestrator) teardown(ctx context.Context, spec *types.ProjectSpec, force bool) error {
	if spec == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	order, err := sortServices(spec.Services)
	if err != nil {
		return err
	}

	var firstErr error
	for _, name := range reverse(order) {
		qualified := qualifiedName(spec.Project, name)
		service, err := o.manager.GetServiceByName(qualified)
		if err != nil {
			continue // already gone
		}

		capsules, err := o.manager.ListCapsulesByService(service.ID)
		if err != nil {
			firstErr = keepFirst(firstErr, fmt.Errorf("%w: %v", ErrServiceStopFailed, err))
			continue
		}
		for _, cap := range capsules {
			cap.DesiredState = types.CapsuleStateShutdown
			if force {
				cap.StopTimeout = 0
			}
			if err := o.manager.UpdateCapsule(cap); err != nil {
				firstErr = keepFirst(firstErr, fmt.Errorf("%w: %v", ErrServiceStopFailed, err))
				continue
			}
			o.scheduler.Release(cap.ID)
		}

		if o.fabric != nil {
			o.fabric.DeregisterService(qualified)
		}
		if err := o.manager.DeleteService(service.ID); err != nil {
			firstErr = keepFirst(firstErr, fmt.Errorf("%w: %v", ErrServiceStopFailed, err))
		}
		o.logger.Info().Str("service", qualified).Bool("force", force).Msg("Service stopped")
	}
	return firstErr
}

// upService resolves one service's image, registers its record, places
// its first replica, and announces it.
func (o *Orchestrator) upService(ctx context.Context, spec *types.ProjectSpec, name string, svc *types.ServiceSpec) error {
	qualified := qualifiedName(spec.Project, name)

	imageRef := svc.Image
	switch {
	case svc.Build != nil:
		built, err := o.buildService(ctx, svc)
		if err != nil {
			return err
		}
		imageRef = built
	case svc.Capsule != "":
		if o.images != nil {
			manifest, err := o.images.Synthesize(svc.Capsule)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrServiceStartFailed, err)
			}
			imageRef = "cas:" + string(manifest.Digest)
		} else {
			imageRef = "capsule:" + svc.Capsule
		}
	default:
		if o.images != nil {
			if _, err := o.images.Resolve(ctx, svc.Image); err != nil {
				return err
			}
		}
	}

	service := &types.Service{
		ID:          uuid.New().String(),
		Name:        qualified,
		Image:       imageRef,
		Capsule:     svc.Capsule,
		Replicas:    svc.Replicas,
		Mode:        svc.Mode,
		Env:         flattenEnv(svc.Env),
		Ports:       parsePorts(svc.Ports),
		Networks:    svc.Networks,
		Volumes:     parseVolumes(svc.Volumes),
		DependsOn:   svc.DependsOn,
		StopTimeout: 10,
		CreatedAt:   time.Now(),
	}

	if err := o.manager.CreateService(service); err != nil {
		return fmt.Errorf("%w: %v", ErrServiceStartFailed, err)
	}

	// Place the first replica synchronously so quota and scheduling
	// failures surface to the caller; the reconcile loop converges the
	// rest and repairs later drift.
	cap := &types.Capsule{
		ID:           uuid.New().String(),
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		DesiredState: types.CapsuleStateRunning,
		ActualState:  types.CapsuleStatePending,
		Image:        service.Image,
		Env:          service.Env,
		Ports:        service.Ports,
		Mounts:       service.Volumes,
		WorkingDir:   workingDirFor(svc),
		User:         userFor(svc),
		StopTimeout:  service.StopTimeout,
		CreatedAt:    time.Now(),
	}
	if _, err := o.scheduler.Schedule(ctx, cap, types.ResourceTriple{}, scheduler.Constraints{}, nil); err != nil {
		return err
	}
	if err := o.manager.CreateCapsule(cap); err != nil {
		o.scheduler.Release(cap.ID)
		return fmt.Errorf("%w: %v", ErrServiceStartFailed, err)
	}

	// The resolver serves records straight from the cluster store, so the
	// service becomes resolvable as soon as its record lands; the fabric
	// additionally announces it to peers.
	if o.fabric != nil {
		o.fabric.RegisterService(qualified, types.ServiceEndpoint{
			Name:     qualified,
			Port:     firstHostPort(service.Ports),
			Protocol: "tcp",
		})
	}

	o.logger.Info().
		Str("service", qualified).
		Str("image", imageRef).
		Int("replicas", service.Replicas).
		Msg("Service up")
	return nil
}

// buildService runs the registered build spec behind a `build:` service
// and returns the CAS-addressed reference of its output manifest.
func (o *Orchestrator) buildService(ctx context.Context, svc *types.ServiceSpec) (string, error) {
	if o.builder == nil {
		return "", fmt.Errorf("%w: build requested but no builder configured", ErrInvalidSpec)
	}
	buildSpec, ok := o.buildSpecs[svc.Build.Name]
	if !ok {
		return "", fmt.Errorf("%w: unknown build spec %q", ErrInvalidSpec, svc.Build.Name)
	}
	if o.policy != nil {
		if err := o.policy.OnOperation(ctx, snapshotpolicy.OpBeforeBuild); err != nil {
			o.logger.Warn().Err(err).Msg("Pre-build snapshot trigger failed")
		}
	}
	result, err := o.builder.Build(ctx, buildSpec)
	if err != nil {
		return "", err
	}
	return "cas:" + string(result.ManifestDigest), nil
}

func (o *Orchestrator) createNetworks(spec *types.ProjectSpec) error {
	existing, err := o.manager.ListNetworks()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceStartFailed, err)
	}
	byName := make(map[string]bool, len(existing))
	for _, n := range existing {
		byName[n.Name] = true
	}

	for name, net := range spec.Networks {
		qualified := qualifiedName(spec.Project, name)
		if byName[qualified] {
			continue
		}
		netType := net.Type
		if netType == "" {
			netType = "bridge"
		}
		if err := o.manager.CreateNetwork(&types.Network{
			ID:         uuid.New().String(),
			Name:       qualified,
			Type:       netType,
			Subnet:     net.Subnet,
			Gateway:    net.Gateway,
			DNSServers: net.DNSServers,
			Driver:     netType,
		}); err != nil {
			return fmt.Errorf("%w: network %s: %v", ErrServiceStartFailed, name, err)
		}
	}
	return nil
}

func (o *Orchestrator) createVolumes(spec *types.ProjectSpec) error {
	for name, vol := range spec.Volumes {
		qualified := qualifiedName(spec.Project, name)
		if _, err := o.manager.GetVolumeByName(qualified); err == nil {
			continue
		}
		driver := vol.Driver
		if driver == "" {
			driver = "local"
		}
		if err := o.manager.CreateVolume(&types.Volume{
			ID:        uuid.New().String(),
			Name:      qualified,
			Driver:    driver,
			SizeGB:    vol.SizeGB,
			CreatedAt: time.Now(),
		}); err != nil {
			return fmt.Errorf("%w: volume %s: %v", ErrServiceStartFailed, name, err)
		}
	}
	return nil
}

func qualifiedName(project, service string) string {
	return project + "_" + service
}

func flattenEnv(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	return out
}

// parsePorts parses "host:container" strings; malformed entries are
// dropped (validation already happened at spec load).
func parsePorts(ports []string) []*types.PortMapping {
	var out []*types.PortMapping
	for _, p := range ports {
		parts := strings.SplitN(p, ":", 2)
		if len(parts) != 2 {
			continue
		}
		host, err1 := strconv.Atoi(parts[0])
		container, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, &types.PortMapping{
			HostPort:      host,
			ContainerPort: container,
			Protocol:      "tcp",
			PublishMode:   types.PublishModeHost,
		})
	}
	return out
}

// parseVolumes parses "src:dst" strings.
func parseVolumes(volumes []string) []*types.VolumeMount {
	var out []*types.VolumeMount
	for _, v := range volumes {
		parts := strings.SplitN(v, ":", 2)
		if len(parts) != 2 {
			continue
		}
		out = append(out, &types.VolumeMount{Source: parts[0], Target: parts[1]})
	}
	return out
}

func firstHostPort(ports []*types.PortMapping) int {
	if len(ports) == 0 {
		return 0
	}
	return ports[0].HostPort
}

func workingDirFor(svc *types.ServiceSpec) string {
	if svc.Capsule != "" {
		return "/"
	}
	return ""
}

func userFor(svc *types.ServiceSpec) string {
	if svc.Capsule != "" {
		return "root"
	}
	return ""
}

func keepFirst(current, candidate error) error {
	if current != nil {
		return current
	}
	return candidate
}
