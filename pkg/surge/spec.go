package surge

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cuemby/warren/pkg/types"
	"gopkg.in/yaml.v3"
)

var (
	ErrSpecNotFound       = errors.New("surge: spec not found")
	ErrInvalidSpec        = errors.New("surge: invalid spec")
	ErrDependencyCycle    = errors.New("surge: dependency cycle")
	ErrServiceStartFailed = errors.New("surge: service start failed")
	ErrServiceStopFailed  = errors.New("surge: service stop failed")
)

// Defaults applied while normalizing a loaded spec.
const (
	DefaultFabricPort    = 4433
	DefaultResolverPort  = 5353
	DefaultBridgeName    = "warren0"
	DefaultBridgeSubnet  = "172.28.0.0/16"
	DefaultBridgeGateway = "172.28.0.1"
)

// projectDocument is the YAML shape of a project spec file. It is mapped
// onto types.ProjectSpec after validation.
type projectDocument struct {
	Project  string                      `yaml:"project"`
	Services map[string]*serviceDocument `yaml:"services"`
	Networks map[string]*networkDocument `yaml:"networks"`
	Volumes  map[string]*volumeDocument  `yaml:"volumes"`
	Fabric   *fabricDocument             `yaml:"fabric"`
	Resolver *resolverDocument           `yaml:"resolver"`
	Snapshots *snapshotsDocument         `yaml:"snapshots"`
}

type serviceDocument struct {
	Image     string            `yaml:"image"`
	Build     *buildDocument    `yaml:"build"`
	Capsule   string            `yaml:"capsule"`
	Ports     []string          `yaml:"ports"`
	Volumes   []string          `yaml:"volumes"`
	Env       map[string]string `yaml:"env"`
	DependsOn []string          `yaml:"depends_on"`
	Networks  []string          `yaml:"networks"`
	Replicas  int               `yaml:"replicas"`
	Mode      string            `yaml:"mode"`
}

type buildDocument struct {
	Context string `yaml:"context"`
	Name    string `yaml:"name"`
}

type networkDocument struct {
	Type       string   `yaml:"type"`
	Subnet     string   `yaml:"subnet"`
	Gateway    string   `yaml:"gateway"`
	DNSServers []string `yaml:"dns_servers"`
}

type volumeDocument struct {
	Driver string `yaml:"driver"`
	SizeGB int64  `yaml:"size"`
}

type fabricDocument struct {
	Enabled          bool   `yaml:"enabled"`
	NodeID           string `yaml:"node_id"`
	BindAddress      string `yaml:"bind_address"`
	BindPort         int    `yaml:"bind_port"`
	Encryption       *bool  `yaml:"encryption"`
	ServiceDiscovery *bool  `yaml:"service_discovery"`
}

type resolverDocument struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Domain  string `yaml:"domain"`
}

type snapshotsDocument struct {
	Enabled    bool               `yaml:"enabled"`
	Filesystem string             `yaml:"filesystem"`
	Retention  retentionDocument  `yaml:"retention"`
	Triggers   triggersDocument   `yaml:"triggers"`
	Named      []namedSnapDocument `yaml:"named_snapshots"`
}

type retentionDocument struct {
	KeepHourly  int `yaml:"keep_hourly"`
	KeepDaily   int `yaml:"keep_daily"`
	KeepWeekly  int `yaml:"keep_weekly"`
	KeepMonthly int `yaml:"keep_monthly"`
	KeepYearly  int `yaml:"keep_yearly"`
	MaxTotal    int `yaml:"max_total"`
}

type triggersDocument struct {
	Hourly             bool   `yaml:"hourly"`
	Daily              bool   `yaml:"daily"`
	Weekly             bool   `yaml:"weekly"`
	Monthly            bool   `yaml:"monthly"`
	Yearly             bool   `yaml:"yearly"`
	BeforeBuild        bool   `yaml:"before_build"`
	BeforeSurgeUp      bool   `yaml:"before_surge_up"`
	BeforeUpdate       bool   `yaml:"before_update"`
	MinChangeThreshold int64  `yaml:"min_change_threshold"`
	ChangeInterval     string `yaml:"change_detection_interval"`
	OnFileChanges      *fileChangesDocument `yaml:"on_file_changes"`
}

type fileChangesDocument struct {
	WatchPaths      []string `yaml:"watch_paths"`
	ExcludePaths    []string `yaml:"exclude_paths"`
	FilePatterns    []string `yaml:"file_patterns"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
	ChangeTypes     []string `yaml:"change_types"`
}

type namedSnapDocument struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Trigger     string `yaml:"trigger"`
	AutoCreate  bool   `yaml:"auto_create"`
	KeepForever bool   `yaml:"keep_forever"`
}

// LoadSpec reads and parses a project spec file.
func LoadSpec(path string) (*types.ProjectSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSpecNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	return ParseSpec(data)
}

// ParseSpec parses, validates, and normalizes a project spec document.
func ParseSpec(data []byte) (*types.ProjectSpec, error) {
	var doc projectDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	spec, err := doc.toSpec()
	if err != nil {
		return nil, err
	}
	normalize(spec)
	return spec, nil
}

func (doc *projectDocument) toSpec() (*types.ProjectSpec, error) {
	if doc.Project == "" {
		return nil, fmt.Errorf("%w: missing project name", ErrInvalidSpec)
	}

	spec := &types.ProjectSpec{
		Project:  doc.Project,
		Services: make(map[string]*types.ServiceSpec),
		Networks: make(map[string]*types.NetworkSpec),
		Volumes:  make(map[string]*types.VolumeSpec),
	}

	for name, svc := range doc.Services {
		if svc == nil {
			return nil, fmt.Errorf("%w: service %s is empty", ErrInvalidSpec, name)
		}
		sources := 0
		if svc.Image != "" {
			sources++
		}
		if svc.Build != nil {
			sources++
		}
		if svc.Capsule != "" {
			sources++
		}
		if sources != 1 {
			return nil, fmt.Errorf("%w: service %s must declare exactly one of image, build, capsule", ErrInvalidSpec, name)
		}
		out := &types.ServiceSpec{
			Image:     svc.Image,
			Capsule:   svc.Capsule,
			Ports:     svc.Ports,
			Volumes:   svc.Volumes,
			Env:       svc.Env,
			DependsOn: svc.DependsOn,
			Networks:  svc.Networks,
			Replicas:  svc.Replicas,
			Mode:      types.ServiceMode(svc.Mode),
		}
		if svc.Build != nil {
			out.Build = &types.BuildSpecRef{Context: svc.Build.Context, Name: svc.Build.Name}
		}
		spec.Services[name] = out
	}

	for name, svc := range spec.Services {
		for _, dep := range svc.DependsOn {
			if _, ok := spec.Services[dep]; !ok {
				return nil, fmt.Errorf("%w: service %s depends on unknown service %s", ErrInvalidSpec, name, dep)
			}
		}
	}

	for name, net := range doc.Networks {
		if net == nil {
			net = &networkDocument{}
		}
		switch net.Type {
		case "", "bridge", "host", "none":
		default:
			return nil, fmt.Errorf("%w: network %s has unknown type %q", ErrInvalidSpec, name, net.Type)
		}
		spec.Networks[name] = &types.NetworkSpec{
			Type:       net.Type,
			Subnet:     net.Subnet,
			Gateway:    net.Gateway,
			DNSServers: net.DNSServers,
		}
	}

	for name, vol := range doc.Volumes {
		if vol == nil {
			vol = &volumeDocument{}
		}
		spec.Volumes[name] = &types.VolumeSpec{Driver: vol.Driver, SizeGB: vol.SizeGB}
	}

	if doc.Fabric != nil {
		spec.Fabric = &types.FabricSpec{
			Enabled:          doc.Fabric.Enabled,
			NodeID:           doc.Fabric.NodeID,
			BindAddress:      doc.Fabric.BindAddress,
			BindPort:         doc.Fabric.BindPort,
			Encryption:       boolDefault(doc.Fabric.Encryption, true),
			ServiceDiscovery: boolDefault(doc.Fabric.ServiceDiscovery, true),
		}
	}

	if doc.Resolver != nil {
		spec.Resolver = &types.ResolverSpec{
			Enabled: doc.Resolver.Enabled,
			Port:    doc.Resolver.Port,
			Domain:  doc.Resolver.Domain,
		}
	}

	if doc.Snapshots != nil {
		interval, err := parseInterval(doc.Snapshots.Triggers.ChangeInterval)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
		}
		snap := &types.SnapshotsSpec{
			Enabled:    doc.Snapshots.Enabled,
			Filesystem: doc.Snapshots.Filesystem,
			Retention: types.RetentionPolicy{
				KeepHourly:  doc.Snapshots.Retention.KeepHourly,
				KeepDaily:   doc.Snapshots.Retention.KeepDaily,
				KeepWeekly:  doc.Snapshots.Retention.KeepWeekly,
				KeepMonthly: doc.Snapshots.Retention.KeepMonthly,
				KeepYearly:  doc.Snapshots.Retention.KeepYearly,
				MaxTotal:    doc.Snapshots.Retention.MaxTotal,
			},
			Triggers: types.SnapshotTriggers{
				Hourly:               doc.Snapshots.Triggers.Hourly,
				Daily:                doc.Snapshots.Triggers.Daily,
				Weekly:               doc.Snapshots.Triggers.Weekly,
				Monthly:              doc.Snapshots.Triggers.Monthly,
				Yearly:               doc.Snapshots.Triggers.Yearly,
				BeforeBuild:          doc.Snapshots.Triggers.BeforeBuild,
				BeforeSurgeUp:        doc.Snapshots.Triggers.BeforeSurgeUp,
				BeforeUpdate:         doc.Snapshots.Triggers.BeforeUpdate,
				MinChangeThreshold:   doc.Snapshots.Triggers.MinChangeThreshold,
				ChangeDetectInterval: interval,
			},
		}
		if fc := doc.Snapshots.Triggers.OnFileChanges; fc != nil {
			snap.Triggers.OnFileChanges = &types.FileChangeWatch{
				WatchPaths:      fc.WatchPaths,
				ExcludePaths:    fc.ExcludePaths,
				FilePatterns:    fc.FilePatterns,
				ExcludePatterns: fc.ExcludePatterns,
				ChangeTypes:     fc.ChangeTypes,
			}
		}
		for _, named := range doc.Snapshots.Named {
			snap.NamedSnapshots = append(snap.NamedSnapshots, types.NamedSnapshotPolicy{
				Name:        named.Name,
				Description: named.Description,
				Trigger:     named.Trigger,
				AutoCreate:  named.AutoCreate,
				KeepForever: named.KeepForever,
			})
		}
		spec.Snapshots = snap
	}

	return spec, nil
}

// normalize fills the documented defaults into a validated spec.
func normalize(spec *types.ProjectSpec) {
	for _, svc := range spec.Services {
		if svc.Replicas <= 0 {
			svc.Replicas = 1
		}
		if svc.Mode == "" {
			svc.Mode = types.ServiceModeReplicated
		}
	}
	if spec.Fabric != nil {
		if spec.Fabric.NodeID == "" {
			spec.Fabric.NodeID = fmt.Sprintf("node-%d", time.Now().Unix())
		}
		if spec.Fabric.BindPort == 0 {
			spec.Fabric.BindPort = DefaultFabricPort
		}
		if spec.Fabric.BindAddress == "" {
			spec.Fabric.BindAddress = "0.0.0.0"
		}
	}
	if spec.Resolver != nil {
		if spec.Resolver.Port == 0 {
			spec.Resolver.Port = DefaultResolverPort
		}
		if spec.Resolver.Domain == "" {
			spec.Resolver.Domain = spec.Project + ".local"
		}
	}
	if len(spec.Networks) == 0 {
		spec.Networks[DefaultBridgeName] = &types.NetworkSpec{
			Type:    "bridge",
			Subnet:  DefaultBridgeSubnet,
			Gateway: DefaultBridgeGateway,
		}
	}
}

func boolDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func parseInterval(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
