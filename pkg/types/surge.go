package types

// ProjectSpec is the Go form of the project specification document
// Surge applies with Up/Down/Kill.
type ProjectSpec struct {
	Project  string
	Services map[string]*ServiceSpec
	Networks map[string]*NetworkSpec
	Volumes  map[string]*VolumeSpec
	Fabric   *FabricSpec
	Resolver *ResolverSpec
	Snapshots *SnapshotsSpec
}

// ServiceSpec is one entry of ProjectSpec.Services.
type ServiceSpec struct {
	Image     string
	Build     *BuildSpecRef
	Capsule   string
	Ports     []string // "host:container"
	Volumes   []string // "src:dst"
	Env       map[string]string
	DependsOn []string
	Networks  []string
	Replicas  int
	Mode      ServiceMode
}

// BuildSpecRef points Surge at a BuildSpec by name when a service declares
// `build:` instead of `image:`.
type BuildSpecRef struct {
	Context string
	Name    string
}

// NetworkSpec is one entry of ProjectSpec.Networks.
type NetworkSpec struct {
	Type       string // "bridge", "host", "none"
	Subnet     string
	Gateway    string
	DNSServers []string
}

// VolumeSpec is one entry of ProjectSpec.Volumes.
type VolumeSpec struct {
	Driver string
	SizeGB int64
}

// FabricSpec is the `fabric` section of a project spec.
type FabricSpec struct {
	Enabled          bool
	NodeID           string
	BindAddress      string
	BindPort         int
	Encryption       bool
	ServiceDiscovery bool
}

// ResolverSpec is the `resolver` section of a project spec.
type ResolverSpec struct {
	Enabled bool
	Port    int
	Domain  string
}

// SnapshotsSpec is the `snapshots` section of a project spec.
type SnapshotsSpec struct {
	Enabled        bool
	Filesystem     string // "auto", "btrfs", "zfs"
	Retention      RetentionPolicy
	Triggers       SnapshotTriggers
	NamedSnapshots []NamedSnapshotPolicy
}

// ServiceEndpoint is a registered Fabric endpoint.
type ServiceEndpoint struct {
	Name          string
	Address       string
	Port          int
	Protocol      string
	EncryptionKey []byte // 32-byte per-service symmetric key, nil if unencrypted
}
