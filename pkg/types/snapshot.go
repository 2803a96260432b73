package types

import "time"

// NetworkState is the opaque, structured record of a capsule's network
// state at snapshot time: interfaces, routes, and connection 5-tuples with
// their kernel states.
type NetworkState struct {
	Interfaces  []NetInterface
	Routes      []NetRoute
	Connections []NetConnection
}

// NetInterface is one network interface captured in a NetworkState.
type NetInterface struct {
	Name       string
	MACAddress string
	Addresses  []string
	MTU        int
}

// NetRoute is one routing table entry captured in a NetworkState.
type NetRoute struct {
	Destination string
	Gateway     string
	Interface   string
}

// NetConnection is one live connection's 5-tuple and kernel state.
type NetConnection struct {
	Protocol   string
	LocalAddr  string
	LocalPort  int
	RemoteAddr string
	RemotePort int
	State      string
}

// ProcessState is the opaque, structured record of a capsule's process
// state: PIDs/PPIDs, per-thread registers, and file-descriptor entries.
type ProcessState struct {
	Processes []ProcessRecord
}

// ProcessRecord captures one process/thread in a ProcessState.
type ProcessRecord struct {
	PID         int
	PPID        int
	ThreadID    int
	Registers   map[string]uint64
	StackPtr    uint64
	InstrPtr    uint64
	FileDescs   []FileDescriptor
}

// FileDescriptor is one open file-descriptor table entry.
type FileDescriptor struct {
	FD   int
	Path string
	Kind string // "file", "socket", "pipe"
}

// Snapshot is a consistent capture of a capsule's memory, filesystem,
// network, and process state. It is immutable once
// finalized and stored by reference in CAS.
type Snapshot struct {
	CapsuleID        string
	TakenAt          time.Time
	MemoryDigest     Digest
	FilesystemDigest Digest
	Network          NetworkState
	Process          ProcessState
	Metadata         map[string]string

	// Name, when set, is a user-facing label used by the policy engine's
	// named-snapshot retention exemptions.
	Name         string
	Description  string
	Trigger      string
	KeepForever  bool
}

// MigrationPhase tracks where a live migration is in its pipeline.
type MigrationPhase string

const (
	MigrationPhasePreCopy   MigrationPhase = "pre-copy"
	MigrationPhasePaused    MigrationPhase = "paused"
	MigrationPhaseSnapshot  MigrationPhase = "snapshot"
	MigrationPhaseTransfer  MigrationPhase = "transfer"
	MigrationPhaseRestore   MigrationPhase = "restore"
	MigrationPhaseVerify    MigrationPhase = "verify"
	MigrationPhaseComplete  MigrationPhase = "complete"
	MigrationPhaseRolledBack MigrationPhase = "rolled-back"
)

// Migration is the bookkeeping record for one live-migration run.
type Migration struct {
	ID           string
	CapsuleID    string
	SourceNodeID string
	TargetNodeID string
	Phase        MigrationPhase
	StartedAt    time.Time
	FinishedAt   time.Time
	Error        string
}

// RetentionBucket names one of the fixed retention buckets the policy
// engine groups snapshots into.
type RetentionBucket string

const (
	RetentionHourly  RetentionBucket = "hourly"
	RetentionDaily   RetentionBucket = "daily"
	RetentionWeekly  RetentionBucket = "weekly"
	RetentionMonthly RetentionBucket = "monthly"
	RetentionYearly  RetentionBucket = "yearly"
)

// RetentionPolicy is the snapshots.retention section of a project spec.
type RetentionPolicy struct {
	KeepHourly  int
	KeepDaily   int
	KeepWeekly  int
	KeepMonthly int
	KeepYearly  int
	MaxTotal    int
}

// SnapshotTriggers is the snapshots.triggers section of a project spec.
type SnapshotTriggers struct {
	Hourly               bool
	Daily                bool
	Weekly               bool
	Monthly              bool
	Yearly               bool
	BeforeBuild          bool
	BeforeSurgeUp        bool
	BeforeUpdate         bool
	MinChangeThreshold   int64
	ChangeDetectInterval time.Duration
	OnFileChanges        *FileChangeWatch
}

// FileChangeWatch is the snapshots.triggers.on_file_changes section of a
// project spec.
type FileChangeWatch struct {
	WatchPaths      []string
	ExcludePaths    []string
	FilePatterns    []string
	ExcludePatterns []string
	ChangeTypes     []string
}

// NamedSnapshotPolicy is one entry of snapshots.named_snapshots.
type NamedSnapshotPolicy struct {
	Name        string
	Description string
	Trigger     string
	AutoCreate  bool
	KeepForever bool
}
