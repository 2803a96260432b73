package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cuemby/warren/pkg/buildcache"
	"github.com/cuemby/warren/pkg/capsule"
	"github.com/cuemby/warren/pkg/cas"
	"github.com/cuemby/warren/pkg/embedded"
	"github.com/cuemby/warren/pkg/image"
	"github.com/cuemby/warren/pkg/manager"
	"github.com/cuemby/warren/pkg/quota"
	"github.com/cuemby/warren/pkg/scheduler"
	"github.com/cuemby/warren/pkg/snapshot"
	"github.com/cuemby/warren/pkg/snapshotpolicy"
	"github.com/cuemby/warren/pkg/storage"
	"github.com/cuemby/warren/pkg/surge"
	"github.com/cuemby/warren/pkg/types"
	"github.com/spf13/cobra"
)

var surgeCmd = &cobra.Command{
	Use:   "surge",
	Short: "Apply declarative multi-service project specs",
}

var surgeUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Bring a project's services up in dependency order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurge(cmd, func(ctx context.Context, o *surge.Orchestrator, spec *types.ProjectSpec) error {
			return o.Up(ctx, spec)
		})
	},
}

var surgeDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop a project's services gracefully, in reverse order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurge(cmd, func(ctx context.Context, o *surge.Orchestrator, spec *types.ProjectSpec) error {
			return o.Down(ctx, spec)
		})
	},
}

var surgeKillCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop a project's services immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurge(cmd, func(ctx context.Context, o *surge.Orchestrator, spec *types.ProjectSpec) error {
			return o.Kill(ctx, spec)
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{surgeUpCmd, surgeDownCmd, surgeKillCmd} {
		c.Flags().StringP("file", "f", "Boltfile.yml", "Project spec file")
		c.Flags().String("data-dir", "/var/lib/warren", "Data directory")
		c.Flags().String("node-id", "", "Node ID (defaults to hostname)")
		surgeCmd.AddCommand(c)
	}
	rootCmd.AddCommand(surgeCmd)
}

// runSurge loads the spec, assembles the orchestrator against a local
// manager, runs op, and exits with the orchestrator's code contract on
// failure.
func runSurge(cmd *cobra.Command, op func(context.Context, *surge.Orchestrator, *types.ProjectSpec) error) error {
	file, _ := cmd.Flags().GetString("file")
	dataDir, _ := cmd.Flags().GetString("data-dir")
	nodeID, _ := cmd.Flags().GetString("node-id")
	useExternal, _ := cmd.Flags().GetBool("external-containerd")
	if nodeID == "" {
		nodeID, _ = os.Hostname()
	}

	spec, err := surge.LoadSpec(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(surge.ExitCode(err))
	}

	ctx := context.Background()

	containerdMgr, err := embedded.EnsureContainerd(ctx, dataDir, useExternal)
	if err != nil {
		return fmt.Errorf("failed to start containerd: %v", err)
	}
	defer containerdMgr.Stop()

	mgr, err := manager.NewManager(&manager.Config{
		NodeID:   nodeID,
		BindAddr: "127.0.0.1:7946",
		DataDir:  dataDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create manager: %v", err)
	}
	if err := mgr.Bootstrap(); err != nil {
		return fmt.Errorf("failed to bootstrap cluster: %v", err)
	}
	defer func() { _ = mgr.Shutdown() }()

	store, err := storage.NewBoltStore(filepath.Join(dataDir, "surge"))
	if err != nil {
		return fmt.Errorf("failed to open store: %v", err)
	}
	defer store.Close()

	blobs, err := cas.New(cas.Config{Root: filepath.Join(dataDir, "cas")})
	if err != nil {
		return fmt.Errorf("failed to open content store: %v", err)
	}

	rt, err := capsule.New(containerdMgr.GetSocketPath())
	if err != nil {
		return fmt.Errorf("failed to connect to containerd: %v", err)
	}
	defer rt.Close()

	quotas := quota.NewManager(store, mgr.GetEventBroker())
	if err := quotas.EnsureDefaults(); err != nil {
		return fmt.Errorf("failed to ensure default quotas: %v", err)
	}

	sched := scheduler.NewScheduler(mgr).WithQuota(quotas)
	sched.Start()
	defer sched.Stop()

	images := image.New(rt, blobs, store)

	builder, err := buildcache.New(store, blobs, buildcache.Config{
		WorkDir: filepath.Join(dataDir, "builds"),
	})
	if err != nil {
		return fmt.Errorf("failed to create builder: %v", err)
	}

	orchestrator := surge.NewOrchestrator(mgr, sched).
		WithImages(images).
		WithBuilder(builder)

	if spec.Snapshots != nil && spec.Snapshots.Enabled {
		snapshotter, err := snapshot.New(rt, blobs, store, mgr.GetEventBroker(), nil, snapshot.Config{
			WorkDir:    filepath.Join(dataDir, "snapshots"),
			Filesystem: spec.Snapshots.Filesystem,
		})
		if err != nil {
			return fmt.Errorf("failed to create snapshotter: %v", err)
		}
		policy := snapshotpolicy.New(snapshotter, store, *spec.Snapshots)
		policy.Start(ctx)
		defer policy.Stop()
		orchestrator = orchestrator.WithSnapshotPolicy(policy)
	}

	if err := op(ctx, orchestrator, spec); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(surge.ExitCode(err))
	}
	return nil
}
