package integration

import (
	"context"
	"testing"
	"time"

	"github.com/cuemby/warren/pkg/capsule"
	"github.com/cuemby/warren/pkg/types"
	"github.com/google/uuid"
)

// TestCapsuleRuntimeBasicWorkflow tests the basic containerd workflow:
// pull image → create capsule → start → check status → stop → delete
func TestCapsuleRuntimeBasicWorkflow(t *testing.T) {
	rt, err := capsule.New("")
	if err != nil {
		t.Skipf("Containerd not available: %v", err)
	}
	defer rt.Close()

	ctx := context.Background()
	capsuleID := uuid.New().String()

	cap := &types.Capsule{
		ID:    capsuleID,
		Image: "docker.io/library/nginx:alpine",
		Env:   []string{"TEST=integration"},
	}

	t.Log("Step 1: Pulling nginx:alpine image...")
	if err := rt.PullImage(ctx, cap.Image); err != nil {
		t.Fatalf("Failed to pull image: %v", err)
	}
	t.Log("✓ Image pulled successfully")

	t.Log("Step 2: Creating capsule...")
	runtimeID, err := rt.CreateCapsule(ctx, cap)
	if err != nil {
		t.Fatalf("Failed to create capsule: %v", err)
	}
	t.Logf("✓ Capsule created: %s", runtimeID)

	defer func() {
		t.Log("Cleanup: Deleting capsule...")
		if err := rt.DeleteCapsule(ctx, runtimeID); err != nil {
			t.Logf("Warning: Failed to delete capsule: %v", err)
		}
	}()

	t.Log("Step 3: Starting capsule...")
	if err := rt.StartCapsule(ctx, runtimeID); err != nil {
		t.Fatalf("Failed to start capsule: %v", err)
	}
	t.Log("✓ Capsule started")

	time.Sleep(2 * time.Second)

	t.Log("Step 4: Checking capsule status...")
	status, err := rt.GetCapsuleStatus(ctx, runtimeID)
	if err != nil {
		t.Fatalf("Failed to get capsule status: %v", err)
	}
	t.Logf("✓ Capsule status: %s", status)

	if status != types.CapsuleStateRunning {
		t.Errorf("Expected capsule to be running, got: %s", status)
	}

	t.Log("Step 5: Verifying capsule is running...")
	if !rt.IsRunning(ctx, runtimeID) {
		t.Error("Capsule should be running but IsRunning returned false")
	}
	t.Log("✓ Capsule is running")

	t.Log("Step 6: Stopping capsule...")
	if err := rt.StopCapsule(ctx, runtimeID, 10*time.Second); err != nil {
		t.Fatalf("Failed to stop capsule: %v", err)
	}
	t.Log("✓ Capsule stopped")

	t.Log("Step 7: Verifying capsule stopped...")
	if rt.IsRunning(ctx, runtimeID) {
		t.Error("Capsule should be stopped but IsRunning returned true")
	}
	t.Log("✓ Capsule is not running")
}

// TestCapsuleRuntimeListCapsules tests listing capsules.
func TestCapsuleRuntimeListCapsules(t *testing.T) {
	rt, err := capsule.New("")
	if err != nil {
		t.Skipf("Containerd not available: %v", err)
	}
	defer rt.Close()

	ctx := context.Background()

	t.Log("Listing capsules in Warren namespace...")
	ids, err := rt.ListCapsules(ctx)
	if err != nil {
		t.Fatalf("Failed to list capsules: %v", err)
	}

	t.Logf("Found %d capsules in Warren namespace", len(ids))
	for _, id := range ids {
		t.Logf("  - %s", id)
	}
}

// TestCapsuleRuntimePullMultipleImages tests pulling multiple images.
func TestCapsuleRuntimePullMultipleImages(t *testing.T) {
	rt, err := capsule.New("")
	if err != nil {
		t.Skipf("Containerd not available: %v", err)
	}
	defer rt.Close()

	ctx := context.Background()

	images := []string{
		"docker.io/library/nginx:alpine",
		"docker.io/library/redis:alpine",
	}

	for _, img := range images {
		t.Logf("Pulling image: %s", img)
		if err := rt.PullImage(ctx, img); err != nil {
			t.Errorf("Failed to pull image %s: %v", img, err)
		} else {
			t.Logf("✓ Successfully pulled: %s", img)
		}
	}
}
