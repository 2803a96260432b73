package quota

import (
	"sync"
	"testing"

	"github.com/cuemby/warren/pkg/events"
	"github.com/cuemby/warren/pkg/storage"
	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *events.Broker) {
	t.Helper()

	store, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)

	return NewManager(store, broker), broker
}

func userQuota(name string, hard, soft float64) *types.Quota {
	return &types.Quota{
		Name:    name,
		Scope:   types.QuotaScopeUser,
		ScopeID: "default",
		Limits: map[types.ResourceKind]*types.Limit{
			types.ResourceCPU: {Hard: hard, Soft: soft},
		},
	}
}

func TestAllocateWithinLimit(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Create(userQuota("user-default", 16, 0)))

	require.NoError(t, m.Allocate(types.QuotaScopeUser, "default", types.ResourceCPU, 12))

	q, err := m.Get("user-default")
	require.NoError(t, err)
	assert.Equal(t, 12.0, q.Limits[types.ResourceCPU].Used)
}

func TestAllocateDeniedLeavesUsageUntouched(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Create(userQuota("user-default", 16, 0)))

	require.NoError(t, m.Allocate(types.QuotaScopeUser, "default", types.ResourceCPU, 12))
	err := m.Allocate(types.QuotaScopeUser, "default", types.ResourceCPU, 6)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	q, err := m.Get("user-default")
	require.NoError(t, err)
	assert.Equal(t, 12.0, q.Limits[types.ResourceCPU].Used)
}

func TestAllocateAtomicAcrossQuotas(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Create(userQuota("a-wide", 100, 0)))
	require.NoError(t, m.Create(userQuota("b-narrow", 4, 0)))

	// b-narrow cannot fit 8 cores, so a-wide must not be debited either.
	err := m.Allocate(types.QuotaScopeUser, "default", types.ResourceCPU, 8)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	wide, err := m.Get("a-wide")
	require.NoError(t, err)
	assert.Equal(t, 0.0, wide.Limits[types.ResourceCPU].Used)
}

func TestDeallocateClampsAtZero(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Create(userQuota("user-default", 16, 0)))

	require.NoError(t, m.Allocate(types.QuotaScopeUser, "default", types.ResourceCPU, 4))
	m.Deallocate(types.QuotaScopeUser, "default", types.ResourceCPU, 10)

	q, err := m.Get("user-default")
	require.NoError(t, err)
	assert.Equal(t, 0.0, q.Limits[types.ResourceCPU].Used)
}

func TestCheckDoesNotDebit(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Create(userQuota("user-default", 16, 0)))

	require.NoError(t, m.Check(types.QuotaScopeUser, "default", types.ResourceCPU, 16))

	q, err := m.Get("user-default")
	require.NoError(t, err)
	assert.Equal(t, 0.0, q.Limits[types.ResourceCPU].Used)
}

func TestSoftThresholdEmitsWarning(t *testing.T) {
	m, broker := newTestManager(t)
	require.NoError(t, m.Create(userQuota("user-default", 16, 8)))

	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	require.NoError(t, m.Allocate(types.QuotaScopeUser, "default", types.ResourceCPU, 10))

	ev := <-sub
	assert.Equal(t, events.EventQuotaSoftWarning, ev.Type)
	assert.Equal(t, "user-default", ev.Metadata["quota"])
}

func TestMissingQuotaIsAbsentNotInfinite(t *testing.T) {
	m, _ := newTestManager(t)

	// No quota exists for this scope: Check and Allocate both pass, and
	// Get reports not found.
	require.NoError(t, m.Check(types.QuotaScopeNamespace, "team-a", types.ResourceCPU, 1000))
	require.NoError(t, m.Allocate(types.QuotaScopeNamespace, "team-a", types.ResourceCPU, 1000))

	_, err := m.Get("namespace-team-a")
	assert.ErrorIs(t, err, ErrQuotaNotFound)
}

func TestEnsureDefaults(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.EnsureDefaults())

	for _, name := range []string{"cluster-default", "namespace-default", "user-default"} {
		q, err := m.Get(name)
		require.NoError(t, err)
		assert.Equal(t, "default", q.ScopeID)
	}

	// Idempotent: a second call must not reset usage.
	require.NoError(t, m.Allocate(types.QuotaScopeUser, "default", types.ResourceCPU, 2))
	require.NoError(t, m.EnsureDefaults())
	q, err := m.Get("user-default")
	require.NoError(t, err)
	assert.Equal(t, 2.0, q.Limits[types.ResourceCPU].Used)
}

func TestConcurrentAllocationsNeverOversubscribe(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Create(userQuota("user-default", 10, 0)))

	var wg sync.WaitGroup
	granted := make(chan struct{}, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Allocate(types.QuotaScopeUser, "default", types.ResourceCPU, 1); err == nil {
				granted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(granted)

	count := 0
	for range granted {
		count++
	}
	assert.Equal(t, 10, count)

	q, err := m.Get("user-default")
	require.NoError(t, err)
	assert.Equal(t, 10.0, q.Limits[types.ResourceCPU].Used)
}

func TestCreateRejectsInvalidSpecs(t *testing.T) {
	m, _ := newTestManager(t)

	tests := []struct {
		name  string
		quota *types.Quota
	}{
		{"empty name", &types.Quota{Scope: types.QuotaScopeUser, ScopeID: "x"}},
		{"unknown scope", &types.Quota{Name: "q", Scope: "galaxy", ScopeID: "x"}},
		{"empty scope id", &types.Quota{Name: "q", Scope: types.QuotaScopeUser}},
		{"soft above hard", &types.Quota{
			Name: "q", Scope: types.QuotaScopeUser, ScopeID: "x",
			Limits: map[types.ResourceKind]*types.Limit{
				types.ResourceCPU: {Hard: 4, Soft: 8},
			},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, m.Create(tt.quota), ErrInvalidQuotaSpec)
		})
	}
}
