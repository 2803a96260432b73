package quota

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cuemby/warren/pkg/events"
	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/storage"
	"github.com/cuemby/warren/pkg/types"
	"github.com/rs/zerolog"
)

var (
	ErrQuotaExceeded           = errors.New("quota: exceeded")
	ErrInvalidQuotaSpec        = errors.New("quota: invalid spec")
	ErrQuotaNotFound           = errors.New("quota: not found")
	ErrInsufficientPermissions = errors.New("quota: insufficient permissions")
)

// Manager gates resource allocation against the quotas stored for a scope.
// Each quota record serializes its own allocate/deallocate; multi-quota
// allocation takes the per-quota locks in sorted-name order so two
// concurrent allocations touching overlapping quota sets cannot deadlock.
type Manager struct {
	store  storage.Store
	broker *events.Broker
	logger zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewManager creates a quota manager backed by store. broker may be nil;
// soft-threshold warnings are then only logged.
func NewManager(store storage.Store, broker *events.Broker) *Manager {
	return &Manager{
		store:  store,
		broker: broker,
		logger: log.WithComponent("quota"),
		locks:  make(map[string]*sync.Mutex),
	}
}

// DefaultLimits are the limits given to the default cluster, namespace, and
// user quotas created by EnsureDefaults.
var DefaultLimits = map[types.ResourceKind]*types.Limit{
	types.ResourceCPU:     {Hard: 256, Soft: 200},
	types.ResourceMemory:  {Hard: 1 << 40, Soft: 768 << 30}, // 1 TiB hard, 768 GiB soft
	types.ResourceStorage: {Hard: 10 << 40},                 // 10 TiB
}

// EnsureDefaults creates the default quotas for Cluster("default"),
// Namespace("default"), and User("default") if they do not already exist.
func (m *Manager) EnsureDefaults() error {
	defaults := []struct {
		name  string
		scope types.QuotaScope
	}{
		{"cluster-default", types.QuotaScopeCluster},
		{"namespace-default", types.QuotaScopeNamespace},
		{"user-default", types.QuotaScopeUser},
	}
	for _, d := range defaults {
		if _, err := m.store.GetQuota(d.name); err == nil {
			continue
		}
		limits := make(map[types.ResourceKind]*types.Limit, len(DefaultLimits))
		for k, l := range DefaultLimits {
			cp := *l
			limits[k] = &cp
		}
		q := &types.Quota{
			Name:      d.name,
			Scope:     d.scope,
			ScopeID:   "default",
			Limits:    limits,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := m.Create(q); err != nil {
			return err
		}
	}
	return nil
}

// Create validates and persists a quota record.
func (m *Manager) Create(q *types.Quota) error {
	if err := validate(q); err != nil {
		return err
	}
	q.CreatedAt = time.Now()
	q.UpdatedAt = q.CreatedAt
	if err := m.store.CreateQuota(q); err != nil {
		return fmt.Errorf("failed to persist quota %s: %w", q.Name, err)
	}
	m.logger.Info().Str("quota", q.Name).Str("scope", string(q.Scope)).Str("scope_id", q.ScopeID).Msg("Quota created")
	return nil
}

// Get returns the quota stored under name.
func (m *Manager) Get(name string) (*types.Quota, error) {
	q, err := m.store.GetQuota(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrQuotaNotFound, name)
	}
	return q, nil
}

// Delete removes the quota stored under name.
func (m *Manager) Delete(name string) error {
	if _, err := m.store.GetQuota(name); err != nil {
		return fmt.Errorf("%w: %s", ErrQuotaNotFound, name)
	}
	return m.store.DeleteQuota(name)
}

// Check inspects every quota attached to (scope, id) and reports whether an
// allocation of amount would violate any hard limit. It does not debit.
// Soft-threshold crossings emit a warning event and are not errors.
func (m *Manager) Check(scope types.QuotaScope, id string, resource types.ResourceKind, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalidQuotaSpec)
	}
	quotas, err := m.quotasFor(scope, id)
	if err != nil {
		return err
	}
	for _, q := range quotas {
		limit, ok := q.Limits[resource]
		if !ok {
			continue
		}
		if limit.Used+amount > limit.Hard {
			metrics.QuotaDenialsTotal.WithLabelValues(string(scope), string(resource)).Inc()
			return fmt.Errorf("%w: %s %s: used %.2f + %.2f > hard %.2f",
				ErrQuotaExceeded, q.Name, resource, limit.Used, amount, limit.Hard)
		}
		if limit.Soft > 0 && limit.Used+amount > limit.Soft {
			m.warnSoft(q, resource, limit, amount)
		}
	}
	return nil
}

// Allocate debits amount from every quota attached to (scope, id),
// atomically: either all applicable quotas are debited and persisted, or
// none are. The per-quota locks are taken in sorted-name order.
func (m *Manager) Allocate(scope types.QuotaScope, id string, resource types.ResourceKind, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalidQuotaSpec)
	}
	quotas, err := m.quotasFor(scope, id)
	if err != nil {
		return err
	}
	if len(quotas) == 0 {
		return nil
	}

	unlock := m.lockAll(quotas)
	defer unlock()

	// Re-read under the locks; the snapshot from quotasFor may be stale.
	fresh := make([]*types.Quota, 0, len(quotas))
	for _, q := range quotas {
		cur, err := m.store.GetQuota(q.Name)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrQuotaNotFound, q.Name)
		}
		fresh = append(fresh, cur)
	}

	for _, q := range fresh {
		limit, ok := q.Limits[resource]
		if !ok {
			continue
		}
		if limit.Used+amount > limit.Hard {
			metrics.QuotaDenialsTotal.WithLabelValues(string(scope), string(resource)).Inc()
			return fmt.Errorf("%w: %s %s: used %.2f + %.2f > hard %.2f",
				ErrQuotaExceeded, q.Name, resource, limit.Used, amount, limit.Hard)
		}
	}

	for _, q := range fresh {
		limit, ok := q.Limits[resource]
		if !ok {
			continue
		}
		if limit.Soft > 0 && limit.Used <= limit.Soft && limit.Used+amount > limit.Soft {
			m.warnSoft(q, resource, limit, amount)
		}
		limit.Used += amount
		q.UpdatedAt = time.Now()
		if err := m.store.UpdateQuota(q); err != nil {
			// Roll back the quotas already debited in this pass so a
			// storage failure never leaves a partial allocation behind.
			m.rollback(fresh, q, resource, amount)
			return fmt.Errorf("failed to persist quota %s: %w", q.Name, err)
		}
	}
	return nil
}

// Deallocate returns amount to every quota attached to (scope, id). It is
// total: unknown quotas are skipped and an underflow clamps Used at zero.
func (m *Manager) Deallocate(scope types.QuotaScope, id string, resource types.ResourceKind, amount float64) {
	quotas, err := m.quotasFor(scope, id)
	if err != nil || len(quotas) == 0 {
		return
	}

	unlock := m.lockAll(quotas)
	defer unlock()

	for _, q := range quotas {
		cur, err := m.store.GetQuota(q.Name)
		if err != nil {
			continue
		}
		limit, ok := cur.Limits[resource]
		if !ok {
			continue
		}
		limit.Used -= amount
		if limit.Used < 0 {
			limit.Used = 0
		}
		cur.UpdatedAt = time.Now()
		if err := m.store.UpdateQuota(cur); err != nil {
			m.logger.Error().Err(err).Str("quota", cur.Name).Msg("Failed to persist deallocation")
		}
	}
}

// quotasFor returns every stored quota attached to (scope, id), sorted by
// name so callers lock and debit in a deterministic order.
func (m *Manager) quotasFor(scope types.QuotaScope, id string) ([]*types.Quota, error) {
	all, err := m.store.ListQuotas()
	if err != nil {
		return nil, fmt.Errorf("failed to list quotas: %w", err)
	}
	var matched []*types.Quota
	for _, q := range all {
		if q.Scope == scope && q.ScopeID == id {
			matched = append(matched, q)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return matched, nil
}

// lockAll acquires the per-quota mutexes for quotas (already sorted by
// name) and returns a function releasing them in reverse order.
func (m *Manager) lockAll(quotas []*types.Quota) func() {
	held := make([]*sync.Mutex, 0, len(quotas))
	for _, q := range quotas {
		l := m.lockFor(q.Name)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (m *Manager) lockFor(name string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[name]
	if !ok {
		l = &sync.Mutex{}
		m.locks[name] = l
	}
	return l
}

// rollback undoes the debits applied before failed, exclusive.
func (m *Manager) rollback(debited []*types.Quota, failed *types.Quota, resource types.ResourceKind, amount float64) {
	for _, q := range debited {
		if q.Name == failed.Name {
			return
		}
		limit, ok := q.Limits[resource]
		if !ok {
			continue
		}
		limit.Used -= amount
		if limit.Used < 0 {
			limit.Used = 0
		}
		if err := m.store.UpdateQuota(q); err != nil {
			m.logger.Error().Err(err).Str("quota", q.Name).Msg("Failed to roll back partial allocation")
		}
	}
}

func (m *Manager) warnSoft(q *types.Quota, resource types.ResourceKind, limit *types.Limit, amount float64) {
	metrics.QuotaSoftWarningsTotal.WithLabelValues(string(q.Scope), string(resource)).Inc()
	m.logger.Warn().
		Str("quota", q.Name).
		Str("resource", string(resource)).
		Float64("used", limit.Used).
		Float64("amount", amount).
		Float64("soft", limit.Soft).
		Msg("Soft quota threshold crossed")
	if m.broker != nil {
		m.broker.Publish(&events.Event{
			Type:      events.EventQuotaSoftWarning,
			Timestamp: time.Now(),
			Message:   fmt.Sprintf("quota %s crossed soft threshold for %s", q.Name, resource),
			Metadata: map[string]string{
				"quota":    q.Name,
				"scope":    string(q.Scope),
				"scope_id": q.ScopeID,
				"resource": string(resource),
			},
		})
	}
}

func validate(q *types.Quota) error {
	if q.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidQuotaSpec)
	}
	switch q.Scope {
	case types.QuotaScopeUser, types.QuotaScopeNamespace, types.QuotaScopeCluster, types.QuotaScopeNode:
	default:
		return fmt.Errorf("%w: unknown scope %q", ErrInvalidQuotaSpec, q.Scope)
	}
	if q.ScopeID == "" {
		return fmt.Errorf("%w: empty scope id", ErrInvalidQuotaSpec)
	}
	for kind, limit := range q.Limits {
		if limit == nil || limit.Hard < 0 {
			return fmt.Errorf("%w: %s has invalid hard limit", ErrInvalidQuotaSpec, kind)
		}
		if limit.Soft < 0 || limit.Soft > limit.Hard {
			return fmt.Errorf("%w: %s soft limit outside [0, hard]", ErrInvalidQuotaSpec, kind)
		}
		if limit.Used < 0 {
			return fmt.Errorf("%w: %s has negative usage", ErrInvalidQuotaSpec, kind)
		}
	}
	return nil
}
