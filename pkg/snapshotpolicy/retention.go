package snapshotpolicy

import (
	"fmt"
	"sort"
	"time"

	"github.com/cuemby/warren/pkg/types"
)

// bucketKeyFunc collapses a timestamp into its retention period: two
// snapshots with the same key compete for the same slot.
type bucketKeyFunc func(time.Time) string

var buckets = []struct {
	name types.RetentionBucket
	keep func(p types.RetentionPolicy) int
	key  bucketKeyFunc
}{
	{types.RetentionHourly, func(p types.RetentionPolicy) int { return p.KeepHourly },
		func(t time.Time) string { return t.UTC().Format("2006-01-02T15") }},
	{types.RetentionDaily, func(p types.RetentionPolicy) int { return p.KeepDaily },
		func(t time.Time) string { return t.UTC().Format("2006-01-02") }},
	{types.RetentionWeekly, func(p types.RetentionPolicy) int { return p.KeepWeekly },
		func(t time.Time) string {
			year, week := t.UTC().ISOWeek()
			return fmt.Sprintf("%04d-W%02d", year, week)
		}},
	{types.RetentionMonthly, func(p types.RetentionPolicy) int { return p.KeepMonthly },
		func(t time.Time) string { return t.UTC().Format("2006-01") }},
	{types.RetentionYearly, func(p types.RetentionPolicy) int { return p.KeepYearly },
		func(t time.Time) string { return t.UTC().Format("2006") }},
}

// selectRetained returns the set of snapshot names retention keeps: for
// each bucket, the newest snapshot of each of the N most recent periods;
// keep-forever snapshots unconditionally; and, if the survivors still
// exceed maxTotal, the oldest non-keep-forever ones are dropped.
func selectRetained(snaps []*types.Snapshot, policy types.RetentionPolicy) map[string]bool {
	sorted := make([]*types.Snapshot, len(snaps))
	copy(sorted, snaps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TakenAt.After(sorted[j].TakenAt) })

	keep := make(map[string]bool)
	for _, snap := range sorted {
		if snap.KeepForever {
			keep[snap.Name] = true
		}
	}

	for _, bucket := range buckets {
		n := bucket.keep(policy)
		if n <= 0 {
			continue
		}
		seen := make(map[string]bool)
		for _, snap := range sorted {
			key := bucket.key(snap.TakenAt)
			if seen[key] {
				continue // an earlier (newer) snapshot already fills this period
			}
			seen[key] = true
			keep[snap.Name] = true
			if len(seen) >= n {
				break
			}
		}
	}

	if policy.MaxTotal > 0 {
		kept := make([]*types.Snapshot, 0, len(keep))
		for _, snap := range sorted {
			if keep[snap.Name] {
				kept = append(kept, snap)
			}
		}
		// sorted is newest-first, so trimming walks the tail: oldest
		// non-keep-forever snapshots go first.
		over := len(kept) - policy.MaxTotal
		for i := len(kept) - 1; i >= 0 && over > 0; i-- {
			if kept[i].KeepForever {
				continue
			}
			delete(keep, kept[i].Name)
			over--
		}
	}
	return keep
}
