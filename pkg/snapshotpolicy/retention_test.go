package snapshotpolicy

import (
	"fmt"
	"testing"
	"time"

	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
)

func snapAt(name string, takenAt time.Time) *types.Snapshot {
	return &types.Snapshot{Name: name, CapsuleID: "c", TakenAt: takenAt}
}

func TestSelectRetainedKeepsNewestPerHour(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	snaps := []*types.Snapshot{
		snapAt("h0-old", base.Add(-20*time.Minute)), // same hour as h0-new
		snapAt("h0-new", base),
		snapAt("h1", base.Add(-1*time.Hour)),
		snapAt("h2", base.Add(-2*time.Hour)),
		snapAt("h3", base.Add(-3*time.Hour)),
	}

	keep := selectRetained(snaps, types.RetentionPolicy{KeepHourly: 3})

	assert.True(t, keep["h0-new"])
	assert.False(t, keep["h0-old"], "only the newest snapshot of an hour fills its slot")
	assert.True(t, keep["h1"])
	assert.True(t, keep["h2"])
	assert.False(t, keep["h3"], "beyond the 3 most recent hourly periods")
}

func TestSelectRetainedBucketsAreIndependent(t *testing.T) {
	base := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	snaps := []*types.Snapshot{
		snapAt("today", base),
		snapAt("yesterday", base.Add(-24*time.Hour)), // same month as today
		snapAt("last-month", base.Add(-35*24*time.Hour)),
	}

	keep := selectRetained(snaps, types.RetentionPolicy{KeepDaily: 2, KeepMonthly: 2})

	assert.True(t, keep["today"])
	assert.True(t, keep["yesterday"])
	assert.True(t, keep["last-month"], "monthly bucket reaches past the daily window")
}

func TestSelectRetainedNeverDropsKeepForever(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	pinned := snapAt("pinned", base.Add(-100*24*time.Hour))
	pinned.KeepForever = true
	snaps := []*types.Snapshot{
		pinned,
		snapAt("recent", base),
	}

	keep := selectRetained(snaps, types.RetentionPolicy{KeepHourly: 1, MaxTotal: 1})

	assert.True(t, keep["pinned"])
}

func TestSelectRetainedMaxTotalDropsOldestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var snaps []*types.Snapshot
	for i := 0; i < 5; i++ {
		snaps = append(snaps, snapAt(fmt.Sprintf("h%d", i), base.Add(-time.Duration(i)*time.Hour)))
	}

	keep := selectRetained(snaps, types.RetentionPolicy{KeepHourly: 5, MaxTotal: 3})

	assert.True(t, keep["h0"])
	assert.True(t, keep["h1"])
	assert.True(t, keep["h2"])
	assert.False(t, keep["h3"])
	assert.False(t, keep["h4"])
}

func TestSelectRetainedZeroPolicyKeepsNothingUnpinned(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	snaps := []*types.Snapshot{snapAt("a", base), snapAt("b", base.Add(-time.Hour))}

	keep := selectRetained(snaps, types.RetentionPolicy{})

	assert.Empty(t, keep)
}
