// Package snapshotpolicy triggers snapshots by time, by operation, and by
// file-change rules, and applies bucketed retention to what accumulates.
// Named snapshots can opt out of retention entirely.
package snapshotpolicy
