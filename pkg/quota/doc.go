// Package quota enforces resource caps across user, namespace, cluster,
// and node scopes. Allocation is atomic across every quota attached to a
// scope: either all applicable quotas are debited or none are. Soft
// thresholds emit warning events without blocking; hard limits deny with
// ErrQuotaExceeded. Missing quotas are treated as absent, not infinite.
package quota
