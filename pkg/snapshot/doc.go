// Package snapshot produces consistent capsule snapshots and restores
// them, locally or across nodes. A snapshot is a memory image (CRIU dump),
// a filesystem capture, and the network and process state needed to
// reinstate sockets and file descriptors on a compatible host. Memory and
// filesystem blobs live in the CAS; the snapshot record holds only their
// digests.
//
// Live migration runs the pre-copy pipeline: iterative memory dumps while
// the source runs, a freeze, a final delta dump, transfer, restore on the
// target, and a health verification that decides whether the source is
// torn down or resumed. At most one live instance exists under every
// outcome.
package snapshot
