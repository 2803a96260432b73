/*
Package types defines the core data structures used throughout Warren.

It contains the domain model shared by every subsystem: cluster topology
(Cluster, Node), workloads (Service, Capsule), the content-addressed store
(Object, ImageManifest, BuildSpec, BuildCacheEntry), snapshots and migration
(Snapshot, Migration, RetentionPolicy), quotas (Quota, Limit), and the
Surge project-spec document (ProjectSpec and friends).

None of these types know how to persist or transmit themselves — that is
left to pkg/storage, pkg/cas, and pkg/fabric. This package only carries
shape and the closed enumerations (*State, *Kind, *Scope constants) the rest
of the codebase switches on.

# Ownership

Per the data model's ownership rule: pkg/cas exclusively owns blob bytes.
Object, ImageManifest, and BuildCacheEntry only ever carry Digest references
into that store — never the bytes themselves. Capsule is owned by the node
that runs it; Node.Assignments holds only CapsuleAssignment weak references,
never a Capsule value, to keep the cluster manager from trying to manage
kernel objects it doesn't have a handle to.
*/
package types
