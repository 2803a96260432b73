/*
Package capsule drives a Capsule's containerd-backed kernel objects: image
pull, OCI spec generation, snapshot, and capsule lifecycle.

It wraps containerd's client API the same way the teacher's runtime package
did, generalized from an ad-hoc "capsule" vocabulary to Capsule, and adds
a DeviceAllocator capability for exclusive/shared device passthrough claims
(see DESIGN.md Open Question 2 — no GPU runtime integration, just the claim
bookkeeping a real allocator would sit behind).

Resource limits: CPULimit maps to CPU shares (1024 per core) plus a CFS
quota/period pair; MemoryLimit maps directly to the cgroup memory limit.
Both are applied via oci.SpecOpts at capsule creation, enforced by the
kernel through containerd/runc — capsule never touches cgroupfs itself.
*/
package capsule
