/*
Package buildcache implements the reproducible builder and its
fingerprint-keyed cache.

Build fingerprints a BuildSpec canonically (inputs and env sorted by key,
so declaration order never changes the hash), looks the fingerprint up in
pkg/storage's build_cache bucket, and on a miss materializes a private,
pruned-environment directory per run, executes the declared command, and
inserts each declared output into pkg/cas. When BuildSpec.Reproducible is
set, the build runs a second time in a fresh directory and the two output
sets are compared byte-for-byte by digest; any difference fails
ErrNonDeterministic rather than being silently accepted, per DESIGN.md
Open Question 1.

Execution currently shells out via os/exec with a pruned allow-listed
environment, the same namespace-light sandboxing pkg/health's ExecChecker
falls back to when no capsule runtime is attached; swapping in
pkg/capsule for full namespace isolation only changes runOnce's process
launch, not the cache protocol above it.
*/
package buildcache
