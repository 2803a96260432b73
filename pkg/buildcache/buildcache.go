package buildcache

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cuemby/warren/pkg/cas"
	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/metrics"
	"github.com/cuemby/warren/pkg/storage"
	"github.com/cuemby/warren/pkg/types"
	"github.com/rs/zerolog"
)

// Sentinel errors for the build failure modes.
var (
	ErrDependencyNotFound = errors.New("buildcache: input digest does not resolve")
	ErrBuildFailed         = errors.New("buildcache: build command exited non-zero")
	ErrNonDeterministic    = errors.New("buildcache: output digest differs between reproducibility passes")
)

// allowedEnv is the minimal deterministic environment every build starts
// from; the spec's declared overlays are applied on
// top, so spec env always wins over this base.
var allowedEnv = map[string]string{
	"LC_ALL": "C",
	"TZ":     "UTC",
	"PATH":   "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin",
}

// Builder executes BuildSpecs behind a fingerprint-keyed cache, the same
// write-once discipline pkg/cas uses for blobs.
type Builder struct {
	store   storage.Store
	blobs   *cas.Store
	workDir string
	logger  zerolog.Logger
}

// Config configures a Builder.
type Config struct {
	// WorkDir is the base directory under which isolated build
	// directories are materialized and removed.
	WorkDir string
}

// New creates a Builder backed by store for cache entries and blobs for
// build inputs/outputs.
func New(store storage.Store, blobs *cas.Store, cfg Config) (*Builder, error) {
	if cfg.WorkDir == "" {
		return nil, fmt.Errorf("buildcache: empty work dir")
	}
	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return nil, fmt.Errorf("buildcache: %w", err)
	}
	return &Builder{
		store:   store,
		blobs:   blobs,
		workDir: cfg.WorkDir,
		logger:  log.WithComponent("buildcache"),
	}, nil
}

// Result is what Build returns on a hit or a successful miss: the
// manifest of named outputs produced (or previously produced) for spec.
type Result struct {
	Fingerprint    types.Digest
	Outputs        []types.BuildOutputManifest
	ManifestDigest types.Digest
	CacheHit       bool
}

// Build runs the full build protocol: fingerprint, cache lookup,
// isolated execution on miss, output collection, optional reproducibility
// validation, and output-manifest insertion.
func (b *Builder) Build(ctx context.Context, spec types.BuildSpec) (*Result, error) {
	start := time.Now()
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.BuildDuration)

	fp := Fingerprint(spec)

	if entry, err := b.store.GetBuildCacheEntry(string(fp)); err == nil && entry != nil && entry.Success {
		outputs, err := b.loadManifest(entry.OutputDigest)
		if err != nil {
			return nil, err
		}
		metrics.BuildCacheHits.Inc()
		b.logger.Debug().Str("fingerprint", string(fp)).Msg("build cache hit")
		return &Result{Fingerprint: fp, Outputs: outputs, ManifestDigest: entry.OutputDigest, CacheHit: true}, nil
	}
	metrics.BuildCacheMisses.Inc()

	if err := b.verifyInputs(spec); err != nil {
		metrics.BuildsFailed.Inc()
		return nil, err
	}

	outputs, err := b.runOnce(ctx, spec)
	if err != nil {
		metrics.BuildsFailed.Inc()
		return nil, err
	}

	if spec.Reproducible {
		replay, err := b.runOnce(ctx, spec)
		if err != nil {
			metrics.BuildsFailed.Inc()
			return nil, err
		}
		if !sameDigests(outputs, replay) {
			metrics.NonDeterministicBuilds.Inc()
			metrics.BuildsFailed.Inc()
			return nil, fmt.Errorf("%w: %s", ErrNonDeterministic, spec.Name)
		}
	}

	manifestDigest, err := b.writeManifest(outputs)
	if err != nil {
		metrics.BuildsFailed.Inc()
		return nil, err
	}

	entry := &types.BuildCacheEntry{
		InputFingerprint: fp,
		OutputDigest:     manifestDigest,
		TakenAt:          time.Now(),
		BuildMS:          int64(time.Since(start) / time.Millisecond),
		Success:          true,
	}
	if err := b.store.PutBuildCacheEntry(string(fp), entry); err != nil {
		return nil, fmt.Errorf("buildcache: %w", err)
	}

	b.logger.Info().Str("fingerprint", string(fp)).Int("outputs", len(outputs)).Msg("build complete")
	return &Result{Fingerprint: fp, Outputs: outputs, ManifestDigest: manifestDigest, CacheHit: false}, nil
}

// verifyInputs fails DependencyNotFound if any declared input digest does
// not resolve in the backing blob store.
func (b *Builder) verifyInputs(spec types.BuildSpec) error {
	for _, in := range spec.Inputs {
		if !b.blobs.Has(in.Digest) {
			return fmt.Errorf("%w: %s (%s)", ErrDependencyNotFound, in.Role, in.Digest)
		}
	}
	return nil
}

// runOnce materializes a fresh isolated build directory, executes the
// build command in it, and collects the declared outputs into the blob
// store. Each call to runOnce — including the reproducibility replay —
// gets its own directory, so no state leaks between passes.
func (b *Builder) runOnce(ctx context.Context, spec types.BuildSpec) ([]types.BuildOutputManifest, error) {
	buildDir, err := os.MkdirTemp(b.workDir, "build-*")
	if err != nil {
		return nil, fmt.Errorf("buildcache: %w", err)
	}
	defer os.RemoveAll(buildDir)

	for _, in := range spec.Inputs {
		data, err := b.blobs.Get(in.Digest)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDependencyNotFound, in.Role, err)
		}
		if err := os.WriteFile(filepath.Join(buildDir, in.Role), data, 0o644); err != nil {
			return nil, fmt.Errorf("buildcache: %w", err)
		}
	}

	if len(spec.Command) == 0 {
		return nil, fmt.Errorf("%w: empty command", ErrBuildFailed)
	}

	cmd := exec.CommandContext(ctx, spec.Command[0], spec.Command[1:]...)
	cmd.Dir = buildDir
	cmd.Env = buildEnv(buildDir, spec.Env)

	var out strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrBuildFailed, spec.Name, err, truncate(out.String(), 2000))
	}

	outputs := make([]types.BuildOutputManifest, 0, len(spec.Outputs))
	for _, decl := range spec.Outputs {
		path := filepath.Join(buildDir, decl.Name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: declared output %q missing: %v", ErrBuildFailed, decl.Name, err)
		}
		d, err := b.blobs.Put(data, decl.Kind)
		if err != nil {
			return nil, fmt.Errorf("buildcache: %w", err)
		}
		outputs = append(outputs, types.BuildOutputManifest{
			Name:   decl.Name,
			Digest: d,
			Kind:   decl.Kind,
			Size:   int64(len(data)),
		})
	}

	sort.Slice(outputs, func(i, j int) bool { return outputs[i].Name < outputs[j].Name })
	return outputs, nil
}

// writeManifest inserts the newline-separated "name:digest" manifest blob
// in the newline-separated name:digest convention and returns its digest.
func (b *Builder) writeManifest(outputs []types.BuildOutputManifest) (types.Digest, error) {
	var sb strings.Builder
	for _, o := range outputs {
		sb.WriteString(o.Name)
		sb.WriteByte(':')
		sb.WriteString(string(o.Digest))
		sb.WriteByte('\n')
	}
	return b.blobs.Put([]byte(sb.String()), types.ObjectKindBuild)
}

// loadManifest parses the "name:digest" manifest blob stored under d back
// into a BuildOutputManifest list. Kind and Size are not recoverable from
// the manifest text alone — each referenced digest is re-stat'd.
func (b *Builder) loadManifest(d types.Digest) ([]types.BuildOutputManifest, error) {
	data, err := b.blobs.Get(d)
	if err != nil {
		return nil, fmt.Errorf("buildcache: %w", err)
	}
	var outputs []types.BuildOutputManifest
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		name, digest := parts[0], types.Digest(parts[1])
		size, err := b.blobs.Stat(digest)
		if err != nil {
			return nil, fmt.Errorf("buildcache: %w", err)
		}
		outputs = append(outputs, types.BuildOutputManifest{Name: name, Digest: digest, Size: size})
	}
	return outputs, nil
}

// Fingerprint computes the canonical, order-independent hash of a
// BuildSpec's inputs. Inputs and env are sorted
// by their canonical key before hashing so declaration order never
// affects the result.
func Fingerprint(spec types.BuildSpec) types.Digest {
	h := sha256.New()

	fmt.Fprintf(h, "name:%s\nversion:%s\ntarget:%s\nreproducible:%t\n",
		spec.Name, spec.Version, spec.TargetSystem, spec.Reproducible)

	fmt.Fprintf(h, "command:%s\n", strings.Join(spec.Command, "\x00"))

	inputs := append([]types.BuildInput(nil), spec.Inputs...)
	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Role < inputs[j].Role })
	for _, in := range inputs {
		fmt.Fprintf(h, "input:%s:%s:%s\n", in.Role, in.Kind, in.Digest)
	}

	outputs := append([]types.BuildOutput(nil), spec.Outputs...)
	sort.Slice(outputs, func(i, j int) bool { return outputs[i].Name < outputs[j].Name })
	for _, out := range outputs {
		fmt.Fprintf(h, "output:%s:%s\n", out.Name, out.Kind)
	}

	keys := make([]string, 0, len(spec.Env))
	for k := range spec.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "env:%s=%s\n", k, spec.Env[k])
	}

	return types.Digest(fmt.Sprintf("sha256:%x", h.Sum(nil)))
}

// buildEnv assembles the process environment for a build command: the
// allow-listed deterministic base, HOME pinned to the build directory,
// then the spec's declared overlays, which win on conflict.
func buildEnv(buildDir string, overlay map[string]string) []string {
	merged := make(map[string]string, len(allowedEnv)+len(overlay)+1)
	for k, v := range allowedEnv {
		merged[k] = v
	}
	merged["HOME"] = buildDir

	keys := make([]string, 0, len(overlay))
	for k := range overlay {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged[k] = overlay[k]
	}

	envKeys := make([]string, 0, len(merged))
	for k := range merged {
		envKeys = append(envKeys, k)
	}
	sort.Strings(envKeys)

	env := make([]string, 0, len(merged))
	for _, k := range envKeys {
		env = append(env, k+"="+merged[k])
	}
	return env
}

func sameDigests(a, b []types.BuildOutputManifest) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Digest != b[i].Digest {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
