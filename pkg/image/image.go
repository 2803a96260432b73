package image

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cuemby/warren/pkg/capsule"
	"github.com/cuemby/warren/pkg/cas"
	"github.com/cuemby/warren/pkg/log"
	"github.com/cuemby/warren/pkg/storage"
	"github.com/cuemby/warren/pkg/types"
	"github.com/rs/zerolog"
)

var (
	ErrImageNotFound      = errors.New("image: not found")
	ErrInvalidImageFormat = errors.New("image: invalid format")
	ErrRegistry           = errors.New("image: registry error")
)

// DefaultRegistry is used for references whose name carries no
// dot-separated registry prefix.
const DefaultRegistry = "docker.io"

// DefaultTag is used for references with no explicit tag.
const DefaultTag = "latest"

// Store resolves image references to ImageManifests, pulling through
// pkg/capsule's containerd client on a cache miss and persisting layers
// and config into pkg/cas.
type Store struct {
	runtime *capsule.Runtime
	blobs   *cas.Store
	index   storage.Store
	logger  zerolog.Logger
}

// New creates an image Store.
func New(runtime *capsule.Runtime, blobs *cas.Store, index storage.Store) *Store {
	return &Store{
		runtime: runtime,
		blobs:   blobs,
		index:   index,
		logger:  log.WithComponent("image"),
	}
}

// Ref is a parsed image reference: [registry/]name[:tag].
type Ref struct {
	Registry string
	Name     string
	Tag      string
}

// String renders the canonical form registry/name:tag, the form used as
// the image-ref index key and as the literal pulled from upstream.
func (r Ref) String() string {
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Name, r.Tag)
}

// ParseRef parses "[registry/]name[:tag]": tag defaults to
// DefaultTag; registry defaults to DefaultRegistry when the leading
// path segment before the first slash contains no dot (i.e. it doesn't
// look like a registry host).
func ParseRef(ref string) (Ref, error) {
	if ref == "" {
		return Ref{}, fmt.Errorf("image: empty reference")
	}

	name := ref
	tag := DefaultTag
	if i := strings.LastIndex(ref, ":"); i > strings.LastIndex(ref, "/") {
		name, tag = ref[:i], ref[i+1:]
	}

	registry := DefaultRegistry
	if i := strings.Index(name, "/"); i > 0 {
		head := name[:i]
		if strings.Contains(head, ".") || strings.Contains(head, ":") || head == "localhost" {
			registry, name = head, name[i+1:]
		}
	}

	if name == "" {
		return Ref{}, fmt.Errorf("image: empty name in reference %q", ref)
	}
	return Ref{Registry: registry, Name: name, Tag: tag}, nil
}

// Resolve resolves an image reference: on a cache hit, returns the
// previously stored manifest; on a miss, pulls layers and config into
// CAS and records a fresh manifest under the reference's canonical key.
func (s *Store) Resolve(ctx context.Context, ref string) (*types.ImageManifest, error) {
	parsed, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}
	canonical := parsed.String()

	if d, err := s.index.GetImageRef(canonical); err == nil {
		manifest, err := s.loadManifest(d)
		if err == nil && s.materialized(manifest) {
			s.logger.Debug().Str("ref", canonical).Msg("image resolve cache hit")
			return manifest, nil
		}
		// Fall through to a fresh pull if the cached manifest's blobs
		// are no longer all present in CAS.
	}

	return s.pull(ctx, parsed, canonical)
}

// pull performs the miss path: pull via containerd, copy config and
// layers into CAS, persist the manifest as a CAS blob, and index it
// under canonical.
func (s *Store) pull(ctx context.Context, parsed Ref, canonical string) (*types.ImageManifest, error) {
	if err := s.runtime.PullImage(ctx, canonical); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageNotFound, canonical, err)
	}

	ociManifest, err := s.runtime.ResolveImageManifest(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidImageFormat, canonical, err)
	}

	configBytes, err := s.runtime.ReadContent(ctx, ociManifest.Config)
	if err != nil {
		return nil, fmt.Errorf("image: reading config: %w", err)
	}
	configDigest, err := s.blobs.Put(configBytes, types.ObjectKindConfig)
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}

	layers := make([]types.LayerRef, 0, len(ociManifest.Layers))
	for _, desc := range ociManifest.Layers {
		data, err := s.runtime.ReadContent(ctx, desc)
		if err != nil {
			return nil, fmt.Errorf("image: reading layer %s: %w", desc.Digest, err)
		}
		d, err := s.blobs.Put(data, types.ObjectKindLayer)
		if err != nil {
			return nil, fmt.Errorf("image: %w", err)
		}
		layers = append(layers, types.LayerRef{
			Digest:    d,
			Size:      int64(len(data)),
			MediaType: desc.MediaType,
		})
	}

	manifest := &types.ImageManifest{
		Name:         parsed.Name,
		Tag:          parsed.Tag,
		Layers:       layers,
		ConfigDigest: configDigest,
	}

	manifestDigest, err := s.storeManifest(manifest)
	if err != nil {
		return nil, err
	}
	manifest.Digest = manifestDigest

	if err := s.index.PutImageRef(canonical, manifestDigest); err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}

	s.logger.Info().Str("ref", canonical).Int("layers", len(layers)).Msg("image pulled and materialized")
	return manifest, nil
}

// Synthesize returns the manifest for a base capsule: no layers, working
// dir "/", user "root". The manifest is stored in CAS and indexed under
// "capsule:<base>" so repeated calls return the same digest.
func (s *Store) Synthesize(base string) (*types.ImageManifest, error) {
	key := "capsule:" + base
	if d, err := s.index.GetImageRef(key); err == nil {
		if m, err := s.loadManifest(d); err == nil {
			return m, nil
		}
	}

	manifest := &types.ImageManifest{Name: base, Tag: "base"}
	d, err := s.storeManifest(manifest)
	if err != nil {
		return nil, err
	}
	manifest.Digest = d
	if err := s.index.PutImageRef(key, d); err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	return manifest, nil
}

// materialized reports whether an ImageManifest's config and every layer
// still resolve in CAS.
func (s *Store) materialized(m *types.ImageManifest) bool {
	if !s.blobs.Has(m.ConfigDigest) {
		return false
	}
	for _, l := range m.Layers {
		if !s.blobs.Has(l.Digest) {
			return false
		}
	}
	return true
}

// storeManifest serializes m into the same newline-separated "name:digest"
// shape pkg/buildcache uses for output manifests, so both components
// share one manifest-blob convention in CAS.
func (s *Store) storeManifest(m *types.ImageManifest) (types.Digest, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "name:%s\n", m.Name)
	fmt.Fprintf(&sb, "tag:%s\n", m.Tag)
	fmt.Fprintf(&sb, "config:%s\n", m.ConfigDigest)
	for _, l := range m.Layers {
		fmt.Fprintf(&sb, "layer:%s:%s:%d\n", l.Digest, l.MediaType, l.Size)
	}
	return s.blobs.Put([]byte(sb.String()), types.ObjectKindManifest)
}

// loadManifest parses a manifest blob back into an ImageManifest.
func (s *Store) loadManifest(d types.Digest) (*types.ImageManifest, error) {
	data, err := s.blobs.Get(d)
	if err != nil {
		return nil, err
	}
	m := &types.ImageManifest{Digest: d}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		switch {
		case strings.HasPrefix(line, "name:"):
			m.Name = strings.TrimPrefix(line, "name:")
		case strings.HasPrefix(line, "tag:"):
			m.Tag = strings.TrimPrefix(line, "tag:")
		case strings.HasPrefix(line, "config:"):
			m.ConfigDigest = types.Digest(strings.TrimPrefix(line, "config:"))
		case strings.HasPrefix(line, "layer:"):
			// layer:<algo>:<hex>:<mediatype>:<size> — the digest spans
			// the first two fields.
			fields := strings.SplitN(strings.TrimPrefix(line, "layer:"), ":", 4)
			if len(fields) != 4 {
				continue
			}
			var size int64
			fmt.Sscanf(fields[3], "%d", &size)
			m.Layers = append(m.Layers, types.LayerRef{
				Digest:    types.Digest(fields[0] + ":" + fields[1]),
				MediaType: fields[2],
				Size:      size,
			})
		}
	}
	return m, nil
}
