package image

import (
	"testing"

	"github.com/cuemby/warren/pkg/cas"
	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want Ref
	}{
		{"bare name", "nginx", Ref{Registry: DefaultRegistry, Name: "nginx", Tag: DefaultTag}},
		{"name and tag", "nginx:alpine", Ref{Registry: DefaultRegistry, Name: "nginx", Tag: "alpine"}},
		{"library-prefixed", "library/nginx:1.25", Ref{Registry: DefaultRegistry, Name: "library/nginx", Tag: "1.25"}},
		{"custom registry", "registry.example.com/team/app:v2", Ref{Registry: "registry.example.com", Name: "team/app", Tag: "v2"}},
		{"registry with port", "localhost:5000/app:v1", Ref{Registry: "localhost:5000", Name: "app", Tag: "v1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRef(tc.ref)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRefRejectsEmpty(t *testing.T) {
	_, err := ParseRef("")
	assert.Error(t, err)
}

func TestManifestRoundTrip(t *testing.T) {
	blobs, err := cas.New(cas.Config{Root: t.TempDir()})
	require.NoError(t, err)

	store := New(nil, blobs, nil)

	configDigest, err := blobs.Put([]byte("config-bytes"), types.ObjectKindConfig)
	require.NoError(t, err)
	layerDigest, err := blobs.Put([]byte("layer-bytes"), types.ObjectKindLayer)
	require.NoError(t, err)

	original := &types.ImageManifest{
		Name:         "library/nginx",
		Tag:          "alpine",
		ConfigDigest: configDigest,
		Layers: []types.LayerRef{
			{Digest: layerDigest, MediaType: "application/vnd.oci.image.layer.v1.tar", Size: 11},
		},
	}

	d, err := store.storeManifest(original)
	require.NoError(t, err)

	loaded, err := store.loadManifest(d)
	require.NoError(t, err)

	assert.Equal(t, original.Name, loaded.Name)
	assert.Equal(t, original.Tag, loaded.Tag)
	assert.Equal(t, original.ConfigDigest, loaded.ConfigDigest)
	require.Len(t, loaded.Layers, 1)
	assert.Equal(t, original.Layers[0].Digest, loaded.Layers[0].Digest)
	assert.Equal(t, original.Layers[0].MediaType, loaded.Layers[0].MediaType)
	assert.Equal(t, original.Layers[0].Size, loaded.Layers[0].Size)

	assert.True(t, store.materialized(loaded))
}

func TestMaterializedFalseWhenLayerMissing(t *testing.T) {
	blobs, err := cas.New(cas.Config{Root: t.TempDir()})
	require.NoError(t, err)

	store := New(nil, blobs, nil)
	configDigest, err := blobs.Put([]byte("config-bytes"), types.ObjectKindConfig)
	require.NoError(t, err)

	m := &types.ImageManifest{
		Name:         "app",
		Tag:          "latest",
		ConfigDigest: configDigest,
		Layers:       []types.LayerRef{{Digest: "sha256:deadbeef"}},
	}

	assert.False(t, store.materialized(m))
}
