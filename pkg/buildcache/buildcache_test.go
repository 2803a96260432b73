package buildcache

import (
	"context"
	"testing"

	"github.com/cuemby/warren/pkg/cas"
	"github.com/cuemby/warren/pkg/storage"
	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T) (*Builder, *cas.Store) {
	t.Helper()

	blobs, err := cas.New(cas.Config{Root: t.TempDir()})
	require.NoError(t, err)

	store, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	b, err := New(store, blobs, Config{WorkDir: t.TempDir()})
	require.NoError(t, err)
	return b, blobs
}

func TestFingerprintIsOrderIndependent(t *testing.T) {
	a := types.BuildSpec{
		Name:    "widget",
		Command: []string{"cp", "in", "out"},
		Inputs: []types.BuildInput{
			{Role: "a", Digest: "sha256:1", Kind: types.ObjectKindConfig},
			{Role: "b", Digest: "sha256:2", Kind: types.ObjectKindConfig},
		},
		Env: map[string]string{"FOO": "1", "BAR": "2"},
	}
	b := types.BuildSpec{
		Name:    "widget",
		Command: []string{"cp", "in", "out"},
		Inputs: []types.BuildInput{
			{Role: "b", Digest: "sha256:2", Kind: types.ObjectKindConfig},
			{Role: "a", Digest: "sha256:1", Kind: types.ObjectKindConfig},
		},
		Env: map[string]string{"BAR": "2", "FOO": "1"},
	}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintDiffersOnInputChange(t *testing.T) {
	a := types.BuildSpec{Name: "widget", Command: []string{"true"}}
	b := types.BuildSpec{Name: "widget", Command: []string{"true"}, Env: map[string]string{"FOO": "1"}}

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestBuildMissThenHit(t *testing.T) {
	builder, blobs := newTestBuilder(t)
	ctx := context.Background()

	inputDigest, err := blobs.Put([]byte("hello"), types.ObjectKindConfig)
	require.NoError(t, err)

	spec := types.BuildSpec{
		Name: "echo-file",
		Inputs: []types.BuildInput{
			{Role: "in.txt", Digest: inputDigest, Kind: types.ObjectKindConfig},
		},
		Outputs: []types.BuildOutput{
			{Name: "out.txt", Kind: types.ObjectKindBuild},
		},
		Command: []string{"cp", "in.txt", "out.txt"},
	}

	first, err := builder.Build(ctx, spec)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)
	require.Len(t, first.Outputs, 1)
	assert.Equal(t, "out.txt", first.Outputs[0].Name)

	second, err := builder.Build(ctx, spec)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Outputs[0].Digest, second.Outputs[0].Digest)
}

func TestBuildFailsOnMissingInput(t *testing.T) {
	builder, _ := newTestBuilder(t)

	spec := types.BuildSpec{
		Name: "broken",
		Inputs: []types.BuildInput{
			{Role: "missing", Digest: "sha256:deadbeef", Kind: types.ObjectKindConfig},
		},
		Command: []string{"true"},
	}

	_, err := builder.Build(context.Background(), spec)
	assert.ErrorIs(t, err, ErrDependencyNotFound)
}

func TestBuildFailsOnNonZeroExit(t *testing.T) {
	builder, _ := newTestBuilder(t)

	spec := types.BuildSpec{
		Name:    "always-fails",
		Command: []string{"false"},
	}

	_, err := builder.Build(context.Background(), spec)
	assert.ErrorIs(t, err, ErrBuildFailed)
}

func TestBuildReproducibleDetectsNonDeterminism(t *testing.T) {
	builder, _ := newTestBuilder(t)

	spec := types.BuildSpec{
		Name:         "random-output",
		Reproducible: true,
		Outputs: []types.BuildOutput{
			{Name: "out.txt", Kind: types.ObjectKindBuild},
		},
		// $$ is the shell's own PID, which differs between the two
		// passes since each spawns a fresh process, so the digests
		// must differ.
		Command: []string{"/bin/sh", "-c", "echo $$ > out.txt"},
	}

	_, err := builder.Build(context.Background(), spec)
	assert.ErrorIs(t, err, ErrNonDeterministic)
}
