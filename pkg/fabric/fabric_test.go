package fabric

import (
	"bytes"
	"testing"

	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeFrame(&buf, frameAppData, []byte("hello world")))

	kind, payload, err := readFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, frameAppData, kind)
	assert.Equal(t, "hello world", string(payload))
}

func TestFrameRoundTripEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeFrame(&buf, frameResolveRequest, nil))

	kind, payload, err := readFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, frameResolveRequest, kind)
	assert.Empty(t, payload)
}

func TestCanonicalForms(t *testing.T) {
	forms := canonicalForms("api", "cluster.local")
	assert.Equal(t, []string{"api.cluster.local", "_app._tcp.api.cluster.local"}, forms)

	assert.Nil(t, canonicalForms("api", ""))
}

func TestRegisterAndResolveLocal(t *testing.T) {
	f := New(Config{NodeID: "node-1", Domain: "cluster.local"})
	f.RegisterService("api", types.ServiceEndpoint{Address: "10.0.0.5", Port: 8080, Protocol: "tcp"})

	ep, err := f.Resolve(nil, "api")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", ep.Address)
	assert.Equal(t, 8080, ep.Port)
}

func TestResolveMissingServiceFails(t *testing.T) {
	f := New(Config{NodeID: "node-1"})

	_, err := f.Resolve(nil, "does-not-exist")
	assert.ErrorIs(t, err, ErrServiceDiscoveryFailed)
}

func TestDeregisterService(t *testing.T) {
	f := New(Config{NodeID: "node-1"})
	f.RegisterService("api", types.ServiceEndpoint{Address: "10.0.0.5", Port: 8080})
	f.DeregisterService("api")

	_, err := f.Resolve(nil, "api")
	assert.ErrorIs(t, err, ErrServiceDiscoveryFailed)
}

func TestHostAndPortOf(t *testing.T) {
	assert.Equal(t, "10.0.0.5", hostOf("10.0.0.5:9000"))
	assert.Equal(t, 9000, portOf("10.0.0.5:9000"))
}

func TestReapExpiredRemovesStaleRemoteEntries(t *testing.T) {
	f := New(Config{NodeID: "node-1"})
	f.mu.Lock()
	f.remote["stale"] = &serviceRecord{endpoint: types.ServiceEndpoint{Name: "stale"}}
	f.mu.Unlock()

	f.reapExpired()

	_, ok := f.lookupLocal("stale")
	assert.False(t, ok)
}
