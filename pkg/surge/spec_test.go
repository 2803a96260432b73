package surge

import (
	"testing"

	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSpec = `
project: shop
services:
  web:
    image: nginx:latest
    ports:
      - "8080:80"
    depends_on:
      - api
  api:
    image: registry.example.com/shop/api:v2
    env:
      DB_HOST: db
    depends_on:
      - db
  db:
    image: postgres:16
  scratchpad:
    capsule: base
networks:
  backend:
    type: bridge
    subnet: 10.10.0.0/24
volumes:
  pgdata:
    driver: local
    size: 20
fabric:
  enabled: true
resolver:
  enabled: true
`

func TestParseSpec(t *testing.T) {
	spec, err := ParseSpec([]byte(sampleSpec))
	require.NoError(t, err)

	assert.Equal(t, "shop", spec.Project)
	require.Len(t, spec.Services, 4)
	assert.Equal(t, []string{"api"}, spec.Services["web"].DependsOn)
	assert.Equal(t, "base", spec.Services["scratchpad"].Capsule)
	assert.Equal(t, int64(20), spec.Volumes["pgdata"].SizeGB)

	// Defaults.
	assert.Equal(t, 1, spec.Services["web"].Replicas)
	assert.Equal(t, types.ServiceModeReplicated, spec.Services["web"].Mode)
	assert.Equal(t, DefaultFabricPort, spec.Fabric.BindPort)
	assert.True(t, spec.Fabric.Encryption)
	assert.NotEmpty(t, spec.Fabric.NodeID)
	assert.Equal(t, DefaultResolverPort, spec.Resolver.Port)
	assert.Equal(t, "shop.local", spec.Resolver.Domain)
}

func TestParseSpecRequiresProject(t *testing.T) {
	_, err := ParseSpec([]byte("services:\n  web:\n    image: nginx\n"))
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestParseSpecExactlyOneSource(t *testing.T) {
	_, err := ParseSpec([]byte(`
project: p
services:
  both:
    image: nginx
    capsule: base
`))
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = ParseSpec([]byte(`
project: p
services:
  neither:
    ports: ["80:80"]
`))
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestParseSpecUnknownDependency(t *testing.T) {
	_, err := ParseSpec([]byte(`
project: p
services:
  web:
    image: nginx
    depends_on: [ghost]
`))
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestParseSpecDefaultNetwork(t *testing.T) {
	spec, err := ParseSpec([]byte("project: p\nservices:\n  web:\n    image: nginx\n"))
	require.NoError(t, err)

	net, ok := spec.Networks[DefaultBridgeName]
	require.True(t, ok, "a default bridge network is synthesized when none is declared")
	assert.Equal(t, "bridge", net.Type)
	assert.Equal(t, DefaultBridgeSubnet, net.Subnet)
	assert.Equal(t, DefaultBridgeGateway, net.Gateway)
}

func TestParseSpecRejectsUnknownNetworkType(t *testing.T) {
	_, err := ParseSpec([]byte(`
project: p
services:
  web:
    image: nginx
networks:
  weird:
    type: mesh
`))
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestSortServicesDependencyOrder(t *testing.T) {
	spec, err := ParseSpec([]byte(sampleSpec))
	require.NoError(t, err)

	order, err := sortServices(spec.Services)
	require.NoError(t, err)

	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	assert.Less(t, pos["db"], pos["api"])
	assert.Less(t, pos["api"], pos["web"])
}

func TestSortServicesDetectsCycle(t *testing.T) {
	services := map[string]*types.ServiceSpec{
		"a": {Image: "x", DependsOn: []string{"b"}},
		"b": {Image: "x", DependsOn: []string{"c"}},
		"c": {Image: "x", DependsOn: []string{"a"}},
	}

	_, err := sortServices(services)
	assert.ErrorIs(t, err, ErrDependencyCycle)
}

func TestSortServicesStableOrder(t *testing.T) {
	services := map[string]*types.ServiceSpec{
		"zeta":  {Image: "x"},
		"alpha": {Image: "x"},
		"mid":   {Image: "x"},
	}

	order, err := sortServices(services)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, order)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []string{"c", "b", "a"}, reverse([]string{"a", "b", "c"}))
}
