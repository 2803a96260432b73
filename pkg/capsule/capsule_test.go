package capsule

import (
	"strings"
	"testing"

	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfigRejectsLongHostname(t *testing.T) {
	cap := &types.Capsule{Hostname: strings.Repeat("x", MaxHostnameLen+1)}
	assert.ErrorIs(t, validateConfig(cap), ErrInvalidConfiguration)

	cap.Hostname = strings.Repeat("x", MaxHostnameLen)
	assert.NoError(t, validateConfig(cap))
}

func TestValidateConfigMemoryLimits(t *testing.T) {
	assert.ErrorIs(t, validateConfig(&types.Capsule{
		Resources: &types.ResourceRequirements{MemoryLimit: -1},
	}), ErrInvalidConfiguration)

	assert.ErrorIs(t, validateConfig(&types.Capsule{
		Resources: &types.ResourceRequirements{MemoryReservation: 1 << 20},
	}), ErrInvalidConfiguration)

	assert.NoError(t, validateConfig(&types.Capsule{
		Resources: &types.ResourceRequirements{MemoryLimit: 1 << 30},
	}))
}

func TestDeviceAllocatorExclusive(t *testing.T) {
	a := NewInMemoryDeviceAllocator()

	dev, err := a.Allocate("gpu", true)
	require.NoError(t, err)

	_, err = a.Allocate("gpu", true)
	assert.Error(t, err, "an exclusively claimed device cannot be claimed again")

	a.Release("gpu", dev.Path)
	_, err = a.Allocate("gpu", true)
	assert.NoError(t, err)
}

func TestDeviceAllocatorShared(t *testing.T) {
	a := NewInMemoryDeviceAllocator()

	first, err := a.Allocate("gpu", false)
	require.NoError(t, err)
	second, err := a.Allocate("gpu", false)
	require.NoError(t, err)
	assert.Equal(t, first.Path, second.Path)

	// A shared device cannot be grabbed exclusively while refs remain.
	_, err = a.Allocate("gpu", true)
	assert.Error(t, err)
}
