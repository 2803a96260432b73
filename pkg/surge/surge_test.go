package surge

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cuemby/warren/pkg/image"
	"github.com/cuemby/warren/pkg/quota"
	"github.com/cuemby/warren/pkg/scheduler"
	"github.com/cuemby/warren/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"success", nil, ExitOK},
		{"invalid spec", fmt.Errorf("load: %w", ErrInvalidSpec), ExitInvalidSpec},
		{"spec not found", ErrSpecNotFound, ExitInvalidSpec},
		{"cycle", fmt.Errorf("up: %w", ErrDependencyCycle), ExitDependencyCycle},
		{"image missing", fmt.Errorf("service web: %w", image.ErrImageNotFound), ExitImageNotFound},
		{"quota", fmt.Errorf("placement: %w", quota.ErrQuotaExceeded), ExitQuotaExceeded},
		{"no capacity", scheduler.ErrInsufficientResources, ExitSchedulingFailed},
		{"scheduling", scheduler.ErrSchedulingFailed, ExitSchedulingFailed},
		{"unknown", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ExitCode(tt.err))
		})
	}
}

func TestParsePorts(t *testing.T) {
	ports := parsePorts([]string{"8080:80", "malformed", "443:8443"})
	assert.Len(t, ports, 2)
	assert.Equal(t, 8080, ports[0].HostPort)
	assert.Equal(t, 80, ports[0].ContainerPort)
}

func TestParseVolumes(t *testing.T) {
	mounts := parseVolumes([]string{"pgdata:/var/lib/postgresql", "nope"})
	assert.Len(t, mounts, 1)
	assert.Equal(t, "pgdata", mounts[0].Source)
	assert.Equal(t, "/var/lib/postgresql", mounts[0].Target)
}

func TestCapsuleServiceIdentity(t *testing.T) {
	svc := &types.ServiceSpec{Capsule: "base"}
	assert.Equal(t, "/", workingDirFor(svc))
	assert.Equal(t, "root", userFor(svc))

	img := &types.ServiceSpec{Image: "nginx"}
	assert.Empty(t, workingDirFor(img))
	assert.Empty(t, userFor(img))
}
