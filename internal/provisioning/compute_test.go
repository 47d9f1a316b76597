package provisioning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformaws "github.com/imamik/hrdeploy/internal/platform/aws"
)

func TestComputeProvisioner_LaunchAndWait(t *testing.T) {
	var launched platformaws.InstanceSpec
	var waitedFor string
	var waitTimeout time.Duration

	mock := &platformaws.MockClient{
		RunInstanceFunc: func(_ context.Context, spec platformaws.InstanceSpec) (string, error) {
			launched = spec
			return "i-0abc", nil
		},
		WaitInstanceRunningFunc: func(_ context.Context, instanceID string, timeout time.Duration) error {
			waitedFor = instanceID
			waitTimeout = timeout
			return nil
		},
	}

	ctx, obs := newTestContext(t, mock)
	ctx.State.SecurityGroupID = "sg-0123"

	err := NewComputeProvisioner().Provision(ctx)
	require.NoError(t, err)

	assert.Equal(t, ctx.Config.AMIID, launched.ImageID)
	assert.Equal(t, ctx.Config.InstanceType, launched.InstanceType)
	assert.Equal(t, "sg-0123", launched.SecurityGroupID)
	assert.Equal(t, "LabInstanceProfile", launched.InstanceProfile)
	assert.Equal(t, "app-rh-devops-web", launched.Tags["Name"])
	assert.True(t, strings.HasPrefix(launched.UserData, "#!/bin/bash"))
	assert.Contains(t, launched.UserData, "httpd")

	assert.Equal(t, "i-0abc", waitedFor)
	assert.Equal(t, ctx.Timeouts.InstanceRunning, waitTimeout)
	assert.Equal(t, "i-0abc", ctx.State.InstanceID)
	assert.Contains(t, obs.eventTypes(), EventResourceCreated)
}

func TestComputeProvisioner_RequiresSecurityGroup(t *testing.T) {
	launchCalled := false
	mock := &platformaws.MockClient{
		RunInstanceFunc: func(_ context.Context, _ platformaws.InstanceSpec) (string, error) {
			launchCalled = true
			return "i-0abc", nil
		},
	}

	ctx, _ := newTestContext(t, mock)
	err := NewComputeProvisioner().Provision(ctx)
	require.Error(t, err)
	assert.False(t, launchCalled)
}

func TestComputeProvisioner_LaunchFaultIsFatal(t *testing.T) {
	mock := &platformaws.MockClient{
		RunInstanceFunc: func(_ context.Context, _ platformaws.InstanceSpec) (string, error) {
			return "", errors.New("capacity unavailable")
		},
	}

	ctx, _ := newTestContext(t, mock)
	ctx.State.SecurityGroupID = "sg-0123"

	err := NewComputeProvisioner().Provision(ctx)
	require.Error(t, err)
	assert.Empty(t, ctx.State.InstanceID)
}

func TestComputeProvisioner_WaitTimeoutIsFatal(t *testing.T) {
	mock := &platformaws.MockClient{
		RunInstanceFunc: func(_ context.Context, _ platformaws.InstanceSpec) (string, error) {
			return "i-0abc", nil
		},
		WaitInstanceRunningFunc: func(_ context.Context, instanceID string, timeout time.Duration) error {
			return fmt.Errorf("instance %s did not reach running state within %v: %w",
				instanceID, timeout, platformaws.ErrWaitTimeout)
		},
	}

	ctx, _ := newTestContext(t, mock)
	ctx.State.SecurityGroupID = "sg-0123"

	err := NewComputeProvisioner().Provision(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, platformaws.ErrWaitTimeout)
	// The instance launched but never completed the phase; it is not
	// recorded as provisioned.
	assert.Empty(t, ctx.State.InstanceID)
}
