package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/hrdeploy/internal/config"
	"github.com/imamik/hrdeploy/internal/credentials"
	platformaws "github.com/imamik/hrdeploy/internal/platform/aws"
	"github.com/imamik/hrdeploy/internal/provisioning"
)

func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origLoad := loadConfigFile
	origCheck := checkCredentials
	origNew := newCloudClient
	origPhases := deployPhases
	origStderr := stderr
	t.Cleanup(func() {
		loadConfigFile = origLoad
		checkCredentials = origCheck
		newCloudClient = origNew
		deployPhases = origPhases
		stderr = origStderr
	})
}

// captureStderr redirects the handler failure stream to a temp file and
// returns a reader for its final contents.
func captureStderr(t *testing.T) func() string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	stderr = f
	return func() string {
		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		return string(data)
	}
}

func credentialsOK() *credentials.CheckResults {
	return &credentials.CheckResults{}
}

func useMockCloud(mock *platformaws.MockClient) {
	newCloudClient = func(_ context.Context, _ string) (platformaws.CloudManager, error) {
		return mock, nil
	}
}

func TestDeploy_Success(t *testing.T) {
	saveAndRestoreFactories(t)
	t.Setenv("RDS_ADMIN_PASSWORD", "s3cret")

	checkCredentials = credentialsOK
	useMockCloud(&platformaws.MockClient{
		CreateSecurityGroupFunc: func(_ context.Context, _, _ string, _ map[string]string) (string, error) {
			return "sg-0123", nil
		},
		RunInstanceFunc: func(_ context.Context, _ platformaws.InstanceSpec) (string, error) {
			return "i-0abc", nil
		},
		CreateDatabaseFunc: func(_ context.Context, spec platformaws.DatabaseSpec) (string, error) {
			return spec.Identifier, nil
		},
	})

	err := Deploy(context.Background(), "")
	assert.NoError(t, err)
}

func TestDeploy_ConfigParseErrorAbortsEverything(t *testing.T) {
	saveAndRestoreFactories(t)

	credentialsChecked := false
	checkCredentials = func() *credentials.CheckResults {
		credentialsChecked = true
		return credentialsOK()
	}
	clientBuilt := false
	newCloudClient = func(_ context.Context, _ string) (platformaws.CloudManager, error) {
		clientBuilt = true
		return &platformaws.MockClient{}, nil
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	err := Deploy(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")

	// Nothing runs after a parse failure.
	assert.False(t, credentialsChecked)
	assert.False(t, clientBuilt)
}

func TestDeploy_MissingCredentialsAbortBeforeProvisioning(t *testing.T) {
	saveAndRestoreFactories(t)

	checkCredentials = func() *credentials.CheckResults {
		return &credentials.CheckResults{
			Missing: []credentials.Variable{
				{Name: "RDS_ADMIN_PASSWORD", Description: "Administrator password for the RDS database"},
				{Name: "AWS_ACCESS_KEY_ID", Description: "AWS Access Key ID"},
			},
		}
	}
	clientBuilt := false
	newCloudClient = func(_ context.Context, _ string) (platformaws.CloudManager, error) {
		clientBuilt = true
		return &platformaws.MockClient{}, nil
	}

	err := Deploy(context.Background(), "")
	require.Error(t, err)

	// Every missing variable is reported, and no provisioning call was
	// ever possible.
	assert.Contains(t, err.Error(), "RDS_ADMIN_PASSWORD")
	assert.Contains(t, err.Error(), "AWS_ACCESS_KEY_ID")
	assert.False(t, clientBuilt)
}

func TestDeploy_PhaseFailureReportsPartialResources(t *testing.T) {
	saveAndRestoreFactories(t)
	t.Setenv("RDS_ADMIN_PASSWORD", "s3cret")

	checkCredentials = credentialsOK
	readStderr := captureStderr(t)

	databaseCreated := false
	useMockCloud(&platformaws.MockClient{
		CreateSecurityGroupFunc: func(_ context.Context, _, _ string, _ map[string]string) (string, error) {
			return "sg-0123", nil
		},
		RunInstanceFunc: func(_ context.Context, _ platformaws.InstanceSpec) (string, error) {
			return "", errors.New("insufficient capacity")
		},
		CreateDatabaseFunc: func(_ context.Context, _ platformaws.DatabaseSpec) (string, error) {
			databaseCreated = true
			return "", nil
		},
	})

	err := Deploy(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compute phase failed")

	// The database step was never reached.
	assert.False(t, databaseCreated)

	// The partial result set lists the steps that completed before the
	// failure, plus the orphan warning.
	out := readStderr()
	assert.Contains(t, out, "security_group: sg-0123")
	assert.Contains(t, out, "s3_bucket")
	assert.NotContains(t, out, "ec2_instance")
	assert.Contains(t, out, "orphaned")
}

func TestDeploy_CancellationReportedDistinctly(t *testing.T) {
	saveAndRestoreFactories(t)

	checkCredentials = credentialsOK
	readStderr := captureStderr(t)

	useMockCloud(&platformaws.MockClient{
		CreateSecurityGroupFunc: func(ctx context.Context, _, _ string, _ map[string]string) (string, error) {
			return "", fmt.Errorf("request aborted: %w", context.Canceled)
		},
	})

	err := Deploy(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, readStderr(), "cancelled by the operator")
}

func TestRenderDeploySummary(t *testing.T) {
	state := provisioning.NewState()
	state.SecurityGroupID = "sg-0123"
	state.BucketName = "app-rh-devops-backups-1"
	state.InstanceID = "i-0abc"
	state.DatabaseID = "app-rh-devops-db"

	out := renderDeploySummary(config.Default(), state)

	for _, want := range []string{"sg-0123", "app-rh-devops-backups-1", "i-0abc", "app-rh-devops-db"} {
		assert.Contains(t, out, want)
	}
	for _, reminder := range securityReminders {
		assert.Contains(t, out, reminder)
	}
}

func TestRenderBanner(t *testing.T) {
	out := renderBanner(config.Default())
	assert.Contains(t, out, "us-east-1")
	assert.Contains(t, out, "production")
	assert.Contains(t, out, "app-rh-devops")
	// The banner never carries secret material.
	assert.False(t, strings.Contains(strings.ToLower(out), "password"))
}
