package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_HasCommands(t *testing.T) {
	root := Root()

	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "deploy")
	assert.Contains(t, names, "version")
}

func TestDeploy_ConfigFlag(t *testing.T) {
	cmd := Deploy()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestVersion_Output(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	cmd := Version()
	assert.NotNil(t, cmd.Run)
}
