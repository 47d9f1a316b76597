package config

import (
	"os"
	"time"
)

// Timeouts holds the configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	InstanceRunning time.Duration // Timeout for waiting for the compute instance to reach running state
	APICall         time.Duration // Timeout applied to individual control-plane calls
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - HRDEPLOY_TIMEOUT_INSTANCE_RUNNING (default: 10m)
//   - HRDEPLOY_TIMEOUT_API_CALL (default: 2m)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		InstanceRunning: parseDuration("HRDEPLOY_TIMEOUT_INSTANCE_RUNNING", 10*time.Minute),
		APICall:         parseDuration("HRDEPLOY_TIMEOUT_API_CALL", 2*time.Minute),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
