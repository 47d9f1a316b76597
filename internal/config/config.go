// Package config holds the deployment configuration record.
//
// A Config is constructed once at startup from built-in defaults,
// optionally overlaid with a user-supplied JSON file, and is immutable
// afterwards. Provisioners receive it by reference through the
// provisioning context; there is no ambient/global configuration lookup.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Config holds the deployment settings for the HR application.
type Config struct {
	Region             string `mapstructure:"region" json:"region"`
	AMIID              string `mapstructure:"ami_id" json:"ami_id"`
	InstanceType       string `mapstructure:"instance_type" json:"instance_type"`
	DBInstanceClass    string `mapstructure:"db_instance_class" json:"db_instance_class"`
	DBAllocatedStorage int32  `mapstructure:"db_allocated_storage" json:"db_allocated_storage"`
	AppName            string `mapstructure:"app_name" json:"app_name"`
	Environment        string `mapstructure:"environment" json:"environment"`
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Region:             "us-east-1",
		AMIID:              "ami-06b21ccaeff8cd686",
		InstanceType:       "t2.micro",
		DBInstanceClass:    "db.t3.micro",
		DBAllocatedStorage: 20,
		AppName:            "app-rh-devops",
		Environment:        "production",
	}
}

// LoadFile builds the configuration from defaults, overlaid with the JSON
// file at path if one is given and exists. Keys present in the file win
// over defaults; unknown keys are ignored; keys absent from the file keep
// their default values. An empty path or a missing file yields the
// defaults unchanged.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := json.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	// Decode the raw map over the defaults so only keys present in the
	// file are overridden. JSON numbers arrive as float64, so the decoder
	// must coerce them into the typed fields.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(rawConfig); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that every required setting has a value. Defaults
// guarantee this unless an override explicitly blanks a key.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"region", c.Region},
		{"ami_id", c.AMIID},
		{"instance_type", c.InstanceType},
		{"db_instance_class", c.DBInstanceClass},
		{"app_name", c.AppName},
		{"environment", c.Environment},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s must not be empty", r.key)
		}
	}
	if c.DBAllocatedStorage <= 0 {
		return fmt.Errorf("db_allocated_storage must be positive, got %d", c.DBAllocatedStorage)
	}
	return nil
}

// SecurityGroupName returns the deterministic name for the application's
// security group.
func (c *Config) SecurityGroupName() string {
	return fmt.Sprintf("%s-sg", c.AppName)
}

// DatabaseIdentifier returns the deterministic identifier for the
// application's database instance.
func (c *Config) DatabaseIdentifier() string {
	return fmt.Sprintf("%s-db", c.AppName)
}
