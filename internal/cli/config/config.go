package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the lattice CLI configuration
type Config struct {
	Manifest string       `mapstructure:"manifest"`
	Output   OutputConfig `mapstructure:"output"`
}

// OutputConfig represents output rendering configuration
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// Load loads the configuration from lattice.yml or lattice.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("manifest", "lattice.json")
	v.SetDefault("output.format", "table")
	v.SetDefault("output.no_color", false)

	// Set config name and paths
	v.SetConfigName("lattice")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support (LATTICE_MANIFEST, ...)
	v.SetEnvPrefix("lattice")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Output.Format != "table" && cfg.Output.Format != "json" {
		return nil, fmt.Errorf("invalid output format %q (expected table or json)", cfg.Output.Format)
	}

	return &cfg, nil
}
