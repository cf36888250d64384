package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the generation defaults. Values come from falsa.yaml or
// FALSA_* environment variables; explicit command-line flags override
// whatever is loaded here. A zero K means no configured override, the
// commands keep their own defaults.
type Config struct {
	PathPrefix string `mapstructure:"path_prefix"`
	Size       string `mapstructure:"size"`
	K          int64  `mapstructure:"k"`
	NAs        int    `mapstructure:"nas"`
	Seed       uint64 `mapstructure:"seed"`
	BatchSize  int64  `mapstructure:"batch_size"`
	DataFormat string `mapstructure:"data_format"`
}

// Load resolves the configuration from viper's merged sources
func Load() (*Config, error) {
	viper.SetEnvPrefix("FALSA")
	viper.AutomaticEnv()

	viper.SetDefault("path_prefix", "")
	viper.SetDefault("size", "SMALL")
	viper.SetDefault("k", 0)
	viper.SetDefault("nas", 0)
	viper.SetDefault("seed", 42)
	viper.SetDefault("batch_size", 5_000_000)
	viper.SetDefault("data_format", "CSV")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the numeric bounds a config file could break
func (c *Config) Validate() error {
	if c.NAs < 0 || c.NAs > 100 {
		return fmt.Errorf("nas should be in [0, 100], but got %d", c.NAs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size should be positive, but got %d", c.BatchSize)
	}
	if c.K < 0 {
		return fmt.Errorf("k should be non-negative, but got %d", c.K)
	}
	return nil
}
