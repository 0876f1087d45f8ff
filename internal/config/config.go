package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a magnetar run.
// Values are populated from .magnetar.yaml, MAGNETAR_* env vars, and CLI flags.
type Config struct {
	Damping       float64 `mapstructure:"damping"`
	Samples       int     `mapstructure:"samples"`
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
	Seed          uint64  `mapstructure:"seed"`
	Format        string  `mapstructure:"format"`
	Verbose       bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("damping", 0.85)
	viper.SetDefault("samples", 10000)
	viper.SetDefault("tolerance", 0.001)
	viper.SetDefault("max_iterations", 100)
	viper.SetDefault("seed", 0)
	viper.SetDefault("format", "text")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
