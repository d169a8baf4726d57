package config

import (
	"fmt"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

// Config is the service configuration: where to listen and which display
// preferences a session starts from.
type Config struct {
	Host              string `mapstructure:"host"`
	Port              string `mapstructure:"port"`
	DefaultUnit       string `mapstructure:"default_unit"`
	DefaultComparison bool   `mapstructure:"default_comparison"`
}

// Load reads the configuration file when a path is given, with SERVER_*
// environment variables taking precedence. Missing file settings fall back
// to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("default_unit", string(domain.UnitMillions))
	v.SetDefault("default_comparison", true)

	v.SetEnvPrefix("server")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate the configured unit up front so a bad value surfaces at
	// startup instead of on the first request.
	if _, err := domain.ParseUnit(cfg.DefaultUnit); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DisplayPreferences converts the configured defaults into the per-session
// starting preferences.
func (c *Config) DisplayPreferences() domain.DisplayPreferences {
	prefs := domain.DefaultDisplayPreferences()
	prefs.Unit = domain.Unit(c.DefaultUnit)
	prefs.ShowComparison = c.DefaultComparison
	return prefs
}
