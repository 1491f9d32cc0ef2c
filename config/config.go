package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Stores  StoresConfig
	Matcher MatcherConfig
	Session SessionConfig
	Report  ReportConfig
}

// StoresConfig labels the two catalogs being compared
type StoresConfig struct {
	A string `mapstructure:"a"`
	B string `mapstructure:"b"`
}

// MatcherConfig holds fuzzy matching configuration
type MatcherConfig struct {
	Limit             int     `mapstructure:"limit"`
	MinScore          float64 `mapstructure:"min_score"`
	FuzzyEditDistance int     `mapstructure:"fuzzy_edit_distance"`
	Debug             bool    `mapstructure:"debug"`
}

// SessionConfig holds the interactive-loop tokens
type SessionConfig struct {
	SkipToken string `mapstructure:"skip_token"`
	DoneToken string `mapstructure:"done_token"`
}

// ReportConfig holds report rendering configuration
type ReportConfig struct {
	Color bool `mapstructure:"color"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricepal/")

	// Environment variable settings
	v.SetEnvPrefix("PRICEPAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Store defaults match the feeds the tool ships against
	v.SetDefault("stores.a", "Trader Joe's")
	v.SetDefault("stores.b", "Whole Foods")

	// Matcher defaults: top 10 candidates above the original 65% threshold
	v.SetDefault("matcher.limit", 10)
	v.SetDefault("matcher.min_score", 65.0)
	v.SetDefault("matcher.fuzzy_edit_distance", 1)
	v.SetDefault("matcher.debug", false)

	// Session defaults
	v.SetDefault("session.skip_token", "s")
	v.SetDefault("session.done_token", "done")

	// Report defaults
	v.SetDefault("report.color", true)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Stores.A == "" || config.Stores.B == "" {
		return fmt.Errorf("both store labels are required")
	}
	if config.Stores.A == config.Stores.B {
		return fmt.Errorf("store labels must differ, got %q twice", config.Stores.A)
	}

	if config.Matcher.Limit < 1 {
		return fmt.Errorf("matcher limit must be at least 1, got: %d", config.Matcher.Limit)
	}
	if config.Matcher.MinScore < 0 || config.Matcher.MinScore > 100 {
		return fmt.Errorf("matcher min_score must be in [0, 100], got: %v", config.Matcher.MinScore)
	}

	if config.Session.SkipToken == "" || config.Session.DoneToken == "" {
		return fmt.Errorf("session skip and done tokens are required")
	}

	return nil
}
