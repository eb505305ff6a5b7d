// Package config loads hour tracker settings through viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Mr-Dark-debug/hourtracker/internal/hours"
)

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Display  DisplayConfig  `mapstructure:"display"`
	Limits   LimitsConfig   `mapstructure:"limits"`
	Priority PriorityConfig `mapstructure:"priority"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DatabaseConfig locates the session store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DisplayConfig controls the card's initial presentation.
type DisplayConfig struct {
	DarkMode bool `mapstructure:"dark_mode"`
	Expanded bool `mapstructure:"expanded"`
	Width    int  `mapstructure:"width"`
}

// LimitsConfig holds the band thresholds in hours per week.
type LimitsConfig struct {
	Low    float64 `mapstructure:"low"`
	Near   float64 `mapstructure:"near"`
	Weekly float64 `mapstructure:"weekly"`
}

// PriorityConfig lists names that sort first and get a badge.
type PriorityConfig struct {
	Names []string `mapstructure:"names"`
}

// LoggingConfig controls zap output.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// ConfigDir returns $HOME/.config/hourtracker.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hourtracker")
}

// DefaultDBPath returns $HOME/.hourtracker/hours.db.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".hourtracker", "hours.db")
}

// Default returns the built-in configuration.
func Default() *Config {
	l := hours.DefaultLimits()
	return &Config{
		Database: DatabaseConfig{Path: DefaultDBPath()},
		Display: DisplayConfig{
			DarkMode: true,
			Expanded: false,
			Width:    0, // follow the terminal
		},
		Limits: LimitsConfig{Low: l.Low, Near: l.Near, Weekly: l.Weekly},
		Priority: PriorityConfig{
			Names: hours.DefaultPolicy().PriorityNames,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Policy converts the configured limits and names into an hours.Policy.
func (c *Config) Policy() hours.Policy {
	names := make([]string, len(c.Priority.Names))
	copy(names, c.Priority.Names)
	return hours.Policy{
		Limits: hours.Limits{
			Low:    c.Limits.Low,
			Near:   c.Limits.Near,
			Weekly: c.Limits.Weekly,
		},
		PriorityNames: names,
	}
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("database.path", defaults.Database.Path)

	v.SetDefault("display.dark_mode", defaults.Display.DarkMode)
	v.SetDefault("display.expanded", defaults.Display.Expanded)
	v.SetDefault("display.width", defaults.Display.Width)

	v.SetDefault("limits.low", defaults.Limits.Low)
	v.SetDefault("limits.near", defaults.Limits.Near)
	v.SetDefault("limits.weekly", defaults.Limits.Weekly)

	v.SetDefault("priority.names", defaults.Priority.Names)

	v.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}
