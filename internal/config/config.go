package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level waitwatch configuration.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string `mapstructure:"db_path"`

	// WeekStart names the first day of the week ("monday", "sunday", ...).
	WeekStart string `mapstructure:"week_start"`

	// RangeDays is the trailing analytics window in days.
	RangeDays int `mapstructure:"range_days"`

	Output Output `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// WeekStartDay resolves the configured week start name to a weekday,
// falling back to Monday for unknown values.
func (c *Config) WeekStartDay() time.Weekday {
	if day, ok := weekdays[strings.ToLower(c.WeekStart)]; ok {
		return day
	}
	return time.Monday
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("week_start", DefaultWeekStart)
	v.SetDefault("range_days", DefaultRangeDays)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.DBPath != "" {
		cfg.DBPath = expandPath(cfg.DBPath)
	}

	return &cfg, nil
}

// DatabasePath returns the configured database path, or the default location.
func (c *Config) DatabasePath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
