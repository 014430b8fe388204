// Package config provides configuration loading and defaults for waitwatch.
package config

import "time"

// DefaultConfigDir is the default location for waitwatch configuration.
const DefaultConfigDir = "~/.config/waitwatch"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "waitwatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultWeekStart is the default first day of the week.
const DefaultWeekStart = "monday"

// DefaultRangeDays is the default analytics window in days.
const DefaultRangeDays = 30

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// weekdays maps config names to time.Weekday values.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}
