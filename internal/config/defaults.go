package config

import "github.com/runnerr0/trackerian/internal/tracker"

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:              "~/.config/trackerian",
			SQLiteFile:        "trackerian.db",
			SQLiteJournalMode: "wal",
		},
		Tracking: TrackingConfig{
			DayStartHour: tracker.DefaultDayStartHour,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "trackerian.log",
		},
	}
}
