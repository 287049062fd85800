// Package config provides centralized configuration management for the importer.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Paths    PathsConfig
	Database DatabaseConfig
	Analysis AnalysisConfig
	Logging  LoggingConfig
}

// PathsConfig holds filesystem locations for the Monday.com export and the
// generated seed script.
type PathsConfig struct {
	// ExportDir is the root of the unzipped Monday.com account export (default: ./monday-export)
	ExportDir string `env:"MONDAY_EXPORT_DIR" envDefault:"./monday-export"`

	// OutputPath is where the generated SQL seed script is written
	OutputPath string `env:"MONDAY_OUTPUT_PATH" envDefault:"supabase/migrations/002_monday_data_import.sql"`
}

// DatabaseConfig holds database connection settings.
// Only the apply command connects to a database, so URL is optional here
// and checked by RequireDatabase.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	MaxConns int `env:"DB_MAX_CONNS" envDefault:"4"`

	// MinConns is the minimum number of connections to keep open (default: 0)
	MinConns int `env:"DB_MIN_CONNS" envDefault:"0"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`

	// ApplyTimeout bounds a single apply run (default: 5m)
	ApplyTimeout time.Duration `env:"DB_APPLY_TIMEOUT" envDefault:"5m"`
}

// AnalysisConfig holds structure report settings.
type AnalysisConfig struct {
	// SampleThreshold: columns with fewer distinct values than this get samples (default: 20)
	SampleThreshold int `env:"ANALYSIS_SAMPLE_THRESHOLD" envDefault:"20"`

	// SampleLimit is the maximum number of sample values shown per column (default: 5)
	SampleLimit int `env:"ANALYSIS_SAMPLE_LIMIT" envDefault:"5"`

	// PreviewRows is the number of leading data rows printed per sheet (default: 3)
	PreviewRows int `env:"ANALYSIS_PREVIEW_ROWS" envDefault:"3"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}
