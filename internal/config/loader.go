package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrNoDatabaseURL is returned by RequireDatabase when neither DATABASE_URL
// nor DB_URL is set.
var ErrNoDatabaseURL = errors.New("DATABASE_URL is required")

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
// Returns an error if a value cannot be parsed or validation fails.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	// DB_URL is accepted as a fallback for older .env files
	if cfg.Database.URL == "" {
		cfg.Database.URL = os.Getenv("DB_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Paths validation
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		errs = append(errs, "MONDAY_EXPORT_DIR must not be empty")
	}
	if strings.TrimSpace(c.Paths.OutputPath) == "" {
		errs = append(errs, "MONDAY_OUTPUT_PATH must not be empty")
	}

	// Database validation
	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS (%d) must be >= DB_MIN_CONNS (%d)",
			c.Database.MaxConns, c.Database.MinConns))
	}
	if c.Database.MaxConns <= 0 {
		errs = append(errs, "DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns < 0 {
		errs = append(errs, "DB_MIN_CONNS must be non-negative")
	}
	if c.Database.ApplyTimeout <= 0 {
		errs = append(errs, "DB_APPLY_TIMEOUT must be positive")
	}

	// Analysis validation
	if c.Analysis.SampleThreshold <= 0 {
		errs = append(errs, "ANALYSIS_SAMPLE_THRESHOLD must be positive")
	}
	if c.Analysis.SampleLimit < 0 {
		errs = append(errs, "ANALYSIS_SAMPLE_LIMIT must be non-negative")
	}
	if c.Analysis.PreviewRows < 0 {
		errs = append(errs, "ANALYSIS_PREVIEW_ROWS must be non-negative")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// RequireDatabase reports ErrNoDatabaseURL when no connection string is configured.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return ErrNoDatabaseURL
	}
	return nil
}

// String returns a safe string representation of the config for logging.
// Sensitive values like database URLs are masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Paths: {ExportDir: %q, OutputPath: %q}, ", c.Paths.ExportDir, c.Paths.OutputPath))
	dbURL := ""
	if c.Database.URL != "" {
		dbURL = "[MASKED]"
	}
	b.WriteString(fmt.Sprintf("Database: {URL: %s, MaxConns: %d, MinConns: %d}, ",
		dbURL, c.Database.MaxConns, c.Database.MinConns))
	b.WriteString(fmt.Sprintf("Analysis: {SampleThreshold: %d, SampleLimit: %d, PreviewRows: %d}, ",
		c.Analysis.SampleThreshold, c.Analysis.SampleLimit, c.Analysis.PreviewRows))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
