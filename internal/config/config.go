// Package config provides configuration management for the demo binary.
//
// The calculation kernel (internal/model, internal/constants,
// internal/taxmath, internal/checks, internal/redemption,
// internal/orchestrator) takes no configuration at all — every value it
// needs is an explicit function argument. Everything in this package
// configures the boundary: where the HTTP demo server listens, where
// the report cache lives, and which cron schedule re-evaluates it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds demo-binary configuration.
type Config struct {
	DataDir      string // base directory for the report cache, always absolute
	Port         int
	LogLevel     string
	Pretty       bool
	CacheDBPath  string
	CronSchedule string // robfig/cron expression for the nightly re-evaluation job
	S3Bucket     string // empty disables archival
	S3Region     string
}

// Load reads configuration from the environment, falling back to a local
// .env file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir := getEnv("TAXHAWK_DATA_DIR", "")
	if dataDir == "" {
		dataDir = "./data"
	}

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:      absDataDir,
		Port:         getEnvAsInt("TAXHAWK_PORT", 8080),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Pretty:       getEnvAsBool("LOG_PRETTY", false),
		CacheDBPath:  getEnv("TAXHAWK_CACHE_DB", filepath.Join(absDataDir, "reports.db")),
		CronSchedule: getEnv("TAXHAWK_CRON_SCHEDULE", "0 2 * * *"),
		S3Bucket:     getEnv("TAXHAWK_S3_BUCKET", ""),
		S3Region:     getEnv("TAXHAWK_S3_REGION", "ap-south-1"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks invariants on the loaded configuration.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// ArchiveEnabled reports whether S3 archival is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.S3Bucket != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
