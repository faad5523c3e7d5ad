// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/David-Botos/data-cleanse/pkg/schema"
)

// Config represents the application configuration. It is built once and
// passed into the pipeline at construction time; nothing mutates it
// afterwards.
type Config struct {
	// Input
	InputPath string

	// Output prefixes; chunk and final file names are derived from these.
	CleanPrefix   string
	GarbagePrefix string

	// Processing settings
	ChunkSize     int
	Translations  schema.Translation
	DropColumns   []string // canonical columns removed from clean output
	AddressParts  []string // canonical columns merged into full_address
	DuplicateKeys []string // source columns forming the duplicate key

	// Logging
	LogLevel  string
	LogFormat string
}

// Default returns the configuration for vehicle-owner exports.
func Default() *Config {
	return &Config{
		ChunkSize:    250000,
		Translations: schema.DefaultTranslations(),
		DropColumns: []string{
			"gender", "industry", "monthly_salary", "marital_status",
			"education", "brand", "car_series", "car_model",
			"configuration", "engine_number", "unnamed:_21", "color",
		},
		AddressParts:  []string{"address", "city", "province", "postal_code"},
		DuplicateKeys: []string{"车架号", "身份证"},
		LogLevel:      "info",
		LogFormat:     "json",
	}
}

// Load builds a configuration from defaults with environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	cfg.InputPath = getEnv("INPUT_PATH", cfg.InputPath)
	cfg.CleanPrefix = getEnv("CLEAN_PREFIX", cfg.CleanPrefix)
	cfg.GarbagePrefix = getEnv("GARBAGE_PREFIX", cfg.GarbagePrefix)
	cfg.ChunkSize = getEnvAsInt("CHUNK_SIZE", cfg.ChunkSize)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path is required")
	}

	if c.CleanPrefix == "" {
		return errors.New("clean output prefix is required")
	}

	if c.GarbagePrefix == "" {
		return errors.New("garbage output prefix is required")
	}

	if c.ChunkSize <= 0 {
		return errors.New("chunk size must be positive")
	}

	if len(c.Translations) == 0 {
		return errors.New("header translation table is required")
	}

	if len(c.DuplicateKeys) == 0 {
		return errors.New("at least one duplicate key column is required")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
