package config

import (
	"os"
	"strconv"

	"cleanser/internal"
	"cleanser/internal/errors"
)

// DefaultInputFile is the workbook processed when EXCEL_FILE is unset.
const DefaultInputFile = "Apollo_Data_20250108114847.xlsx"

// Config represents the complete application configuration
type Config struct {
	Paths      PathConfig
	Processing ProcessingConfig
	Logging    LoggingConfig
}

// PathConfig holds file system paths
type PathConfig struct {
	ExcelFile string
	OutputDir string
}

// ProcessingConfig holds dataset processing settings
type ProcessingConfig struct {
	SheetName  string // empty means the first sheet
	MaxWorkers int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string // ERROR, WARN, INFO or DEBUG
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths:      *loadPathConfig(),
		Processing: *loadProcessingConfig(),
		Logging:    *loadLoggingConfig(),
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Paths: PathConfig{
			ExcelFile: DefaultInputFile,
			OutputDir: ".",
		},
		Processing: ProcessingConfig{
			MaxWorkers: 1,
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

func loadPathConfig() *PathConfig {
	return &PathConfig{
		ExcelFile: getEnvOrDefault("EXCEL_FILE", DefaultInputFile),
		OutputDir: getEnvOrDefault("OUTPUT_DIR", "."),
	}
}

func loadProcessingConfig() *ProcessingConfig {
	return &ProcessingConfig{
		SheetName:  getEnvOrDefault("SHEET_NAME", ""),
		MaxWorkers: getEnvIntOrDefault("MAX_WORKERS", 1),
	}
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}
}

// Validate checks the configuration for values the processor cannot use
func (c *Config) Validate() error {
	if c.Paths.OutputDir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if c.Processing.MaxWorkers < 1 {
		return errors.ConfigInvalid("MAX_WORKERS must be at least 1")
	}
	if _, ok := internal.ParseLogLevel(c.Logging.Level); !ok {
		return errors.ConfigInvalid("unknown LOG_LEVEL " + c.Logging.Level)
	}
	return nil
}

// Logger returns a logger at the configured level
func (c *Config) Logger() *internal.Logger {
	level, _ := internal.ParseLogLevel(c.Logging.Level)
	return internal.NewLogger(level)
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
