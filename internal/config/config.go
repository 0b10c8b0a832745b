package config

import (
	"os"
	"strconv"

	"steplab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Input  InputConfig
	Output OutputConfig
	Source SourceConfig
	Plot   PlotConfig
}

// InputConfig holds the location of the raw activity table
type InputConfig struct {
	CSVPath string
}

// OutputConfig holds where the report bundle is written
type OutputConfig struct {
	Dir string
}

// SourceConfig holds the bootstrap archive settings
type SourceConfig struct {
	URL         string
	ArchivePath string
}

// PlotConfig holds figure rendering settings
type PlotConfig struct {
	HistogramBins int
	WidthInches   float64
	HeightInches  float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Input: InputConfig{
			CSVPath: getEnvOrDefault("STEPLAB_INPUT", "data/activity.csv"),
		},
		Output: OutputConfig{
			Dir: getEnvOrDefault("STEPLAB_OUT", "report"),
		},
		Source: SourceConfig{
			URL:         getEnvOrDefault("STEPLAB_SOURCE_URL", "https://d396qusza40orc.cloudfront.net/repdata%2Fdata%2Factivity.zip"),
			ArchivePath: getEnvOrDefault("STEPLAB_ARCHIVE", "data/activity.zip"),
		},
		Plot: PlotConfig{
			HistogramBins: getEnvIntOrDefault("STEPLAB_HIST_BINS", 16),
			WidthInches:   getEnvFloatOrDefault("STEPLAB_PLOT_WIDTH", 7),
			HeightInches:  getEnvFloatOrDefault("STEPLAB_PLOT_HEIGHT", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Input.CSVPath == "" {
		return errors.ConfigInvalid("input CSV path is required")
	}
	if config.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if config.Plot.HistogramBins < 1 {
		return errors.ConfigInvalid("histogram bin count must be positive")
	}
	if config.Plot.WidthInches <= 0 || config.Plot.HeightInches <= 0 {
		return errors.ConfigInvalid("plot dimensions must be positive")
	}
	return nil
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

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
