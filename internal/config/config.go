// Package config provides configuration loading and validation for the rank
// CLI. It uses koanf to merge environment variables with optional file
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/openplaces/placerank/internal/geo"
)

// Config holds all configuration values for the rank CLI.
type Config struct {
	// Env selects the logging setup ("production" switches to JSON logs).
	Env string `koanf:"env"`

	// CalibrationPath points at the optional ranking calibration JSON file.
	CalibrationPath string `koanf:"calibration_path"`

	// DatasetPath is the default location dataset when no flag is given.
	DatasetPath string `koanf:"dataset_path"`

	// DistanceUnit is "mi" or "km" and applies to a whole ranking call.
	// Empty means unset, leaving the calibration file's unit in place.
	DistanceUnit string `koanf:"distance_unit"`

	// TopN is the default number of results returned per ranking call.
	TopN int `koanf:"top_n"`
}

// Configuration validation errors.
var (
	ErrInvalidTopN         = errors.New("TOP_N must be a positive integer")
	ErrInvalidDistanceUnit = errors.New("DISTANCE_UNIT must be \"mi\" or \"km\"")
)

// Default values.
const (
	DefaultEnv  = "development"
	DefaultTopN = 8
)

// Load reads configuration from environment variables and an optional YAML
// config file. Environment variables take precedence over file values.
// Returns the loaded config and a slice of validation errors (empty if
// valid). If a config file path is provided and the file cannot be loaded,
// an error is returned.
func Load(configFilePath string) (*Config, []error) {
	k := koanf.New(".")
	var loadErrs []error

	// Load from YAML file first if provided (lower precedence)
	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("failed to load config file %s: %w", configFilePath, err)}
		}
	}

	topN, topNErr := getEnvIntOrDefault("TOP_N", k.Int("top_n"), DefaultTopN)
	if topNErr != nil {
		loadErrs = append(loadErrs, topNErr)
	}

	cfg := &Config{
		Env:             getEnvOrDefaultMulti([]string{"PLACERANK_ENV", "ENV", "GO_ENV"}, k.String("env"), DefaultEnv),
		CalibrationPath: getEnvOrKoanf("CALIBRATION_PATH", k, "calibration_path"),
		DatasetPath:     getEnvOrKoanf("DATASET_PATH", k, "dataset_path"),
		DistanceUnit:    getEnvOrKoanf("DISTANCE_UNIT", k, "distance_unit"),
		TopN:            topN,
	}

	errs := cfg.Validate()
	errs = append(loadErrs, errs...)

	return cfg, errs
}

// Validate checks the configuration and returns all problems found.
func (c *Config) Validate() []error {
	var errs []error

	if c.TopN <= 0 {
		errs = append(errs, ErrInvalidTopN)
	}
	if c.DistanceUnit != "" {
		if _, err := geo.ParseUnit(c.DistanceUnit); err != nil {
			errs = append(errs, ErrInvalidDistanceUnit)
		}
	}

	return errs
}

// getEnvOrKoanf returns the environment variable value if set, otherwise the koanf value.
func getEnvOrKoanf(envKey string, k *koanf.Koanf, koanfKey string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	return k.String(koanfKey)
}

// getEnvOrDefaultMulti tries multiple environment variable keys in order.
// Returns the first non-empty value found, otherwise the koanf value, or default.
func getEnvOrDefaultMulti(envKeys []string, koanfVal string, defaultVal string) string {
	for _, key := range envKeys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	if koanfVal != "" {
		return koanfVal
	}
	return defaultVal
}

// getEnvIntOrDefault returns the environment variable as int if set,
// otherwise the koanf value, or default. Returns an error if the environment
// variable is set but cannot be parsed as an integer.
func getEnvIntOrDefault(envKey string, koanfVal int, defaultVal int) (int, error) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return defaultVal, fmt.Errorf("%s must be an integer: %w", envKey, err)
		}
		return parsed, nil
	}
	if koanfVal != 0 {
		return koanfVal, nil
	}
	return defaultVal, nil
}
