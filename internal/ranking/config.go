package ranking

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/openplaces/placerank/internal/geo"
)

// Configuration validation errors. Config problems are the one failure class
// that is fatal at call time: silently ranking with wrong weights would
// produce misleading results rather than an obviously broken one.
var (
	ErrNilConfig               = errors.New("ranking config must not be nil")
	ErrInvalidDistanceUnit     = errors.New("distance_unit must be \"mi\" or \"km\"")
	ErrNegativeDistancePenalty = errors.New("distance_penalty_factor must be non-negative")
	ErrNegativeContextWeight   = errors.New("context_keyword_weight must be non-negative")
	ErrNegativeInterestWeight  = errors.New("interest_keyword_weight must be non-negative")
	ErrNegativeVerifiedBonus   = errors.New("verified_bonus must be non-negative")
	ErrNegativeFeaturedBonus   = errors.New("featured_bonus must be non-negative")
	ErrInvalidRatingThreshold  = errors.New("rating_bonus_threshold must be between 0 and 5")
	ErrNegativeRatingBonus     = errors.New("rating_bonus_value must be non-negative")
	ErrMissingKeywordTable     = errors.New("context_keyword_table must not be empty")
	ErrMissingDefaultKeywords  = errors.New("context_keyword_table must contain a \"default\" entry")
)

// Config holds every knob of the composite ranker. All weights are additive
// score contributions; the distance penalty is applied per unit of distance.
type Config struct {
	DistanceUnit          geo.Unit `json:"distance_unit"`
	DistancePenaltyFactor float64  `json:"distance_penalty_factor"`

	ContextKeywordWeight  float64 `json:"context_keyword_weight"`
	InterestKeywordWeight float64 `json:"interest_keyword_weight"`

	VerifiedBonus        float64 `json:"verified_bonus"`
	FeaturedBonus        float64 `json:"featured_bonus"`
	RatingBonusThreshold float64 `json:"rating_bonus_threshold"`
	RatingBonusValue     float64 `json:"rating_bonus_value"`

	// ContextKeywordTable maps a context key to its keyword set. It must
	// contain a "default" entry used as the fallback for unrecognized keys.
	ContextKeywordTable map[string][]string `json:"context_keyword_table"`
}

// CalibrationConfig represents the JSON structure of the calibration file.
type CalibrationConfig struct {
	Version string               `json:"version"` // Config version for future compatibility
	Weights CalibrationOverrides `json:"weights"` // Weight overrides
}

// CalibrationOverrides mirrors Config with pointer fields so a calibration
// file can distinguish "field absent" from an explicit zero. A nil field
// leaves the base value untouched; a present field always wins, including
// zero values such as turning a bonus off.
type CalibrationOverrides struct {
	DistanceUnit          *geo.Unit `json:"distance_unit"`
	DistancePenaltyFactor *float64  `json:"distance_penalty_factor"`

	ContextKeywordWeight  *float64 `json:"context_keyword_weight"`
	InterestKeywordWeight *float64 `json:"interest_keyword_weight"`

	VerifiedBonus        *float64 `json:"verified_bonus"`
	FeaturedBonus        *float64 `json:"featured_bonus"`
	RatingBonusThreshold *float64 `json:"rating_bonus_threshold"`
	RatingBonusValue     *float64 `json:"rating_bonus_value"`

	ContextKeywordTable map[string][]string `json:"context_keyword_table"`
}

// DefaultConfig returns the default ranking configuration.
//
// The default scales put one context keyword hit (2.0) on par with being
// roughly 20 distance units closer (0.1 per unit), with verification worth a
// bit less than one context hit. Interest hits count half a context hit since
// interests are broad free text rather than an explicit ask.
func DefaultConfig() *Config {
	return &Config{
		DistanceUnit:          geo.Miles,
		DistancePenaltyFactor: 0.1,
		ContextKeywordWeight:  2.0,
		InterestKeywordWeight: 1.0,
		VerifiedBonus:         1.5,
		FeaturedBonus:         0.75,
		RatingBonusThreshold:  4.0,
		RatingBonusValue:      1.0,
		ContextKeywordTable:   DefaultContextKeywordTable(),
	}
}

// Validate checks the configuration and returns all problems joined into a
// single error, or nil if the config is usable.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	var errs []error

	if _, err := geo.ParseUnit(string(c.DistanceUnit)); err != nil {
		errs = append(errs, ErrInvalidDistanceUnit)
	}
	if c.DistancePenaltyFactor < 0 {
		errs = append(errs, ErrNegativeDistancePenalty)
	}
	if c.ContextKeywordWeight < 0 {
		errs = append(errs, ErrNegativeContextWeight)
	}
	if c.InterestKeywordWeight < 0 {
		errs = append(errs, ErrNegativeInterestWeight)
	}
	if c.VerifiedBonus < 0 {
		errs = append(errs, ErrNegativeVerifiedBonus)
	}
	if c.FeaturedBonus < 0 {
		errs = append(errs, ErrNegativeFeaturedBonus)
	}
	if c.RatingBonusThreshold < 0 || c.RatingBonusThreshold > 5 {
		errs = append(errs, ErrInvalidRatingThreshold)
	}
	if c.RatingBonusValue < 0 {
		errs = append(errs, ErrNegativeRatingBonus)
	}
	if len(c.ContextKeywordTable) == 0 {
		errs = append(errs, ErrMissingKeywordTable)
	} else if len(c.ContextKeywordTable[DefaultContextKey]) == 0 {
		errs = append(errs, ErrMissingDefaultKeywords)
	}

	return errors.Join(errs...)
}

// LoadCalibration loads ranking configuration overrides from a JSON
// calibration file and merges them over the defaults.
//
// An empty path returns the defaults. If the file cannot be read or parsed,
// the defaults are returned together with the error so callers can degrade
// gracefully. Partial calibration files are supported; only the fields they
// set are overridden.
func LoadCalibration(filePath string) (*Config, error) {
	if filePath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		slog.Warn("failed to read calibration file, using defaults",
			"path", filePath,
			"error", err)
		return DefaultConfig(), fmt.Errorf("failed to read calibration file: %w", err)
	}

	var calibration CalibrationConfig
	if err := json.Unmarshal(data, &calibration); err != nil {
		slog.Warn("failed to parse calibration file, using defaults",
			"path", filePath,
			"error", err)
		return DefaultConfig(), fmt.Errorf("failed to parse calibration file: %w", err)
	}

	defaults := DefaultConfig()
	merged := MergeCalibration(defaults, &calibration.Weights)
	logCalibrationOverrides(defaults, merged)

	return merged, nil
}

// MergeCalibration merges override values onto a base configuration. Only
// fields present in the calibration file are applied, so a partial file
// leaves the remaining fields at their base values while explicit zeros
// still take effect. A non-empty keyword table replaces the base table
// wholesale rather than merging per key.
func MergeCalibration(base *Config, override *CalibrationOverrides) *Config {
	if base == nil {
		return DefaultConfig()
	}
	if override == nil {
		result := *base
		return &result
	}

	result := *base

	if override.DistanceUnit != nil {
		result.DistanceUnit = *override.DistanceUnit
	}
	if override.DistancePenaltyFactor != nil {
		result.DistancePenaltyFactor = *override.DistancePenaltyFactor
	}
	if override.ContextKeywordWeight != nil {
		result.ContextKeywordWeight = *override.ContextKeywordWeight
	}
	if override.InterestKeywordWeight != nil {
		result.InterestKeywordWeight = *override.InterestKeywordWeight
	}
	if override.VerifiedBonus != nil {
		result.VerifiedBonus = *override.VerifiedBonus
	}
	if override.FeaturedBonus != nil {
		result.FeaturedBonus = *override.FeaturedBonus
	}
	if override.RatingBonusThreshold != nil {
		result.RatingBonusThreshold = *override.RatingBonusThreshold
	}
	if override.RatingBonusValue != nil {
		result.RatingBonusValue = *override.RatingBonusValue
	}
	if len(override.ContextKeywordTable) > 0 {
		result.ContextKeywordTable = override.ContextKeywordTable
	}

	return &result
}

// logCalibrationOverrides logs which fields were overridden from defaults.
func logCalibrationOverrides(defaults *Config, loaded *Config) {
	var overrides []string

	if loaded.DistanceUnit != defaults.DistanceUnit {
		overrides = append(overrides, fmt.Sprintf("distance_unit: %s -> %s",
			defaults.DistanceUnit, loaded.DistanceUnit))
	}
	if loaded.DistancePenaltyFactor != defaults.DistancePenaltyFactor {
		overrides = append(overrides, fmt.Sprintf("distance_penalty_factor: %.2f -> %.2f",
			defaults.DistancePenaltyFactor, loaded.DistancePenaltyFactor))
	}
	if loaded.ContextKeywordWeight != defaults.ContextKeywordWeight {
		overrides = append(overrides, fmt.Sprintf("context_keyword_weight: %.2f -> %.2f",
			defaults.ContextKeywordWeight, loaded.ContextKeywordWeight))
	}
	if loaded.InterestKeywordWeight != defaults.InterestKeywordWeight {
		overrides = append(overrides, fmt.Sprintf("interest_keyword_weight: %.2f -> %.2f",
			defaults.InterestKeywordWeight, loaded.InterestKeywordWeight))
	}
	if loaded.VerifiedBonus != defaults.VerifiedBonus {
		overrides = append(overrides, fmt.Sprintf("verified_bonus: %.2f -> %.2f",
			defaults.VerifiedBonus, loaded.VerifiedBonus))
	}
	if loaded.FeaturedBonus != defaults.FeaturedBonus {
		overrides = append(overrides, fmt.Sprintf("featured_bonus: %.2f -> %.2f",
			defaults.FeaturedBonus, loaded.FeaturedBonus))
	}
	if loaded.RatingBonusThreshold != defaults.RatingBonusThreshold {
		overrides = append(overrides, fmt.Sprintf("rating_bonus_threshold: %.2f -> %.2f",
			defaults.RatingBonusThreshold, loaded.RatingBonusThreshold))
	}
	if loaded.RatingBonusValue != defaults.RatingBonusValue {
		overrides = append(overrides, fmt.Sprintf("rating_bonus_value: %.2f -> %.2f",
			defaults.RatingBonusValue, loaded.RatingBonusValue))
	}
	if len(loaded.ContextKeywordTable) != len(defaults.ContextKeywordTable) {
		overrides = append(overrides, fmt.Sprintf("context_keyword_table: %d contexts -> %d contexts",
			len(defaults.ContextKeywordTable), len(loaded.ContextKeywordTable)))
	}

	if len(overrides) > 0 {
		slog.Info("loaded ranking calibration with overrides",
			"overrides", overrides)
	} else {
		slog.Info("loaded ranking calibration (using all defaults)")
	}
}
