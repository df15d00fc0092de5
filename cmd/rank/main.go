// Package main is the entry point for the rank CLI, which scores a location
// dataset for a user context and prints the top results as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/openplaces/placerank/internal/config"
	"github.com/openplaces/placerank/internal/dataset"
	"github.com/openplaces/placerank/internal/geo"
	"github.com/openplaces/placerank/internal/location"
	"github.com/openplaces/placerank/internal/ranking"
)

func main() {
	help := flag.Bool("help", false, "display help message")
	configPath := flag.String("config", "", "path to YAML config file")
	calibrationPath := flag.String("calibration", "", "path to ranking calibration JSON (overrides config)")
	datasetPath := flag.String("dataset", "", "path to location dataset (.json or .cbor, overrides config)")
	near := flag.String("near", "", "requester coordinates as \"lat,lng\" (omit to skip distance scoring)")
	contextKey := flag.String("context", "", "context hint: date, group, family, solo, friend_group")
	interests := flag.String("interests", "", "comma-separated interest keywords")
	topN := flag.Int("top", 0, "number of results to return (overrides config)")
	flag.Parse()

	if *help {
		fmt.Println("placerank — location relevance ranking")
		fmt.Println()
		fmt.Println("Usage: rank [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg, errs := config.Load(*configPath)
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		}
		os.Exit(1)
	}

	logger := NewLogger(cfg.Env, os.Stderr)
	slog.SetDefault(logger)

	if *calibrationPath == "" {
		*calibrationPath = cfg.CalibrationPath
	}
	rankCfg, err := ranking.LoadCalibration(*calibrationPath)
	if err != nil {
		logger.Warn("using default ranking config", "error", err)
	}
	applyServiceOverrides(rankCfg, cfg)

	metrics := ranking.NewMetrics()
	if err := metrics.Register(prometheus.NewRegistry()); err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	// Bad weights are fatal before any ranking happens.
	ranker, err := ranking.NewRanker(rankCfg, logger, metrics)
	if err != nil {
		logger.Error("invalid ranking config", "error", err)
		os.Exit(1)
	}

	if *datasetPath == "" {
		*datasetPath = cfg.DatasetPath
	}
	if *datasetPath == "" {
		fmt.Fprintln(os.Stderr, "a dataset is required: pass -dataset or set DATASET_PATH")
		os.Exit(2)
	}

	locations, err := dataset.Load(*datasetPath)
	if err != nil {
		logger.Error("failed to load dataset", "path", *datasetPath, "error", err)
		os.Exit(1)
	}

	userCtx := location.UserContext{
		ContextKey: *contextKey,
		Interests:  splitInterests(*interests),
	}
	if *near != "" {
		point, err := parsePoint(*near)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -near value %q: %v\n", *near, err)
			os.Exit(2)
		}
		userCtx.Coordinates = point
	}

	n := *topN
	if n <= 0 {
		n = cfg.TopN
	}

	results := ranker.Rank(locations, userCtx, n)
	logger.Info("ranked locations",
		"candidates", len(locations),
		"results", len(results),
		"context", *contextKey)

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		logger.Error("failed to encode results", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// NewLogger creates a structured logger for the environment: JSON at info
// level in production, text at debug level otherwise. Logs go to w, which
// main points at stderr so stdout carries only the result payload.
func NewLogger(env string, w io.Writer) *slog.Logger {
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler)
}

// applyServiceOverrides layers explicitly-set service config values over the
// calibration-derived ranking config. An unset distance unit leaves the
// calibration file's choice in place.
func applyServiceOverrides(rankCfg *ranking.Config, cfg *config.Config) {
	if cfg.DistanceUnit != "" {
		rankCfg.DistanceUnit = geo.Unit(cfg.DistanceUnit)
	}
}

// parsePoint parses a "lat,lng" pair into a Point.
func parsePoint(s string) (*location.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected \"lat,lng\"")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	return &location.Point{Lat: lat, Lng: lng}, nil
}

// splitInterests splits a comma-separated interest list, dropping blanks.
func splitInterests(s string) []string {
	if s == "" {
		return nil
	}
	var interests []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			interests = append(interests, part)
		}
	}
	return interests
}
