// Package main contains tests for the rank CLI helpers.
package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/openplaces/placerank/internal/config"
	"github.com/openplaces/placerank/internal/geo"
	"github.com/openplaces/placerank/internal/ranking"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLat float64
		wantLng float64
		wantErr bool
	}{
		{
			name:    "valid pair",
			input:   "40.7128,-74.0060",
			wantLat: 40.7128,
			wantLng: -74.0060,
		},
		{
			name:    "spaces around components",
			input:   " 40.7128 , -74.0060 ",
			wantLat: 40.7128,
			wantLng: -74.0060,
		},
		{
			name:    "missing component",
			input:   "40.7128",
			wantErr: true,
		},
		{
			name:    "too many components",
			input:   "40.7,-74.0,12",
			wantErr: true,
		},
		{
			name:    "non-numeric latitude",
			input:   "north,-74.0",
			wantErr: true,
		},
		{
			name:    "non-numeric longitude",
			input:   "40.7,west",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePoint(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Lat != tt.wantLat || got.Lng != tt.wantLng {
				t.Errorf("expected (%f, %f), got (%f, %f)", tt.wantLat, tt.wantLng, got.Lat, got.Lng)
			}
		})
	}
}

func TestSplitInterests(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "coffee", []string{"coffee"}},
		{"multiple", "coffee,hiking,books", []string{"coffee", "hiking", "books"}},
		{"spaces and blanks dropped", " coffee , , hiking ,", []string{"coffee", "hiking"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitInterests(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestNewLoggerWritesToGivenStream(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger("production", &logs)
	logger.Info("ranked locations", "results", 3)

	if logs.Len() == 0 {
		t.Fatal("expected log output on the log stream")
	}
	var record map[string]any
	if err := json.Unmarshal(logs.Bytes(), &record); err != nil {
		t.Fatalf("production log line is not JSON: %v", err)
	}
	if record["msg"] != "ranked locations" {
		t.Errorf("unexpected log message: %v", record["msg"])
	}
}

func TestNewLoggerDevelopmentText(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger("development", &logs)
	logger.Debug("loaded dataset", "count", 10)

	if !strings.Contains(logs.String(), "loaded dataset") {
		t.Errorf("expected debug output on the log stream, got %q", logs.String())
	}
}

func TestApplyServiceOverrides(t *testing.T) {
	tests := []struct {
		name     string
		cfgUnit  string
		wantUnit geo.Unit
	}{
		{"unset unit keeps calibration value", "", geo.Kilometers},
		{"explicit unit wins over calibration", "mi", geo.Miles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rankCfg := ranking.DefaultConfig()
			rankCfg.DistanceUnit = geo.Kilometers

			applyServiceOverrides(rankCfg, &config.Config{DistanceUnit: tt.cfgUnit})
			if rankCfg.DistanceUnit != tt.wantUnit {
				t.Errorf("expected unit %q, got %q", tt.wantUnit, rankCfg.DistanceUnit)
			}
		})
	}
}
