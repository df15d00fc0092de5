package ranking

import (
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/openplaces/placerank/internal/location"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	if m == nil {
		t.Fatal("NewMetrics() returned nil")
	}

	if got := len(m.Collectors()); got != 4 {
		t.Errorf("expected 4 collectors, got %d", got)
	}
}

func TestMetrics_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		m := NewMetrics()
		reg := prometheus.NewRegistry()

		if err := m.Register(reg); err != nil {
			t.Errorf("Register() returned error: %v", err)
		}

		families, err := reg.Gather()
		if err != nil {
			t.Errorf("Gather() returned error: %v", err)
		}

		expectedNames := map[string]bool{
			MetricRankCalls:         false,
			MetricCandidatesScored:  false,
			MetricCandidatesSkipped: false,
			MetricRankLatency:       false,
		}

		for _, family := range families {
			if _, ok := expectedNames[family.GetName()]; ok {
				expectedNames[family.GetName()] = true
			}
		}

		for name, found := range expectedNames {
			if !found {
				t.Errorf("metric %s not found in gathered metrics", name)
			}
		}
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		m1 := NewMetrics()
		m2 := NewMetrics()
		reg := prometheus.NewRegistry()

		if err := m1.Register(reg); err != nil {
			t.Fatalf("first Register() returned error: %v", err)
		}

		if err := m2.Register(reg); err == nil {
			t.Error("second Register() should have returned an error")
		}
	})
}

func getCounterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.(prometheus.Metric).Write(&m); err != nil {
		return -1
	}
	return m.GetCounter().GetValue()
}

func TestMetricsCountRankActivity(t *testing.T) {
	m := NewMetrics()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := NewRanker(DefaultConfig(), logger, m)
	if err != nil {
		t.Fatalf("failed to build ranker: %v", err)
	}

	locations := []location.Location{
		{ID: "loc-1", Name: "Good Record"},
		{ID: "", Name: "Malformed"},
		{ID: "loc-3", Name: "Another Good Record"},
	}

	r.Rank(locations, location.UserContext{}, 5)
	r.Rank(locations, location.UserContext{}, 5)

	if got := getCounterValue(m.rankCalls); got != 2 {
		t.Errorf("rank calls = %f, want 2", got)
	}
	if got := getCounterValue(m.candidatesScored); got != 4 {
		t.Errorf("candidates scored = %f, want 4", got)
	}
	if got := getCounterValue(m.candidatesSkipped); got != 2 {
		t.Errorf("candidates skipped = %f, want 2", got)
	}
}

func TestMetricsObserveRankLatency(t *testing.T) {
	m := NewMetrics()
	m.ObserveRankLatency(0.002)
	m.ObserveRankLatency(0.005)

	var metric dto.Metric
	if err := m.rankLatency.(prometheus.Metric).Write(&metric); err != nil {
		t.Fatalf("failed to read histogram: %v", err)
	}
	if got := metric.GetHistogram().GetSampleCount(); got != 2 {
		t.Errorf("sample count = %d, want 2", got)
	}
}
