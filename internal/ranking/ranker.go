package ranking

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/openplaces/placerank/internal/geo"
	"github.com/openplaces/placerank/internal/location"
)

// Ranker scores and orders location candidates for a user context. A Ranker
// is immutable after construction and safe for concurrent use: every call is
// a pure function of its inputs and the fixed configuration.
type Ranker struct {
	cfg     *Config
	logger  *slog.Logger
	metrics *Metrics
}

// NewRanker builds a Ranker after validating the configuration. Config
// problems fail fast here rather than skewing every subsequent ranking call.
// A nil logger falls back to slog.Default; metrics may be nil.
func NewRanker(cfg *Config, logger *slog.Logger, metrics *Metrics) (*Ranker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ranker{cfg: cfg, logger: logger, metrics: metrics}, nil
}

// Config returns the ranker's configuration.
func (r *Ranker) Config() *Config {
	return r.cfg
}

// Rank scores every candidate against the user context and returns the top N
// in descending score order.
//
// Scoring per candidate:
//   - distance term: -distance * penalty factor when both the user and the
//     candidate have coordinates; zero (neutral) when either is missing, so
//     unknown position is never treated as position (0, 0) or penalized
//     beyond a maximally distant candidate
//   - keyword term: context keyword hits plus interest hits, independently
//     weighted
//   - quality term: verified / featured / rating-threshold bonuses
//
// Malformed candidates (missing id or name) are skipped with a logged
// warning; one bad record never aborts the call. Ties keep input order
// (stable sort), so identical inputs always produce identical output. The
// input slice is not mutated. Fewer candidates than topN returns all of
// them; topN <= 0 returns an empty slice.
func (r *Ranker) Rank(locations []location.Location, userCtx location.UserContext, topN int) []location.ScoredLocation {
	start := time.Now()
	rankID := uuid.NewString()

	if r.metrics != nil {
		r.metrics.IncRankCalls()
		defer func() {
			r.metrics.ObserveRankLatency(time.Since(start).Seconds())
		}()
	}

	contextKeywords := ContextKeywords(r.cfg.ContextKeywordTable, userCtx.ContextKey)

	scored := make([]location.ScoredLocation, 0, len(locations))
	for i, loc := range locations {
		norm, err := location.Normalize(loc)
		if err != nil {
			r.logger.Warn("skipping malformed location record",
				"rank_id", rankID,
				"index", i,
				"error", err)
			if r.metrics != nil {
				r.metrics.IncCandidatesSkipped()
			}
			continue
		}

		result := location.ScoredLocation{
			Location: norm.Location,
			Geohash:  norm.Geohash,
		}

		var score float64

		if userCtx.Coordinates != nil && norm.Coordinates != nil {
			distance, err := geo.Distance(
				userCtx.Coordinates.Lat, userCtx.Coordinates.Lng,
				norm.Coordinates.Lat, norm.Coordinates.Lng,
				r.cfg.DistanceUnit,
			)
			if err != nil {
				// Unknown distance stays neutral; a bad coordinate must not
				// sink an otherwise valid candidate.
				r.logger.Warn("could not compute distance for location",
					"rank_id", rankID,
					"location_id", norm.ID,
					"error", err)
			} else {
				result.Distance = &distance
				score += DistanceScore(distance, r.cfg.DistancePenaltyFactor)
			}
		}

		score += KeywordScore(norm.SearchText, contextKeywords, r.cfg.ContextKeywordWeight)
		score += KeywordScore(norm.SearchText, userCtx.Interests, r.cfg.InterestKeywordWeight)
		score += QualityBonus(norm.Location, r.cfg)

		result.Score = score
		scored = append(scored, result)

		if r.metrics != nil {
			r.metrics.IncCandidatesScored()
		}
	}

	// Stable sort keeps input order for equal scores, making output
	// deterministic for identical inputs.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topN < 0 {
		topN = 0
	}
	if len(scored) > topN {
		scored = scored[:topN]
	}

	return scored
}
