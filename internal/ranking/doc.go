// Package ranking scores and orders location candidates for local discovery,
// with calibration support for deploy-time weight tuning.
//
// Basic Usage:
//
//	// Load calibration (typically at startup)
//	cfg, err := ranking.LoadCalibration("configs/ranking.calibration.json")
//	if err != nil {
//		slog.Warn("using default ranking config", "error", err)
//	}
//
//	ranker, err := ranking.NewRanker(cfg, logger, nil)
//	if err != nil {
//		return err // bad config is fatal, not something to rank around
//	}
//
//	results := ranker.Rank(candidates, location.UserContext{
//		Coordinates: &location.Point{Lat: 40.7128, Lng: -74.0060},
//		Interests:   []string{"coffee", "hiking"},
//		ContextKey:  "solo",
//	}, 8)
//
// Scoring:
//
// Every candidate's composite score is the sum of a distance term (a penalty
// proportional to its distance from the requester, omitted when either side
// has no coordinates), a keyword term (context and interest keyword hits in
// the candidate's text), and a quality term (verified / featured / rating
// bonuses). Scoring is a pure function of the inputs and the configuration;
// ties keep input order, so results are deterministic.
//
// Calibration:
//
// The calibration system allows deploy-time tuning of ranking weights via
// JSON configuration files loaded at startup. This enables A/B testing and
// optimization without code changes (but requires a redeploy or restart to
// pick up new configuration). See configs/ranking.calibration.json for the
// default configuration.
package ranking
