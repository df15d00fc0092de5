package ranking

import "github.com/openplaces/placerank/internal/location"

// DistanceScore converts a known distance into its score contribution.
// Closer candidates lose less: the contribution is -distance * penaltyFactor,
// so it is never positive for a non-negative penalty factor.
//
// Callers must only invoke this with a computed distance. When either side of
// a ranking call lacks coordinates the distance term is omitted entirely
// (neutral zero), never approximated.
func DistanceScore(distance float64, penaltyFactor float64) float64 {
	return -distance * penaltyFactor
}

// QualityBonus computes the additive quality contribution for a candidate:
// a fixed bonus for verified places, a smaller one for featured places, and a
// threshold bonus for highly rated places. A nil rating earns nothing; it is
// unknown, not zero.
func QualityBonus(loc location.Location, cfg *Config) float64 {
	var bonus float64

	if loc.Verified {
		bonus += cfg.VerifiedBonus
	}
	if loc.Featured {
		bonus += cfg.FeaturedBonus
	}
	if loc.AverageRating != nil && *loc.AverageRating >= cfg.RatingBonusThreshold {
		bonus += cfg.RatingBonusValue
	}

	return bonus
}
