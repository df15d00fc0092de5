// Package location provides the location records and user context consumed by
// the ranker, with a single normalization step at the boundary.
package location

// Point represents a geographic coordinate with latitude and longitude.
type Point struct {
	Lat float64 `json:"lat" cbor:"lat"`
	Lng float64 `json:"lng" cbor:"lng"`
}

// Location represents a candidate place to be ranked. All fields other than
// ID and Name are optional; Coordinates is nil when the place has no known
// position, never a zero-value point.
type Location struct {
	ID          string   `json:"id" cbor:"id"`
	Name        string   `json:"name" cbor:"name"`
	Description string   `json:"description,omitempty" cbor:"description,omitempty"`
	Categories  []string `json:"categories,omitempty" cbor:"categories,omitempty"`

	Coordinates *Point `json:"coordinates,omitempty" cbor:"coordinates,omitempty"`

	// AverageRating is nil when unknown. Missing ratings earn no bonus; they
	// are never backfilled with a placeholder value.
	AverageRating *float64 `json:"average_rating,omitempty" cbor:"average_rating,omitempty"`

	Verified bool `json:"is_verified,omitempty" cbor:"is_verified,omitempty"`
	Featured bool `json:"is_featured,omitempty" cbor:"is_featured,omitempty"`
}

// UserContext describes the requester a ranking call is personalized for.
// Coordinates is nil when the requester's position is unknown, in which case
// distance plays no part in scoring.
type UserContext struct {
	Coordinates *Point   `json:"coordinates,omitempty"`
	Interests   []string `json:"interests,omitempty"`

	// ContextKey is a fixed categorical hint ("date", "group", "family",
	// "solo", "friend_group") selecting the context keyword set. Unrecognized
	// keys fall back to the default keyword set.
	ContextKey string `json:"context,omitempty"`
}

// ScoredLocation is a ranked output record: the input location plus its
// composite score, its distance from the requester (nil when unknown), and a
// coarse display geohash.
type ScoredLocation struct {
	Location

	Score float64 `json:"score"`

	// Distance is in the unit of the ranking call's configuration. Nil means
	// unknown, which is distinct from zero.
	Distance *float64 `json:"distance,omitempty"`

	// Geohash is a coarse display location, empty when coordinates are
	// missing.
	Geohash string `json:"geohash,omitempty"`
}
