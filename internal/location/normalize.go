package location

import (
	"errors"
	"strings"

	"github.com/openplaces/placerank/internal/geo"
)

// Normalization errors for malformed records.
var (
	ErrMissingID   = errors.New("location record missing id")
	ErrMissingName = errors.New("location record missing name")
)

// DefaultCategory is substituted when a record carries no categories, so
// category-based display and matching always have something to work with.
const DefaultCategory = "Place"

// Normalized is a Location plus the derived fields the scorer needs, computed
// once at the boundary instead of repeatedly inside scoring code.
type Normalized struct {
	Location

	// SearchText is the case-folded concatenation of name, description, and
	// categories used for keyword matching.
	SearchText string

	// Geohash is the coarse display geohash, empty without coordinates.
	Geohash string
}

// Normalize validates and normalizes a raw location record.
//
// It trims identity fields, substitutes DefaultCategory for an empty category
// list, builds the search text blob, and derives the display geohash when
// coordinates are present. The input is not mutated.
//
// Returns ErrMissingID or ErrMissingName for records that cannot be ranked.
func Normalize(loc Location) (Normalized, error) {
	loc.ID = strings.TrimSpace(loc.ID)
	loc.Name = strings.TrimSpace(loc.Name)

	if loc.ID == "" {
		return Normalized{}, ErrMissingID
	}
	if loc.Name == "" {
		return Normalized{}, ErrMissingName
	}

	// Copy the category slice so the caller's record stays untouched.
	categories := make([]string, 0, len(loc.Categories)+1)
	for _, c := range loc.Categories {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		categories = append(categories, DefaultCategory)
	}
	loc.Categories = categories

	n := Normalized{
		Location:   loc,
		SearchText: buildSearchText(loc),
	}

	if loc.Coordinates != nil {
		n.Geohash = geo.Encode(loc.Coordinates.Lat, loc.Coordinates.Lng, geo.DisplayPrecision)
	}

	return n, nil
}

// buildSearchText concatenates and case-folds the text fields used for
// keyword matching.
func buildSearchText(loc Location) string {
	var b strings.Builder
	b.WriteString(loc.Name)
	if loc.Description != "" {
		b.WriteByte(' ')
		b.WriteString(loc.Description)
	}
	for _, c := range loc.Categories {
		b.WriteByte(' ')
		b.WriteString(c)
	}
	return strings.ToLower(b.String())
}
