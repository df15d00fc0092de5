package location

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	rating := 4.5

	tests := []struct {
		name           string
		loc            Location
		wantErr        error
		wantSearchText string
		wantCategories []string
		wantGeohash    string
	}{
		{
			name: "full record",
			loc: Location{
				ID:            "loc-1",
				Name:          "Blue Bottle",
				Description:   "Cozy quiet cafe",
				Categories:    []string{"Cafe", "Coffee"},
				Coordinates:   &Point{Lat: 37.7749, Lng: -122.4194},
				AverageRating: &rating,
			},
			wantSearchText: "blue bottle cozy quiet cafe cafe coffee",
			wantCategories: []string{"Cafe", "Coffee"},
			wantGeohash:    "9q8yyk",
		},
		{
			name: "missing id",
			loc: Location{
				Name: "No ID Diner",
			},
			wantErr: ErrMissingID,
		},
		{
			name: "whitespace-only id",
			loc: Location{
				ID:   "   ",
				Name: "Ghost Bar",
			},
			wantErr: ErrMissingID,
		},
		{
			name: "missing name",
			loc: Location{
				ID: "loc-2",
			},
			wantErr: ErrMissingName,
		},
		{
			name: "empty categories get the default",
			loc: Location{
				ID:   "loc-3",
				Name: "Somewhere",
			},
			wantSearchText: "somewhere place",
			wantCategories: []string{DefaultCategory},
		},
		{
			name: "blank categories are dropped before defaulting",
			loc: Location{
				ID:         "loc-4",
				Name:       "Elsewhere",
				Categories: []string{"  ", ""},
			},
			wantSearchText: "elsewhere place",
			wantCategories: []string{DefaultCategory},
		},
		{
			name: "no coordinates means no geohash",
			loc: Location{
				ID:         "loc-5",
				Name:       "Pop-up Market",
				Categories: []string{"Market"},
			},
			wantSearchText: "pop-up market market",
			wantCategories: []string{"Market"},
			wantGeohash:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.loc)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.SearchText != tt.wantSearchText {
				t.Errorf("search text: expected %q, got %q", tt.wantSearchText, got.SearchText)
			}
			if len(got.Categories) != len(tt.wantCategories) {
				t.Fatalf("categories: expected %v, got %v", tt.wantCategories, got.Categories)
			}
			for i, c := range tt.wantCategories {
				if got.Categories[i] != c {
					t.Errorf("categories[%d]: expected %q, got %q", i, c, got.Categories[i])
				}
			}
			if got.Geohash != tt.wantGeohash {
				t.Errorf("geohash: expected %q, got %q", tt.wantGeohash, got.Geohash)
			}
		})
	}
}

// TestNormalizeDoesNotMutateInput verifies the caller's record is untouched.
func TestNormalizeDoesNotMutateInput(t *testing.T) {
	loc := Location{
		ID:         "  loc-6  ",
		Name:       "  Trimmed  ",
		Categories: []string{" Cafe "},
	}

	if _, err := Normalize(loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.ID != "  loc-6  " {
		t.Errorf("input ID mutated: %q", loc.ID)
	}
	if loc.Name != "  Trimmed  " {
		t.Errorf("input Name mutated: %q", loc.Name)
	}
	if loc.Categories[0] != " Cafe " {
		t.Errorf("input Categories mutated: %v", loc.Categories)
	}
}
