package ranking

import "strings"

// DefaultContextKey is the keyword table entry used when a context key is
// missing or unrecognized. Unknown keys fall back; they do not error.
const DefaultContextKey = "default"

// DefaultContextKeywordTable returns the built-in context-to-keyword mapping.
// The table is configuration, not logic: callers can replace it wholesale via
// Config.ContextKeywordTable or a calibration file.
func DefaultContextKeywordTable() map[string][]string {
	return map[string][]string{
		"date":            {"romantic", "cozy", "intimate", "wine", "dinner", "scenic", "rooftop"},
		"group":           {"bar", "activity", "games", "brewery", "karaoke", "spacious"},
		"family":          {"family", "kids", "park", "playground", "museum", "casual"},
		"solo":            {"cafe", "quiet", "coffee", "book", "walk", "study"},
		"friend_group":    {"bar", "activity", "brunch", "games", "patio", "live music"},
		DefaultContextKey: {"popular", "local", "food", "park", "coffee"},
	}
}

// ContextKeywords looks up the keyword set for a context key, falling back to
// the table's default entry for empty or unrecognized keys.
func ContextKeywords(table map[string][]string, key string) []string {
	if keywords, ok := table[strings.ToLower(strings.TrimSpace(key))]; ok {
		return keywords
	}
	return table[DefaultContextKey]
}

// KeywordScore scores a text blob against a keyword set. Each keyword that
// appears in the text as a case-insensitive substring adds weight to the
// running score; hits accumulate additively with no normalization by text
// length. Substring containment is intentional: location text is informal
// user-generated prose, not tokenizable documents.
func KeywordScore(text string, keywords []string, weight float64) float64 {
	if text == "" || weight == 0 {
		return 0
	}

	folded := strings.ToLower(text)

	var score float64
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(folded, keyword) {
			score += weight
		}
	}
	return score
}
