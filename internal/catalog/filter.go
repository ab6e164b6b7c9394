package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/osse101/SkinTrade_Go/internal/domain"
)

// Filter is the active tab plus the search box contents.
type Filter struct {
	Tab   string
	Query string
}

// Fold case-folds s for case-insensitive comparison. A Caser keeps state, so each
// call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// NormalizeTag folds a game tag and keeps only letters and digits, so "CS:GO" and
// "csgo" compare equal.
func NormalizeTag(s string) string {
	folded := Fold(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchesTab reports whether skin belongs to tab. An empty tab or TabAll matches everything.
func MatchesTab(skin domain.Skin, tab string) bool {
	key := NormalizeTag(tab)
	if key == "" || key == TabAll {
		return true
	}
	return NormalizeTag(skin.Game) == key
}

// MatchesQuery reports whether the skin name contains query, ignoring case. The query
// is used as typed, spaces included.
func MatchesQuery(skin domain.Skin, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(Fold(skin.Name), Fold(query))
}

// Matches is the conjunction of the tab and search predicates.
func (f Filter) Matches(skin domain.Skin) bool {
	return MatchesTab(skin, f.Tab) && MatchesQuery(skin, f.Query)
}

// Apply returns the skins matching f, keeping their order.
func Apply(skins []domain.Skin, f Filter) []domain.Skin {
	out := make([]domain.Skin, 0, len(skins))
	for _, skin := range skins {
		if f.Matches(skin) {
			out = append(out, skin)
		}
	}
	return out
}
