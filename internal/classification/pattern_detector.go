// Package classification detects preservation and freshness signals in
// ingredient text using fixed keyword groups.
package classification

import (
	"math"
	"strings"

	"github.com/mealplanr/aisle/internal/common"
)

// boostScale converts a pattern's base confidence into an additive
// score boost. Fixed constant; the scoring tiers depend on it.
const boostScale = 3000

// Pattern is a fixed keyword group signaling preservation or freshness
// state, bound to one category and a base confidence.
type Pattern struct {
	Name       string
	Category   string
	Keywords   []string
	Confidence float64
}

// Match records one pattern group that hit the input.
type Match struct {
	Pattern    string
	Category   string
	Keywords   []string
	Confidence float64
	Boost      float64
}

// Detector evaluates ingredient text against its pattern groups.
type Detector struct {
	patterns []Pattern
}

// NewDetector creates a detector over the given pattern groups.
func NewDetector(patterns []Pattern) *Detector {
	return &Detector{patterns: patterns}
}

// Detect returns one Match per pattern group with at least one keyword
// hit. Single-word keywords match only as exact tokens so "canned"
// never fires inside an unrelated longer word; multi-word keywords
// match as whole-word-boundary substrings of the full text.
func (d *Detector) Detect(text string) []Match {
	lower := strings.ToLower(strings.TrimSpace(text))
	tokens := strings.Fields(lower)

	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = struct{}{}
	}

	var matches []Match
	for _, p := range d.patterns {
		var hits []string
		for _, kw := range p.Keywords {
			if strings.ContainsRune(kw, ' ') {
				if common.ContainsWholeWord(lower, kw) {
					hits = append(hits, kw)
				}
			} else if _, ok := tokenSet[kw]; ok {
				hits = append(hits, kw)
			}
		}

		if len(hits) > 0 {
			matches = append(matches, Match{
				Pattern:    p.Name,
				Category:   p.Category,
				Keywords:   hits,
				Confidence: p.Confidence,
				Boost:      math.Round(p.Confidence * boostScale),
			})
		}
	}

	return matches
}

// PatternCount returns the number of configured pattern groups.
func (d *Detector) PatternCount() int {
	return len(d.patterns)
}

// MaxBoost builds a category → boost map keeping the maximum boost when
// several patterns target the same category.
func MaxBoost(matches []Match) map[string]float64 {
	boosts := make(map[string]float64, len(matches))
	for _, m := range matches {
		if m.Boost > boosts[m.Category] {
			boosts[m.Category] = m.Boost
		}
	}
	return boosts
}

// Strongest returns the single highest-confidence match; earlier
// matches win ties so the result is deterministic.
func Strongest(matches []Match) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if m.Confidence > best.Confidence {
			best = m
		}
	}
	return best, true
}
