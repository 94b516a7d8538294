package classification

import (
	"testing"

	"github.com/mealplanr/aisle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_Detect(t *testing.T) {
	d := NewDetector(DefaultPatterns())

	tests := []struct {
		name           string
		input          string
		wantPatterns   []string
		wantCategories []string
	}{
		{
			name:           "canned keyword",
			input:          "1 canned tuna",
			wantPatterns:   []string{"Canned"},
			wantCategories: []string{model.CategoryCanned},
		},
		{
			name:           "frozen keyword",
			input:          "frozen peas",
			wantPatterns:   []string{"Frozen"},
			wantCategories: []string{model.CategoryFrozen},
		},
		{
			name:           "fresh keyword",
			input:          "fresh basil",
			wantPatterns:   []string{"Fresh"},
			wantCategories: []string{model.CategoryProduce},
		},
		{
			name:           "ground keyword",
			input:          "2 tsp ground cumin",
			wantPatterns:   []string{"Dried"},
			wantCategories: []string{model.CategoryPantry},
		},
		{
			name:           "jarred hits two groups",
			input:          "jarred olives",
			wantPatterns:   []string{"Canned", "Jarred"},
			wantCategories: []string{model.CategoryCanned, model.CategoryCanned},
		},
		{
			name:           "fresh and canned together",
			input:          "fresh tomatoes and canned beans",
			wantPatterns:   []string{"Canned", "Fresh"},
			wantCategories: []string{model.CategoryCanned, model.CategoryProduce},
		},
		{
			name:  "single-word keywords never match inside longer words",
			input: "scanned grounds freshly jars",
		},
		{
			name:  "no signal",
			input: "goat cheese",
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := d.Detect(tt.input)

			require.Len(t, matches, len(tt.wantPatterns))
			for i, m := range matches {
				assert.Equal(t, tt.wantPatterns[i], m.Pattern)
				assert.Equal(t, tt.wantCategories[i], m.Category)
				assert.NotEmpty(t, m.Keywords)
			}
		})
	}
}

func TestDetector_Detect_boost(t *testing.T) {
	d := NewDetector(DefaultPatterns())

	matches := d.Detect("frozen berries")
	require.Len(t, matches, 1)
	// 0.9 × 3000, rounded.
	assert.InDelta(t, 2700, matches[0].Boost, 0.001)

	matches = d.Detect("canned soup")
	require.Len(t, matches, 1)
	assert.InDelta(t, 2400, matches[0].Boost, 0.001)
}

func TestDetector_Detect_multiWordKeyword(t *testing.T) {
	d := NewDetector([]Pattern{
		{
			Name:       "FlashFrozen",
			Category:   model.CategoryFrozen,
			Keywords:   []string{"flash frozen"},
			Confidence: 0.9,
		},
	})

	tests := []struct {
		name      string
		input     string
		wantMatch bool
	}{
		{name: "whole phrase", input: "flash frozen berries", wantMatch: true},
		{name: "boundary on both sides", input: "berries, flash frozen", wantMatch: true},
		{name: "embedded in longer word", input: "flash frozenberries", wantMatch: false},
		{name: "phrase split", input: "flash-dried frozen berries", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := d.Detect(tt.input)
			if tt.wantMatch {
				assert.Len(t, matches, 1)
			} else {
				assert.Empty(t, matches)
			}
		})
	}
}

func TestMaxBoost(t *testing.T) {
	matches := []Match{
		{Pattern: "Canned", Category: model.CategoryCanned, Boost: 2400},
		{Pattern: "Jarred", Category: model.CategoryCanned, Boost: 2400},
		{Pattern: "Frozen", Category: model.CategoryFrozen, Boost: 2700},
	}

	boosts := MaxBoost(matches)
	assert.Len(t, boosts, 2)
	assert.InDelta(t, 2400, boosts[model.CategoryCanned], 0.001)
	assert.InDelta(t, 2700, boosts[model.CategoryFrozen], 0.001)
}

func TestStrongest(t *testing.T) {
	_, ok := Strongest(nil)
	assert.False(t, ok)

	matches := []Match{
		{Pattern: "Canned", Confidence: 0.8},
		{Pattern: "Frozen", Confidence: 0.9},
		{Pattern: "Jarred", Confidence: 0.8},
	}

	best, ok := Strongest(matches)
	require.True(t, ok)
	assert.Equal(t, "Frozen", best.Pattern)

	// Ties resolve to the earlier match.
	best, ok = Strongest(matches[:1])
	require.True(t, ok)
	assert.Equal(t, "Canned", best.Pattern)
}

func TestDefaultPatterns(t *testing.T) {
	patterns := DefaultPatterns()
	require.NotEmpty(t, patterns)
	assert.Equal(t, len(patterns), NewDetector(patterns).PatternCount())

	for _, p := range patterns {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Keywords)
		assert.Greater(t, p.Confidence, 0.0)
		assert.LessOrEqual(t, p.Confidence, 1.0)

		_, ok := model.CategoryByID(p.Category)
		assert.True(t, ok, "pattern %s references unknown category %s", p.Name, p.Category)
	}
}
