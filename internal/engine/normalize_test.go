package engine

import (
	"testing"

	"github.com/mealplanr/aisle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalize(t *testing.T, m model.IngredientMapping) normalizedMapping {
	t.Helper()
	return New().normalizeMapping(m)
}

func variantValues(nm normalizedMapping) []string {
	values := make([]string, len(nm.variants))
	for i, v := range nm.variants {
		values[i] = v.value
	}
	return values
}

func TestNormalizeMapping_variants(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{
			name:     "base singular plural",
			keywords: []string{"tomato"},
			want:     []string{"tomato", "tomatoes"},
		},
		{
			name:     "irregular plural",
			keywords: []string{"bay leaf"},
			want:     []string{"bay leaf", "bay leaves"},
		},
		{
			name:     "plural keyword gains singular",
			keywords: []string{"oats"},
			want:     []string{"oats", "oat"},
		},
		{
			name:     "case-insensitive keyword dedup keeps first-seen order",
			keywords: []string{"Carrot", "carrot", "baby carrot"},
			want:     []string{"carrot", "carrots", "baby carrot", "baby carrots"},
		},
		{
			name:     "uncountable noun yields a single variant",
			keywords: []string{"tuna"},
			want:     []string{"tuna"},
		},
		{
			name:     "variants deduped across keywords",
			keywords: []string{"tomato", "tomatoes"},
			want:     []string{"tomato", "tomatoes"},
		},
		{
			name:     "blank keywords skipped",
			keywords: []string{"", "  ", "carrot"},
			want:     []string{"carrot", "carrots"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nm := normalize(t, model.IngredientMapping{
				DisplayName: "Test",
				Category:    model.CategoryProduce,
				Keywords:    tt.keywords,
			})
			assert.Equal(t, tt.want, variantValues(nm))
		})
	}
}

func TestNormalizeMapping_variantMetadata(t *testing.T) {
	nm := normalize(t, model.IngredientMapping{
		DisplayName: "Goat Cheese",
		Category:    model.CategoryDairyEggs,
		Keywords:    []string{"goat cheese"},
	})

	require.NotEmpty(t, nm.variants)
	v := nm.variants[0]
	assert.Equal(t, "goat cheese", v.value)
	assert.Equal(t, []string{"goat", "cheese"}, v.tokens)
	assert.Equal(t, 2, v.wordCount)
	assert.Equal(t, 10, v.charCount) // whitespace stripped
	assert.False(t, v.useRegex)
	assert.Nil(t, v.re)
}

func TestNormalizeMapping_shortVariantRegex(t *testing.T) {
	// Single token of at most 4 characters gets a pre-compiled boundary
	// regex; anything longer relies on the boundary scan.
	tests := []struct {
		keyword     string
		wantRegex   bool
		matchText   string
		wantMatched bool
	}{
		{keyword: "egg", wantRegex: true, matchText: "egg wash", wantMatched: true},
		{keyword: "egg", wantRegex: true, matchText: "eggplant", wantMatched: false},
		{keyword: "milk", wantRegex: true, matchText: "whole milk", wantMatched: true},
		{keyword: "honey", wantRegex: false},
		{keyword: "sea salt", wantRegex: false},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			nm := normalize(t, model.IngredientMapping{
				DisplayName: "Test",
				Category:    model.CategoryPantry,
				Keywords:    []string{tt.keyword},
			})

			require.NotEmpty(t, nm.variants)
			v := nm.variants[0]
			assert.Equal(t, tt.wantRegex, v.useRegex)
			if !tt.wantRegex {
				assert.Nil(t, v.re)
				return
			}

			require.NotNil(t, v.re)
			assert.Equal(t, tt.wantMatched, v.re.MatchString(tt.matchText))
		})
	}
}

func TestNormalizeMapping_excludes(t *testing.T) {
	nm := normalize(t, model.IngredientMapping{
		DisplayName:     "Butter",
		Category:        model.CategoryDairyEggs,
		Keywords:        []string{"butter"},
		ExcludeKeywords: []string{"peanut butter", "buttermilk"},
	})

	require.Len(t, nm.excludes, 2)
	assert.True(t, nm.excluded("creamy peanut butter"))
	assert.True(t, nm.excluded("Peanut Butter")) // case-insensitive
	assert.True(t, nm.excluded("1 cup buttermilk"))
	assert.False(t, nm.excluded("unsalted butter"))
	// Word boundary: exclusion never fires inside longer words.
	assert.False(t, nm.excluded("buttermilks and xbuttermilk"))
}

func TestNormalizeMapping_unknownCategoryFallsBack(t *testing.T) {
	nm := normalize(t, model.IngredientMapping{
		DisplayName: "Mystery",
		Category:    "deli",
		Keywords:    []string{"mystery"},
	})

	assert.Equal(t, model.CatchAll(), nm.category)
	assert.Equal(t, model.MaxSortOrder(), nm.sortOrder)
}

func TestBuild_runsOnce(t *testing.T) {
	e := New()
	first := e.Categorize("tuna")
	second := e.Categorize("tuna")
	assert.Equal(t, first, second)
	assert.Len(t, e.normalized, len(e.mappings))
}
