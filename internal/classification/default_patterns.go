package classification

import "github.com/mealplanr/aisle/internal/model"

// DefaultPatterns returns the fixed preservation/freshness keyword
// groups. The keyword lists and confidences are tuned constants;
// changing them shifts scoring behavior across the whole engine.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:       "Canned",
			Category:   model.CategoryCanned,
			Keywords:   []string{"canned", "tinned", "jarred", "cans"},
			Confidence: 0.8,
		},
		{
			Name:       "Frozen",
			Category:   model.CategoryFrozen,
			Keywords:   []string{"frozen", "freeze"},
			Confidence: 0.9,
		},
		{
			Name:       "Dried",
			Category:   model.CategoryPantry,
			Keywords:   []string{"ground", "dried", "powder"},
			Confidence: 0.7,
		},
		{
			Name:       "Fresh",
			Category:   model.CategoryProduce,
			Keywords:   []string{"fresh"},
			Confidence: 0.6,
		},
		{
			Name:       "Jarred",
			Category:   model.CategoryCanned,
			Keywords:   []string{"jar", "jarred"},
			Confidence: 0.8,
		},
	}
}
