// Package engine implements the core categorization engine that maps
// free-text ingredient descriptions to canonical names, aisle
// categories, and confidence scores.
package engine

import (
	"strings"
	"sync"

	"github.com/mealplanr/aisle/internal/classification"
	"github.com/mealplanr/aisle/internal/common"
	"github.com/mealplanr/aisle/internal/inflect"
	"github.com/mealplanr/aisle/internal/model"
)

// Engine categorizes ingredient descriptions against a static mapping
// dataset plus preservation/freshness pattern detection. The normalized
// mapping table is built once, lazily, on the first Categorize call;
// every call after that is lock-free and read-only.
type Engine struct {
	inflector  inflect.Inflector
	detector   *classification.Detector
	mappings   []model.IngredientMapping
	once       sync.Once
	normalized []normalizedMapping
}

// Option customizes engine construction.
type Option func(*Engine)

// WithMappings replaces the default mapping dataset.
func WithMappings(mappings []model.IngredientMapping) Option {
	return func(e *Engine) { e.mappings = mappings }
}

// WithPatterns replaces the default preservation/freshness patterns.
func WithPatterns(patterns []classification.Pattern) Option {
	return func(e *Engine) { e.detector = classification.NewDetector(patterns) }
}

// WithInflector replaces the default English inflector.
func WithInflector(inf inflect.Inflector) Option {
	return func(e *Engine) { e.inflector = inf }
}

// New creates a categorization engine. Without options it uses the
// curated default dataset and patterns.
func New(opts ...Option) *Engine {
	e := &Engine{
		inflector: inflect.New(),
		detector:  classification.NewDetector(classification.DefaultPatterns()),
		mappings:  DefaultMappings(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the shared process-wide engine over the default
// dataset.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// scoredMatch tracks the best (mapping, variant) pair seen so far.
type scoredMatch struct {
	mapping *normalizedMapping
	matched matchType
	score   float64
}

// Categorize maps an ingredient description to a canonical display
// name, aisle category, and confidence. It is a total function: the
// worst case is the catch-all category at the fallback confidence with
// a title-cased echo of the input.
func (e *Engine) Categorize(text string) model.CategorizedIngredient {
	e.once.Do(e.build)

	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	matches := e.detector.Detect(lower)
	boosts := classification.MaxBoost(matches)
	freshSignal, preservedSignal := signals(matches)

	var best, skippedFresh *scoredMatch
	for i := range e.normalized {
		nm := &e.normalized[i]

		// An exclusion hit vetoes the whole mapping regardless of how
		// well its keywords match.
		if nm.excluded(lower) {
			continue
		}

		// A raw-ingredient match is deferred when a preservation signal
		// is present and no freshness signal overrides it.
		deferred := nm.category.RawIngredient() && !freshSignal && preservedSignal

		for v := range nm.variants {
			vt := &nm.variants[v]
			matched, index, ok := matchVariant(vt, lower)
			if !ok {
				continue
			}

			score := matchScore(matched, vt, nm.sortOrder, index, boosts[nm.category.ID])
			candidate := &scoredMatch{mapping: nm, matched: matched, score: score}

			if deferred {
				if skippedFresh == nil || score > skippedFresh.score {
					skippedFresh = candidate
				}
			} else if best == nil || score > best.score {
				best = candidate
			}
		}
	}

	if best != nil {
		return model.CategorizedIngredient{
			OriginalText: trimmed,
			DisplayName:  best.mapping.mapping.DisplayName,
			Category:     best.mapping.category,
			Confidence:   best.matched.confidence(),
		}
	}

	if skippedFresh != nil && len(matches) > 0 {
		// The preservation signal recategorizes the raw-ingredient
		// match; the canonical name is kept for readability.
		strongest, _ := classification.Strongest(matches)
		return model.CategorizedIngredient{
			OriginalText: trimmed,
			DisplayName:  skippedFresh.mapping.mapping.DisplayName,
			Category:     patternCategory(strongest),
			Confidence:   strongest.Confidence,
		}
	}

	if len(matches) > 0 {
		strongest, _ := classification.Strongest(matches)
		return model.CategorizedIngredient{
			OriginalText: trimmed,
			DisplayName:  common.Title(stripPatternKeywords(trimmed, matches)),
			Category:     patternCategory(strongest),
			Confidence:   strongest.Confidence,
		}
	}

	return model.CategorizedIngredient{
		OriginalText: trimmed,
		DisplayName:  common.Title(trimmed),
		Category:     model.CatchAll(),
		Confidence:   fallbackConfidence,
	}
}

// matchVariant attempts the precision tiers in strict order and accepts
// the first that succeeds: exact input equality, whole-word occurrence,
// then raw substring. lower is the trimmed, lowercased input.
func matchVariant(v *variant, lower string) (matchType, int, bool) {
	if lower == v.value {
		return matchExact, 0, true
	}

	if v.useRegex {
		if loc := v.re.FindStringIndex(lower); loc != nil {
			return matchWholeWord, loc[0], true
		}
	} else if idx := common.IndexWholeWord(lower, v.value); idx >= 0 {
		return matchWholeWord, idx, true
	}

	if idx := strings.Index(lower, v.value); idx >= 0 {
		return matchPartial, idx, true
	}

	return 0, 0, false
}

// signals reports whether any detected pattern signals freshness
// (produce) or preservation (canned/frozen/dried).
func signals(matches []classification.Match) (fresh, preserved bool) {
	for _, m := range matches {
		switch m.Category {
		case model.CategoryProduce:
			fresh = true
		case model.CategoryCanned, model.CategoryFrozen, model.CategoryPantry:
			preserved = true
		}
	}
	return fresh, preserved
}

// patternCategory resolves a match's category id, falling back to the
// catch-all for safety.
func patternCategory(m classification.Match) model.Category {
	if category, ok := model.CategoryByID(m.Category); ok {
		return category
	}
	return model.CatchAll()
}

// stripPatternKeywords removes every matched pattern keyword from the
// text at word boundaries and collapses the remaining whitespace.
func stripPatternKeywords(text string, matches []classification.Match) string {
	for _, m := range matches {
		for _, kw := range m.Keywords {
			text = compileBoundary(kw).ReplaceAllString(text, " ")
		}
	}
	return strings.Join(strings.Fields(text), " ")
}
