package engine

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/mealplanr/aisle/internal/model"
)

// shortVariantMaxLen marks variants short enough to get a pre-compiled
// word-boundary regex: a single token of at most four characters.
const shortVariantMaxLen = 4

// variant is one matchable lexical form (base/singular/plural) of a
// mapping keyword.
type variant struct {
	value     string
	tokens    []string
	wordCount int
	charCount int
	useRegex  bool
	re        *regexp.Regexp
}

// normalizedMapping is a mapping rule compiled into matchable form:
// deduplicated variants, exclusion regexes, and the resolved category.
type normalizedMapping struct {
	mapping   model.IngredientMapping
	category  model.Category
	sortOrder int
	variants  []variant
	excludes  []*regexp.Regexp
}

// excluded reports whether any exclusion pattern vetoes this mapping
// for the given lowercase input.
func (nm *normalizedMapping) excluded(lower string) bool {
	for _, re := range nm.excludes {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// build compiles the whole dataset. Run once behind the engine's
// sync.Once; the result is read-only afterwards.
func (e *Engine) build() {
	normalized := make([]normalizedMapping, 0, len(e.mappings))
	for _, m := range e.mappings {
		normalized = append(normalized, e.normalizeMapping(m))
	}
	e.normalized = normalized
}

func (e *Engine) normalizeMapping(m model.IngredientMapping) normalizedMapping {
	category, ok := model.CategoryByID(m.Category)
	if !ok {
		// Unknown category ids resolve silently to the catch-all.
		slog.Warn("mapping references unknown category",
			"display_name", m.DisplayName,
			"category", m.Category,
			"substituted", model.CatchAll().ID)
		category = model.CatchAll()
	}

	nm := normalizedMapping{
		mapping:   m,
		category:  category,
		sortOrder: category.SortOrder,
	}

	seenKeywords := make(map[string]struct{}, len(m.Keywords))
	seenVariants := make(map[string]struct{}, len(m.Keywords)*3)

	for _, kw := range m.Keywords {
		base := strings.ToLower(strings.TrimSpace(kw))
		if base == "" {
			continue
		}
		if _, dup := seenKeywords[base]; dup {
			continue
		}
		seenKeywords[base] = struct{}{}

		forms := []string{
			base,
			strings.ToLower(e.inflector.Singular(base)),
			strings.ToLower(e.inflector.Plural(base)),
		}
		for _, form := range forms {
			if form == "" {
				continue
			}
			if _, dup := seenVariants[form]; dup {
				continue
			}
			seenVariants[form] = struct{}{}
			nm.variants = append(nm.variants, newVariant(form))
		}
	}

	for _, ex := range m.ExcludeKeywords {
		pattern := strings.ToLower(strings.TrimSpace(ex))
		if pattern == "" {
			continue
		}
		nm.excludes = append(nm.excludes, compileBoundary(pattern))
	}

	return nm
}

func newVariant(value string) variant {
	tokens := strings.Fields(value)

	v := variant{
		value:     value,
		tokens:    tokens,
		wordCount: len(tokens),
		charCount: len(strings.Join(tokens, "")),
	}

	if v.wordCount == 1 && len(value) <= shortVariantMaxLen {
		v.useRegex = true
		v.re = compileBoundary(value)
	}

	return v
}

// compileBoundary compiles a case-insensitive word-boundary pattern for
// a literal keyword or phrase.
func compileBoundary(literal string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(literal) + `\b`)
}
