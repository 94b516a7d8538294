package engine

import "github.com/mealplanr/aisle/internal/model"

// Match type weights and confidences. Empirically tuned constants with
// strict tier ordering: an EXACT match must outrank any WHOLE_WORD
// match, which must outrank any PARTIAL match, regardless of the other
// score terms.
const (
	weightExact     = 10000.0
	weightWholeWord = 1000.0
	weightPartial   = 100.0

	confidenceExact     = 1.0
	confidenceWholeWord = 0.85
	confidencePartial   = 0.6

	// fallbackConfidence applies when neither a mapping nor a pattern
	// recognizes the input.
	fallbackConfidence = 0.1

	wordCountWeight   = 100.0
	matchIndexPenalty = 0.1
)

// matchType is the precision tier of a successful variant match.
type matchType int

const (
	matchPartial matchType = iota
	matchWholeWord
	matchExact
)

func (t matchType) weight() float64 {
	switch t {
	case matchExact:
		return weightExact
	case matchWholeWord:
		return weightWholeWord
	default:
		return weightPartial
	}
}

// confidence derives the result confidence solely from the match type,
// never from the composite score.
func (t matchType) confidence() float64 {
	switch t {
	case matchExact:
		return confidenceExact
	case matchWholeWord:
		return confidenceWholeWord
	default:
		return confidencePartial
	}
}

// matchScore combines the precision tier with phrase specificity, a
// small category-priority tie-break, a negligible position tie-break,
// and the detected pattern boost for the mapping's category.
func matchScore(t matchType, v *variant, sortOrder, matchIndex int, boost float64) float64 {
	return t.weight() +
		float64(v.wordCount)*wordCountWeight +
		float64(v.charCount) +
		float64(model.MaxSortOrder()-sortOrder) -
		float64(matchIndex)*matchIndexPenalty +
		boost
}
