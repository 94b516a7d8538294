package model

import "fmt"

// IngredientMapping links keyword surface forms to a canonical display
// name and an aisle category. Mappings are static configuration; the
// engine never mutates them.
type IngredientMapping struct {
	DisplayName     string
	Category        string
	Keywords        []string
	ExcludeKeywords []string
}

// Validate ensures the mapping has valid data.
func (m *IngredientMapping) Validate() error {
	if m.DisplayName == "" {
		return fmt.Errorf("display name is required")
	}

	if m.Category == "" {
		return fmt.Errorf("category is required")
	}

	if len(m.Keywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}

	for _, kw := range m.Keywords {
		if kw == "" {
			return fmt.Errorf("keywords must not be empty")
		}
	}

	return nil
}

// CategorizedIngredient is the result of categorizing one ingredient
// description.
type CategorizedIngredient struct {
	OriginalText string   `json:"originalText"`
	DisplayName  string   `json:"displayName"`
	Category     Category `json:"category"`
	Confidence   float64  `json:"confidence"`
}
