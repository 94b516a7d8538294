package engine

import "github.com/mealplanr/aisle/internal/model"

// Group holds the categorized ingredients bucketed under one aisle.
type Group struct {
	Category model.Category
	Items    []model.CategorizedIngredient
}

// GroupByCategory buckets categorized ingredients by aisle, preserving
// input order within each bucket. Groups come back in canonical aisle
// order; empty aisles are omitted.
func GroupByCategory(items []model.CategorizedIngredient) []Group {
	buckets := make(map[string][]model.CategorizedIngredient)
	for _, item := range items {
		buckets[item.Category.ID] = append(buckets[item.Category.ID], item)
	}

	var groups []Group
	for _, category := range model.AllCategories() {
		if bucket, ok := buckets[category.ID]; ok {
			groups = append(groups, Group{Category: category, Items: bucket})
		}
	}
	return groups
}
