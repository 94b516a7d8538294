// Package model defines the core types shared across the categorizer:
// the grocery-aisle category registry, ingredient mapping rules, and
// categorization results.
package model

// Category ids for the fixed aisle registry.
const (
	CategoryProduce     = "produce"
	CategoryMeatSeafood = "meat-seafood"
	CategoryDairyEggs   = "dairy-eggs"
	CategoryBakery      = "bakery"
	CategoryPantry      = "pantry"
	CategoryCanned      = "canned"
	CategoryFrozen      = "frozen"
	CategoryBeverages   = "beverages"
	CategorySnacks      = "snacks"
	CategoryOther       = "other"
)

// Category represents a grocery-aisle category. The registry is a fixed,
// process-wide constant; SortOrder defines canonical aisle order and acts
// as a scoring tie-break (lower sorts first, catch-all last).
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sortOrder"`
}

// categories is the registry, ordered by SortOrder ascending. The
// catch-all category must stay last.
var categories = []Category{
	{ID: CategoryProduce, Name: "Produce", Icon: "🥬", SortOrder: 1},
	{ID: CategoryMeatSeafood, Name: "Meat & Seafood", Icon: "🥩", SortOrder: 2},
	{ID: CategoryDairyEggs, Name: "Dairy & Eggs", Icon: "🥛", SortOrder: 3},
	{ID: CategoryBakery, Name: "Bakery", Icon: "🍞", SortOrder: 4},
	{ID: CategoryPantry, Name: "Pantry", Icon: "🌾", SortOrder: 5},
	{ID: CategoryCanned, Name: "Canned & Jarred", Icon: "🥫", SortOrder: 6},
	{ID: CategoryFrozen, Name: "Frozen", Icon: "🧊", SortOrder: 7},
	{ID: CategoryBeverages, Name: "Beverages", Icon: "🧃", SortOrder: 8},
	{ID: CategorySnacks, Name: "Snacks", Icon: "🍿", SortOrder: 9},
	{ID: CategoryOther, Name: "Other", Icon: "🛒", SortOrder: 10},
}

// AllCategories returns every registry category ascending by sort order.
func AllCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a category by its stable id. The second return
// value reports whether the id is known.
func CategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CatchAll returns the lowest-priority category used when nothing else
// applies.
func CatchAll() Category {
	return categories[len(categories)-1]
}

// MaxSortOrder returns the highest sort order in the registry (the
// catch-all's), used as the ceiling for the category priority score term.
func MaxSortOrder() int {
	return categories[len(categories)-1].SortOrder
}

// RawIngredient reports whether the category holds raw ingredients whose
// matches may be recategorized by a preservation signal (e.g. "canned").
func (c Category) RawIngredient() bool {
	return c.ID == CategoryProduce || c.ID == CategoryMeatSeafood
}
