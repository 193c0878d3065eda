package service

// UnknownRecipe is the recipe ID used for lines that did not say where they
// came from.
const UnknownRecipe = "unknown"

// IngredientLine is one ingredient mention from one recipe. At least one of
// Name or OriginalText should be set. A nil Quantity or empty Unit means the
// value was not given.
type IngredientLine struct {
	RecipeID     string
	OriginalText string
	Quantity     *float64
	Unit         string
	Name         string
}

// Options tune a single Aggregate call.
type Options struct {
	// GroupByRecipe keeps lines from different recipes apart, so items only
	// merge within one recipe.
	GroupByRecipe bool
}

// AggregatedItem is one row of the shopping list.
type AggregatedItem struct {
	DisplayName  string
	CanonicalKey string
	// TotalQuantity is nil when nothing could be summed.
	TotalQuantity *float64
	// Unit is empty for counted items and for groups that could not be summed.
	Unit        string
	Components  []Component
	SourceLines []SourceLine
	RecipeIDs   []string
	// Notes explains a breakdown or why quantities were not combined.
	Notes string
}

// Component is one labelled part of an item, such as a bell pepper color.
// Components are counted, so they carry no unit.
type Component struct {
	Label    string
	Quantity float64
}

// SourceLine records an input line that contributed to an item.
type SourceLine struct {
	RecipeID     string
	OriginalText string
	Parsed       Parsed
}

// Parsed is the quantity, unit and name the engine resolved for a line.
type Parsed struct {
	Quantity *float64
	Unit     string
	Name     string
}
