package service

import (
	"log/slog"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Aggregate merges ingredient lines into shopping list items sorted by
// display name. Lines with no usable name are dropped. Aggregate never
// fails: quantities that cannot be combined are explained in Notes instead.
func (s *Service) Aggregate(lines []IngredientLine, opts Options) []AggregatedItem {
	buckets := newGroups(len(lines))
	for _, line := range lines {
		rec, ok := s.resolve(line)
		if !ok {
			slog.Debug("dropping ingredient line without a name",
				"recipe_id", line.RecipeID, "original_text", line.OriginalText)
			continue
		}
		bucket := rec.result.Key
		if opts.GroupByRecipe {
			bucket = rec.recipeID + "\x00" + bucket
		}
		buckets.add(bucket, rec)
	}

	items := make([]AggregatedItem, 0, len(buckets.order))
	buckets.each(func(g *group) {
		switch {
		case g.attrs.IsBellPepper():
			items = append(items, reduceBellPeppers(g))
		default:
			items = append(items, reduceStandard(g))
		}
	})

	sortByDisplayName(items)
	return items
}

// sortByDisplayName orders items case-insensitively. Equal names keep their
// first-seen order.
func sortByDisplayName(items []AggregatedItem) {
	// A Collator keeps scratch buffers, so each call gets its own.
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(items[i].DisplayName, items[j].DisplayName) < 0
	})
}
