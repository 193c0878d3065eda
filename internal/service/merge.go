package service

import "github.com/mwhite7112/woodpantry-shoppinglist/internal/normalize"

// group collects the records that share a canonical key.
type group struct {
	key     string
	display string
	attrs   normalize.Attributes
	records []record
}

// groups is a map of buckets that remembers first-seen order.
type groups struct {
	byKey map[string]*group
	order []string
}

func newGroups(capacity int) *groups {
	return &groups{byKey: make(map[string]*group, capacity)}
}

// add files rec under bucket, creating the bucket from rec on first use.
func (g *groups) add(bucket string, rec record) {
	grp, ok := g.byKey[bucket]
	if !ok {
		grp = &group{
			key:     rec.result.Key,
			display: rec.result.Display,
			attrs:   rec.result.Attrs,
		}
		g.byKey[bucket] = grp
		g.order = append(g.order, bucket)
	}
	grp.records = append(grp.records, rec)
}

// each visits buckets in the order they were created.
func (g *groups) each(fn func(*group)) {
	for _, bucket := range g.order {
		fn(g.byKey[bucket])
	}
}

// mergeRecipeIDs returns the distinct recipe IDs of records in the order
// they first appear.
func mergeRecipeIDs(records []record) []string {
	seen := make(map[string]struct{}, len(records))
	result := make([]string, 0, len(records))

	for _, rec := range records {
		if _, ok := seen[rec.recipeID]; !ok {
			seen[rec.recipeID] = struct{}{}
			result = append(result, rec.recipeID)
		}
	}

	return result
}
