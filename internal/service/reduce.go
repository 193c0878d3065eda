package service

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/mwhite7112/woodpantry-shoppinglist/internal/units"
)

// newItem fills the fields every reducer shares.
func newItem(g *group) AggregatedItem {
	lines := make([]SourceLine, 0, len(g.records))
	for _, rec := range g.records {
		lines = append(lines, SourceLine{
			RecipeID:     rec.recipeID,
			OriginalText: rec.text,
			Parsed: Parsed{
				Quantity: rec.quantity,
				Unit:     rec.unit,
				Name:     rec.name,
			},
		})
	}
	return AggregatedItem{
		DisplayName:  g.display,
		CanonicalKey: g.key,
		SourceLines:  lines,
		RecipeIDs:    mergeRecipeIDs(g.records),
	}
}

// reduceStandard sums a group in the unit of its first line. If any line's
// unit cannot be converted to that unit nothing is summed and the amounts
// are listed in Notes instead.
func reduceStandard(g *group) AggregatedItem {
	item := newItem(g)
	ref := g.records[0].unit

	for _, rec := range g.records[1:] {
		if !units.Compatible(ref, rec.unit) {
			item.Notes = mixedNote(g.records)
			slog.Debug("units not combinable", "key", g.key, "notes", item.Notes)
			return item
		}
	}

	var total float64
	summed := false
	for _, rec := range g.records {
		q, ok := finite(rec.quantity)
		if !ok {
			continue
		}
		total += units.Convert(q, rec.unit, ref)
		summed = true
	}
	if summed {
		item.TotalQuantity = &total
	}
	item.Unit = ref
	return item
}

// mixedNote lists each line's amount: "Mixed: 2 cup + 200 g + a knob".
func mixedNote(records []record) string {
	parts := make([]string, 0, len(records))
	for _, rec := range records {
		parts = append(parts, amountText(rec))
	}
	return "Mixed: " + strings.Join(parts, " + ")
}

func amountText(rec record) string {
	q, hasQty := finite(rec.quantity)
	switch {
	case hasQty && rec.unit != "":
		return formatQuantity(q) + " " + rec.unit
	case hasQty:
		return formatQuantity(q)
	}
	if text := strings.TrimSpace(rec.text); text != "" {
		return text
	}
	if rec.unit != "" {
		return rec.unit
	}
	return rec.name
}

// formatQuantity prints at most two decimals with trailing zeros removed.
func formatQuantity(q float64) string {
	rounded := math.Round(q*100) / 100
	if rounded == 0 {
		rounded = 0 // drops the sign of -0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
