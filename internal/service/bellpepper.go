package service

import "strings"

const unspecifiedColor = "unspecified"

// reduceBellPeppers counts bell peppers per color. Every color is one
// Component and the grand total is the item's quantity; bell peppers are
// counted, so the item never has a unit.
func reduceBellPeppers(g *group) AggregatedItem {
	item := newItem(g)

	var (
		colors  []string
		counts  = make(map[string]float64)
		grand   float64
		counted bool
	)
	for _, rec := range g.records {
		color := rec.result.Attrs.Color
		if color == "" {
			color = unspecifiedColor
		}
		n := 1.0
		if q, ok := finite(rec.quantity); ok {
			n = q
			counted = true
		}
		if _, ok := counts[color]; !ok {
			colors = append(colors, color)
		}
		counts[color] += n
		grand += n
	}
	if counted {
		item.TotalQuantity = &grand
	}

	var breakdown []string
	for _, color := range colors {
		if color == unspecifiedColor {
			continue
		}
		item.Components = append(item.Components, Component{Label: color, Quantity: counts[color]})
		breakdown = append(breakdown, formatQuantity(counts[color])+" "+color)
	}
	if len(item.Components) == 0 {
		item.Components = []Component{{Label: unspecifiedColor, Quantity: grand}}
		return item
	}
	item.Notes = "Breakdown: " + strings.Join(breakdown, ", ")
	return item
}
