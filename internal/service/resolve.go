package service

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/normalize"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/units"
)

// record is a line after its name, amount and recipe have been resolved.
type record struct {
	recipeID string
	text     string
	name     string
	quantity *float64
	unit     string
	result   normalize.Result
}

// resolve normalizes one line. The second result is false when the line has
// no usable name and must be dropped.
func (s *Service) resolve(line IngredientLine) (record, bool) {
	name := lineName(line)
	res := normalize.Name(name)
	if res.Empty() {
		return record{}, false
	}

	qty, unit := line.Quantity, units.NormalizeUnit(line.Unit)
	if qty == nil || unit == "" {
		// Only the missing half is taken from the parser.
		if text := strings.TrimSpace(line.OriginalText); text != "" {
			parsed := s.parser.Parse(text)
			if qty == nil {
				qty = parsed.Quantity
			}
			if unit == "" {
				unit = units.NormalizeUnit(parsed.Unit)
			}
		}
	}

	return record{
		recipeID: canonicalRecipeID(line.RecipeID),
		text:     line.OriginalText,
		name:     name,
		quantity: qty,
		unit:     unit,
		result:   res,
	}, true
}

// canonicalRecipeID gives every spelling of the same recipe one form.
// UUIDs are lowercased and hyphenated; anything else is kept as is.
func canonicalRecipeID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return UnknownRecipe
	}
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}

// finite returns the value behind q when it is a usable number.
func finite(q *float64) (float64, bool) {
	if q == nil || math.IsNaN(*q) || math.IsInf(*q, 0) {
		return 0, false
	}
	return *q, true
}
