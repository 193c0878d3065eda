package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/mwhite7112/woodpantry-shoppinglist/internal/normalize"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/parser"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/service"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/units"
)

// flexQuantity accepts a JSON number, a numeric string ("1.5", "1 1/2") or
// null. Strings that are not numbers decode to no quantity rather than an
// error.
type flexQuantity struct {
	value *float64
}

var quantityParser = parser.New()

func (q *flexQuantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		q.value = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		q.value = parseQuantityString(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	q.value = &f
	return nil
}

func parseQuantityString(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	}
	return quantityParser.Parse(s).Quantity
}

// --- aggregate ---

type lineRequest struct {
	RecipeID     string       `json:"recipe_id" validate:"recipe_id"`
	OriginalText string       `json:"original_text" validate:"required_without=Name,max=1000"`
	Quantity     flexQuantity `json:"quantity"`
	Unit         string       `json:"unit" validate:"max=64"`
	Name         string       `json:"name" validate:"max=500"`
}

type aggregateRequest struct {
	Lines         []lineRequest `json:"lines" validate:"dive"`
	GroupByRecipe bool          `json:"group_by_recipe"`
}

func (r aggregateRequest) toLines() []service.IngredientLine {
	out := make([]service.IngredientLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		out = append(out, service.IngredientLine{
			RecipeID:     l.RecipeID,
			OriginalText: l.OriginalText,
			Quantity:     l.Quantity.value,
			Unit:         l.Unit,
			Name:         l.Name,
		})
	}
	return out
}

type componentResponse struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
	Unit     *string `json:"unit"`
}

type parsedResponse struct {
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
	Name     string   `json:"name"`
}

type sourceLineResponse struct {
	RecipeID     string         `json:"recipe_id"`
	OriginalText string         `json:"original_text"`
	Parsed       parsedResponse `json:"parsed"`
}

type itemResponse struct {
	DisplayName   string               `json:"display_name"`
	CanonicalKey  string               `json:"canonical_key"`
	TotalQuantity *float64             `json:"total_quantity"`
	Unit          *string              `json:"unit"`
	Components    []componentResponse  `json:"components,omitempty"`
	SourceLines   []sourceLineResponse `json:"source_lines"`
	RecipeIDs     []string             `json:"recipe_ids"`
	Notes         string               `json:"notes,omitempty"`
}

type aggregateResponse struct {
	Items     []itemResponse `json:"items"`
	ItemCount int            `json:"item_count"`
	LineCount int            `json:"line_count"`
}

func newAggregateResponse(items []service.AggregatedItem, lineCount int) aggregateResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		resp := itemResponse{
			DisplayName:   it.DisplayName,
			CanonicalKey:  it.CanonicalKey,
			TotalQuantity: finiteOrNil(it.TotalQuantity),
			Unit:          nullableString(it.Unit),
			SourceLines:   make([]sourceLineResponse, 0, len(it.SourceLines)),
			RecipeIDs:     it.RecipeIDs,
			Notes:         it.Notes,
		}
		for _, c := range it.Components {
			resp.Components = append(resp.Components, componentResponse{Label: c.Label, Quantity: c.Quantity})
		}
		for _, sl := range it.SourceLines {
			resp.SourceLines = append(resp.SourceLines, sourceLineResponse{
				RecipeID:     sl.RecipeID,
				OriginalText: sl.OriginalText,
				Parsed: parsedResponse{
					Quantity: finiteOrNil(sl.Parsed.Quantity),
					Unit:     nullableString(sl.Parsed.Unit),
					Name:     sl.Parsed.Name,
				},
			})
		}
		out = append(out, resp)
	}
	return aggregateResponse{Items: out, ItemCount: len(out), LineCount: lineCount}
}

// --- normalize ---

type normalizeRequest struct {
	Name string `json:"name" validate:"required,max=500"`
}

type attributesResponse struct {
	Kind              string  `json:"kind"`
	IsBellPepper      bool    `json:"is_bell_pepper"`
	Color             *string `json:"color"`
	Compound          bool    `json:"compound"`
	FamilyMatched     bool    `json:"family_matched"`
	ModifiersStripped bool    `json:"modifiers_stripped"`
}

type normalizeResponse struct {
	CanonicalKey string             `json:"canonical_key"`
	DisplayName  string             `json:"display_name"`
	Attributes   attributesResponse `json:"attributes"`
}

func newNormalizeResponse(r normalize.Result) normalizeResponse {
	return normalizeResponse{
		CanonicalKey: r.Key,
		DisplayName:  r.Display,
		Attributes: attributesResponse{
			Kind:              r.Attrs.Kind.String(),
			IsBellPepper:      r.Attrs.IsBellPepper(),
			Color:             nullableString(r.Attrs.Color),
			Compound:          r.Attrs.IsCompound(),
			FamilyMatched:     r.Attrs.FamilyMatched(),
			ModifiersStripped: r.Attrs.ModifiersStripped,
		},
	}
}

// --- units ---

type convertRequest struct {
	Quantity *float64 `json:"quantity" validate:"required"`
	From     string   `json:"from" validate:"required,max=64"`
	To       string   `json:"to" validate:"required,max=64"`
}

type convertResponse struct {
	Compatible bool    `json:"compatible"`
	Quantity   float64 `json:"quantity"`
	From       string  `json:"from"`
	To         string  `json:"to"`
}

type unitResponse struct {
	Unit   string  `json:"unit"`
	Group  string  `json:"group"`
	ToBase float64 `json:"to_base"`
}

func newUnitsResponse(entries []units.Entry) []unitResponse {
	out := make([]unitResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, unitResponse{Unit: e.Unit, Group: e.Group, ToBase: e.ToBase})
	}
	return out
}

// --- helpers ---

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func finiteOrNil(q *float64) *float64 {
	if q == nil || math.IsNaN(*q) || math.IsInf(*q, 0) {
		return nil
	}
	return q
}
