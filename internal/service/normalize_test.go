package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "quantity and unit stripped",
			input: "2 cups shredded sharp cheddar cheese",
			want:  "shredded sharp cheddar cheese",
		},
		{
			name:  "quantity without unit",
			input: "1 red bell pepper",
			want:  "red bell pepper",
		},
		{
			name:  "mixed number and of",
			input: "1 1/2 cups of milk",
			want:  "milk",
		},
		{
			name:  "article quantity",
			input: "a pinch of salt",
			want:  "salt",
		},
		{
			name:  "unit followed by of without quantity",
			input: "pinch of salt",
			want:  "salt",
		},
		{
			name:  "unit word kept without quantity",
			input: "head lettuce",
			want:  "head lettuce",
		},
		{
			name:  "package size and trailing clause dropped",
			input: "1 (15 oz) can black beans, drained",
			want:  "black beans",
		},
		{
			name:  "unit glued to number",
			input: "200g flour",
			want:  "flour",
		},
		{
			name:  "hyphen range",
			input: "2-3 cloves garlic, minced",
			want:  "garlic",
		},
		{
			name:  "worded range",
			input: "2 to 3 tablespoons olive oil",
			want:  "olive oil",
		},
		{
			name:  "vulgar fraction",
			input: "½ cup sugar",
			want:  "sugar",
		},
		{
			name:  "two word unit",
			input: "8 fl oz cream",
			want:  "cream",
		},
		{
			name:  "count noun only",
			input: "3 eggs",
			want:  "eggs",
		},
		{
			name:  "no amount",
			input: "salt and pepper to taste",
			want:  "salt and pepper to taste",
		},
		{
			name:  "amount only",
			input: "2 cups",
			want:  "",
		},
		{
			name:  "parenthetical only",
			input: "   (optional)",
			want:  "",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := extractName(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLineName_PrefersName(t *testing.T) {
	t.Parallel()

	got := lineName(IngredientLine{Name: " Butter ", OriginalText: "2 tbsp margarine"})
	assert.Equal(t, "Butter", got)

	got = lineName(IngredientLine{Name: "   ", OriginalText: "2 tbsp margarine"})
	assert.Equal(t, "margarine", got)
}
