package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantKey  string
		wantKind Kind
	}{
		{name: "empty string", input: "", wantKey: "", wantKind: KindPlain},
		{name: "whitespace only", input: " \t\n ", wantKey: "", wantKind: KindPlain},
		{name: "punctuation only", input: " -- ", wantKey: "", wantKind: KindPlain},
		{name: "sharp cheddar cheese", input: "sharp cheddar cheese", wantKey: "cheddar cheese", wantKind: KindFamily},
		{name: "mild cheddar", input: "mild cheddar", wantKey: "cheddar cheese", wantKind: KindFamily},
		{name: "bare cheddar", input: "Cheddar", wantKey: "cheddar cheese", wantKind: KindFamily},
		{name: "shredded cheddar with prep words", input: "shredded sharp cheddar cheese", wantKey: "cheddar cheese", wantKind: KindFamily},
		{name: "salt and pepper", input: "salt and pepper", wantKey: "salt & pepper", wantKind: KindCompound},
		{name: "salt ampersand pepper", input: "Salt & Pepper", wantKey: "salt & pepper", wantKind: KindCompound},
		{name: "salt and pepper to taste", input: "salt and pepper, to taste", wantKey: "salt & pepper", wantKind: KindCompound},
		{name: "half and half", input: "half-and-half", wantKey: "half & half", wantKind: KindCompound},
		{name: "bread and butter pickles stay whole", input: "bread and butter pickles", wantKey: "bread & butter pickles", wantKind: KindCompound},
		{name: "ground black pepper is not a bell pepper", input: "ground black pepper", wantKey: "black pepper", wantKind: KindFamily},
		{name: "bare pepper is ambiguous", input: "pepper", wantKey: "pepper", wantKind: KindPlain},
		{name: "red pepper flakes", input: "red pepper flakes", wantKey: "red pepper flakes", wantKind: KindFamily},
		{name: "crushed red pepper", input: "crushed red pepper", wantKey: "red pepper flakes", wantKind: KindFamily},
		{name: "unsalted butter", input: "unsalted butter", wantKey: "butter", wantKind: KindFamily},
		{name: "peanut butter is not butter", input: "creamy peanut butter", wantKey: "peanut butter", wantKind: KindFamily},
		{name: "large eggs", input: "large eggs", wantKey: "egg", wantKind: KindFamily},
		{name: "red onion before onion", input: "red onion", wantKey: "red onion", wantKind: KindFamily},
		{name: "yellow onion is onion", input: "yellow onions", wantKey: "onion", wantKind: KindFamily},
		{name: "scallions", input: "scallions", wantKey: "green onion", wantKind: KindFamily},
		{name: "garlic powder before garlic", input: "garlic powder", wantKey: "garlic powder", wantKind: KindFamily},
		{name: "garlic cloves", input: "garlic cloves", wantKey: "garlic", wantKind: KindFamily},
		{name: "chicken broth before chicken", input: "low-sodium chicken broth", wantKey: "chicken broth", wantKind: KindFamily},
		{name: "boneless chicken breasts", input: "boneless skinless chicken breasts", wantKey: "chicken breast", wantKind: KindFamily},
		{name: "apple cider vinegar before apples", input: "apple cider vinegar", wantKey: "apple cider vinegar", wantKind: KindFamily},
		{name: "flour tortillas before flour", input: "flour tortillas", wantKey: "flour tortilla", wantKind: KindFamily},
		{name: "all purpose flour", input: "all-purpose flour", wantKey: "all-purpose flour", wantKind: KindFamily},
		{name: "accent folded", input: "Jalapeño", wantKey: "jalapeno", wantKind: KindFamily},
		{name: "parenthetical dropped", input: "chicken breasts (about 2 lbs)", wantKey: "chicken breast", wantKind: KindFamily},
		{name: "kosher salt", input: "kosher salt", wantKey: "salt", wantKind: KindFamily},
		{name: "family after stripping", input: "heavy chilled cream", wantKey: "heavy cream", wantKind: KindFamily},
		{name: "ground beef after stripping", input: "ground lean beef", wantKey: "ground beef", wantKind: KindFamily},
		{name: "conjunction rewrite", input: "oil and vinegar", wantKey: "oil & vinegar", wantKind: KindCompound},
		{name: "family wins over conjunction", input: "lemons and limes", wantKey: "lemon", wantKind: KindFamily},
		{name: "conjunction of two plain words", input: "blackberries and raspberries", wantKey: "blackberries & raspberries", wantKind: KindCompound},
		{name: "conjunction word too long", input: "huckleberries and raspberries", wantKey: "huckleberries and raspberry", wantKind: KindPlain},
		{name: "plural fallback", input: "Cranberries", wantKey: "cranberry", wantKind: KindPlain},
		{name: "sibilant plural", input: "radishes", wantKey: "radish", wantKind: KindPlain},
		{name: "guarded ss", input: "watercress", wantKey: "watercress", wantKind: KindPlain},
		{name: "multi word plural", input: "pine nuts", wantKey: "pine nut", wantKind: KindPlain},
		{name: "singular lands on family", input: "sweet potatos", wantKey: "sweet potato", wantKind: KindFamily},
		{name: "unknown passthrough", input: "Quinoa", wantKey: "quinoa", wantKind: KindPlain},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Name(tc.input)
			assert.Equal(t, tc.wantKey, got.Key)
			assert.Equal(t, tc.wantKind, got.Attrs.Kind)
		})
	}
}

func TestName_BellPepper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input     string
		wantColor string
	}{
		{input: "red bell pepper", wantColor: "red"},
		{input: "2 green bell peppers", wantColor: "green"},
		{input: "Bell Pepper", wantColor: ""},
		{input: "Yellow Pepper", wantColor: "yellow"},
		{input: "orange peppers", wantColor: "orange"},
		{input: "diced red bell pepper", wantColor: "red"},
		{input: "roasted red peppers", wantColor: "red"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got := Name(tc.input)
			assert.Equal(t, "bell pepper", got.Key)
			assert.Equal(t, "Bell peppers", got.Display)
			assert.True(t, got.Attrs.IsBellPepper())
			assert.Equal(t, tc.wantColor, got.Attrs.Color)
		})
	}
}

func TestName_NotBellPepper(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"pepper",
		"black pepper",
		"ground black pepper",
		"red pepper flakes",
		"crushed red pepper",
		"cayenne pepper",
		"jalapeno peppers",
		"green peppercorns",
		"pepper jack cheese",
		"lemon pepper",
	} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			got := Name(input)
			assert.NotEqual(t, "bell pepper", got.Key)
			assert.False(t, got.Attrs.IsBellPepper())
		})
	}
}

func TestName_Display(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Cheddar cheese", Name("sharp cheddar cheese").Display)
	assert.Equal(t, "Salt & pepper", Name("salt and pepper").Display)
	assert.Equal(t, "Oil & vinegar", Name("oil and vinegar").Display)
	assert.Equal(t, "Cranberry", Name("cranberries").Display)
	assert.Equal(t, "Arugula", Name("fresh baby arugula").Display)
}

func TestName_ModifiersStripped(t *testing.T) {
	t.Parallel()

	assert.True(t, Name("fresh baby arugula").Attrs.ModifiersStripped)
	assert.True(t, Name("heavy chilled cream").Attrs.ModifiersStripped)
	assert.False(t, Name("unsalted butter").Attrs.ModifiersStripped, "raw text already matched a family")
	assert.False(t, Name("quinoa").Attrs.ModifiersStripped)
}

func TestName_KeyIsFixedPoint(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"2 cups shredded sharp cheddar cheese",
		"salt and pepper to taste",
		"1 red bell pepper",
		"ground black pepper",
		"fresh baby arugula",
		"oil and vinegar",
		"blackberries and raspberries",
		"huckleberries and raspberries",
		"Cranberries",
		"peeled and diced potatoes",
		"tomatoes, seeded and chopped",
		"crème fraîche",
		"sweet potatos",
		"extra-large shrimp, deveined",
		"boxes of raisins",
	}
	for _, rule := range families {
		inputs = append(inputs, rule.display)
	}
	for _, display := range compoundDisplay {
		inputs = append(inputs, display)
	}

	for _, input := range inputs {
		first := Name(input)
		if first.Empty() {
			continue
		}
		second := Name(first.Display)
		assert.Equal(t, first.Key, second.Key, "input %q display %q", input, first.Display)
	}
}

func TestFamilies_DisplayMatchesOwnRule(t *testing.T) {
	t.Parallel()

	for _, rule := range families {
		got := Name(rule.display)
		assert.Equal(t, rule.key, got.Key, "display %q", rule.display)
	}
}

func TestStripModifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "shredded sharp cheddar", want: "sharp cheddar"},
		{input: "peeled and diced potatoes", want: "potatoes"},
		{input: "tomatoes, seeded and chopped", want: "tomatoes"},
		{input: "butter, at room temperature", want: "butter"},
		{input: "extra-large eggs", want: "eggs"},
		{input: "andouille sausage", want: "andouille sausage"},
		{input: "quinoa", want: "quinoa"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got := stripModifiers(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, stripModifiers(got), "stripping is idempotent")
		})
	}
}

func TestSingularize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "berries", want: "berry"},
		{input: "boxes", want: "box"},
		{input: "peaches", want: "peach"},
		{input: "glasses", want: "glass"},
		{input: "lentils", want: "lentil"},
		{input: "grass", want: "grass"},
		{input: "hummus", want: "hummus"},
		{input: "couscous", want: "couscous"},
		{input: "bay leaves", want: "bay leaf"},
		{input: "tomatoes", want: "tomato"},
		{input: "gas", want: "gas"},
		{input: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got := singularize(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, singularize(got), "singularize is idempotent")
		})
	}
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jalapeno", cleanup("  Jalapeño. "))
	assert.Equal(t, "fresh basil", cleanup("fresh   basil, for garnish"))
	assert.Equal(t, "parmesan", cleanup("Parmesan (optional)"))
	assert.Equal(t, "", cleanup("(optional)"))
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", KindPlain.String())
	assert.Equal(t, "compound", KindCompound.String())
	assert.Equal(t, "bell_pepper", KindBellPepper.String())
	assert.Equal(t, "family", KindFamily.String())
}
