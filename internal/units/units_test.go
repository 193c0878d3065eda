package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty is unitless", input: "", want: ""},
		{name: "whitespace is unitless", input: "   ", want: ""},
		{name: "canonical passes through", input: "tbsp", want: "tbsp"},
		{name: "capitalized with period", input: "Tbsp.", want: "tbsp"},
		{name: "long plural", input: "tablespoons", want: "tbsp"},
		{name: "capital T shorthand", input: "T", want: "tbsp"},
		{name: "lowercase t shorthand", input: "t", want: "tsp"},
		{name: "fluid ounces two words", input: "Fluid  Ounces", want: "fl oz"},
		{name: "pounds abbreviation", input: "lbs", want: "lb"},
		{name: "grams", input: "grams", want: "g"},
		{name: "count noun plural", input: "cloves", want: "clove"},
		{name: "typo resolved by similarity", input: "tablespooon", want: "tbsp"},
		{name: "typo in teaspoon", input: "teaspons", want: "tsp"},
		{name: "short unknown is not fuzzy matched", input: "Blob", want: "blob"},
		{name: "unknown passes through lowercased", input: "Smidgen", want: "smidgen"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NormalizeUnit(tc.input))
		})
	}
}

func TestIsUnit(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUnit("cups"))
	assert.True(t, IsUnit("Tbsp."))
	assert.True(t, IsUnit("fluid ounce"))
	assert.False(t, IsUnit("tablespooon"), "fuzzy matches are not units for extraction")
	assert.False(t, IsUnit("onion"))
	assert.False(t, IsUnit(""))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	e, ok := Lookup("Cups")
	require.True(t, ok)
	assert.Equal(t, Entry{Unit: "cup", Group: GroupLargeVolume, ToBase: 8}, e)

	e, ok = Lookup("can")
	require.True(t, ok)
	assert.Equal(t, "can", e.Group)

	_, ok = Lookup("smidgen")
	assert.False(t, ok)
}

func TestGroup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, GroupSmallVolume, Group("teaspoon"))
	assert.Equal(t, GroupMetricWeight, Group("kg"))
	assert.Equal(t, "smidgen", Group(" Smidgen "))
}

func TestEntries_GroupsAreConsistent(t *testing.T) {
	t.Parallel()

	for _, e := range Entries() {
		assert.Greater(t, e.ToBase, 0.0, e.Unit)
		got, ok := Lookup(e.Unit)
		require.True(t, ok, e.Unit)
		assert.Equal(t, e, got)
	}
}

func TestCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "both unitless", a: "", b: "", want: true},
		{name: "unitless vs unit", a: "", b: "cup", want: false},
		{name: "unit vs unitless", a: "g", b: "", want: false},
		{name: "same unit different spelling", a: "tbsp", b: "Tablespoons", want: true},
		{name: "same small volume group", a: "tsp", b: "tbsp", want: true},
		{name: "same large volume group", a: "cup", b: "quart", want: true},
		{name: "small vs large volume", a: "tbsp", b: "cup", want: false},
		{name: "volume vs weight", a: "cup", b: "g", want: false},
		{name: "imperial vs metric weight", a: "oz", b: "g", want: false},
		{name: "metric volume", a: "ml", b: "liters", want: true},
		{name: "containers never sum", a: "can", b: "jar", want: false},
		{name: "same container", a: "cans", b: "can", want: true},
		{name: "unknown matches itself", a: "smidgen", b: "Smidgen", want: true},
		{name: "unknown vs known", a: "smidgen", b: "tsp", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Compatible(tc.a, tc.b))
			assert.Equal(t, tc.want, Compatible(tc.b, tc.a), "compatibility is symmetric")
		})
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		q        float64
		from, to string
		want     float64
	}{
		{name: "tsp to tbsp", q: 1, from: "tsp", to: "tbsp", want: 1.0 / 3.0},
		{name: "tbsp to tsp", q: 2, from: "tbsp", to: "tsp", want: 6},
		{name: "cups to quart", q: 4, from: "cups", to: "quart", want: 1},
		{name: "kg to g", q: 1.5, from: "kg", to: "g", want: 1500},
		{name: "lb to oz", q: 0.5, from: "lb", to: "oz", want: 8},
		{name: "same unit", q: 3, from: "can", to: "cans", want: 3},
		{name: "cross group unchanged", q: 2, from: "cup", to: "g", want: 2},
		{name: "unknown unchanged", q: 7, from: "smidgen", to: "tsp", want: 7},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.want, Convert(tc.q, tc.from, tc.to), 1e-9)
		})
	}
}

func TestFactor_ReportsIncompatibility(t *testing.T) {
	t.Parallel()

	f, ok := Factor("tbsp", "tsp")
	assert.True(t, ok)
	assert.InDelta(t, 3.0, f, 1e-9)

	f, ok = Factor("cup", "ml")
	assert.False(t, ok)
	assert.Equal(t, 1.0, f)
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, similarity("cup", "cup"))
	assert.Equal(t, 1.0, similarity("", ""))
	assert.InDelta(t, 0.0, similarity("tsp", ""), 0.01)
	assert.GreaterOrEqual(t, similarity("tablespooon", "tablespoon"), 0.85)
	assert.Less(t, similarity("garlic", "gallon"), 0.85)
}
