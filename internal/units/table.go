// Package units holds the static unit conversion table, the unit alias
// normalizer, and the compatibility rules used when summing quantities.
package units

import "strings"

// Entry is a single row of the conversion table. All entries sharing a Group
// are mutually convertible through their ToBase factors.
type Entry struct {
	Unit   string
	Group  string
	ToBase float64
}

const (
	GroupSmallVolume    = "small-volume"
	GroupLargeVolume    = "large-volume"
	GroupMetricVolume   = "metric-volume"
	GroupMetricWeight   = "metric-weight"
	GroupImperialWeight = "imperial-weight"
)

var measured = []Entry{
	{Unit: "tsp", Group: GroupSmallVolume, ToBase: 1},
	{Unit: "tbsp", Group: GroupSmallVolume, ToBase: 3},

	{Unit: "fl oz", Group: GroupLargeVolume, ToBase: 1},
	{Unit: "cup", Group: GroupLargeVolume, ToBase: 8},
	{Unit: "pint", Group: GroupLargeVolume, ToBase: 16},
	{Unit: "quart", Group: GroupLargeVolume, ToBase: 32},
	{Unit: "gallon", Group: GroupLargeVolume, ToBase: 128},

	{Unit: "ml", Group: GroupMetricVolume, ToBase: 1},
	{Unit: "cl", Group: GroupMetricVolume, ToBase: 10},
	{Unit: "dl", Group: GroupMetricVolume, ToBase: 100},
	{Unit: "l", Group: GroupMetricVolume, ToBase: 1000},

	{Unit: "mg", Group: GroupMetricWeight, ToBase: 0.001},
	{Unit: "g", Group: GroupMetricWeight, ToBase: 1},
	{Unit: "kg", Group: GroupMetricWeight, ToBase: 1000},

	{Unit: "oz", Group: GroupImperialWeight, ToBase: 1},
	{Unit: "lb", Group: GroupImperialWeight, ToBase: 16},
}

// countNouns are containers and pieces. Each one is its own group, so a can
// never sums with a jar.
var countNouns = []string{
	"can", "jar", "clove", "bunch", "slice", "pinch", "dash", "sprig",
	"stalk", "head", "piece", "stick", "package", "bag", "box", "bottle",
	"handful", "sheet", "leaf", "container", "envelope",
}

var table = buildTable()

func buildTable() map[string]Entry {
	t := make(map[string]Entry, len(measured)+len(countNouns))
	for _, e := range measured {
		t[e.Unit] = e
	}
	for _, u := range countNouns {
		t[u] = Entry{Unit: u, Group: u, ToBase: 1}
	}
	return t
}

// Lookup returns the table entry for a unit, normalizing its spelling first.
func Lookup(unit string) (Entry, bool) {
	e, ok := table[NormalizeUnit(unit)]
	return e, ok
}

// Group returns the conversion group for a unit. Units missing from the table
// are a group of their own, named by their lowercase spelling.
func Group(unit string) string {
	if e, ok := Lookup(unit); ok {
		return e.Group
	}
	return strings.ToLower(strings.TrimSpace(unit))
}

// Entries returns a copy of every table row, measured units first.
func Entries() []Entry {
	out := make([]Entry, 0, len(table))
	out = append(out, measured...)
	for _, u := range countNouns {
		out = append(out, table[u])
	}
	return out
}
