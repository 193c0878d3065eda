package units

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// aliases maps each canonical unit to the spellings recipes use for it.
var aliases = map[string][]string{
	"tsp":     {"tsp", "tsps", "teaspoon", "teaspoons", "tea spoon", "t"},
	"tbsp":    {"tbsp", "tbsps", "tbs", "tbl", "tbls", "tablespoon", "tablespoons", "table spoon"},
	"fl oz":   {"fl oz", "fl. oz", "floz", "fl ounce", "fluid ounce", "fluid ounces", "fl ozs"},
	"cup":     {"cup", "cups", "c"},
	"pint":    {"pint", "pints", "pt", "pts"},
	"quart":   {"quart", "quarts", "qt", "qts"},
	"gallon":  {"gallon", "gallons", "gal", "gals"},
	"ml":      {"ml", "mls", "milliliter", "milliliters", "millilitre", "millilitres"},
	"cl":      {"cl", "centiliter", "centiliters", "centilitre", "centilitres"},
	"dl":      {"dl", "deciliter", "deciliters", "decilitre", "decilitres"},
	"l":       {"l", "liter", "liters", "litre", "litres", "lt"},
	"mg":      {"mg", "milligram", "milligrams", "milligramme", "milligrammes"},
	"g":       {"g", "gr", "gram", "grams", "gramme", "grammes"},
	"kg":      {"kg", "kgs", "kilo", "kilos", "kilogram", "kilograms", "kilogramme", "kilogrammes"},
	"oz":      {"oz", "ozs", "ounce", "ounces"},
	"lb":      {"lb", "lbs", "pound", "pounds", "#"},
	"can":     {"can", "cans", "tin", "tins"},
	"jar":     {"jar", "jars"},
	"clove":   {"clove", "cloves"},
	"bunch":   {"bunch", "bunches"},
	"slice":   {"slice", "slices"},
	"pinch":   {"pinch", "pinches"},
	"dash":    {"dash", "dashes"},
	"sprig":   {"sprig", "sprigs"},
	"stalk":   {"stalk", "stalks", "rib", "ribs"},
	"head":    {"head", "heads"},
	"piece":   {"piece", "pieces", "pc", "pcs"},
	"stick":   {"stick", "sticks"},
	"package": {"package", "packages", "pkg", "pkgs", "packet", "packets", "pack", "packs"},
	"bag":     {"bag", "bags"},
	"box":     {"box", "boxes"},
	"bottle":  {"bottle", "bottles"},
	"handful": {"handful", "handfuls"},
	"sheet":   {"sheet", "sheets"},
	"leaf":    {"leaf", "leaves"},
	"container": {
		"container", "containers", "carton", "cartons", "tub", "tubs",
	},
	"envelope": {"envelope", "envelopes", "sachet", "sachets"},
}

var (
	aliasIndex = buildAliasIndex()
	// fuzzyCandidates is sorted so ties resolve the same way every run.
	fuzzyCandidates = buildFuzzyCandidates()
)

const (
	fuzzyMinRunes  = 6
	fuzzyThreshold = 0.85
)

func buildAliasIndex() map[string]string {
	idx := make(map[string]string)
	for canonical, spellings := range aliases {
		idx[canonical] = canonical
		for _, s := range spellings {
			idx[s] = canonical
		}
	}
	return idx
}

func buildFuzzyCandidates() []string {
	out := make([]string, 0, len(aliasIndex))
	for s := range aliasIndex {
		if len([]rune(s)) >= 4 {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// NormalizeUnit maps a raw unit spelling ("Tbsp.", "tablespoons") to its
// canonical form ("tbsp"). Empty input yields "". Unknown spellings are
// returned lowercased so they only ever match themselves.
func NormalizeUnit(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	// Capital T is the cookbook shorthand for tablespoon.
	if s == "T" || s == "T." || s == "Tb" || s == "Tb." {
		return "tbsp"
	}
	s = cleanUnit(s)
	if s == "" {
		return ""
	}
	if canonical, ok := aliasIndex[s]; ok {
		return canonical
	}
	if canonical, ok := fuzzyMatch(s); ok {
		return canonical
	}
	return s
}

// IsUnit reports whether token is an exact, known unit spelling. It never
// falls back to fuzzy matching, so ingredient words are not mistaken for
// units.
func IsUnit(token string) bool {
	s := strings.TrimSpace(token)
	if s == "T" || s == "T." {
		return true
	}
	_, ok := aliasIndex[cleanUnit(s)]
	return ok
}

// Canonical returns the canonical spelling for an exact alias, or "" when the
// token is not a known unit.
func Canonical(token string) string {
	s := strings.TrimSpace(token)
	if s == "T" || s == "T." {
		return "tbsp"
	}
	return aliasIndex[cleanUnit(s)]
}

func cleanUnit(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimRight(s, ".")
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func fuzzyMatch(s string) (string, bool) {
	if len([]rune(s)) < fuzzyMinRunes {
		return "", false
	}
	best, bestScore := "", 0.0
	for _, cand := range fuzzyCandidates {
		if score := similarity(s, cand); score > bestScore {
			best, bestScore = cand, score
		}
	}
	if bestScore < fuzzyThreshold {
		return "", false
	}
	return aliasIndex[best], true
}

// similarity returns a 0.0–1.0 score between two strings using Levenshtein
// distance: 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
