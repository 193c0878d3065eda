package normalize

import "regexp"

const (
	bellPepperKey     = "bell pepper"
	bellPepperDisplay = "Bell peppers"
)

var (
	bellPepper    = regexp.MustCompile(`\b(?:(red|green|yellow|orange|purple)\s+)?bell\s+peppers?\b`)
	coloredPepper = regexp.MustCompile(`\b(red|green|yellow|orange)\s+peppers?\b`)
	// Colored peppers that are really spices or condiments.
	notBellPepper = regexp.MustCompile(`\b(?:crushed|ground|dried|flakes?|flaked|chil[ei]s?|chilli|cayenne|sauce|paste|jelly|powder|hot)\b`)
)

// detectBellPepper reports whether text names a bell pepper and which color
// it gave, if any. A bare "pepper" never matches; it is more often black
// pepper than a vegetable.
func detectBellPepper(text string) (string, bool) {
	if m := bellPepper.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := coloredPepper.FindStringSubmatch(text); m != nil && !notBellPepper.MatchString(text) {
		return m[1], true
	}
	return "", false
}
