package service

import (
	"regexp"
	"strings"

	"github.com/mwhite7112/woodpantry-shoppinglist/internal/units"
)

var (
	parenthetical = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	quantityToken = regexp.MustCompile(`^(?:\d+(?:[./]\d+)?|\.\d+|\d*[½⅓⅔¼¾⅕⅙⅛⅜⅝⅞])(?:[-–]\d+(?:[./]\d+)?)?$`)
	gluedQuantity = regexp.MustCompile(`^\d+(?:\.\d+)?([a-zA-Z]+\.?)$`)
)

// lineName picks the text to normalize for a line: its Name when set,
// otherwise a name pulled out of OriginalText.
func lineName(line IngredientLine) string {
	if name := strings.TrimSpace(line.Name); name != "" {
		return name
	}
	return extractName(line.OriginalText)
}

// extractName drops the amount from a raw line: "2 cups of shredded
// cheddar, divided" becomes "shredded cheddar". Only the first clause is
// kept and parentheticals are removed.
func extractName(text string) string {
	s := parenthetical.ReplaceAllString(text, " ")
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return ""
	}

	i, sawQuantity, sawUnit := skipQuantity(tokens)

	if !sawUnit && i < len(tokens) {
		// Without an amount a leading unit only counts when "of" follows,
		// so "head lettuce" keeps its first word but "pinch of salt" does not.
		n := unitWords(tokens[i:])
		if n > 0 && (sawQuantity || (i+n < len(tokens) && strings.EqualFold(tokens[i+n], "of"))) {
			i += n
		}
	}
	if i < len(tokens) && strings.EqualFold(tokens[i], "of") {
		i++
	}
	return strings.Join(tokens[i:], " ")
}

// skipQuantity returns the index of the first token after a leading amount,
// whether one was found, and whether the amount had a unit glued on ("200g").
func skipQuantity(tokens []string) (int, bool, bool) {
	first := strings.ToLower(tokens[0])
	if first == "a" || first == "an" {
		return 1, true, false
	}
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch {
		case quantityToken.MatchString(tok):
			i++
		case i > 0 && isRangeWord(tok) && i+1 < len(tokens) && quantityToken.MatchString(tokens[i+1]):
			i += 2
		default:
			if m := gluedQuantity.FindStringSubmatch(tok); m != nil && units.IsUnit(m[1]) {
				return i + 1, true, true
			}
			return i, i > 0, false
		}
	}
	return i, i > 0, false
}

func isRangeWord(tok string) bool {
	switch strings.ToLower(tok) {
	case "-", "–", "to", "or":
		return true
	}
	return false
}

// unitWords reports how many leading tokens form a known unit.
func unitWords(tokens []string) int {
	if len(tokens) >= 2 && units.IsUnit(trimWord(tokens[0])+" "+trimWord(tokens[1])) {
		return 2
	}
	if units.IsUnit(trimWord(tokens[0])) {
		return 1
	}
	return 0
}

func trimWord(tok string) string {
	return strings.TrimRight(tok, ",;:")
}
