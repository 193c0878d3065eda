package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// foldAccents maps "jalapeño" to "jalapeno" and "crème" to "creme".
	foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	parenthetical = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	fillerSuffix  = regexp.MustCompile(`(?:[\s,;]*\b(?:to taste|as needed|if needed|if desired|for garnish|for serving|for topping|optional|divided|or more|plus more|or to taste))+$`)
)

const edgePunct = ".,;:!?*-•·'\" "

// cleanup lowercases and tidies a raw name for matching. Display casing is
// derived separately.
func cleanup(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	s := norm.NFKC.String(raw)
	if folded, _, err := transform.String(foldAccents, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "’", "'")
	s = parenthetical.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, edgePunct)
	s = fillerSuffix.ReplaceAllString(s, "")
	return strings.Trim(s, edgePunct)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
