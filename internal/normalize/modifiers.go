package normalize

import (
	"regexp"
	"strings"
)

// modifiers are preparation, quality, size and temperature words that do not
// change what gets bought. Multi-word phrases are listed before the single
// words they contain.
var modifiers = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:at )?room temperature\b`),
	regexp.MustCompile(`\b(?:extra[- ])?(?:large|small)\b`),
	regexp.MustCompile(`\b(?:finely|roughly|coarsely|thinly|freshly|lightly|firmly|loosely|very)\b`),
	regexp.MustCompile(`\b(?:chopped|diced|minced|sliced|grated|shredded|julienned|cubed|halved|quartered|crumbled|mashed|pureed|zested|juiced)\b`),
	regexp.MustCompile(`\b(?:peeled|seeded|deseeded|cored|pitted|trimmed|rinsed|drained|stemmed|deveined|patted dry)\b`),
	regexp.MustCompile(`\b(?:softened|melted|chilled|cold|warm|frozen|thawed|cooled)\b`),
	regexp.MustCompile(`\b(?:cooked|uncooked|raw|toasted|roasted|beaten|whisked|sifted|packed|heaping|level|rounded)\b`),
	regexp.MustCompile(`\b(?:fresh|dried|ripe|organic|medium|jumbo|baby|whole|plain)\b`),
	regexp.MustCompile(`\b(?:unsalted|salted|low[- ]sodium|reduced[- ]sodium|no[- ]salt[- ]added|low[- ]fat|reduced[- ]fat|fat[- ]free|nonfat|full[- ]fat|skim|lean|extra[- ]lean)\b`),
	regexp.MustCompile(`\b(?:boneless|skinless|bone[- ]in|skin[- ]on)\b`),
	regexp.MustCompile(`\b(?:good[- ]quality|high[- ]quality|store[- ]bought|homemade|prepared)\b`),
}

var (
	danglingJoiners = regexp.MustCompile(`^(?:(?:and|or)\s+|[,\-]\s*)+|(?:\s+(?:and|or)|\s*[,\-])+$`)
	spaceRuns       = regexp.MustCompile(`\s+`)
	spacedCommas    = regexp.MustCompile(`\s*,\s*(?:,\s*)*`)
)

// stripModifiers removes descriptor words and tidies what is left. It is
// idempotent.
func stripModifiers(text string) string {
	s := text
	for _, m := range modifiers {
		s = m.ReplaceAllString(s, " ")
	}
	s = spacedCommas.ReplaceAllString(s, ", ")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	// "peeled and diced potatoes" leaves "and potatoes" behind.
	for {
		next := strings.TrimSpace(danglingJoiners.ReplaceAllString(s, ""))
		next = strings.Trim(next, edgePunct)
		if next == s {
			break
		}
		s = next
	}
	return s
}
