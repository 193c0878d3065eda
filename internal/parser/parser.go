// Package parser reads the leading quantity and unit off a raw ingredient
// line such as "1 1/2 cups flour" or "1 (15 oz) can black beans".
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mwhite7112/woodpantry-shoppinglist/internal/units"
)

// Result is what Parse could read. Quantity is nil and Unit is "" when the
// line did not start with a recognisable amount.
type Result struct {
	Quantity *float64
	Unit     string
}

// Parser is stateless and safe for concurrent use.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

var vulgarFractions = strings.NewReplacer(
	"½", " 1/2 ", "⅓", " 1/3 ", "⅔", " 2/3 ", "¼", " 1/4 ", "¾", " 3/4 ",
	"⅕", " 1/5 ", "⅖", " 2/5 ", "⅗", " 3/5 ", "⅘", " 4/5 ", "⅙", " 1/6 ",
	"⅚", " 5/6 ", "⅛", " 1/8 ", "⅜", " 3/8 ", "⅝", " 5/8 ", "⅞", " 7/8 ",
	"⁄", "/", "–", "-", "—", "-",
)

var (
	decimalRe  = regexp.MustCompile(`^(?:\d+(?:\.\d+)?|\.\d+)$`)
	fractionRe = regexp.MustCompile(`^(\d+)/(\d+)$`)
	rangeRe    = regexp.MustCompile(`^([\d./]+)-([\d./]+)$`)
	gluedRe    = regexp.MustCompile(`^(\d+(?:\.\d+)?)([a-zA-Z]+\.?)$`)
)

// Parse reads a quantity and unit from the start of text. It never fails;
// unreadable text yields the zero Result.
func (p *Parser) Parse(text string) Result {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Result{}
	}

	q, i, ok := readQuantity(tokens)
	if !ok {
		return Result{}
	}
	i = skipParenthetical(tokens, i)

	res := Result{Quantity: &q}
	if unit, n := readUnit(tokens[i:]); n > 0 {
		res.Unit = unit
	}
	return res
}

func tokenize(text string) []string {
	s := vulgarFractions.Replace(strings.TrimSpace(text))
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		// "200g" and "2lb" are an amount and a unit written together.
		if m := gluedRe.FindStringSubmatch(f); m != nil && units.IsUnit(m[2]) {
			out = append(out, m[1], m[2])
			continue
		}
		out = append(out, f)
	}
	return out
}

// readQuantity consumes a number, a mixed number or a range and returns the
// value with the index of the first unread token. Ranges resolve to their
// lower bound.
func readQuantity(tokens []string) (float64, int, bool) {
	first := strings.ToLower(tokens[0])
	if first == "a" || first == "an" {
		return 1, 1, true
	}

	if m := rangeRe.FindStringSubmatch(tokens[0]); m != nil {
		lo, okLo := number(m[1])
		_, okHi := number(m[2])
		if okLo && okHi {
			return lo, 1, true
		}
	}

	q, ok := number(tokens[0])
	if !ok {
		return 0, 0, false
	}
	i := 1

	// 1 1/2
	if i < len(tokens) && decimalRe.MatchString(tokens[0]) && !strings.Contains(tokens[0], ".") {
		if fractionRe.MatchString(tokens[i]) {
			if f, ok := number(tokens[i]); ok {
				q += f
				i++
			}
		}
	}

	// 2 - 3, 2 to 3, 2 or 3
	if i+1 < len(tokens) {
		switch strings.ToLower(tokens[i]) {
		case "-", "to", "or":
			if _, ok := number(tokens[i+1]); ok {
				i += 2
			}
		}
	}
	return q, i, true
}

func number(tok string) (float64, bool) {
	if decimalRe.MatchString(tok) {
		v, err := strconv.ParseFloat(tok, 64)
		return v, err == nil
	}
	if m := fractionRe.FindStringSubmatch(tok); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 0, false
		}
		return num / den, true
	}
	return 0, false
}

// skipParenthetical steps over a package size such as "(15 oz)".
func skipParenthetical(tokens []string, i int) int {
	if i >= len(tokens) || !strings.HasPrefix(tokens[i], "(") {
		return i
	}
	for j := i; j < len(tokens); j++ {
		if strings.HasSuffix(tokens[j], ")") {
			return j + 1
		}
	}
	return i
}

// readUnit tries a two-word unit ("fl oz", "fluid ounces") before a
// one-word one and reports how many tokens it used.
func readUnit(tokens []string) (string, int) {
	if len(tokens) >= 2 {
		two := trimToken(tokens[0]) + " " + trimToken(tokens[1])
		if units.IsUnit(two) {
			return units.Canonical(two), 2
		}
	}
	if len(tokens) >= 1 {
		one := trimToken(tokens[0])
		if units.IsUnit(one) {
			return units.Canonical(one), 1
		}
	}
	return "", 0
}

func trimToken(tok string) string {
	return strings.TrimRight(tok, ",;:")
}
