package normalize

import "strings"

var irregularPlurals = map[string]string{
	"leaves":     "leaf",
	"loaves":     "loaf",
	"halves":     "half",
	"knives":     "knife",
	"potatoes":   "potato",
	"tomatoes":   "tomato",
	"mangoes":    "mango",
	"avocadoes":  "avocado",
	"cookies":    "cookie",
	"pies":       "pie",
	"brownies":   "brownie",
	"veggies":    "veggie",
	"smoothies":  "smoothie",
	"calories":   "calorie",
	"geese":      "goose",
	"mice":       "mouse",
	"children":   "child",
	"molasses":   "molasses",
	"hummus":     "hummus",
	"couscous":   "couscous",
	"asparagus":  "asparagus",
	"swiss":      "swiss",
	"grits":      "grits",
	"oats":       "oats",
	"greens":     "greens",
	"noodles":    "noodles",
	"chives":     "chives",
	"anchovies":  "anchovy",
	"radishes":   "radish",
	"dishes":     "dish",
	"peaches":    "peach",
	"sandwiches": "sandwich",
}

var sibilantEndings = []string{"sses", "ches", "shes", "xes", "zes"}

// singularize turns the last word of s into its singular form. It is
// idempotent: a singular word is returned unchanged.
func singularize(s string) string {
	if s == "" {
		return s
	}
	head, last := "", s
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		head, last = s[:i+1], s[i+1:]
	}
	return head + singularWord(last)
}

func singularWord(w string) string {
	if v, ok := irregularPlurals[w]; ok {
		return v
	}
	// Irregular singulars must not be shortened further.
	for _, v := range irregularPlurals {
		if v == w {
			return w
		}
	}
	if len(w) <= 3 {
		return w
	}
	if strings.HasSuffix(w, "ies") {
		return w[:len(w)-3] + "y"
	}
	for _, end := range sibilantEndings {
		if strings.HasSuffix(w, end) {
			return w[:len(w)-2]
		}
	}
	if strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") &&
		!strings.HasSuffix(w, "us") && !strings.HasSuffix(w, "is") {
		return w[:len(w)-1]
	}
	return w
}
