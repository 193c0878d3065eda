package normalize

// compounds are multi-word idioms that name one purchasable item. Keys must
// match exactly after cleanup, so every spelling is listed.
var compounds = map[string]string{
	"salt and pepper":                             "salt & pepper",
	"salt & pepper":                               "salt & pepper",
	"salt n pepper":                               "salt & pepper",
	"salt and black pepper":                       "salt & pepper",
	"salt & black pepper":                         "salt & pepper",
	"salt and ground black pepper":                "salt & pepper",
	"salt and freshly ground pepper":              "salt & pepper",
	"salt and freshly ground black pepper":        "salt & pepper",
	"kosher salt and pepper":                      "salt & pepper",
	"kosher salt and black pepper":                "salt & pepper",
	"kosher salt and freshly ground black pepper": "salt & pepper",
	"sea salt and pepper":                         "salt & pepper",
	"sea salt and black pepper":                   "salt & pepper",

	"half and half": "half & half",
	"half & half":   "half & half",
	"half-and-half": "half & half",

	"mac and cheese":       "macaroni & cheese",
	"mac & cheese":         "macaroni & cheese",
	"macaroni and cheese":  "macaroni & cheese",
	"macaroni & cheese":    "macaroni & cheese",
	"boxed mac and cheese": "macaroni & cheese",

	"sweet and sour sauce": "sweet & sour sauce",
	"sweet & sour sauce":   "sweet & sour sauce",

	"bread and butter pickles": "bread & butter pickles",
	"bread & butter pickles":   "bread & butter pickles",

	"pork and beans": "pork & beans",
	"pork & beans":   "pork & beans",

	"oil and vinegar dressing": "oil & vinegar dressing",
	"oil & vinegar dressing":   "oil & vinegar dressing",
}

var compoundDisplay = map[string]string{
	"salt & pepper":                               "Salt & pepper",
	"half & half":            "Half & half",
	"macaroni & cheese":      "Macaroni & cheese",
	"sweet & sour sauce":     "Sweet & sour sauce",
	"bread & butter pickles": "Bread & butter pickles",
	"pork & beans":           "Pork & beans",
	"oil & vinegar dressing": "Oil & vinegar dressing",
}

func lookupCompound(text string) (Result, bool) {
	key, ok := compounds[text]
	if !ok {
		return Result{}, false
	}
	display, ok := compoundDisplay[key]
	if !ok {
		display = capitalize(key)
	}
	return Result{Key: key, Display: display, Attrs: Attributes{Kind: KindCompound}}, true
}
