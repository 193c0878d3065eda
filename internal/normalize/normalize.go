// Package normalize reduces free-text ingredient names to a canonical
// grouping key and a display name.
//
// Rules are tried in a fixed order and the first hit wins: compound idioms,
// bell peppers, the family table on the raw text, the family table again
// after descriptor words are stripped, "x and y" rewriting, and finally a
// singularized passthrough. Earlier rules are more specific than later ones,
// so the order must not change.
package normalize

import "regexp"

// Kind identifies which rule produced a Result.
type Kind int

const (
	KindPlain Kind = iota
	KindCompound
	KindBellPepper
	KindFamily
)

// String returns a snake_case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCompound:
		return "compound"
	case KindBellPepper:
		return "bell_pepper"
	case KindFamily:
		return "family"
	default:
		return "plain"
	}
}

// Attributes records how a name was normalized. Color is only set for
// KindBellPepper and is empty when no color was given.
type Attributes struct {
	Kind              Kind
	Color             string
	ModifiersStripped bool
}

// IsBellPepper reports whether the name was recognized as a bell pepper.
func (a Attributes) IsBellPepper() bool { return a.Kind == KindBellPepper }

// IsCompound reports whether the name came from the idiom table or the
// conjunction rule.
func (a Attributes) IsCompound() bool { return a.Kind == KindCompound }

// FamilyMatched reports whether a family rule matched.
func (a Attributes) FamilyMatched() bool { return a.Kind == KindFamily }

// Result is the normalized form of an ingredient name. Two names aggregate
// together iff their Keys are equal.
type Result struct {
	Key     string
	Display string
	Attrs   Attributes
}

// Empty reports whether normalization produced nothing usable.
func (r Result) Empty() bool { return r.Key == "" }

var conjunction = regexp.MustCompile(`^([a-z]{2,12}) (?:and|&) ([a-z]{2,12})$`)

// Name normalizes a raw ingredient name. It never panics; empty input yields
// the zero Result.
func Name(raw string) Result {
	text := cleanup(raw)
	if text == "" {
		return Result{}
	}

	if r, ok := matchExact(text); ok {
		return r
	}
	if r, ok := matchFamily(text); ok {
		return r
	}

	stripped := stripModifiers(text)
	changed := stripped != "" && stripped != text
	if changed {
		if r, ok := matchStripped(stripped); ok {
			r.Attrs.ModifiersStripped = true
			return r
		}
	}

	if m := conjunction.FindStringSubmatch(text); m != nil {
		key := m[1] + " & " + m[2]
		return Result{Key: key, Display: capitalize(key), Attrs: Attributes{Kind: KindCompound}}
	}

	base := text
	if changed {
		base = stripped
	}
	singular := singularize(base)

	// The singular form can land on a rule the plural missed. Matching it
	// here keeps Name(Name(x).Display).Key == Name(x).Key.
	if singular != text {
		if r, ok := matchAny(singular); ok {
			r.Attrs.ModifiersStripped = changed
			return r
		}
	}

	return Result{
		Key:     singular,
		Display: capitalize(singular),
		Attrs:   Attributes{Kind: KindPlain, ModifiersStripped: changed},
	}
}

// matchExact runs the rules that must see the whole cleaned text before any
// family pattern can claim a word of it.
func matchExact(text string) (Result, bool) {
	if r, ok := lookupCompound(text); ok {
		return r, true
	}
	if color, ok := detectBellPepper(text); ok {
		return Result{
			Key:     bellPepperKey,
			Display: bellPepperDisplay,
			Attrs:   Attributes{Kind: KindBellPepper, Color: color},
		}, true
	}
	return Result{}, false
}

// matchStripped retries the table once descriptors are gone. Compound and
// bell pepper checks run first so "fresh salt and pepper" still lands on the
// idiom.
func matchStripped(text string) (Result, bool) {
	if r, ok := matchExact(text); ok {
		return r, true
	}
	return matchFamily(text)
}

func matchAny(text string) (Result, bool) {
	if r, ok := matchExact(text); ok {
		return r, true
	}
	if r, ok := matchFamily(text); ok {
		return r, true
	}
	if m := conjunction.FindStringSubmatch(text); m != nil {
		key := m[1] + " & " + m[2]
		return Result{Key: key, Display: capitalize(key), Attrs: Attributes{Kind: KindCompound}}, true
	}
	return Result{}, false
}
