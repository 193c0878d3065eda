package units

// Compatible reports whether quantities in unit a and unit b may be summed.
// Two unitless values are compatible; a unitless value never sums with one
// that carries a unit. Otherwise the units must be the same after alias
// normalization, or share a conversion group.
func Compatible(a, b string) bool {
	na, nb := NormalizeUnit(a), NormalizeUnit(b)
	if na == "" || nb == "" {
		return na == nb
	}
	if na == nb {
		return true
	}
	ea, okA := table[na]
	eb, okB := table[nb]
	return okA && okB && ea.Group == eb.Group
}

// Factor returns the multiplier that converts a quantity in from into to.
// The second result is false when either unit is unknown or the groups
// differ.
func Factor(from, to string) (float64, bool) {
	nf, nt := NormalizeUnit(from), NormalizeUnit(to)
	if nf == nt {
		return 1, true
	}
	ef, okF := table[nf]
	et, okT := table[nt]
	if !okF || !okT || ef.Group != et.Group || et.ToBase == 0 {
		return 1, false
	}
	return ef.ToBase / et.ToBase, true
}

// Convert expresses q (measured in from) in to. Unknown units and cross-group
// pairs return q unchanged; callers check Compatible first.
func Convert(q float64, from, to string) float64 {
	f, _ := Factor(from, to)
	return q * f
}
