package fuzzydate

// Compare orders two dates component by component, most significant first.
// At each level an absent component sorts before any populated one, two
// populated components compare numerically, and two absent components defer
// to the next level. The result is a total order where
// Unknown < year-only < year+month < full date for a shared prefix.
//
// It returns -1 if d sorts before o, +1 if after, and 0 if equal.
func (d Date) Compare(o Date) int {
	if c := comparePart(d.year, o.year); c != 0 {
		return c
	}
	if c := comparePart(d.month, o.month); c != 0 {
		return c
	}
	return comparePart(d.day, o.day)
}

// Equal reports whether both dates have identical components, populated or
// not.
func (d Date) Equal(o Date) bool {
	return d.Compare(o) == 0
}

// Before reports whether d sorts before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d sorts after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

func comparePart(a, b part) int {
	switch {
	case !a.ok && !b.ok:
		return 0
	case !a.ok:
		return -1
	case !b.ok:
		return 1
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	default:
		return 0
	}
}
