package long

type RandSource interface {
	Uint64() uint64
}

// DifferenceLong subtracts the smaller of a and b from the larger.
func DifferenceLong(a, b Long) Long {
	av, bv := a.int64(), b.int64()
	if av > bv {
		return a.Sub(b)
	} else if av < bv {
		return b.Sub(a)
	}
	return Long{}
}

func LargerLong(a, b Long) Long {
	if a.int64() < b.int64() {
		return b
	}
	return a
}

func SmallerLong(a, b Long) Long {
	if a.int64() > b.int64() {
		return b
	}
	return a
}
