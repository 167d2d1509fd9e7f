package vmath

// ClampF limits v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InRangeF reports whether lo <= v <= hi (both ends inclusive)
func InRangeF(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// AbsF returns the absolute value of v
func AbsF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
