package common

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sign returns -1 for negative values and 1 otherwise, matching the
// sign convention of the leaf swing direction (zero counts as positive).
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
