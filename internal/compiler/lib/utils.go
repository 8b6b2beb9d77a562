package lib

import (
	"math"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Add returns a+b and whether it fit in 64 bits.
func Add(a, b int64) (int64, bool) {
	c := a + b
	return c, (a^c)&(b^c) >= 0
}

// Sub returns a-b and whether it fit in 64 bits.
func Sub(a, b int64) (int64, bool) {
	c := a - b
	return c, (a^b)&(a^c) >= 0
}

// Mul returns a*b and whether it fit in 64 bits.
func Mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return math.MinInt64, false
	}
	c := a * b
	return c, c/b == a
}

// FloorDiv divides rounding toward negative infinity: FloorDiv(-7, 2) == -4.
// The caller rejects b == 0 and MinInt64 / -1.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a remainder with the sign of the divisor, so that
// FloorDiv(a, b)*b + FloorMod(a, b) == a.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// Suggest returns the candidate closest to name by edit distance, if it is
// close enough to be a plausible typo.
func Suggest(name string, candidates []string) (string, bool) {
	best, bestDist := "", -1
	for _, c := range candidates {
		if c == name {
			continue
		}
		d := fuzzy.LevenshteinDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > maxSuggestDistance(name) {
		return "", false
	}
	return best, true
}

func maxSuggestDistance(name string) int {
	n := len([]rune(name))
	switch {
	case n <= 2:
		return 1
	case n <= 5:
		return 2
	}
	return 3
}
