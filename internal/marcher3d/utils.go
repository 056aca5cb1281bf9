package marcher3d

import "github.com/chewxy/math32"

func isFinite(x Real) bool { return !math32.IsInf(x, 0) && !math32.IsNaN(x) }

func clamp(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
