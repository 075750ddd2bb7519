package constantsum

import "golang.org/x/exp/constraints"

// minOf covers the jmax = min(n, z) bound of the rank-cache shape in the
// cache tests.
func minOf[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}
