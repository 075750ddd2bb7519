package constantsum

import "github.com/lucasperin/xmss-reference/bigint"

// EncodeLinear implements the linear forward strategy: for each MSB-first
// coordinate, grow a [left, right) window by trying candidate values
// k = 0, 1, 2, ... until I falls inside it, calling Len afresh for every
// candidate. cache is optional; when non-nil and its len-cache is loaded,
// lookups hit it instead of recomputing Len from scratch. Same algorithm
// either way.
func EncodeLinear(I0 *bigint.Int, t, n, s int, cache *CacheContext) []int {
	L := make([]int, t)
	I := bigint.Zero().Assign(I0)

	rem, sum := t, s
	for rem > 1 {
		b := rem - 1

		left := bigint.Zero()
		right := lenLookup(cache, b, n, sum)
		k := 0
		for !(I.Cmp(left) >= 0 && I.Cmp(right) < 0) {
			k++
			left.Assign(right)
			right.Add(right, lenLookup(cache, b, n, sum-k))
		}

		L[t-rem] = k
		I.Sub(I, left)
		sum -= k
		rem--
	}
	L[t-1] = sum
	return L
}

// lenLookup returns Len(b,n,z) as a fresh *bigint.Int, reading a loaded
// len-cache when one is supplied.
func lenLookup(cache *CacheContext, b, n, z int) *bigint.Int {
	if cache != nil && cache.HasLenCache() {
		return bigint.Zero().Assign(cache.Len(b, z))
	}
	return Len(b, n, z)
}
