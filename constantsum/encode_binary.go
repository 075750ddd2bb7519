package constantsum

import (
	"sort"

	"github.com/lucasperin/xmss-reference/bigint"
)

// EncodeBinarySearch implements the binary-search strategy: for each
// MSB-first coordinate, binary search for the smallest k in [0, min(n,s)]
// such that I < Rank(rem, n, s, k), i.e. a lower-bound search over the
// partition Rank induces on [0, Len(rem,n,s)). cache is optional; when
// non-nil and its rank-cache is loaded, each probe is a cache lookup
// instead of a fresh inclusion-exclusion sum.
func EncodeBinarySearch(I0 *bigint.Int, t, n, s int, cache *CacheContext) []int {
	L := make([]int, t)
	I := bigint.Zero().Assign(I0)

	rem, sum := t, s
	for rem > 1 {
		count := n
		if sum < count {
			count = sum
		}

		k := sort.Search(count+1, func(k int) bool {
			return I.Cmp(rankLookup(cache, rem, n, sum, k)) < 0
		})

		var left *bigint.Int
		if k == 0 {
			left = bigint.Zero()
		} else {
			left = rankLookup(cache, rem, n, sum, k-1)
		}

		L[t-rem] = k
		I.Sub(I, left)
		sum -= k
		rem--
	}
	L[t-1] = sum
	return L
}

// rankLookup returns Rank(rem,n,z,j) as a fresh *bigint.Int, reading a
// loaded rank-cache when one is supplied. rem is the current remaining
// tuple length, matching rankCache[rem-1][z][j] == Rank(rem,n,z,j).
func rankLookup(cache *CacheContext, rem, n, z, j int) *bigint.Int {
	if cache != nil && cache.HasRankCache() {
		return bigint.Zero().Assign(cache.Rank(rem-1, z, j))
	}
	return Rank(rem, n, z, j)
}
