package constantsum

import "github.com/lucasperin/xmss-reference/bigint"

// CheckEncoding verifies that L is the unique constant-sum encoding of I
// for parameters (t,n,s). It recomputes the same rank comparisons the
// encoder used to produce L, independently of any claim L carries, and
// rejects on the first comparison that fails. The witness is untrusted:
// every field is checked, never read only to short-circuit.
//
// cache is optional; when non-nil and its rank-cache is loaded, CheckEncoding
// reads from it instead of recomputing Rank from scratch at every step.
//
// It walks all t coordinates through the same rank comparison, the last one
// included, rather than trusting the final coordinate to equal whatever sum
// is left over: Rank(1,n,z,j) collapses to the single-point window that
// forces j == z, so the loop rejects a forced coordinate exactly like any
// other without a special case.
//
// CheckEncoding does not allocate an encoding of its own and does not trust
// L's length or bounds beyond what the walk below actually touches; callers
// that accept L from an untrusted witness should additionally validate
// len(L) == t and 0 <= L[i] <= n up front before calling this, since an L
// shorter than t panics on index rather than returning false, and entries
// of L past index t-1 are never read.
func CheckEncoding(I0 *bigint.Int, t, n, s int, L []int, cache *CacheContext) bool {
	I := bigint.Zero().Assign(I0)

	rem, sum := t, s
	for rem > 0 {
		k := L[t-rem]
		if k < 0 || k > n || k > sum {
			return false
		}

		var left *bigint.Int
		if k == 0 {
			left = bigint.Zero()
		} else {
			left = rankLookup(cache, rem, n, sum, k-1)
		}
		right := rankLookup(cache, rem, n, sum, k)

		if I.Cmp(left) < 0 || I.Cmp(right) >= 0 {
			return false
		}

		I.Sub(I, left)
		sum -= k
		rem--
	}

	return I.IsZero() && sum == 0
}
