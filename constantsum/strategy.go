package constantsum

import (
	"fmt"

	"github.com/lucasperin/xmss-reference/bigint"
)

// Strategy selects among the interchangeable encoder algorithms. All
// strategies produce identical output for the same (I, t, n, s); they
// differ only in how they arrive at it.
type Strategy int

const (
	// Linear recomputes Len from scratch for every candidate coordinate
	// value.
	Linear Strategy = iota
	// LinearCached is Linear, reading Len from a CacheContext's len-cache.
	LinearCached
	// Cky advances the window bound via an incremental binomial
	// recurrence instead of recomputing Len.
	Cky
	// CkyInv is Cky, searching from the top candidate value downward.
	CkyInv
	// BinarySearch locates each coordinate by binary-searching Rank.
	BinarySearch
	// BinarySearchCached is BinarySearch, reading Rank from a
	// CacheContext's rank-cache.
	BinarySearchCached
)

// String returns the strategy's name, for diagnostics and test output.
func (s Strategy) String() string {
	switch s {
	case Linear:
		return "Linear"
	case LinearCached:
		return "LinearCached"
	case Cky:
		return "Cky"
	case CkyInv:
		return "CkyInv"
	case BinarySearch:
		return "BinarySearch"
	case BinarySearchCached:
		return "BinarySearchCached"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Encode maps I to its constant-sum encoding L using the given strategy.
// Preconditions (0 <= I < Len(t,n,s), parameters valid) are the caller's
// responsibility: an out-of-range I is a programmer error, not a
// recoverable runtime condition, so Encode does not validate it.
//
// cache is only consulted by the two *Cached strategies; it is accepted
// (and ignored) by the others so that callers can swap strategies at a call
// site without restructuring the cache plumbing.
func Encode(I *bigint.Int, t, n, s int, strategy Strategy, cache *CacheContext) []int {
	switch strategy {
	case Linear:
		return EncodeLinear(I, t, n, s, nil)
	case LinearCached:
		return EncodeLinear(I, t, n, s, cache)
	case Cky:
		return EncodeCky(I, t, n, s)
	case CkyInv:
		return EncodeCkyInv(I, t, n, s)
	case BinarySearch:
		return EncodeBinarySearch(I, t, n, s, nil)
	case BinarySearchCached:
		return EncodeBinarySearch(I, t, n, s, cache)
	default:
		panic(fmt.Errorf("constantsum.Encode: unknown strategy %v", strategy))
	}
}
