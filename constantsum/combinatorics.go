// Package constantsum implements the constant-sum message-representative
// transform: a bijection between an integer interval [0, M) and the set of
// t-tuples of integers in [0, n] whose components sum to exactly s. It is
// the hard part of the WOTS+-style scheme this repository models: the hash
// chain, PRF, address construction, tree layer and parameter/OID plumbing
// all live outside this package and are supplied by the caller.
//
// Throughout this package, coordinates are ordered MSB-first: L[0] is the
// most significant component, the first one the encoder chooses, and L[t-1]
// is the forced remainder.
package constantsum

import "github.com/lucasperin/xmss-reference/bigint"

// Binomial returns C(n, k) for possibly negative n or k, which are defined
// to be 0; the inclusion-exclusion sums below only terminate correctly
// because of this convention.
func Binomial(n, k int) *bigint.Int {
	return bigint.Zero().BinomUint(int64(n), int64(k))
}

// Len returns |{L in [0,n]^t : sum(L) = s}|, the cardinality of the
// constant-sum tuple space, via the standard inclusion-exclusion formula:
//
//	C(t,n,s) = sum_{i=0..k} (-1)^i * C(t,i) * C(s-(n+1)*i+t-1, t-1)
//	k = min(t, floor(s/(n+1)))
func Len(t, n, s int) *bigint.Int {
	out := bigint.Zero()
	a := bigint.Get()
	b := bigint.Get()
	defer bigint.Put(a)
	defer bigint.Put(b)

	k := s / (n + 1)
	if t < k {
		k = t
	}

	for i := 0; i <= k; i++ {
		a.BinomUint(int64(t), int64(i))
		b.BinomUint(int64(s-(n+1)*i+t-1), int64(t-1))
		if i%2 == 0 {
			out.AddMul(a, b)
		} else {
			out.SubMul(a, b)
		}
	}
	return out
}

// Rank returns |{L in [0,n]^t : sum(L) = s, L[0] <= j}|, the count of
// tuples whose leading component does not exceed j:
//
//	R(t,n,s,j) = sum_{i=0..k} (-1)^i * C(t-1,i) * [C(s-(n+1)*i+t-1,t-1) - C(s-(n+1)*i+t-2-j,t-1)]
//	k = min(t, floor(s/(n+1)))
//
// By the convention of the formula itself, Rank(t,n,s,-1) == 0 (the
// bracketed difference collapses to zero for every term) and
// Rank(t,n,s,n) == Len(t,n,s). Both identities are exercised by
// TestRankBoundaries rather than special-cased in code.
func Rank(t, n, s, j int) *bigint.Int {
	out := bigint.Zero()
	a := bigint.Get()
	b := bigint.Get()
	c := bigint.Get()
	defer bigint.Put(a)
	defer bigint.Put(b)
	defer bigint.Put(c)

	k := s / (n + 1)
	if t < k {
		k = t
	}

	for i := 0; i <= k; i++ {
		a.BinomUint(int64(t-1), int64(i))
		b.BinomUint(int64(s-(n+1)*i+t-1), int64(t-1))
		c.BinomUint(int64(s-(n+1)*i+t-2-j), int64(t-1))
		b.Sub(b, c)
		if i%2 == 0 {
			out.AddMul(a, b)
		} else {
			out.SubMul(a, b)
		}
	}
	return out
}
