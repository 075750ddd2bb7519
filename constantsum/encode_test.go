package constantsum

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/lucasperin/xmss-reference/bigint"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

var allStrategies = []Strategy{Linear, LinearCached, Cky, CkyInv, BinarySearch, BinarySearchCached}

func fullCache(t, n, s int) *CacheContext {
	c := NewCacheContext(t, n, s)
	c.LoadLenCache()
	c.LoadRankCache()
	return c
}

func encodingKey(L []int) string {
	key := make([]byte, 0, 4*len(L))
	for _, k := range L {
		key = strconv.AppendInt(key, int64(k), 10)
		key = append(key, ',')
	}
	return string(key)
}

// sampleIndices returns up to n values in [0, total), always including both
// endpoints. Ranges that fit comfortably in an int64 are sampled evenly;
// larger ranges (total can exceed 2^256 for the canonical parameter sets)
// get the endpoints plus fixed pseudo-random 256-bit values folded into
// range, so the samples are reproducible across runs without fixtures.
func sampleIndices(total *bigint.Int, n int) []*bigint.Int {
	if len(total.Bytes()) <= 7 {
		count := total.Int64()
		if count <= 0 {
			return nil
		}
		if int64(n) > count {
			n = int(count)
		}
		out := make([]*bigint.Int, 0, n)
		for i := 0; i < n; i++ {
			idx := (count - 1) * int64(i) / int64(maxInt(n-1, 1))
			out = append(out, bigint.FromUint64(uint64(idx)))
		}
		return out
	}

	out := make([]*bigint.Int, 0, n)
	out = append(out, bigint.Zero())
	out = append(out, bigint.Zero().Sub(total, bigint.FromUint64(1)))
	for i := len(out); i < n; i++ {
		digest := blake3.Sum256([]byte(fmt.Sprintf("encoding sample %d", i)))
		out = append(out, bigint.Zero().Mod(bigint.FromBytesBE(digest[:]), total))
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// TestEncodeBijection checks that Encode maps every I in
// [0, Len(t,n,s)) to a distinct t-tuple summing to s with entries in [0,n].
func TestEncodeBijection(t *testing.T) {
	const tt, n, s = 4, 3, 5
	total := int(Len(tt, n, s).Int64())
	require.Greater(t, total, 0)

	seen := make(map[string]bool, total)
	for i := 0; i < total; i++ {
		L := Encode(bigIntFromInt(i), tt, n, s, Linear, nil)
		require.Len(t, L, tt)

		sum := 0
		for _, k := range L {
			require.GreaterOrEqual(t, k, 0)
			require.LessOrEqual(t, k, n)
			sum += k
		}
		require.Equal(t, s, sum)

		key := encodingKey(L)
		require.False(t, seen[key], "duplicate encoding %s for I=%d", key, i)
		seen[key] = true
	}
	require.Len(t, seen, total)
}

// TestEncodeRoundTripsThroughCheckEncoding checks that CheckEncoding
// accepts L only for the I it was produced from, not for any other.
func TestEncodeRoundTripsThroughCheckEncoding(t *testing.T) {
	const tt, n, s = 4, 3, 5
	total := int(Len(tt, n, s).Int64())
	cache := fullCache(tt, n, s)

	for i := 0; i < total; i++ {
		L := Encode(bigIntFromInt(i), tt, n, s, Linear, nil)
		require.True(t, CheckEncoding(bigIntFromInt(i), tt, n, s, L, cache))

		for j := 0; j < total; j++ {
			if j == i {
				continue
			}
			require.False(t, CheckEncoding(bigIntFromInt(j), tt, n, s, L, cache),
				"L for I=%d incorrectly accepted for I=%d", i, j)
		}
	}
}

// TestStrategiesAgree checks that every strategy produces the same
// encoding for the same (I, t, n, s).
func TestStrategiesAgree(t *testing.T) {
	cases := []struct{ tt, n, s int }{
		{3, 3, 3},
		{2, 5, 5},
		{4, 3, 5},
		{6, 4, 9},
		{67, 15, 400},
	}

	for _, c := range cases {
		total := Len(c.tt, c.n, c.s)
		cache := fullCache(c.tt, c.n, c.s)

		for _, I := range sampleIndices(total, 40) {
			want := Encode(I, c.tt, c.n, c.s, Linear, nil)
			for _, strat := range allStrategies {
				got := Encode(I, c.tt, c.n, c.s, strat, cache)
				require.Equal(t, want, got, "t=%d n=%d s=%d I=%s strategy=%s", c.tt, c.n, c.s, I, strat)
			}
		}
	}
}

// TestEncodeBoundaries checks that the first and last index in the
// valid range encode to the expected extremal tuples.
func TestEncodeBoundaries(t *testing.T) {
	const tt, n, s = 3, 3, 3
	total := Len(tt, n, s)

	first := Encode(bigint.Zero(), tt, n, s, Linear, nil)
	require.Equal(t, []int{0, 0, 3}, first)

	last := bigint.Zero().Sub(total, bigint.FromUint64(1))
	lastL := Encode(last, tt, n, s, Linear, nil)
	require.Equal(t, []int{3, 0, 0}, lastL)
}

// TestEncodeLiteralScenarios pins hand-enumerable encodings at small
// parameters, so a regression here points straight at the bijection itself.
func TestEncodeLiteralScenarios(t *testing.T) {
	require.Equal(t, []int{0, 0, 3}, Encode(bigIntFromInt(0), 3, 3, 3, Linear, nil))
	require.Equal(t, []int{3, 0, 0}, Encode(bigIntFromInt(9), 3, 3, 3, Linear, nil))
	require.Equal(t, []int{1, 1, 1}, Encode(bigIntFromInt(5), 3, 3, 3, Linear, nil))

	const tt, n, s = 2, 5, 5
	total := int(Len(tt, n, s).Int64())
	require.Equal(t, n+1, total)
	seen := make(map[string]bool, total)
	for i := 0; i < total; i++ {
		L := Encode(bigIntFromInt(i), tt, n, s, Linear, nil)
		require.Equal(t, s, L[0]+L[1])
		seen[encodingKey(L)] = true
	}
	require.Len(t, seen, total)
}

// TestEncodeLargeDigestParameters exercises the (t,n,s) = (67,15,400) class
// used for 256-bit message digests, where the inclusion-exclusion sums carry
// many active terms (the C16 production set).
func TestEncodeLargeDigestParameters(t *testing.T) {
	const tt, n, s = 67, 15, 400
	total := Len(tt, n, s)
	require.Equal(t, 1, total.Sign())

	cache := fullCache(tt, n, s)
	for _, I := range sampleIndices(total, 8) {
		for _, strat := range allStrategies {
			L := Encode(I, tt, n, s, strat, cache)
			require.Len(t, L, tt)
			sum := 0
			for _, k := range L {
				require.GreaterOrEqual(t, k, 0)
				require.LessOrEqual(t, k, n)
				sum += k
			}
			require.Equal(t, s, sum)
			require.True(t, CheckEncoding(I, tt, n, s, L, cache))
		}
	}
}
