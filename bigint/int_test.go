package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := FromUint64(5)
	b := FromUint64(3)

	sum := Zero().Add(a, b)
	require.Equal(t, "8", sum.String())

	diff := Zero().Sub(a, b)
	require.Equal(t, "2", diff.String())
}

func TestAddMulSubMul(t *testing.T) {
	acc := FromUint64(10)
	a := FromUint64(4)
	b := FromUint64(5)

	acc.AddMul(a, b) // 10 + 20
	require.Equal(t, "30", acc.String())

	acc.SubMul(a, b) // 30 - 20
	require.Equal(t, "10", acc.String())
}

func TestMulUintDivExactUint(t *testing.T) {
	a := FromUint64(7)
	prod := Zero().MulUint(a, 6)
	require.Equal(t, "42", prod.String())

	quot := Zero().DivExactUint(prod, 6)
	require.Equal(t, "7", quot.String())
}

func TestCmp(t *testing.T) {
	a := FromUint64(5)
	b := FromUint64(9)

	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(a))
}

func TestBinomUint(t *testing.T) {
	testCases := []struct {
		n, k int64
		want string
	}{
		{5, 2, "10"},
		{10, 0, "1"},
		{10, 10, "1"},
		{3, 5, "0"},  // n < k
		{-1, 0, "0"}, // n < 0
		{5, -1, "0"}, // k < 0
	}

	for _, tc := range testCases {
		got := Zero().BinomUint(tc.n, tc.k)
		require.Equalf(t, tc.want, got.String(), "C(%d,%d)", tc.n, tc.k)
	}
}

func TestMod(t *testing.T) {
	got := Zero().Mod(FromUint64(23), FromUint64(7))
	require.Equal(t, "2", got.String())
}

func TestInt64(t *testing.T) {
	require.Equal(t, int64(12345), FromUint64(12345).Int64())
}

func TestFromBytesBE(t *testing.T) {
	i := FromBytesBE([]byte{0x01, 0x00})
	require.Equal(t, "256", i.String())
}

func TestPoolRoundtrip(t *testing.T) {
	i := Get()
	require.True(t, i.IsZero())
	i.Assign(FromUint64(123))
	Put(i)

	// a freshly Get Int is always cleared, regardless of pool reuse.
	j := Get()
	require.True(t, j.IsZero())
	Put(j)
}

func BenchmarkAddMul(b *testing.B) {
	acc := Zero()
	x := FromUint64(123456789)
	y := FromUint64(987654321)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		acc.AddMul(x, y)
	}
}
