// Package bigint wraps math/big.Int with the small fixed set of
// arbitrary-precision operations the constant-sum encoder needs: the signed
// inclusion-exclusion sums over binomial coefficients require fused
// multiply-add/sub so that intermediate cancellation does not allocate a
// throwaway big.Int per term.
package bigint

import (
	"math/big"
	"sync"
)

// Int is an arbitrary-precision unsigned-by-convention integer. The zero
// value is ready to use and equal to zero, matching big.Int's own zero
// value semantics.
type Int struct {
	v big.Int
}

// Zero returns a new Int set to 0.
func Zero() *Int {
	return new(Int)
}

// FromUint64 returns a new Int set to x.
func FromUint64(x uint64) *Int {
	i := new(Int)
	i.v.SetUint64(x)
	return i
}

// FromBytesBE returns a new Int from a big-endian, unsigned byte slice.
func FromBytesBE(b []byte) *Int {
	i := new(Int)
	i.v.SetBytes(b)
	return i
}

// Assign sets i to the value of src. i and src may not alias.
func (i *Int) Assign(src *Int) *Int {
	i.v.Set(&src.v)
	return i
}

// Clear resets i to 0 without releasing its backing storage, so the Int can
// be reused for the next step of an encode/decode loop.
func (i *Int) Clear() *Int {
	i.v.SetUint64(0)
	return i
}

// Add sets i = a + b.
func (i *Int) Add(a, b *Int) *Int {
	i.v.Add(&a.v, &b.v)
	return i
}

// Sub sets i = a - b.
func (i *Int) Sub(a, b *Int) *Int {
	i.v.Sub(&a.v, &b.v)
	return i
}

// AddMul sets i += a*b. Fused so that accumulating a signed
// inclusion-exclusion sum does not allocate a temporary per term.
func (i *Int) AddMul(a, b *Int) *Int {
	t := Get()
	defer Put(t)
	t.v.Mul(&a.v, &b.v)
	i.v.Add(&i.v, &t.v)
	return i
}

// SubMul sets i -= a*b.
func (i *Int) SubMul(a, b *Int) *Int {
	t := Get()
	defer Put(t)
	t.v.Mul(&a.v, &b.v)
	i.v.Sub(&i.v, &t.v)
	return i
}

// MulUint sets i = src * k.
func (i *Int) MulUint(src *Int, k uint64) *Int {
	var kk big.Int
	kk.SetUint64(k)
	i.v.Mul(&src.v, &kk)
	return i
}

// DivExactUint sets i = src / k, assuming the division is exact. Behavior is
// undefined (silently wrong) if src is not a multiple of k. Callers rely on
// the CKY recurrence identities to guarantee exactness, never on this
// function to detect their own bugs.
func (i *Int) DivExactUint(src *Int, k uint64) *Int {
	var kk big.Int
	kk.SetUint64(k)
	i.v.Quo(&src.v, &kk)
	return i
}

// Mod sets i = src mod m, for m > 0. Used to fold an oversized digest back
// into an encoder's valid input range.
func (i *Int) Mod(src, m *Int) *Int {
	i.v.Mod(&src.v, &m.v)
	return i
}

// Cmp returns -1, 0 or +1 as i is less than, equal to, or greater than o.
func (i *Int) Cmp(o *Int) int {
	return i.v.Cmp(&o.v)
}

// Sign returns -1, 0 or +1 depending on the sign of i.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// IsZero reports whether i == 0.
func (i *Int) IsZero() bool {
	return i.v.Sign() == 0
}

// BinomUint sets i = C(n, k), the binomial coefficient, for possibly
// negative n or k. Any C(a,b) with a < b, a < 0, or b < 0 is 0; the
// inclusion-exclusion sums in the combinatorics package terminate
// correctly only because of this convention, so it must not be special
// cased away.
func (i *Int) BinomUint(n, k int64) *Int {
	if n < k || n < 0 || k < 0 {
		i.v.SetUint64(0)
		return i
	}
	i.v.Binomial(n, k)
	return i
}

// Bytes returns the absolute value of i as big-endian bytes, with no sign
// and no padding (matching big.Int.Bytes).
func (i *Int) Bytes() []byte {
	return i.v.Bytes()
}

// Int64 returns i as an int64. The result is undefined if i does not fit;
// callers use this only for loop bounds and indices that are known small
// (Len/Rank counts for test-sized parameters), never for cryptographic
// values.
func (i *Int) Int64() int64 {
	return i.v.Int64()
}

// String returns the base-10 string representation of i.
func (i *Int) String() string {
	return i.v.String()
}

// pool recycles Int temporaries for the inner loops of the combinatorial
// sums. AddMul/SubMul and constantsum's Len and Rank take a small, bounded
// number of these per call and return them via a deferred Put, so they are
// released on every exit path.
var pool = sync.Pool{New: func() any { return new(Int) }}

// Get returns a zeroed Int from the pool.
func Get() *Int {
	return pool.Get().(*Int).Clear()
}

// Put returns i to the pool. i must not be used again by the caller after
// this call.
func Put(i *Int) {
	pool.Put(i)
}
