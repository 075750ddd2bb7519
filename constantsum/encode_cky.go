package constantsum

import "github.com/lucasperin/xmss-reference/bigint"

// termSet tracks the individual signed terms of the inclusion-exclusion sum
//
//	Len(b,n,z) = sum_{i=0}^{kkMax} (-1)^i * C(b,i) * C(z-(n+1)*i+b-1, b-1)
//
// for a fixed (b,n) as z varies by +/-1, so that advancing z costs one
// multiply and one exact divide per active term instead of a fresh
// big.Int.Binomial call. kkMax is sized from zMax, the largest z the walk
// will ever reach, which may exceed the starting z when the walk ascends;
// terms past the domain of their binomial coefficient sit inactive
// (contributing zero) until z enters their domain. The i <= z/(n+1) cutoff
// in the Len formula needs no separate handling: a term is inactive exactly
// when z < (n+1)*i, the same condition.
type termSet struct {
	b     int
	kkMax int
	bcoef []*bigint.Int // C(b,i), constant in z
	g     []*bigint.Int // C(m_i(z), b-1), current value
	m     []int         // m_i(z) = z-(n+1)*i+b-1
}

func newTermSet(b, n, z, zMax int) *termSet {
	kkMax := zMax / (n + 1)
	if kkMax > b {
		kkMax = b
	}
	ts := &termSet{b: b, kkMax: kkMax}
	ts.bcoef = make([]*bigint.Int, kkMax+1)
	ts.g = make([]*bigint.Int, kkMax+1)
	ts.m = make([]int, kkMax+1)
	for i := 0; i <= kkMax; i++ {
		ts.bcoef[i] = Binomial(b, i)
		m := z - (n+1)*i + b - 1
		ts.m[i] = m
		if m >= b-1 {
			ts.g[i] = Binomial(m, b-1)
		} else {
			ts.g[i] = bigint.Zero()
		}
	}
	return ts
}

// value returns Len(b, n, z) for the term set's current z.
func (ts *termSet) value() *bigint.Int {
	out := bigint.Zero()
	for i := 0; i <= ts.kkMax; i++ {
		if ts.m[i] < ts.b-1 {
			continue
		}
		if i%2 == 0 {
			out.AddMul(ts.bcoef[i], ts.g[i])
		} else {
			out.SubMul(ts.bcoef[i], ts.g[i])
		}
	}
	return out
}

// stepDown moves z to z-1. Terms only ever expire in this direction (m_i
// strictly decreases), never revive.
func (ts *termSet) stepDown() {
	b := ts.b
	for i := 0; i <= ts.kkMax; i++ {
		if ts.m[i] < b-1 {
			continue
		}
		newM := ts.m[i] - 1
		if newM < b-1 {
			ts.m[i] = newM
			ts.g[i] = bigint.Zero()
			continue
		}
		// C(newM,b-1) = C(newM+1,b-1) * (newM-b+2)/(newM+1)
		ts.g[i].MulUint(ts.g[i], uint64(newM-b+2))
		ts.g[i].DivExactUint(ts.g[i], uint64(newM+1))
		ts.m[i] = newM
	}
}

// stepUp moves z to z+1, reviving any term whose domain z has re-entered.
func (ts *termSet) stepUp() {
	b := ts.b
	for i := 0; i <= ts.kkMax; i++ {
		newM := ts.m[i] + 1
		if ts.m[i] < b-1 {
			if newM >= b-1 {
				ts.g[i] = Binomial(newM, b-1)
			}
			ts.m[i] = newM
			continue
		}
		// C(newM,b-1) = C(newM-1,b-1) * newM/(newM-b+1)
		ts.g[i].MulUint(ts.g[i], uint64(newM))
		ts.g[i].DivExactUint(ts.g[i], uint64(newM-b+1))
		ts.m[i] = newM
	}
}

// EncodeCky runs the same MSB-first window search as EncodeLinear, but
// advances the window's upper bound one binomial term at a time via
// termSet instead of recomputing Len from scratch at every candidate.
func EncodeCky(I0 *bigint.Int, t, n, s int) []int {
	L := make([]int, t)
	I := bigint.Zero().Assign(I0)

	rem, sum := t, s
	for rem > 1 {
		b := rem - 1
		ts := newTermSet(b, n, sum, sum)

		left := bigint.Zero()
		right := bigint.Zero().Assign(ts.value())
		k := 0
		for !(I.Cmp(left) >= 0 && I.Cmp(right) < 0) {
			k++
			left.Assign(right)
			ts.stepDown()
			right.Add(right, ts.value())
		}

		L[t-rem] = k
		I.Sub(I, left)
		sum -= k
		rem--
	}
	L[t-1] = sum
	return L
}

// EncodeCkyInv walks the same window search from the top candidate value
// down to 0, maintaining the window boundary via termSet stepped upward in
// z (equivalently, downward in k) instead of upward in k from zero.
func EncodeCkyInv(I0 *bigint.Int, t, n, s int) []int {
	L := make([]int, t)
	I := bigint.Zero().Assign(I0)

	rem, sum := t, s
	for rem > 1 {
		b := rem - 1
		kmax := n
		if sum < kmax {
			kmax = sum
		}
		total := Len(rem, n, sum)

		ts := newTermSet(b, n, sum-kmax, sum)
		left := bigint.Zero().Sub(total, ts.value())
		right := bigint.Zero().Assign(total)
		k := kmax
		for I.Cmp(left) < 0 {
			k--
			right.Assign(left)
			ts.stepUp()
			left.Sub(right, ts.value())
		}

		L[t-rem] = k
		I.Sub(I, left)
		sum -= k
		rem--
	}
	L[t-1] = sum
	return L
}
