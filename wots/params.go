// Package wots binds the constant-sum encoder to the one-time-signature
// parameter sets it actually runs under: callers express parameters as a
// plain, unchecked [ParametersLiteral] and get back a validated, immutable
// [Parameters].
package wots

import (
	"fmt"

	"github.com/lucasperin/xmss-reference/bigint"
	"github.com/lucasperin/xmss-reference/constantsum"
)

// ParametersLiteral is a literal representation of a constant-sum WOTS+
// parameter set. Its fields are public and unchecked; pass it to
// [NewParametersFromLiteral] to obtain a validated [Parameters].
type ParametersLiteral struct {
	// Name labels the parameter set for diagnostics (e.g. "C16"); it plays
	// no role in the encoding itself.
	Name string
	// T is the tuple length, the number of hash chains in the signature.
	T int
	// N is the per-coordinate maximum (wots_w - 1 in the chain
	// interpretation).
	N int
	// S is the fixed coordinate sum.
	S int
}

// Parameters is a validated, immutable constant-sum WOTS+ parameter set.
type Parameters struct {
	name    string
	t, n, s int
}

// NewParametersFromLiteral validates lit and returns the corresponding
// Parameters, or a non-nil error if t, n or s is out of the range the core
// requires: t and n positive, 0 <= s <= t*n.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.T <= 0 {
		return Parameters{}, fmt.Errorf("wots: t must be positive, got %d", lit.T)
	}
	if lit.N <= 0 {
		return Parameters{}, fmt.Errorf("wots: n must be positive, got %d", lit.N)
	}
	if lit.S < 0 {
		return Parameters{}, fmt.Errorf("wots: s must be nonnegative, got %d", lit.S)
	}
	if lit.S > lit.T*lit.N {
		return Parameters{}, fmt.Errorf("wots: s=%d exceeds t*n=%d", lit.S, lit.T*lit.N)
	}
	return Parameters{name: lit.Name, t: lit.T, n: lit.N, s: lit.S}, nil
}

// T returns the tuple length.
func (p Parameters) T() int { return p.t }

// N returns the per-coordinate maximum.
func (p Parameters) N() int { return p.n }

// S returns the fixed coordinate sum.
func (p Parameters) S() int { return p.s }

// Name returns the parameter set's label, or "" if unset.
func (p Parameters) Name() string { return p.name }

// Equal checks two Parameter structs for equality.
func (p Parameters) Equal(other *Parameters) (res bool) {
	res = p.name == other.name
	res = res && (p.t == other.t)
	res = res && (p.n == other.n)
	res = res && (p.s == other.s)
	return
}

// Len returns the number of distinct encodings under p, C(t,n,s).
func (p Parameters) Len() *bigint.Int {
	return constantsum.Len(p.t, p.n, p.s)
}

// NewCacheContext returns an empty [constantsum.CacheContext] sized for p.
// Callers load it with LoadLenCache/LoadRankCache before passing it to
// Encode or Verify with a cached strategy.
func (p Parameters) NewCacheContext() *constantsum.CacheContext {
	return constantsum.NewCacheContext(p.t, p.n, p.s)
}

// Encode returns the constant-sum encoding of I under p using strategy.
// cache is only consulted by the cached strategies; see
// [constantsum.Encode].
func (p Parameters) Encode(I *bigint.Int, strategy constantsum.Strategy, cache *constantsum.CacheContext) []int {
	return constantsum.Encode(I, p.t, p.n, p.s, strategy, cache)
}

// Verify reports whether L is the unique constant-sum encoding of I under p.
func (p Parameters) Verify(I *bigint.Int, L []int, cache *constantsum.CacheContext) bool {
	return constantsum.CheckEncoding(I, p.t, p.n, p.s, L, cache)
}

// The five parameter sets in actual use. The label records the chain width
// wots_w; n is wots_w - 1, the per-coordinate maximum. C16 is the default.
var (
	C16  = ParametersLiteral{Name: "C16", T: 67, N: 15, S: 400}
	C42  = ParametersLiteral{Name: "C42", T: 67, N: 41, S: 341}
	C256 = ParametersLiteral{Name: "C256", T: 34, N: 255, S: 3099}
	C510 = ParametersLiteral{Name: "C510", T: 34, N: 509, S: 2836}
	C226 = ParametersLiteral{Name: "C226", T: 34, N: 225, S: 3643}
)

// Literals lists every canonical parameter set, for tests and tools that
// need to exercise all of them.
func Literals() []ParametersLiteral {
	return []ParametersLiteral{C16, C42, C256, C510, C226}
}
