package constantsum

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/lucasperin/xmss-reference/bigint"
)

// CacheContext holds the optional memoization tables for a fixed (t, n, s)
// parameter set. It is an explicit value owned by the caller, typically the
// WOTS+ parameter object, so that switching parameter sets never leaves
// stale process-wide state behind: build a new CacheContext and drop the
// old one.
//
// A CacheContext is write-once: LoadLenCache/LoadRankCache fill every cell
// exactly once before any Len/Rank call, and reads from any number of
// goroutines are then safe without locking.
type CacheContext struct {
	t, n, s int

	// lenCache[b-1][z] == Len(b, n, z), for b in [1, t-1], z in [0, s].
	lenCache [][]*bigint.Int

	// rankCache[b][z][j] == Rank(b+1, n, z, j), for b in [0, t-1],
	// z in [0, s], j in [0, min(n, z)]. Entries with j > z are never
	// allocated and must not be read.
	rankCache [][][]*bigint.Int
}

// NewCacheContext returns an empty CacheContext for the given parameters.
// Call LoadLenCache and/or LoadRankCache to populate it before use.
func NewCacheContext(t, n, s int) *CacheContext {
	return &CacheContext{t: t, n: n, s: s}
}

// HasLenCache reports whether LoadLenCache has been called.
func (c *CacheContext) HasLenCache() bool { return c.lenCache != nil }

// HasRankCache reports whether LoadRankCache has been called.
func (c *CacheContext) HasRankCache() bool { return c.rankCache != nil }

// LoadLenCache populates the len-cache: for every b in [1, t-1] and
// z in [0, s], Len(b, n, z). Construction fans out goroutines over the
// innermost index (z), mirroring the chunk-splitting idiom used elsewhere
// in this codebase for data-parallel table construction; a single
// WaitGroup barrier separates construction from first read.
func (c *CacheContext) LoadLenCache() {
	t, n, s := c.t, c.n, c.s
	table := make([][]*bigint.Int, t-1)
	for b := 1; b < t; b++ {
		row := make([]*bigint.Int, s+1)
		parallelFor(s+1, func(lo, hi int) {
			for z := lo; z < hi; z++ {
				row[z] = Len(b, n, z)
			}
		})
		table[b-1] = row
	}
	c.lenCache = table
}

// LoadRankCache populates the rank-cache: for every b in [0, t-1],
// z in [0, s] and j in [0, min(n, z)], Rank(b+1, n, z, j).
func (c *CacheContext) LoadRankCache() {
	t, n, s := c.t, c.n, c.s
	table := make([][][]*bigint.Int, t)
	for b := 0; b < t; b++ {
		rows := make([][]*bigint.Int, s+1)
		for z := 0; z <= s; z++ {
			jmax := n
			if z < jmax {
				jmax = z
			}
			row := make([]*bigint.Int, jmax+1)
			parallelFor(jmax+1, func(lo, hi int) {
				for j := lo; j < hi; j++ {
					row[j] = Rank(b+1, n, z, j)
				}
			})
			rows[z] = row
		}
		table[b] = rows
	}
	c.rankCache = table
}

// Len returns Len(b, n, s) for this context's (n, s), reading the len-cache
// if it has been built and the request falls within cached bounds, and
// falling back to a fresh computation otherwise. b == 0 and b == t are not
// cached (Len(0,n,z) and Len(t,n,s) are never looked up by the strategies
// that use this cache) and are simply computed directly.
func (c *CacheContext) Len(b, z int) *bigint.Int {
	if c.lenCache != nil && b >= 1 && b < c.t && z >= 0 && z <= c.s {
		return c.lenCache[b-1][z]
	}
	return Len(b, c.n, z)
}

// Rank returns Rank(b+1, n, z, j) for this context's n, reading the
// rank-cache if built and in bounds, recomputing otherwise. j == -1 is
// never cached (it is always 0) and is short-circuited without a lookup.
func (c *CacheContext) Rank(b, z, j int) *bigint.Int {
	if j < 0 {
		return bigint.Zero()
	}
	if c.rankCache != nil && b >= 0 && b < c.t && z >= 0 && z <= c.s && j < len(c.rankCache[b][z]) {
		return c.rankCache[b][z][j]
	}
	return Rank(b+1, c.n, z, j)
}

// Release drops every reference held by the cache so its big-integer
// backing storage can be collected. The CacheContext must not be used
// again afterwards.
func (c *CacheContext) Release() {
	c.lenCache = nil
	c.rankCache = nil
}

// String summarizes the cache's shape, for diagnostics.
func (c *CacheContext) String() string {
	return fmt.Sprintf("CacheContext{t=%d,n=%d,s=%d,lenCache=%t,rankCache=%t}",
		c.t, c.n, c.s, c.HasLenCache(), c.HasRankCache())
}

// parallelFor splits [0, total) into contiguous chunks, one per worker
// goroutine (capped at GOMAXPROCS), and runs body(lo, hi) on each chunk
// concurrently. It returns once every chunk has completed. This mirrors the
// goroutine-count/chunk-splitting pattern this codebase otherwise uses for
// parallel table construction (e.g. permutation index generation), rather
// than launching one goroutine per cell.
func parallelFor(total int, body func(lo, hi int)) {
	if total <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		body(0, total)
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	start := 0
	remaining := total
	for i := 0; i < workers; i++ {
		chunk := (remaining + workers - i - 1) / (workers - i)
		lo, hi := start, start+chunk
		start, remaining = hi, remaining-chunk
		go func(lo, hi int) {
			defer wg.Done()
			body(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
