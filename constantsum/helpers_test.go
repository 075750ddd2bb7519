package constantsum

import "github.com/lucasperin/xmss-reference/bigint"

// bigIntFromInt is a test convenience wrapper around bigint.FromUint64 for
// the small, always-non-negative values these tests enumerate over.
func bigIntFromInt(i int) *bigint.Int {
	return bigint.FromUint64(uint64(i))
}
