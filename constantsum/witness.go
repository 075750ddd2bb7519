package constantsum

import (
	"encoding/binary"
	"fmt"
)

// EncodeWitness serializes L as t consecutive little-endian 16-bit integers,
// the on-the-wire form of the fast-verification appendix: a signer that
// already paid for the encoding attaches it to the signature so a verifier
// can skip straight to CheckEncoding instead of recomputing L from I by a
// full encode. Each coordinate must fit in an int16;
// every parameter set in this package keeps n well under that range, but
// EncodeWitness reports the overflow rather than truncating silently.
func EncodeWitness(L []int) ([]byte, error) {
	out := make([]byte, 2*len(L))
	for i, k := range L {
		if k < 0 || k > 0x7fff {
			return nil, fmt.Errorf("constantsum: EncodeWitness: L[%d]=%d does not fit in int16", i, k)
		}
		binary.LittleEndian.PutUint16(out[2*i:], uint16(k))
	}
	return out, nil
}

// DecodeWitness parses t little-endian 16-bit integers out of w, the inverse
// of EncodeWitness. It does not validate the coordinates against (n, s);
// that is CheckEncoding's job, since the witness is untrusted and must be
// independently re-verified regardless of how it parses.
func DecodeWitness(w []byte, t int) ([]int, error) {
	if len(w) != 2*t {
		return nil, fmt.Errorf("constantsum: DecodeWitness: want %d bytes, got %d", 2*t, len(w))
	}
	L := make([]int, t)
	for i := range L {
		L[i] = int(binary.LittleEndian.Uint16(w[2*i:]))
	}
	return L, nil
}
