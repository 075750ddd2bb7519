/*
Package xmssreference implements the constant-sum encoding used by a
checksum-free variant of the WOTS+ one-time signature scheme. The library
features:

  - An arbitrary-precision bijection between an integer index and the
    t-tuples of [0,n] summing to s, computed by inclusion-exclusion over
    binomial coefficients (package constantsum).
  - Six interchangeable encoder strategies, from a straightforward linear
    scan to cached rank binary search, all producing identical output.
  - An independent verifier that never trusts a signer-supplied witness,
    and the little-endian witness serialization a fast-verify signature
    mode appends to carry that witness.
  - The canonical WOTS+ parameter sets this encoding runs under (package
    wots).
*/
package xmssreference
