// Package hash fingerprints raw SPC source bytes so a cache entry can be
// checked against the file it was built from without re-decoding it.
package hash

import "github.com/cespare/xxhash/v2"

// Func fingerprints a byte slice to a 64-bit digest. Bytes is the
// default; callers needing a different hash (or a salted one) can
// supply their own Func to cache.WithContentHash.
type Func func(data []byte) uint64

// Bytes computes the xxHash64 fingerprint of data.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
