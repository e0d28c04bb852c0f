package stringseg

import "github.com/cespare/xxhash/v2"

// Hash returns a 64-bit content hash of the segment.
//
// The hash is computed from the visible content only; buffer identity,
// offset and length do not participate. Segments that are Equals-equal
// under Ordinal therefore always hash equal, wherever their windows sit.
// The valueless segment hashes to 0, distinct from the hash of a present
// empty segment.
func (seg Segment) Hash() uint64 {
	if !seg.present {
		return 0
	}
	return xxhash.Sum64String(seg.window())
}
