package stringseg

// CompareMode selects how code units are compared.
type CompareMode int

const (
	// Ordinal compares code units exactly, byte for byte.
	Ordinal CompareMode = iota
	// OrdinalFold compares byte for byte, folding ASCII letter case.
	// Nothing outside A–Z/a–z is folded.
	OrdinalFold
)

// Equals reports whether two segments show the same content.
//
// It is false whenever either side lacks a value (two valueless segments
// included) or the lengths differ. Otherwise the two windows are compared
// code unit by code unit under mode; buffer identity, offsets and origins
// do not participate. Two segments over different buffers are equal iff
// their visible content matches.
func (seg Segment) Equals(other Segment, mode CompareMode) bool {
	if !seg.present || !other.present {
		return false
	}
	if seg.n != other.n {
		return false
	}
	return eqWindows(seg.window(), other.window(), mode)
}

// EqualsString reports whether the segment shows exactly s.
//
// The contract is the same as for Equals: false for valueless segments,
// length check first, then a code-unit comparison under mode.
func (seg Segment) EqualsString(s string, mode CompareMode) bool {
	if !seg.present || seg.n != len(s) {
		return false
	}
	return eqWindows(seg.window(), s, mode)
}

// StartsWith reports whether the leading len(text) code units of the
// segment equal text under mode. It is false when the segment lacks a
// value or is shorter than text.
func (seg Segment) StartsWith(text string, mode CompareMode) bool {
	if !seg.present || seg.n < len(text) {
		return false
	}
	return eqWindows(seg.buf[seg.off:seg.off+len(text)], text, mode)
}

// EndsWith reports whether the trailing len(text) code units of the
// segment equal text under mode. It is false when the segment lacks a
// value or is shorter than text.
func (seg Segment) EndsWith(text string, mode CompareMode) bool {
	if !seg.present || seg.n < len(text) {
		return false
	}
	end := seg.off + seg.n
	return eqWindows(seg.buf[end-len(text):end], text, mode)
}

// StartsWithSegment is StartsWith with a segment-typed needle.
// A valueless needle is an illegal argument.
func (seg Segment) StartsWithSegment(text Segment, mode CompareMode) (bool, error) {
	if !text.present {
		return false, ErrIllegalArguments
	}
	return seg.StartsWith(text.window(), mode), nil
}

// EndsWithSegment is EndsWith with a segment-typed needle.
// A valueless needle is an illegal argument.
func (seg Segment) EndsWithSegment(text Segment, mode CompareMode) (bool, error) {
	if !text.present {
		return false, ErrIllegalArguments
	}
	return seg.EndsWith(text.window(), mode), nil
}

// eqWindows compares two equal-length byte windows under mode.
// Unknown modes compare Ordinal.
func eqWindows(a, b string, mode CompareMode) bool {
	if len(a) != len(b) {
		return false
	}
	if mode == OrdinalFold {
		for i := 0; i < len(a); i++ {
			if foldASCII(a[i]) != foldASCII(b[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}

// foldASCII maps ASCII upper-case letters to lower case.
func foldASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
