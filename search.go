package stringseg

import "strings"

// IndexOf returns the segment-relative index of the first occurrence of c
// in the segment, or -1 if c does not occur. A valueless segment reports
// -1.
func (seg Segment) IndexOf(c byte) int {
	i, _ := seg.IndexOfRange(c, 0, seg.n)
	return i
}

// IndexOfFrom searches the rest of the segment beginning at start
// (segment-relative) for c. Returns ErrIndexOutOfBounds when start is
// negative or lies behind the end of the segment.
func (seg Segment) IndexOfFrom(c byte, start int) (int, error) {
	return seg.IndexOfRange(c, start, seg.n-start)
}

// IndexOfRange searches count code units beginning at start
// (segment-relative) for the first occurrence of c and returns its index
// relative to the segment start, or -1 if c does not occur there.
//
// Returns ErrIndexOutOfBounds when start is negative, count is negative,
// or the absolute search window [offset+start, offset+start+count) leaves
// the backing buffer.
func (seg Segment) IndexOfRange(c byte, start, count int) (int, error) {
	if start < 0 || seg.off+start > len(seg.buf) {
		return -1, ErrIndexOutOfBounds
	}
	if count < 0 || seg.off+start+count > len(seg.buf) {
		return -1, ErrIndexOutOfBounds
	}
	lo := seg.off + start
	i := strings.IndexByte(seg.buf[lo:lo+count], c)
	if i < 0 {
		return -1, nil
	}
	return start + i, nil
}

// IndexOfAny returns the segment-relative index of the first occurrence
// of any byte of chars, or -1. An empty chars set never matches.
func (seg Segment) IndexOfAny(chars string) int {
	i, _ := seg.IndexOfAnyRange(chars, 0, seg.n)
	return i
}

// IndexOfAnyRange searches count code units beginning at start
// (segment-relative) for the first occurrence of any byte of chars.
// Bounds checking is identical to IndexOfRange.
func (seg Segment) IndexOfAnyRange(chars string, start, count int) (int, error) {
	if start < 0 || seg.off+start > len(seg.buf) {
		return -1, ErrIndexOutOfBounds
	}
	if count < 0 || seg.off+start+count > len(seg.buf) {
		return -1, ErrIndexOutOfBounds
	}
	lo := seg.off + start
	i := indexAnyByte(seg.buf[lo:lo+count], chars)
	if i < 0 {
		return -1, nil
	}
	return start + i, nil
}

// LastIndexOf returns the segment-relative index of the last occurrence
// of c in the segment, or -1.
func (seg Segment) LastIndexOf(c byte) int {
	if !seg.present {
		return -1
	}
	return strings.LastIndexByte(seg.window(), c)
}

// indexAnyByte scans s byte-wise for the first byte contained in chars.
// Unlike strings.IndexAny this never decodes runes; chars is a plain set
// of code units.
func indexAnyByte(s, chars string) int {
	if len(chars) == 0 {
		return -1
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) >= 0 {
			return i
		}
	}
	return -1
}
