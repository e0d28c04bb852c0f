package stringseg

import "strings"

// Substring materializes the sub-range [offset, offset+length) of the
// segment as a stand-alone string. The result is always a freshly
// allocated copy, independent of the backing buffer.
//
// Bounds checking is identical to Subsegment.
func (seg Segment) Substring(offset, length int) (string, error) {
	sub, err := seg.Subsegment(offset, length)
	if err != nil {
		return "", err
	}
	return strings.Clone(sub.window()), nil
}

// SubstringFrom materializes the rest of the segment beginning at offset.
func (seg Segment) SubstringFrom(offset int) (string, error) {
	return seg.Substring(offset, seg.n-offset)
}

// Subsegment returns a new view of the sub-range [offset, offset+length),
// sharing the backing buffer at the adjusted absolute offset. No bytes
// are copied.
//
// Returns ErrIndexOutOfBounds when the segment is valueless, offset or
// length is negative, the range leaves the segment, or the resulting
// absolute window leaves the backing buffer. A range ending exactly at
// the segment boundary is fine and may yield a zero-length segment.
func (seg Segment) Subsegment(offset, length int) (Segment, error) {
	if !seg.present || offset < 0 || length < 0 || offset+length > seg.n {
		return Segment{}, ErrIndexOutOfBounds
	}
	if seg.off+offset+length > len(seg.buf) {
		return Segment{}, ErrIndexOutOfBounds
	}
	return Segment{buf: seg.buf, off: seg.off + offset, n: length, present: true}, nil
}

// SubsegmentFrom returns a view of the rest of the segment beginning at
// offset, sharing the backing buffer.
func (seg Segment) SubsegmentFrom(offset int) (Segment, error) {
	return seg.Subsegment(offset, seg.n-offset)
}

// asciiSpace marks the ASCII whitespace code units, mirroring the set
// the strings package uses.
var asciiSpace = [256]uint8{'\t': 1, '\n': 1, '\v': 1, '\f': 1, '\r': 1, ' ': 1}

// Trim returns a segment with leading and trailing ASCII whitespace
// removed from view. No bytes are copied; the result aliases the same
// buffer. Trimming the valueless segment yields the valueless segment.
func (seg Segment) Trim() Segment {
	return seg.TrimStart().TrimEnd()
}

// TrimStart returns a segment with leading ASCII whitespace removed from
// view.
func (seg Segment) TrimStart() Segment {
	out := seg
	for out.n > 0 && asciiSpace[out.buf[out.off]] == 1 {
		out.off++
		out.n--
	}
	return out
}

// TrimEnd returns a segment with trailing ASCII whitespace removed from
// view.
func (seg Segment) TrimEnd() Segment {
	out := seg
	for out.n > 0 && asciiSpace[out.buf[out.off+out.n-1]] == 1 {
		out.n--
	}
	return out
}
