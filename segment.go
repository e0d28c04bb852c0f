package stringseg

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "strings"

// Segment is a read-only view [offset, offset+length) into an immutable
// backing string.
//
// A segment created by
//
//	Segment{}
//
// is a valid object: the valueless segment. It reports HasValue() == false
// and displays as the empty string. A valueless segment is distinct from a
// present, zero-length view into a buffer: both show no bytes, but only
// the latter has a value.
//
// Segments never copy the backing string; materializing a stand-alone
// string is an explicit operation (Value, String, Substring). Segments
// never mutate the backing string either, so any number of segments may
// alias the same buffer concurrently.
//
// Segment is a comparable struct. The == operator compares view identity
// (buffer, offset, length, presence), not visible content; content
// comparison is Equals.
type Segment struct {
	buf     string
	off     int
	n       int
	present bool
}

// FromString wraps an entire string as a segment. It never fails.
//
// The resulting segment has a value, even for the empty string. The
// valueless segment is the zero value Segment{}.
func FromString(s string) Segment {
	return Segment{buf: s, n: len(s), present: true}
}

// FromRange wraps the window [offset, offset+length) of s as a segment.
//
// Returns ErrIndexOutOfBounds if offset is negative, offset >= len(s),
// length is negative, or the window extends past the end of s.
//
// Note the strict upper bound on offset: a zero-length window anchored
// exactly at len(s) is rejected. Zero-length segments therefore either
// start strictly inside the buffer or come from FromString("").
func FromRange(s string, offset, length int) (Segment, error) {
	if offset < 0 || offset >= len(s) || length < 0 || offset+length > len(s) {
		tracer().Debugf("segment range [%d:+%d] invalid for buffer of %d bytes", offset, length, len(s))
		return Segment{}, ErrIndexOutOfBounds
	}
	return Segment{buf: s, off: offset, n: length, present: true}, nil
}

// HasValue reports whether the segment references a backing buffer.
func (seg Segment) HasValue() bool {
	return seg.present
}

// IsEmpty reports whether the segment shows no bytes. Both the valueless
// segment and a present zero-length view are empty.
func (seg Segment) IsEmpty() bool {
	return seg.n == 0
}

// Len returns the number of bytes in view.
func (seg Segment) Len() int {
	return seg.n
}

// Offset returns the start of the view within the backing buffer.
func (seg Segment) Offset() int {
	return seg.off
}

// Buffer returns the complete backing buffer, or "" for a valueless
// segment.
func (seg Segment) Buffer() string {
	return seg.buf
}

// Value materializes the visible content as a stand-alone string.
//
// The boolean is false for the valueless segment. A segment spanning its
// complete buffer returns the buffer itself, without copying; any narrower
// window is copied out, so holding the result does not pin the buffer.
func (seg Segment) Value() (string, bool) {
	if !seg.present {
		return "", false
	}
	if seg.off == 0 && seg.n == len(seg.buf) {
		return seg.buf, true
	}
	return strings.Clone(seg.window()), true
}

// String returns the visible content, or "" for the valueless segment.
// It never fails and makes Segment a fmt.Stringer.
func (seg Segment) String() string {
	s, _ := seg.Value()
	return s
}

// ByteAt returns the code unit at index i of the view, counted from the
// segment start. Returns ErrIndexOutOfBounds when i does not fall inside
// the view.
func (seg Segment) ByteAt(i int) (byte, error) {
	if !seg.present || i < 0 || i >= seg.n {
		return 0, ErrIndexOutOfBounds
	}
	return seg.buf[seg.off+i], nil
}

// At returns the code unit at index i of the view. It panics when i is
// out of range, like indexing a Go string; ByteAt is the checked variant.
func (seg Segment) At(i int) byte {
	if i < 0 || i >= seg.n {
		panic("stringseg: segment index out of range")
	}
	return seg.buf[seg.off+i]
}

// window returns the viewed bytes without copying.
func (seg Segment) window() string {
	return seg.buf[seg.off : seg.off+seg.n]
}
