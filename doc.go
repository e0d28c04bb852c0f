/*
Package stringseg provides lightweight substring views on immutable strings.

# Segments

A Segment is a handle on a contiguous region of an existing string: a
reference to the backing buffer, a start offset and a length. Creating,
slicing and comparing segments never copies or mutates the underlying
text. This lets call sites work with "parts of a string", like tokenizing
header values or trimming whitespace around a value, without paying an
allocation for every intermediate piece.

	seg := stringseg.FromString("Content-Type: text/html")
	i := seg.IndexOf(':')
	key, _ := seg.Subsegment(0, i)      // no copy
	val, _ := seg.SubsegmentFrom(i + 1) // no copy
	val = val.Trim()                    // still no copy

Materializing a stand-alone string is always an explicit step (Value,
String, Substring). A segment spanning its complete buffer hands back the
buffer itself; narrower windows are copied out, so holding on to the
result does not pin a large buffer in memory.

Segments operate on fixed-width code units, i.e. bytes. There is no
Unicode normalization, no locale-aware collation and no rune decoding;
comparisons are ordinal, optionally with ASCII case folding.

The backing buffer is treated as immutable, therefore arbitrarily many
segments may alias the same buffer and may be read concurrently without
any locking.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package stringseg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stringseg'
func tracer() tracing.Trace {
	return tracing.Select("stringseg")
}
