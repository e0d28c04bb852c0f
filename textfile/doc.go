/*
Package textfile provides API helpers to load text files as segments.

Loading may be done in background fragments for large files; clients can
subscribe to progress events and pick up the finished segment when they
need it. The file content ends up in one immutable buffer, wrapped as a
whole-buffer segment.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stringseg'
func tracer() tracing.Trace {
	return tracing.Select("stringseg")
}
