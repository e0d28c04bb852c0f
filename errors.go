package stringseg

// SegmentError is an error type for the stringseg module
type SegmentError string

func (e SegmentError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a requested offset, length, start
// or count falls outside the valid bounds of a segment or of its backing
// buffer.
const ErrIndexOutOfBounds = SegmentError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g. a required segment argument without a value.
const ErrIllegalArguments = SegmentError("illegal arguments")

// errStopIteration aborts Each* visitors from inside range-over-func
// adapters. Never returned to clients.
const errStopIteration = SegmentError("iteration stopped")

// assert panics with msg if cond does not hold. Used for invariants which
// cannot fail for valid inputs.
func assert(cond bool, msg string) {
	if !cond {
		panic("stringseg: " + msg)
	}
}
