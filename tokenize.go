package stringseg

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Tokenizer splits a segment into sub-segments on single-byte separators.
//
// Tokens are the (possibly empty) stretches between separator bytes, so
// header-style inputs like "a,,b" yield three tokens. Tokens are views
// into the original backing buffer; nothing is copied. A tokenizer over
// the valueless segment yields nothing.
type Tokenizer struct {
	seg  Segment
	seps string
}

// NewTokenizer creates a tokenizer over seg. seps is the set of separator
// code units; an empty set is an illegal argument.
func NewTokenizer(seg Segment, seps string) (Tokenizer, error) {
	if len(seps) == 0 {
		return Tokenizer{}, ErrIllegalArguments
	}
	return Tokenizer{seg: seg, seps: seps}, nil
}

// Tokens returns an iterator over the tokens in logical order.
func (tk Tokenizer) Tokens() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		_ = tk.EachToken(func(tok Segment, _ int) error {
			if !yield(tok) {
				return errStopIteration
			}
			return nil
		})
	}
}

// EachToken visits all tokens in logical order.
//
// The callback receives each token and its segment-relative start offset.
// Iteration stops at the first callback error and returns that error to
// the caller.
func (tk Tokenizer) EachToken(f func(tok Segment, pos int) error) error {
	if !tk.seg.present || len(tk.seps) == 0 {
		return nil
	}
	w := tk.seg.window()
	start := 0
	for {
		i := indexAnyByte(w[start:], tk.seps)
		if i < 0 {
			tok, err := tk.seg.Subsegment(start, tk.seg.n-start)
			assert(err == nil, "tokenizer: trailing token out of bounds")
			return f(tok, start)
		}
		tok, err := tk.seg.Subsegment(start, i)
		assert(err == nil, "tokenizer: token out of bounds")
		if err := f(tok, start); err != nil {
			return err
		}
		start += i + 1
	}
}

// Split returns an iterator over the tokens of seg, separated by any of
// the bytes of seps. An empty separator set yields nothing.
func Split(seg Segment, seps string) iter.Seq[Segment] {
	tk, err := NewTokenizer(seg, seps)
	if err != nil {
		tracer().Debugf("split with empty separator set yields nothing")
		return func(func(Segment) bool) {}
	}
	return tk.Tokens()
}
