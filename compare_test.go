package stringseg

import (
	"errors"
	"testing"
)

func TestEqualsIsContentBased(t *testing.T) {
	a, err := FromRange("xxabcyy", 2, 3)
	if err != nil {
		t.Fatalf("unexpected FromRange error: %v", err)
	}
	b := FromString("abc")
	if !a.Equals(b, Ordinal) || !b.Equals(a, Ordinal) {
		t.Errorf("segments with equal content should be equal, regardless of buffer and offset")
	}
	if !a.Equals(a, Ordinal) {
		t.Errorf("Equals should be reflexive")
	}
	if a == b {
		t.Errorf("== compares view identity and should differ here")
	}
}

func TestEqualsShortCircuits(t *testing.T) {
	var none Segment
	abc := FromString("abc")
	if none.Equals(abc, Ordinal) || abc.Equals(none, Ordinal) {
		t.Errorf("a valueless side should never compare equal")
	}
	if none.Equals(Segment{}, Ordinal) {
		t.Errorf("two valueless segments should not compare equal")
	}
	if abc.Equals(FromString("abcd"), Ordinal) {
		t.Errorf("length mismatch should short-circuit to false")
	}
}

func TestEqualsString(t *testing.T) {
	seg, err := FromRange("--AbC--", 2, 3)
	if err != nil {
		t.Fatalf("unexpected FromRange error: %v", err)
	}
	if !seg.EqualsString("AbC", Ordinal) {
		t.Errorf("expected ordinal match for identical bytes")
	}
	if seg.EqualsString("abc", Ordinal) {
		t.Errorf("ordinal comparison must not fold case")
	}
	if !seg.EqualsString("aBc", OrdinalFold) {
		t.Errorf("expected fold match for case-differing bytes")
	}
	var none Segment
	if none.EqualsString("", Ordinal) {
		t.Errorf("valueless segment should not equal any string")
	}
}

func TestStartsWithEndsWith(t *testing.T) {
	seg := FromString("abcdef")
	if !seg.StartsWith("ab", Ordinal) {
		t.Errorf("expected StartsWith(\"ab\") to hold")
	}
	if !seg.EndsWith("ef", Ordinal) {
		t.Errorf("expected EndsWith(\"ef\") to hold")
	}
	if seg.StartsWith("xyz", Ordinal) || seg.EndsWith("xyz", Ordinal) {
		t.Errorf("\"xyz\" should match neither end")
	}
	if seg.StartsWith("abcdefg", Ordinal) {
		t.Errorf("needle longer than segment should be false")
	}
	if !seg.StartsWith("AB", OrdinalFold) || !seg.EndsWith("EF", OrdinalFold) {
		t.Errorf("fold mode should match case-differing needles")
	}
	var none Segment
	if none.StartsWith("", Ordinal) || none.EndsWith("", Ordinal) {
		t.Errorf("valueless segment matches nothing, not even the empty needle")
	}
}

func TestStartsWithRespectsWindow(t *testing.T) {
	// The needle comparison must not look outside the segment window.
	seg, err := FromRange("abcdef", 1, 3) // "bcd"
	if err != nil {
		t.Fatalf("unexpected FromRange error: %v", err)
	}
	if seg.StartsWith("a", Ordinal) {
		t.Errorf("segment \"bcd\" should not start with \"a\"")
	}
	if seg.EndsWith("ef", Ordinal) {
		t.Errorf("segment \"bcd\" should not end with \"ef\"")
	}
	if !seg.StartsWith("bc", Ordinal) || !seg.EndsWith("cd", Ordinal) {
		t.Errorf("window-local prefix/suffix should match")
	}
}

func TestSegmentNeedleMustHaveValue(t *testing.T) {
	seg := FromString("abcdef")
	var none Segment
	if _, err := seg.StartsWithSegment(none, Ordinal); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for valueless needle, got %v", err)
	}
	if _, err := seg.EndsWithSegment(none, Ordinal); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for valueless needle, got %v", err)
	}
	prefix, err := FromRange("zabz", 1, 2) // "ab"
	if err != nil {
		t.Fatalf("unexpected FromRange error: %v", err)
	}
	ok, err := seg.StartsWithSegment(prefix, Ordinal)
	if err != nil || !ok {
		t.Errorf("StartsWithSegment = (%v, %v), want (true, nil)", ok, err)
	}
}
