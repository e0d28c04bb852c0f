package stringseg

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Sketch writes a human-readable picture of seg to w (for debugging
// purposes): the backing buffer on one line, with the viewed window
// highlighted.
//
// When the process is attached to a terminal the window is highlighted
// with color and clipped to the terminal width; otherwise the window is
// underlined with a caret line, which is the form the tests rely on.
func Sketch(seg Segment, w io.Writer) error {
	if w == nil {
		return ErrIllegalArguments
	}
	if !seg.HasValue() {
		_, err := io.WriteString(w, "<no value>\n")
		return err
	}
	buf, lo, hi := clipForWidth(seg, sketchWidth())
	if term.IsTerminal(0) {
		hl := color.New(color.FgRed, color.Bold)
		_, err := fmt.Fprintf(w, "|%s%s%s|  @%d+%d\n",
			printable(buf[:lo]), hl.Sprint(printable(buf[lo:hi])), printable(buf[hi:]),
			seg.Offset(), seg.Len())
		return err
	}
	if _, err := fmt.Fprintf(w, "|%s|  (%d bytes)\n", printable(buf), len(buf)); err != nil {
		return err
	}
	carets := strings.Repeat("^", hi-lo)
	if carets == "" {
		carets = "·" // zero-length window, mark the anchor
	}
	_, err := fmt.Fprintf(w, " %s%s  @%d+%d\n",
		strings.Repeat(" ", lo), carets, seg.Offset(), seg.Len())
	return err
}

// sketchWidth returns the usable line width for sketches.
func sketchWidth() int {
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 16 {
			return w
		}
	}
	return 80
}

// clipForWidth cuts a stretch of the backing buffer around the viewed
// window so the sketch fits into width columns. It returns the clipped
// buffer and the window position [lo,hi) within it.
func clipForWidth(seg Segment, width int) (string, int, int) {
	buf := seg.Buffer()
	lo, hi := seg.Offset(), seg.Offset()+seg.Len()
	budget := width - 16 // room for frame and position suffix
	if budget < 8 {
		budget = 8
	}
	if len(buf) <= budget {
		return buf, lo, hi
	}
	margin := (budget - (hi - lo)) / 2
	if margin < 0 {
		margin = 0
	}
	start := lo - margin
	if start < 0 {
		start = 0
	}
	end := hi + margin
	if end > len(buf) {
		end = len(buf)
	}
	if end < start {
		end = start
	}
	return buf[start:end], lo - start, hi - start
}

// printable substitutes a dot for every control byte, keeping the sketch
// on a single line with stable column positions.
func printable(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
