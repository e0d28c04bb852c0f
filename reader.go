package stringseg

import "io"

// Reader returns a reader for the bytes in view of seg.
func (seg Segment) Reader() io.Reader {
	return &segmentReader{seg: seg}
}

type segmentReader struct {
	seg    Segment
	cursor int
}

func (sr *segmentReader) Read(p []byte) (n int, err error) {
	if sr.cursor >= sr.seg.n {
		return 0, io.EOF
	}
	n = copy(p, sr.seg.window()[sr.cursor:])
	sr.cursor += n
	return n, nil
}
