package engine

import (
	"bufio"
	"io"
)

// LineReader reads one line at a time from an input stream into a single
// reusable buffer. The buffer grows to fit the longest line seen and is
// then reused for every subsequent line, so steady-state reading performs
// no further allocation.
type LineReader struct {
	r    *bufio.Reader
	term byte
	buf  []byte
}

// NewLineReader returns a LineReader over r using term as the line
// terminator byte. size is the initial buffer capacity; values <= 0 fall
// back to a small default.
func NewLineReader(r io.Reader, term byte, size int) *LineReader {
	if size <= 0 {
		size = 64
	}
	return &LineReader{
		r:    bufio.NewReader(r),
		term: term,
		buf:  make([]byte, 0, size),
	}
}

// ReadLine returns the next line including its terminator byte. The final
// line of a stream that does not end with a terminator is returned without
// one; that is a valid line, not an error. ReadLine returns io.EOF once
// the stream is exhausted, and the underlying read error on an I/O fault.
//
// The returned slice aliases the reader's internal buffer and is only
// valid until the next ReadLine call. Its length is the line's logical
// length; callers must never look past it.
func (lr *LineReader) ReadLine() ([]byte, error) {
	lr.buf = lr.buf[:0]
	for {
		frag, err := lr.r.ReadSlice(lr.term)
		lr.buf = append(lr.buf, frag...)
		switch err {
		case nil:
			return lr.buf, nil
		case bufio.ErrBufferFull:
			// Line longer than bufio's window; keep accumulating.
			continue
		case io.EOF:
			if len(lr.buf) == 0 {
				return nil, io.EOF
			}
			// Final line without a trailing terminator.
			return lr.buf, nil
		default:
			return nil, err
		}
	}
}
