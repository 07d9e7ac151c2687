package engine

import (
	"bufio"
	"io"
)

// LineWriter emits lines verbatim to an output stream. It adds and removes
// nothing: reversal already happened by the time a line reaches it.
type LineWriter struct {
	w *bufio.Writer
}

// NewLineWriter returns a LineWriter over w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w)}
}

// WriteLine writes the line's bytes, terminator included when present.
func (lw *LineWriter) WriteLine(line []byte) error {
	_, err := lw.w.Write(line)
	return err
}

// Flush drains buffered output to the underlying stream. Must be called
// after the last WriteLine; a flush failure is a write fault like any
// other.
func (lw *LineWriter) Flush() error {
	return lw.w.Flush()
}
