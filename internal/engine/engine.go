// Package engine implements the line reverser: a reader that pulls one
// line at a time into a reusable buffer, an in-place byte reversal, and a
// pass-through writer, composed by a single sequential loop.
package engine

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Options configures an Engine.
type Options struct {
	// BufferSize is the initial line buffer capacity; <= 0 uses a default.
	BufferSize int
	// Logger receives debug output. Nil means the logrus standard logger.
	Logger *logrus.Logger
}

// Engine reverses a stream line by line. It owns the line buffer for its
// lifetime; nothing else mutates the buffer between a read and the write
// that follows it.
type Engine struct {
	reader *LineReader
	writer *LineWriter
	term   byte
	log    *logrus.Logger

	lines int64
	bytes int64
}

// New returns an Engine reading from in and writing to out, splitting
// lines on the term byte. The caller remains responsible for closing both
// streams.
func New(in io.Reader, out io.Writer, term byte, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		reader: NewLineReader(in, term, opts.BufferSize),
		writer: NewLineWriter(out),
		term:   term,
		log:    log,
	}
}

// Run processes the entire input: one read, one reversal, one write per
// line, in input order, until the input is exhausted. A final line without
// a terminator is reversed and written like any other. The first read or
// write fault aborts the run; lines already written stay written, but the
// run as a whole is reported failed.
func (e *Engine) Run() error {
	for {
		line, err := e.reader.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read line %d: %w", e.lines+1, err)
		}
		Reverse(line, e.term)
		if err := e.writer.WriteLine(line); err != nil {
			return fmt.Errorf("failed to write line %d: %w", e.lines+1, err)
		}
		e.lines++
		e.bytes += int64(len(line))
	}
	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	e.log.Debugf("reversed %d lines (%d bytes)", e.lines, e.bytes)
	return nil
}

// Lines returns the number of lines processed so far.
func (e *Engine) Lines() int64 {
	return e.lines
}
