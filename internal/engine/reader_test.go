package engine

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("bad sector")
}

func TestLineReader_TerminatedLines(t *testing.T) {
	lr := NewLineReader(strings.NewReader("hello\nworld\n"), '\n', 0)

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(line))

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "world\n", string(line))

	_, err = lr.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestLineReader_FinalLineWithoutTerminator(t *testing.T) {
	lr := NewLineReader(strings.NewReader("ab\ncd"), '\n', 0)

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "ab\n", string(line))

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "cd", string(line))

	_, err = lr.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestLineReader_EmptyInput(t *testing.T) {
	lr := NewLineReader(strings.NewReader(""), '\n', 0)

	_, err := lr.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestLineReader_BlankLines(t *testing.T) {
	lr := NewLineReader(strings.NewReader("\n\n"), '\n', 0)

	for i := 0; i < 2; i++ {
		line, err := lr.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, "\n", string(line))
	}

	_, err := lr.ReadLine()
	assert.Equal(t, io.EOF, err)
}

// Lines longer than bufio's internal window must be accumulated across
// fills, with no fixed maximum line length.
func TestLineReader_LongLine(t *testing.T) {
	long := strings.Repeat("a", 100*1024)
	lr := NewLineReader(strings.NewReader(long+"\nshort\n"), '\n', 16)

	line, err := lr.ReadLine()
	require.NoError(t, err)
	require.Len(t, line, len(long)+1)
	assert.Equal(t, long+"\n", string(line))

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(line))
}

// The returned slice aliases the reader's buffer: it is valid only until
// the next ReadLine call, which overwrites it.
func TestLineReader_BufferReuse(t *testing.T) {
	lr := NewLineReader(strings.NewReader("abc\ndef\n"), '\n', 64)

	first, err := lr.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "abc\n", string(first))

	second, err := lr.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "def\n", string(second))

	// first now points at the overwritten buffer.
	assert.Equal(t, "def\n", string(first))
}

func TestLineReader_CustomTerminator(t *testing.T) {
	lr := NewLineReader(bytes.NewReader([]byte("one\x00two\x00tail")), 0, 0)

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "one\x00", string(line))

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "two\x00", string(line))

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "tail", string(line))
}

func TestLineReader_ReadError(t *testing.T) {
	lr := NewLineReader(failingReader{}, '\n', 0)

	_, err := lr.ReadLine()
	require.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
}
