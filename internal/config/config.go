// Package config resolves environment-variable defaults for linerev.
// Flags take precedence over these values; the environment only supplies
// defaults so that wrappers and scripts can configure linerev without
// editing every invocation.
package config

import (
	"github.com/xyproto/env/v2"
)

const (
	// DefaultTerminator is the line terminator assumed when neither the
	// LINEREV_TERMINATOR variable nor the --terminator flag is set.
	DefaultTerminator = "\n"

	// DefaultBufferSize is the initial capacity of the reusable line
	// buffer. The buffer still grows past this for longer lines.
	DefaultBufferSize = 4096
)

// Terminator returns the default line terminator spelling. It is parsed
// into a single byte by the command layer, so named escapes like "\\n"
// are accepted here too.
func Terminator() string {
	return env.Str("LINEREV_TERMINATOR", DefaultTerminator)
}

// BufferSize returns the initial line buffer capacity in bytes.
func BufferSize() int {
	size := env.Int("LINEREV_BUFFER_SIZE", DefaultBufferSize)
	if size <= 0 {
		return DefaultBufferSize
	}
	return size
}

// Verbose reports whether debug logging is enabled via the environment.
func Verbose() bool {
	return env.Bool("LINEREV_VERBOSE")
}
