package engine

// Reverse flips the bytes of line in place, leaving a trailing terminator
// byte where it is. The right cursor is derived from len(line) — the
// logical length reported by the reader — never by scanning for a
// terminator, so a final unterminated line reverses correctly and bytes
// beyond the logical length are never touched.
//
// A blank line (terminator only), a single-byte line, and an empty slice
// are all no-ops.
func Reverse(line []byte, term byte) {
	n := len(line)
	if n > 0 && line[n-1] == term {
		n--
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		line[i], line[j] = line[j], line[i]
	}
}
