package splog

import "strings"

// Escape makes s safe to embed in a splinter line by prefixing backslashes,
// semicolons, newlines and equals signs with a backslash; a newline becomes
// the two-character sequence \n. Input containing none of the reserved
// characters is returned as-is without allocating, and callers may rely on
// that. The empty string passes through unchanged.
//
// The format is write-only from splog's perspective: there is no unescape
// here, decoding belongs to the consumer.
func Escape(s string) string {
	if len(s) == 0 {
		return s
	}
	extra := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', ';', '\n', '=':
			extra++
		}
	}
	if extra == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + extra)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			b.WriteByte('\\')
			b.WriteByte('n')
		case '\\', ';', '=':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
