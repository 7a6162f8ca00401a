package splog

import (
	"fmt"
	"io"
	"os"
)

// Appender consumes finished splinter lines. Implementations own the final
// transport (a file, a logger, a socket); splog only hands over the text.
// Implementations must tolerate the empty string, which is what every build
// produces while production is disabled.
type Appender interface {
	Append(line string)
}

// SinkOptions controls how a Sink renders lines.
type SinkOptions struct {
	// NoColor forces colour escape codes off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits colour even when the
	// destination is not a TTY. Useful for tests and forced-colour logs.
	ForceColor bool
}

// Sink writes each non-empty line, newline-terminated, to an io.Writer in a
// single Write call. When the destination is a terminal (and neither
// NoColor nor the NO_COLOR environment variable objects), the reserved key
// tokens are coloured so traces are scannable by eye; the bytes between the
// separators are untouched either way.
type Sink struct {
	w     io.Writer
	color bool
}

// NewSink returns a Sink writing to w with default options.
func NewSink(w io.Writer) *Sink {
	return NewSinkWithOptions(w, SinkOptions{})
}

// NewSinkWithOptions returns a Sink with explicit settings. A nil writer
// discards all lines.
func NewSinkWithOptions(w io.Writer, opts SinkOptions) *Sink {
	if w == nil {
		w = io.Discard
	}
	color := !opts.NoColor && (opts.ForceColor || isTerminal(w))
	if color && !opts.ForceColor && os.Getenv("NO_COLOR") != "" {
		color = false
	}
	return &Sink{w: w, color: color}
}

// Append writes one line. Empty lines are dropped, which keeps the disabled
// switch a true end-to-end no-op.
func (s *Sink) Append(line string) {
	if line == "" {
		return
	}
	lb := acquireLineBuf()
	if s.color {
		lb.buf = appendColoredLine(lb.buf, line)
	} else {
		lb.buf = append(lb.buf, line...)
	}
	lb.buf = append(lb.buf, '\n')
	_, _ = s.w.Write(lb.buf)
	releaseLineBuf(lb)
}

// Emit builds event and appends the result. Builders from this package
// (Event, Request) all satisfy fmt.Stringer.
func (s *Sink) Emit(event fmt.Stringer) {
	if event == nil {
		return
	}
	s.Append(event.String())
}

const (
	sgrKey   = "\x1b[36m"
	sgrReset = "\x1b[0m"
)

// appendColoredLine colours the key half of every field. The scan honours
// the escaping scheme: a backslash shields the following byte, so escaped
// separators inside values never flip the key state.
func appendColoredLine(dst []byte, line string) []byte {
	inKey := true
	escaped := false
	dst = append(dst, sgrKey...)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if escaped {
			dst = append(dst, c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			dst = append(dst, c)
			escaped = true
		case '=':
			if inKey {
				dst = append(dst, sgrReset...)
				inKey = false
			}
			dst = append(dst, c)
		case ';':
			dst = append(dst, c)
			if i+1 < len(line) {
				dst = append(dst, sgrKey...)
				inKey = true
			} else {
				inKey = false
			}
		default:
			dst = append(dst, c)
		}
	}
	if inKey {
		dst = append(dst, sgrReset...)
	}
	return dst
}
