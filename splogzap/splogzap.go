// Package splogzap routes splinter trace lines through a zap logger, for
// hosts that already ship their logs via zap and want the trace lines
// interleaved in the same stream.
package splogzap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/splintergraph/splog"
)

// Appender writes splinter lines as zap messages at Info level. The line is
// the message itself, never a field, so downstream collectors that feed the
// graph renderer can pick it up without unwrapping.
type Appender struct {
	log *zap.Logger
}

var _ splog.Appender = (*Appender)(nil)

// New wraps a zap logger. A nil logger falls back to zap.NewNop.
func New(log *zap.Logger) *Appender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Appender{log: log}
}

// Append logs one line. Empty lines, the disabled-production result, are
// dropped without touching the logger.
func (a *Appender) Append(line string) {
	if line == "" {
		return
	}
	a.log.Info(line)
}

// Emit builds the event and appends it.
func (a *Appender) Emit(event fmt.Stringer) {
	a.Append(event.String())
}
