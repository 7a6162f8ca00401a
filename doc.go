// Package splog builds splinter trace lines: compact, self-describing
// key=value text records that an external graph renderer turns into call
// graphs. Each line states that a named task experienced an operation or a
// request at a point in time, tagged with a message phase (send, acknowledge,
// finish) and arbitrary user key/value metadata. The output is a single flat
// line safe to embed in any logging pipeline.
//
// # Design overview
//
//   - Escape-at-set: every string field is escaped exactly once, the moment a
//     With* setter stores it, so repeated builds of the same event are
//     idempotent and the build loop never rescans.
//   - Exact capacity: Build precomputes the final line length and performs a
//     single allocation for the whole line.
//   - Sentinels over errors: missing required fields degrade to fixed
//     placeholder text (_MISSING_TASK_ and friends) instead of failing; the
//     happy path never returns an error.
//   - Global switch: SetEnabled(false) turns every builder method and build
//     into a cheap no-op returning the empty string.
//
// # Usage
//
// Two flows produce byte-identical lines. The builder flow accumulates state:
//
//	line := splog.Call("Coffee Time", "pumpWater").
//		WithUserData("size", "large").
//		Build()
//
// The functional flow assembles a line in one call, with a variadic
// key/value tail:
//
//	line := splog.LogStop("Coffee Time", "pumpWater", "yield_ml", 125)
//
// Hand the line to your logger of choice, or to a Sink:
//
//	sink := splog.NewSink(os.Stdout)
//	sink.Emit(splog.Start("Coffee Time", "pumpWater"))
//
// Request-style events correlate an explicit send/receive pair instead of
// naming an operation edge:
//
//	id := splog.RequestID()
//	sink.Append(splog.LogRequest("file opened", id, "open", "rsr", path))
//
// Event builders are not safe for concurrent use; each event belongs to one
// call stack from construction to build. The enable switch is process-wide
// and may be toggled concurrently with in-flight builders: a build observes
// some consistent value of the switch, nothing more is guaranteed.
//
// The splog2json directory holds a separate consumer-side module that decodes
// emitted lines back into JSON for inspection; the core format is write-only.
package splog
