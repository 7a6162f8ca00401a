package splog

import "sync/atomic"

// MessageType marks the phase a line is emitted from: Send right before a
// call or broadcast leaves, Ack at the start of handling, Finish at the end.
type MessageType uint8

const (
	// Send marks the outgoing side of a call or broadcast.
	Send MessageType = iota
	// Ack marks the start of handling; optional, used to measure transport latency.
	Ack
	// Finish marks the end of handling and completes the edge.
	Finish
)

// String returns the single-letter wire form: S, A or F.
func (m MessageType) String() string {
	switch m {
	case Ack:
		return "A"
	case Finish:
		return "F"
	default:
		return "S"
	}
}

// TimeNotation is the unit suffix for instrumentation overrides. The zero
// value defaults to Millis wherever a notation is consumed.
type TimeNotation string

const (
	Nanos   TimeNotation = "ns"
	Micros  TimeNotation = "µs"
	Millis  TimeNotation = "ms"
	Seconds TimeNotation = "s"
	Minutes TimeNotation = "min"
	Hours   TimeNotation = "h"
)

// Reserved key tokens of the wire format. The $SPG$ prefix on the task token
// doubles as the line marker consumers scan for.
const (
	keyTask            = "$SPG$+T"
	keyOperation       = "+O"
	keyMessageType     = "+M"
	keyOperationAlias  = "+OA"
	keyComponent       = "+C^"
	keyInstrumentation = "+I^"
	keyMulticast       = "+MC"

	keyReqTask            = "$SPG$_T"
	keyRequest            = "_R"
	keyReqOperation       = "_O"
	keyReqComponent       = "_C^"
	keyReqInstrumentation = "_I^"
)

// Sentinels substituted for missing required fields at build time.
const (
	missingTask      = "_MISSING_TASK_"
	missingOperation = "_MISSING_OPERATION_"
	missingRequest   = "_MISSING_REQUEST_"
	missingKeyPrefix = "_MISSING_KEY_"
)

// Stored inverted so the zero value keeps production enabled by default.
var produceDisabled atomic.Bool

// SetEnabled globally enables or disables line production. While disabled,
// constructors and With* setters record nothing and every build returns "".
// Toggling concurrently with in-flight builders is permitted; a build
// observes some consistent value of the switch, with no ordering guarantee.
func SetEnabled(enabled bool) {
	produceDisabled.Store(!enabled)
}

// Enabled reports whether line production is globally enabled.
func Enabled() bool {
	return !produceDisabled.Load()
}
