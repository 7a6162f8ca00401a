package splog

import (
	"reflect"
	"strconv"
)

// optText distinguishes an absent optional field from one explicitly set to
// the empty string; both states are observable on the wire.
type optText struct {
	value string
	set   bool
}

// Event accumulates an operation-style trace line: the task names the graph,
// the operation labels the edge between the two components that share it.
// Setters mutate and return the same instance so calls chain; they are no-ops
// while production is disabled. An Event belongs to a single call stack and
// is not safe for concurrent use.
type Event struct {
	task            string
	operation       string
	alias           optText
	component       optText
	instrumentation optText
	messageType     MessageType
	multicast       bool
	userData        kvBuffer
}

// New creates an operation-style event. Task and operation may be empty;
// build-time sentinels cover them. The message type defaults to Send.
func New(task, operation string, messageType MessageType) *Event {
	e := &Event{}
	if !Enabled() {
		return e
	}
	e.task = Escape(task)
	e.operation = Escape(operation)
	e.messageType = messageType
	return e
}

// WithTask replaces the task name, the identifier grouping all lines of one
// graph. Also overwrites a sentinel recorded by an earlier Build.
func (e *Event) WithTask(value string) *Event {
	if !Enabled() {
		return e
	}
	e.task = Escape(value)
	return e
}

// WithOperation replaces the operation name used to label the edge.
func (e *Event) WithOperation(value string) *Event {
	if !Enabled() {
		return e
	}
	e.operation = Escape(value)
	return e
}

// WithOperationAlias disambiguates multiple starts and stops sharing one
// operation id, such as several recipients of the same broadcast.
func (e *Event) WithOperationAlias(value string) *Event {
	if !Enabled() {
		return e
	}
	e.alias = optText{value: Escape(value), set: true}
	return e
}

// WithComponentOverride makes this line pretend to originate from another
// component, overriding the renderer's introspection.
func (e *Event) WithComponentOverride(value string) *Event {
	if !Enabled() {
		return e
	}
	e.component = optText{value: Escape(value), set: true}
	return e
}

// WithComponentOverrideType derives the component override from v's type
// name. A nil v records nothing.
func (e *Event) WithComponentOverrideType(v any) *Event {
	if !Enabled() || v == nil {
		return e
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return e.WithComponentOverride(t.Name())
}

// WithInstrumentationOverride supplies a caller-measured latency instead of
// the renderer's timestamp arithmetic. On an Ack line it is read as transport
// latency, on a Finish line as processing latency. An empty notation
// defaults to Millis. The value is stored pre-formatted as <value><suffix>.
func (e *Event) WithInstrumentationOverride(value int, notation TimeNotation) *Event {
	if !Enabled() {
		return e
	}
	if notation == "" {
		notation = Millis
	}
	e.instrumentation = optText{value: strconv.Itoa(value) + string(notation), set: true}
	return e
}

// WithMulticast marks that more than one recipient may respond to this
// operation id.
func (e *Event) WithMulticast(value bool) *Event {
	if !Enabled() {
		return e
	}
	e.multicast = value
	return e
}

// WithUserData appends one key/value pair of user metadata. Pairs keep
// insertion order and duplicate keys all appear in the output. An empty key
// is replaced with a _MISSING_KEY_<n> placeholder. Both halves are escaped
// here, not at build time.
func (e *Event) WithUserData(key, value string) *Event {
	if !Enabled() {
		return e
	}
	e.userData.appendPair(key, value)
	return e
}

// WithUserDataMap appends every entry of userData in the map's iteration
// order. A nil or empty map records nothing.
func (e *Event) WithUserDataMap(userData map[string]string) *Event {
	if !Enabled() || len(userData) == 0 {
		return e
	}
	for k, v := range userData {
		e.userData.appendPair(k, v)
	}
	return e
}

// String builds the line; Event satisfies fmt.Stringer so events can be
// handed straight to printf-style loggers.
func (e *Event) String() string {
	return e.Build()
}
