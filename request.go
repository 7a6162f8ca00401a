package splog

import "strconv"

// Request accumulates a request-style trace line, the older of the two wire
// shapes. Instead of naming an operation edge directly it carries a request
// id; the sending and the receiving component both emit a line with the same
// id and the renderer joins them. Setters chain on the same instance and are
// no-ops while production is disabled. Not safe for concurrent use.
type Request struct {
	task            string
	requestID       string
	operation       optText
	component       optText
	instrumentation optText
	userData        kvBuffer
}

// NewRequest creates a request-style event. Task and request id may be
// empty; build-time sentinels cover them. Attach the edge label, if any,
// with WithOperation.
func NewRequest(task, requestID string) *Request {
	r := &Request{}
	if !Enabled() {
		return r
	}
	r.task = Escape(task)
	r.requestID = Escape(requestID)
	return r
}

// WithTask replaces the task name. Also overwrites a sentinel recorded by an
// earlier Build.
func (r *Request) WithTask(value string) *Request {
	if !Enabled() {
		return r
	}
	r.task = Escape(value)
	return r
}

// WithRequestID replaces the request id correlating the send and receive
// sides of this edge.
func (r *Request) WithRequestID(value string) *Request {
	if !Enabled() {
		return r
	}
	r.requestID = Escape(value)
	return r
}

// WithOperation sets the action label on the edge. Setting it to the empty
// string still emits the field (_O=;), which is distinct from never setting
// it at all.
func (r *Request) WithOperation(value string) *Request {
	if !Enabled() {
		return r
	}
	r.operation = optText{value: Escape(value), set: true}
	return r
}

// WithComponentOverride makes this line pretend to originate from another
// component.
func (r *Request) WithComponentOverride(value string) *Request {
	if !Enabled() {
		return r
	}
	r.component = optText{value: Escape(value), set: true}
	return r
}

// WithInstrumentationOverride supplies a caller-measured latency. An empty
// notation defaults to Millis.
func (r *Request) WithInstrumentationOverride(value int, notation TimeNotation) *Request {
	if !Enabled() {
		return r
	}
	if notation == "" {
		notation = Millis
	}
	r.instrumentation = optText{value: strconv.Itoa(value) + string(notation), set: true}
	return r
}

// WithUserData appends one key/value pair of user metadata; see
// Event.WithUserData for the placeholder and ordering rules.
func (r *Request) WithUserData(key, value string) *Request {
	if !Enabled() {
		return r
	}
	r.userData.appendPair(key, value)
	return r
}

// WithUserDataMap appends every entry of userData in the map's iteration
// order. A nil or empty map records nothing.
func (r *Request) WithUserDataMap(userData map[string]string) *Request {
	if !Enabled() || len(userData) == 0 {
		return r
	}
	for k, v := range userData {
		r.userData.appendPair(k, v)
	}
	return r
}

// String builds the line; Request satisfies fmt.Stringer.
func (r *Request) String() string {
	return r.Build()
}
