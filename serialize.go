package splog

import "strings"

// Build assembles the operation-style line. Missing task or operation is
// substituted with its sentinel, and the substitution is written back into
// the event, so a rebuild without further mutation returns the identical
// string. A later WithTask or WithOperation overwrites the sentinel and the
// next Build reflects the new value. Returns "" while production is
// disabled, without normalizing anything.
func (e *Event) Build() string {
	if !Enabled() {
		return ""
	}
	if e.task == "" {
		e.task = missingTask
	}
	if e.operation == "" {
		e.operation = missingOperation
	}
	userData, n := e.userData.snapshot()
	return buildOperationLine(e.task, e.operation, e.messageType,
		e.alias, e.component, e.instrumentation, e.multicast, userData, n)
}

// Build assembles the request-style line, substituting sentinels for a
// missing task or request id the same way Event.Build does.
func (r *Request) Build() string {
	if !Enabled() {
		return ""
	}
	if r.task == "" {
		r.task = missingTask
	}
	if r.requestID == "" {
		r.requestID = missingRequest
	}
	userData, n := r.userData.snapshot()
	return buildRequestLine(r.task, r.requestID,
		r.operation, r.component, r.instrumentation, userData, n)
}

// buildOperationLine is the single assembly point for operation-style lines.
// Inputs arrive escaped and sentinel-substituted. The capacity sum covers
// every byte that will be written, multicast field included, so the builder
// allocates exactly once.
func buildOperationLine(task, operation string, messageType MessageType,
	alias, component, instrumentation optText, multicast bool,
	userData []string, n int,
) string {
	size := fieldLen(keyTask, task) +
		fieldLen(keyOperation, operation) +
		fieldLen(keyMessageType, "S")
	if alias.set {
		size += fieldLen(keyOperationAlias, alias.value)
	}
	if component.set {
		size += fieldLen(keyComponent, component.value)
	}
	if instrumentation.set {
		size += fieldLen(keyInstrumentation, instrumentation.value)
	}
	if multicast {
		size += fieldLen(keyMulticast, "1")
	}
	for i := 0; i < n; i++ {
		size += len(userData[i]) + 1
	}

	var b strings.Builder
	b.Grow(size)
	appendField(&b, keyTask, task)
	appendField(&b, keyOperation, operation)
	appendField(&b, keyMessageType, messageType.String())
	if alias.set {
		appendField(&b, keyOperationAlias, alias.value)
	}
	if component.set {
		appendField(&b, keyComponent, component.value)
	}
	if instrumentation.set {
		appendField(&b, keyInstrumentation, instrumentation.value)
	}
	if multicast {
		appendField(&b, keyMulticast, "1")
	}
	appendUserData(&b, userData, n)
	return b.String()
}

// buildRequestLine is the single assembly point for request-style lines.
func buildRequestLine(task, requestID string,
	operation, component, instrumentation optText,
	userData []string, n int,
) string {
	size := fieldLen(keyReqTask, task) +
		fieldLen(keyRequest, requestID)
	if operation.set {
		size += fieldLen(keyReqOperation, operation.value)
	}
	if component.set {
		size += fieldLen(keyReqComponent, component.value)
	}
	if instrumentation.set {
		size += fieldLen(keyReqInstrumentation, instrumentation.value)
	}
	for i := 0; i < n; i++ {
		size += len(userData[i]) + 1
	}

	var b strings.Builder
	b.Grow(size)
	appendField(&b, keyReqTask, task)
	appendField(&b, keyRequest, requestID)
	if operation.set {
		appendField(&b, keyReqOperation, operation.value)
	}
	if component.set {
		appendField(&b, keyReqComponent, component.value)
	}
	if instrumentation.set {
		appendField(&b, keyReqInstrumentation, instrumentation.value)
	}
	appendUserData(&b, userData, n)
	return b.String()
}

// fieldLen is the on-wire size of one <token>=<value>; field.
func fieldLen(token, value string) int {
	return len(token) + len(value) + 2
}

func appendField(b *strings.Builder, token, value string) {
	b.WriteString(token)
	b.WriteByte('=')
	b.WriteString(value)
	b.WriteByte(';')
}

func appendUserData(b *strings.Builder, userData []string, n int) {
	for i := 0; i+1 < n; i += 2 {
		appendField(b, userData[i], userData[i+1])
	}
}
