package splog

// Convenience shapes over the two event builders. The builder forms return
// an event ready for further With* chaining; the Log* forms assemble the
// line in one call, taking a variadic key/value tail that is escaped and
// flattened without an intermediate event. Both forms produce byte-identical
// output and short-circuit to the empty string while production is disabled.

// Call marks the outgoing side of a function call: emit it right before the
// call is made, and pair it with a Stop in the callee.
func Call(task, operation string) *Event {
	return New(task, operation, Send)
}

// Start marks the beginning of handling. Optional; emitting it lets the
// renderer separate transport latency from processing latency.
func Start(task, operation string) *Event {
	return New(task, operation, Ack)
}

// Stop marks the end of handling and completes the edge opened by Call.
func Stop(task, operation string) *Event {
	return New(task, operation, Finish)
}

// BroadcastSend marks a broadcast leaving the sender. The broadcast id takes
// the operation slot and the line carries the multicast flag, so any number
// of recipients may answer the same id.
func BroadcastSend(task, broadcastID string) *Event {
	return New(task, broadcastID, Send).WithMulticast(true)
}

// BroadcastStart marks a recipient beginning to handle a broadcast. The
// recipient names the function it serves through operation, which lands in
// the operation-alias slot; an empty operation leaves the alias absent.
func BroadcastStart(task, broadcastID, operation string) *Event {
	e := New(task, broadcastID, Ack)
	if operation != "" {
		e.WithOperationAlias(operation)
	}
	return e
}

// BroadcastStop marks a recipient finishing a broadcast.
func BroadcastStop(task, broadcastID, operation string) *Event {
	e := New(task, broadcastID, Finish)
	if operation != "" {
		e.WithOperationAlias(operation)
	}
	return e
}

// LogCall is the one-shot form of Call.
func LogCall(task, operation string, keyvals ...any) string {
	return logOperation(task, operation, Send, "", false, keyvals)
}

// LogStart is the one-shot form of Start.
func LogStart(task, operation string, keyvals ...any) string {
	return logOperation(task, operation, Ack, "", false, keyvals)
}

// LogStop is the one-shot form of Stop.
func LogStop(task, operation string, keyvals ...any) string {
	return logOperation(task, operation, Finish, "", false, keyvals)
}

// LogBroadcastSend is the one-shot form of BroadcastSend.
func LogBroadcastSend(task, broadcastID string, keyvals ...any) string {
	return logOperation(task, broadcastID, Send, "", true, keyvals)
}

// LogBroadcastStart is the one-shot form of BroadcastStart.
func LogBroadcastStart(task, broadcastID, operation string, keyvals ...any) string {
	return logOperation(task, broadcastID, Ack, operation, false, keyvals)
}

// LogBroadcastStop is the one-shot form of BroadcastStop.
func LogBroadcastStop(task, broadcastID, operation string, keyvals ...any) string {
	return logOperation(task, broadcastID, Finish, operation, false, keyvals)
}

// LogRequest is the one-shot form of the request shape. An empty operation
// leaves the _O field absent.
func LogRequest(task, requestID, operation string, keyvals ...any) string {
	if !Enabled() {
		return ""
	}
	userData := escapeUserData(keyvals)
	task = Escape(task)
	if task == "" {
		task = missingTask
	}
	requestID = Escape(requestID)
	if requestID == "" {
		requestID = missingRequest
	}
	var op optText
	if operation != "" {
		op = optText{value: Escape(operation), set: true}
	}
	return buildRequestLine(task, requestID, op, optText{}, optText{}, userData, len(userData))
}

// logOperation funnels the one-shot operation-style entries into the shared
// assembly. The enable check runs before any allocation.
func logOperation(task, operation string, messageType MessageType, alias string, multicast bool, keyvals []any) string {
	if !Enabled() {
		return ""
	}
	userData := escapeUserData(keyvals)
	task = Escape(task)
	if task == "" {
		task = missingTask
	}
	operation = Escape(operation)
	if operation == "" {
		operation = missingOperation
	}
	var aliasOpt optText
	if alias != "" {
		aliasOpt = optText{value: Escape(alias), set: true}
	}
	return buildOperationLine(task, operation, messageType,
		aliasOpt, optText{}, optText{}, multicast, userData, len(userData))
}
