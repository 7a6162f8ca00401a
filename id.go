package splog

import "github.com/rs/xid"

// RequestID mints a compact, lexicographically sortable id for correlating
// the send and receive sides of a request or broadcast. Ids are unique per
// process and safe to use concurrently; the wire format places no
// requirement on id shape beyond uniqueness within a task.
func RequestID() string {
	return xid.New().String()
}
