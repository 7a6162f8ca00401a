package splog

import (
	"errors"
	"strconv"
)

// ErrIndexOutOfRange is returned by indexed reads outside the buffer's
// logical size. It is the only error condition in the core; the public event
// API never surfaces it.
var ErrIndexOutOfRange = errors.New("splog: kv buffer index out of range")

// kvBuffer is an ordered, duplicate-key-tolerant, append-only store of
// interleaved key/value entries. Growth doubles via append, so insertion
// stays amortized O(1). Each buffer is exclusively owned by one event.
type kvBuffer struct {
	entries []string
}

func (b *kvBuffer) append(value string) {
	b.entries = append(b.entries, value)
}

func (b *kvBuffer) get(i int) (string, error) {
	if i < 0 || i >= len(b.entries) {
		return "", ErrIndexOutOfRange
	}
	return b.entries[i], nil
}

func (b *kvBuffer) size() int {
	return len(b.entries)
}

// snapshot exposes the live backing storage, unused trailing slots included,
// paired with the logical count. The serializer formats only the prefix.
func (b *kvBuffer) snapshot() ([]string, int) {
	return b.entries[:cap(b.entries)], len(b.entries)
}

// appendPair escapes and stores one user key/value pair. An empty key is
// replaced with _MISSING_KEY_<n>, n being the zero-based pair index at the
// time of insertion. Keys are not deduplicated; later pairs do not shadow
// earlier ones.
func (b *kvBuffer) appendPair(key, value string) {
	if key == "" {
		key = missingKeyPrefix + strconv.Itoa(b.size()/2)
	}
	b.append(Escape(key))
	b.append(Escape(value))
}
