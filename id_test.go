package splog_test

import (
	"testing"

	"github.com/splintergraph/splog"
)

func TestRequestIDShape(t *testing.T) {
	id := splog.RequestID()
	if len(id) != 20 {
		t.Fatalf("unexpected id length %d for %q", len(id), id)
	}
	if escaped := splog.Escape(id); escaped != id {
		t.Fatalf("ids must never need escaping: %q", id)
	}
}

func TestRequestIDUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := splog.RequestID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = struct{}{}
	}
}
