package splog

import (
	"errors"
	"strconv"
	"testing"
)

func TestKVBufferAppendGetSize(t *testing.T) {
	var b kvBuffer
	if b.size() != 0 {
		t.Fatalf("fresh buffer size = %d, want 0", b.size())
	}
	for i := 0; i < 100; i++ {
		b.append(strconv.Itoa(i))
	}
	if b.size() != 100 {
		t.Fatalf("size = %d, want 100", b.size())
	}
	for i := 0; i < 100; i++ {
		got, err := b.get(i)
		if err != nil {
			t.Fatalf("get(%d): %v", i, err)
		}
		if got != strconv.Itoa(i) {
			t.Fatalf("get(%d) = %q, want %q", i, got, strconv.Itoa(i))
		}
	}
}

func TestKVBufferGetOutOfRange(t *testing.T) {
	var b kvBuffer
	b.append("only")
	for _, i := range []int{-1, 1, 2} {
		if _, err := b.get(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("get(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestKVBufferSnapshotExposesBacking(t *testing.T) {
	var b kvBuffer
	for i := 0; i < 5; i++ {
		b.append("e")
	}
	backing, n := b.snapshot()
	if n != 5 {
		t.Fatalf("snapshot count = %d, want 5", n)
	}
	if len(backing) < n {
		t.Fatalf("backing shorter than count: %d < %d", len(backing), n)
	}
	// The backing view includes spare capacity from doubling growth.
	if len(backing) != cap(b.entries) {
		t.Fatalf("backing len = %d, want full capacity %d", len(backing), cap(b.entries))
	}
}

func TestKVBufferAppendPairPlaceholderIndex(t *testing.T) {
	var b kvBuffer
	b.appendPair("", "v0")
	b.appendPair("k", "v1")
	b.appendPair("", "v2")
	got, _ := b.get(0)
	if got != "_MISSING_KEY_0" {
		t.Fatalf("first placeholder = %q", got)
	}
	got, _ = b.get(4)
	if got != "_MISSING_KEY_2" {
		t.Fatalf("third placeholder = %q, want index of the pair being added", got)
	}
}

func TestKVBufferAppendPairEscapesBothHalves(t *testing.T) {
	var b kvBuffer
	b.appendPair("r=sr", "a;b")
	k, _ := b.get(0)
	v, _ := b.get(1)
	if k != `r\=sr` || v != `a\;b` {
		t.Fatalf("pair not escaped at insertion: %q %q", k, v)
	}
}
