package splog_test

import (
	"strings"
	"testing"

	"github.com/splintergraph/splog"
)

func TestEventSunnyDay(t *testing.T) {
	expected := "$SPG$+T=Coffee Time;+O=selectCupSize;+M=S;size=large;"
	got := splog.Call("Coffee Time", "selectCupSize").
		WithUserData("size", "large").
		Build()
	if got != expected {
		t.Fatalf("unexpected line: got %q want %q", got, expected)
	}

	got = splog.Call("Coffee Time", "selectCupSize").
		WithUserDataMap(map[string]string{"size": "large"}).
		String()
	if got != expected {
		t.Fatalf("map form mismatch: got %q want %q", got, expected)
	}
}

func TestEventFieldOrderIsFixed(t *testing.T) {
	// Setter order is scrambled on purpose; output order must not move.
	expected := "$SPG$+T=t;+O=op;+M=F;+OA=alias;+C^=Comp;+I^=7ms;+MC=1;k=v;"
	got := splog.New("", "", splog.Finish).
		WithUserData("k", "v").
		WithInstrumentationOverride(7, splog.Millis).
		WithMulticast(true).
		WithOperation("op").
		WithComponentOverride("Comp").
		WithOperationAlias("alias").
		WithTask("t").
		Build()
	if got != expected {
		t.Fatalf("unexpected order: got %q want %q", got, expected)
	}
}

func TestEventMissingRequiredFields(t *testing.T) {
	expected := "$SPG$+T=_MISSING_TASK_;+O=_MISSING_OPERATION_;+M=S;"
	if got := splog.New("", "", splog.Send).Build(); got != expected {
		t.Fatalf("unexpected sentinels: got %q want %q", got, expected)
	}
}

func TestEventSentinelRecordedThenOverwritten(t *testing.T) {
	e := splog.Call("", "op")
	first := e.Build()
	if !strings.Contains(first, "$SPG$+T=_MISSING_TASK_;") {
		t.Fatalf("expected task sentinel, got %q", first)
	}
	// The sentinel was written into the event, but a later explicit setter
	// still replaces it.
	got := e.WithTask("Coffee Time").Build()
	expected := "$SPG$+T=Coffee Time;+O=op;+M=S;"
	if got != expected {
		t.Fatalf("sentinel not overwritten: got %q want %q", got, expected)
	}
}

func TestEventBuildIdempotent(t *testing.T) {
	e := splog.Start("", "pumpWater").WithUserData("", "large")
	first := e.Build()
	second := e.Build()
	if first != second {
		t.Fatalf("rebuild diverged: %q vs %q", first, second)
	}
}

func TestEventEscapingExample(t *testing.T) {
	expected := `$SPG$+T=file\; opened;+O=\\open;+M=S;+OA=\=1;r\=sr=/Users/x/\;file.log;`
	got := splog.New("file; opened", `\open`, splog.Send).
		WithOperationAlias("=1").
		WithUserData("r=sr", "/Users/x/;file.log").
		Build()
	if got != expected {
		t.Fatalf("unexpected escaping: got %q want %q", got, expected)
	}
}

func TestEventMessageTypes(t *testing.T) {
	cases := []struct {
		event *splog.Event
		want  string
	}{
		{splog.Call("t", "o"), "+M=S;"},
		{splog.Start("t", "o"), "+M=A;"},
		{splog.Stop("t", "o"), "+M=F;"},
	}
	for _, tc := range cases {
		if got := tc.event.Build(); !strings.Contains(got, tc.want) {
			t.Fatalf("expected %q in %q", tc.want, got)
		}
	}
}

func TestEventInstrumentationOverride(t *testing.T) {
	cases := []struct {
		notation splog.TimeNotation
		want     string
	}{
		{"", "+I^=42ms;"}, // empty notation defaults to milliseconds
		{splog.Nanos, "+I^=42ns;"},
		{splog.Micros, "+I^=42µs;"},
		{splog.Millis, "+I^=42ms;"},
		{splog.Seconds, "+I^=42s;"},
		{splog.Minutes, "+I^=42min;"},
		{splog.Hours, "+I^=42h;"},
	}
	for _, tc := range cases {
		got := splog.Stop("t", "o").WithInstrumentationOverride(42, tc.notation).Build()
		if !strings.Contains(got, tc.want) {
			t.Fatalf("notation %q: expected %q in %q", tc.notation, tc.want, got)
		}
	}
}

type waterPump struct{}

func TestEventComponentOverrideType(t *testing.T) {
	expected := "$SPG$+T=t;+O=o;+M=F;+C^=waterPump;"
	if got := splog.Stop("t", "o").WithComponentOverrideType(&waterPump{}).Build(); got != expected {
		t.Fatalf("unexpected component override: got %q want %q", got, expected)
	}
	// nil records nothing
	if got := splog.Stop("t", "o").WithComponentOverrideType(nil).Build(); strings.Contains(got, "+C^") {
		t.Fatalf("nil value must not set a component override: %q", got)
	}
}

func TestEventMulticastEmittedOnlyWhenTrue(t *testing.T) {
	if got := splog.Call("t", "o").WithMulticast(false).Build(); strings.Contains(got, "+MC") {
		t.Fatalf("multicast false must omit the field: %q", got)
	}
	got := splog.Call("t", "o").WithMulticast(true).Build()
	if !strings.HasSuffix(got, "+MC=1;") {
		t.Fatalf("expected trailing +MC=1; in %q", got)
	}
}

func TestEventUserDataMissingKeyPlaceholder(t *testing.T) {
	expected := "$SPG$+T=t;+O=o;+M=S;_MISSING_KEY_0=first;k=v;_MISSING_KEY_2=third;"
	got := splog.Call("t", "o").
		WithUserData("", "first").
		WithUserData("k", "v").
		WithUserData("", "third").
		Build()
	if got != expected {
		t.Fatalf("unexpected placeholders: got %q want %q", got, expected)
	}
}

func TestEventUserDataDuplicateKeysPreserved(t *testing.T) {
	expected := "$SPG$+T=t;+O=o;+M=S;k=1;k=2;"
	got := splog.Call("t", "o").WithUserData("k", "1").WithUserData("k", "2").Build()
	if got != expected {
		t.Fatalf("duplicates must all appear in order: got %q want %q", got, expected)
	}
}

func TestEventUserDataEmptyValueKept(t *testing.T) {
	expected := "$SPG$+T=t;+O=o;+M=S;k=;"
	if got := splog.Call("t", "o").WithUserData("k", "").Build(); got != expected {
		t.Fatalf("empty value must serialize as k=;: got %q want %q", got, expected)
	}
}

func TestEventNilUserDataMapIsNoop(t *testing.T) {
	expected := "$SPG$+T=t;+O=o;+M=S;"
	if got := splog.Call("t", "o").WithUserDataMap(nil).Build(); got != expected {
		t.Fatalf("nil map must record nothing: got %q want %q", got, expected)
	}
}

func TestEventManyUserDataPairsKeepOrder(t *testing.T) {
	e := splog.Call("t", "o")
	for i := 0; i < 40; i++ {
		e.WithUserData(string(rune('a'+i%26)), "v")
	}
	got := e.Build()
	want := "$SPG$+T=t;+O=o;+M=S;"
	for i := 0; i < 40; i++ {
		want += string(rune('a'+i%26)) + "=v;"
	}
	if got != want {
		t.Fatalf("order lost after growth: got %q want %q", got, want)
	}
}
