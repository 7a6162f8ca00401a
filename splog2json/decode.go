package main

import (
	"errors"
	"fmt"
	"strings"
)

// Record is the decoded form of one splinter line. Optional fields are
// pointers so a present-but-empty field (for example "_O=;") survives the
// round trip through JSON.
type Record struct {
	Shape                   string  `json:"shape"`
	Task                    string  `json:"task"`
	Operation               *string `json:"operation,omitempty"`
	RequestID               string  `json:"requestId,omitempty"`
	MessageType             string  `json:"messageType,omitempty"`
	OperationAlias          *string `json:"operationAlias,omitempty"`
	ComponentOverride       *string `json:"componentOverride,omitempty"`
	InstrumentationOverride *string `json:"instrumentationOverride,omitempty"`
	Multicast               bool    `json:"multicast,omitempty"`
	UserData                []Pair  `json:"userData,omitempty"`
}

// Pair preserves user data order and duplicate keys, which a JSON object
// could not.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

const (
	shapeOperation = "operation"
	shapeRequest   = "request"
)

var errNotSplinter = errors.New("not a splinter line")

// Unescape reverses producer-side escaping: a backslash shields the next
// byte, with "\n" (two characters) turning back into a newline.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		if s[i] == 'n' {
			b.WriteByte('\n')
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Decode parses a single splinter line into a Record. Lines that do not open
// with a splinter task token return errNotSplinter so callers can pass
// through interleaved host log output.
func Decode(line string) (*Record, error) {
	if !strings.HasPrefix(line, "$SPG$") {
		return nil, errNotSplinter
	}
	fields, err := splitFields(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNotSplinter
	}

	rec := &Record{}
	switch fields[0].key {
	case "$SPG$+T":
		rec.Shape = shapeOperation
	case "$SPG$_T":
		rec.Shape = shapeRequest
	default:
		return nil, errNotSplinter
	}
	rec.Task = fields[0].value

	for _, f := range fields[1:] {
		switch f.key {
		case "+O", "_O":
			rec.Operation = ptr(f.value)
		case "_R":
			rec.RequestID = f.value
		case "+M":
			rec.MessageType = f.value
		case "+OA":
			rec.OperationAlias = ptr(f.value)
		case "+C^", "_C^":
			rec.ComponentOverride = ptr(f.value)
		case "+I^", "_I^":
			rec.InstrumentationOverride = ptr(f.value)
		case "+MC":
			rec.Multicast = f.value == "1"
		default:
			rec.UserData = append(rec.UserData, Pair{Key: f.key, Value: f.value})
		}
	}

	if err := rec.validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *Record) validate() error {
	switch r.Shape {
	case shapeOperation:
		if r.Operation == nil || *r.Operation == "" {
			return fmt.Errorf("operation line missing +O field")
		}
		switch r.MessageType {
		case "S", "A", "F":
		default:
			return fmt.Errorf("operation line has invalid message type %q", r.MessageType)
		}
	case shapeRequest:
		if r.RequestID == "" {
			return fmt.Errorf("request line missing _R field")
		}
	}
	return nil
}

type rawField struct {
	key   string
	value string
}

// splitFields walks the line once, cutting on unescaped semicolons and on
// the first unescaped equals sign inside each field. Both halves come back
// unescaped.
func splitFields(line string) ([]rawField, error) {
	line = strings.TrimRight(line, "\r")
	var fields []rawField
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case ';':
			field := line[start:i]
			start = i + 1
			eq := indexUnescaped(field, '=')
			if eq < 0 {
				return nil, fmt.Errorf("field %q has no key separator", field)
			}
			fields = append(fields, rawField{
				key:   Unescape(field[:eq]),
				value: Unescape(field[eq+1:]),
			})
		}
	}
	if start < len(line) {
		return nil, fmt.Errorf("trailing garbage after last separator: %q", line[start:])
	}
	return fields, nil
}

func indexUnescaped(s string, sep byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case sep:
			return i
		}
	}
	return -1
}

func ptr(s string) *string { return &s }
