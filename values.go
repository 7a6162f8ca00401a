package splog

import (
	"fmt"
	"strconv"
	"time"
)

type stringer interface {
	String() string
}

// textFromAny renders a variadic argument into its canonical text form.
// A nil value becomes empty text, deliberately distinct from the explicit
// string "null". The specialized cases mirror what callers actually pass in
// trace tails; anything else falls through to fmt.
func textFromAny(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uintptr:
		return strconv.FormatUint(uint64(v), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	case time.Duration:
		return v.String()
	case error:
		return v.Error()
	case stringer:
		return v.String()
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// escapeUserData flattens a variadic key/value tail into escaped interleaved
// entries ready for line assembly. An unpaired trailing key is dropped, not
// paired with a synthesized value. An empty or nil key at pair index n is
// replaced with _MISSING_KEY_<n>.
func escapeUserData(keyvals []any) []string {
	if len(keyvals) < 2 {
		return nil
	}
	paired := len(keyvals) &^ 1
	out := make([]string, 0, paired)
	pair := 0
	for i := 0; i+1 < len(keyvals); i += 2 {
		key := textFromAny(keyvals[i])
		if key == "" {
			key = missingKeyPrefix + strconv.Itoa(pair)
		}
		out = append(out, Escape(key), Escape(textFromAny(keyvals[i+1])))
		pair++
	}
	return out
}
