package splog

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnabledEnv is the variable SetEnabledFromEnv consults when called
// with an empty key.
const DefaultEnabledEnv = "SPLOG_ENABLED"

// SetEnabledFromEnv configures the global switch from the environment.
// Recognised values are the strconv booleans (1, 0, t, f, true, false, ...).
// A missing or unparsable value leaves the switch unchanged. Reports whether
// the switch was set.
func SetEnabledFromEnv(key string) bool {
	if key == "" {
		key = DefaultEnabledEnv
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	SetEnabled(parsed)
	return true
}
