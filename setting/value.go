package setting

import (
	"fmt"
	"strings"
)

// Value is the textual view of a setting used by generic configuration
// sources. It has the method set of flag.Value.
type Value interface {
	String() string
	Set(string) error
}

// textOf returns the wire form of a generic configuration value.
//
// Lists, as produced by TOML / YAML / JSON decoders, are joined by "," so they
// go through the same tokenizer as a plain string.
func textOf(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case []string:
		return strings.Join(x, separator), true
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			s, ok := e.(string)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, separator), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}

// bitsOf returns the bitmask carried by an integer generic value.
// Negative integers are rejected.
func bitsOf(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case int:
		return nonNegative(int64(x))
	case int8:
		return nonNegative(int64(x))
	case int16:
		return nonNegative(int64(x))
	case int32:
		return nonNegative(int64(x))
	case int64:
		return nonNegative(x)
	default:
		return 0, false
	}
}

func nonNegative(x int64) (uint64, bool) {
	if x < 0 {
		return 0, false
	}
	return uint64(x), true
}

func typeMismatch(want string, got any) error {
	return fmt.Errorf("%w: expects %s, got %T", ErrTypeMismatch, want, got)
}
