package setting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Decoding hooks count as assignments: they set Changed on success and leave
// the field untouched on error.
//
// Accepted document shapes:
//   - JSON: string or array of strings
//   - TOML (BurntSushi/toml): string, array of strings, or (unordered only) integer
//   - YAML (yaml.v3): scalar, sequence of scalars, or (unordered only) integer

// MarshalText implements encoding.TextMarshaler.
func (f MultiEnumField[E]) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *MultiEnumField[E]) UnmarshalText(b []byte) error { return f.Set(string(b)) }

// UnmarshalJSON implements json.Unmarshaler.
func (f *MultiEnumField[E]) UnmarshalJSON(b []byte) error {
	return unmarshalJSON(b, f.SetAny)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (f *MultiEnumField[E]) UnmarshalTOML(data any) error { return f.SetAny(data) }

// MarshalYAML implements yaml.Marshaler.
func (f MultiEnumField[E]) MarshalYAML() (any, error) { return f.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *MultiEnumField[E]) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalYAML(n, f.SetAny)
}

// LogValue implements slog.LogValuer.
func (f MultiEnumField[E]) LogValue() slog.Value { return slog.StringValue(f.String()) }

// MarshalText implements encoding.TextMarshaler.
func (f OrderedMultiEnumField[E]) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *OrderedMultiEnumField[E]) UnmarshalText(b []byte) error { return f.Set(string(b)) }

// UnmarshalJSON implements json.Unmarshaler.
func (f *OrderedMultiEnumField[E]) UnmarshalJSON(b []byte) error {
	return unmarshalJSON(b, f.SetAny)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (f *OrderedMultiEnumField[E]) UnmarshalTOML(data any) error { return f.SetAny(data) }

// MarshalYAML implements yaml.Marshaler.
func (f OrderedMultiEnumField[E]) MarshalYAML() (any, error) { return f.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *OrderedMultiEnumField[E]) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalYAML(n, f.SetAny)
}

// LogValue implements slog.LogValuer.
func (f OrderedMultiEnumField[E]) LogValue() slog.Value { return slog.StringValue(f.String()) }

func unmarshalJSON(b []byte, set func(any) error) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return set(s)
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("%w: expects JSON string or array of strings, got %s", ErrTypeMismatch, b)
	}
	return set(list)
}

func unmarshalYAML(n *yaml.Node, set func(any) error) error {
	var v any
	if err := n.Decode(&v); err != nil {
		return err
	}
	return set(v)
}
