// Package setting provides multi-valued enumeration settings.
//
// A multi-enum setting holds several constants of one enumeration (see package
// enum) and is exchanged as a single comma-separated string:
//
//	"decimal,datetime64"
//
// # Containers
//
//   - MultiEnum: unordered set stored as a uint64 bitmask. String renders members
//     in canonical order, so "datetime64,decimal" and "decimal,datetime64,decimal"
//     both render as "decimal,datetime64".
//   - OrderedMultiEnum: sequence kept in input order, duplicates included.
//
// # Fields
//
// MultiEnumField and OrderedMultiEnumField wrap a container and track whether
// the setting was ever assigned (Changed). Constructors do not set Changed;
// every successful Set / SetAny / SetBits / SetValues / decode does.
//
// # Parsing
//
// The input is split on ','. Each token is trimmed; empty tokens are ignored,
// so "", " " and ",,," are valid and mean "no values". Names are matched exactly
// (case-sensitive). An unknown token fails the whole assignment with
// ErrInvalidToken and the field keeps its previous state.
//
// # Generic values
//
// Fields convert to and from generic configuration values (Any / SetAny) and
// compare against them by string form (Equal). They also implement flag.Value,
// encoding.TextMarshaler / TextUnmarshaler, json.Unmarshaler, toml.Unmarshaler
// (github.com/BurntSushi/toml), yaml.Marshaler / yaml.Unmarshaler
// (gopkg.in/yaml.v3) and slog.LogValuer.
//
// # Concurrency
//
// Containers and fields are plain values without internal synchronization.
// Callers sharing a field between goroutines must provide their own locking.
package setting
