// Package enum provides static metadata tables for closed enumerations.
//
// A Traits table maps every constant of an enumeration to exactly one canonical
// name and back, and fixes the canonical order used to render sets of constants
// deterministically.
//
// Tables are built once (typically as package-level vars) and are immutable
// afterwards, so they are safe for concurrent use.
//
// # Ordinals
//
// Constants are small unsigned integers. Every ordinal must be below MaxOrdinals,
// so that a set of constants fits in a single uint64 bitmask.
//
// # Names
//
// Names are case-sensitive and must be non-empty. They may not contain ',' or
// whitespace, because they are exchanged as comma-separated lists.
//
// # Quick start
//
//	type Color uint8
//
//	const (
//		Red Color = iota
//		Green
//	)
//
//	var colorTraits = enum.Must(enum.New([]Color{Red, Green}, func(c Color) string {
//		return [...]string{"red", "green"}[c]
//	}))
//
//	func (Color) Traits() *enum.Traits[Color] { return colorTraits }
package enum
