// Package enums declares the enumerations behind the built-in multi-enum
// settings, together with their traits tables and field types.
//
// Names are generated with stringer -linecomment; the line comment of each
// constant is its wire name.
package enums
