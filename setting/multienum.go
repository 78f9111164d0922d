package setting

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/evan-idocoding/zsetting/enum"
)

// MultiEnum is an unordered set of constants of E, stored as a bitmask.
//
// Bit i is set when the constant with ordinal i is a member.
// The zero value is the empty set and renders as "".
type MultiEnum[E enum.Enum[E]] struct {
	bits uint64
}

// NewMultiEnum returns a set holding the raw bitmask b.
//
// b is not validated: bits with no known name are kept (see Unknown) but never
// rendered by String. Use ParseMultiEnumBits to reject them.
func NewMultiEnum[E enum.Enum[E]](b uint64) MultiEnum[E] {
	return MultiEnum[E]{bits: b}
}

// MultiEnumOf returns the set of the given constants.
func MultiEnumOf[E enum.Enum[E]](values ...E) MultiEnum[E] {
	var m MultiEnum[E]
	for _, v := range values {
		m.bits |= bitOf(v)
	}
	return m
}

// ParseMultiEnumBits is like NewMultiEnum but fails with ErrUnknownBits if b
// has bits with no known name.
func ParseMultiEnumBits[E enum.Enum[E]](b uint64) (MultiEnum[E], error) {
	if stray := b &^ traitsOf[E]().Mask(); stray != 0 {
		return MultiEnum[E]{}, fmt.Errorf("%w: %#x", ErrUnknownBits, stray)
	}
	return MultiEnum[E]{bits: b}, nil
}

// Set replaces the set with the comma-separated list s.
//
// On error the set is left unchanged.
func (m *MultiEnum[E]) Set(s string) error {
	vs, err := parseList[E](s)
	if err != nil {
		return err
	}
	var b uint64
	for _, v := range vs {
		b |= bitOf(v)
	}
	m.bits = b
	return nil
}

// IsSet reports whether v is a member.
func (m MultiEnum[E]) IsSet(v E) bool {
	return m.bits&bitOf(v) != 0
}

// Bits returns the raw bitmask.
func (m MultiEnum[E]) Bits() uint64 { return m.bits }

// Unknown returns the bits that have no known name.
func (m MultiEnum[E]) Unknown() uint64 {
	return m.bits &^ traitsOf[E]().Mask()
}

// Len returns the number of named members.
func (m MultiEnum[E]) Len() int {
	return bits.OnesCount64(m.bits & traitsOf[E]().Mask())
}

// Values returns the named members in canonical order.
func (m MultiEnum[E]) Values() []E {
	traits := traitsOf[E]()
	var out []E
	for i := 0; i < traits.Len(); i++ {
		if v := traits.ValueAt(i); m.IsSet(v) {
			out = append(out, v)
		}
	}
	return out
}

// Equal reports whether m and o have the same bitmask.
func (m MultiEnum[E]) Equal(o MultiEnum[E]) bool { return m.bits == o.bits }

// String returns the names of all members, in canonical order, joined by ",".
//
// The output does not depend on how the set was built.
func (m MultiEnum[E]) String() string {
	if m.bits == 0 {
		return ""
	}
	traits := traitsOf[E]()
	var sb strings.Builder
	for i := 0; i < traits.Len(); i++ {
		if !m.IsSet(traits.ValueAt(i)) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(traits.NameAt(i))
	}
	return sb.String()
}

func bitOf[E enum.Enum[E]](v E) uint64 {
	if uint64(v) >= enum.MaxOrdinals {
		return 0
	}
	return 1 << uint64(v)
}
