package enum

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// MaxOrdinals is the number of distinct ordinals a Traits table can hold.
const MaxOrdinals = 64

// Ordinal is the set of underlying types an enumeration may use.
type Ordinal interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Enum is implemented by enumeration types that carry their own Traits table.
//
// Traits must not depend on the receiver: it is called on the zero value.
type Enum[E Ordinal] interface {
	Ordinal
	Traits() *Traits[E]
}

// Traits is the static metadata of an enumeration E.
//
// It is immutable after New returns.
type Traits[E Ordinal] struct {
	values []E // canonical order
	names  []string

	byName map[string]int // name -> rank
	rank   [MaxOrdinals]int16

	mask uint64
}

// New builds a Traits table.
//
// canonical lists every constant exactly once, in canonical order. name returns
// the canonical name of a constant.
func New[E Ordinal](canonical []E, name func(E) string) (*Traits[E], error) {
	if len(canonical) == 0 {
		return nil, fmt.Errorf("%w: no values", ErrInvalidTraits)
	}
	if name == nil {
		return nil, fmt.Errorf("%w: nil name func", ErrInvalidTraits)
	}

	t := &Traits[E]{
		values: make([]E, 0, len(canonical)),
		names:  make([]string, 0, len(canonical)),
		byName: make(map[string]int, len(canonical)),
	}
	for i := range t.rank {
		t.rank[i] = -1
	}

	for i, v := range canonical {
		if uint64(v) >= MaxOrdinals {
			return nil, fmt.Errorf("%w: ordinal %d out of range [0, %d)", ErrInvalidTraits, uint64(v), MaxOrdinals)
		}
		if t.rank[uint64(v)] >= 0 {
			return nil, fmt.Errorf("%w: duplicate ordinal %d", ErrInvalidTraits, uint64(v))
		}
		n := name(v)
		if err := validateName(n); err != nil {
			return nil, fmt.Errorf("%w: ordinal %d: %v", ErrInvalidTraits, uint64(v), err)
		}
		if _, ok := t.byName[n]; ok {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidTraits, n)
		}

		t.values = append(t.values, v)
		t.names = append(t.names, n)
		t.byName[n] = i
		t.rank[uint64(v)] = int16(i)
		t.mask |= 1 << uint64(v)
	}
	return t, nil
}

// Must returns t and panics if err is non-nil.
//
// It is intended for package-level table declarations.
func Must[E Ordinal](t *Traits[E], err error) *Traits[E] {
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the canonical name of v.
func (t *Traits[E]) Name(v E) (string, bool) {
	r, ok := t.Rank(v)
	if !ok {
		return "", false
	}
	return t.names[r], true
}

// Lookup returns the constant named name. Matching is exact and case-sensitive.
func (t *Traits[E]) Lookup(name string) (E, bool) {
	r, ok := t.byName[name]
	if !ok {
		var zero E
		return zero, false
	}
	return t.values[r], true
}

// Rank returns the position of v in canonical order.
func (t *Traits[E]) Rank(v E) (int, bool) {
	if uint64(v) >= MaxOrdinals {
		return 0, false
	}
	r := t.rank[uint64(v)]
	if r < 0 {
		return 0, false
	}
	return int(r), true
}

// Len returns the number of constants.
func (t *Traits[E]) Len() int { return len(t.values) }

// Values returns a copy of all constants in canonical order.
func (t *Traits[E]) Values() []E { return append([]E(nil), t.values...) }

// Names returns a copy of all names in canonical order.
func (t *Traits[E]) Names() []string { return append([]string(nil), t.names...) }

// Mask returns a bitmask with the bit of every known ordinal set.
func (t *Traits[E]) Mask() uint64 { return t.mask }

// ValueAt returns the constant at canonical position i.
func (t *Traits[E]) ValueAt(i int) E { return t.values[i] }

// NameAt returns the name at canonical position i.
func (t *Traits[E]) NameAt(i int) string { return t.names[i] }

func validateName(n string) error {
	if n == "" {
		return errors.New("empty name")
	}
	if strings.ContainsRune(n, ',') {
		return fmt.Errorf("name %q contains ','", n)
	}
	if strings.IndexFunc(n, unicode.IsSpace) >= 0 {
		return fmt.Errorf("name %q contains whitespace", n)
	}
	return nil
}
