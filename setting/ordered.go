package setting

import (
	"slices"
	"strings"

	"github.com/evan-idocoding/zsetting/enum"
)

// OrderedMultiEnum is a sequence of constants of E kept in input order.
//
// Duplicates are kept. The zero value is the empty sequence and renders as "".
// Items are never modified in place, so copies of an OrderedMultiEnum stay
// independent.
type OrderedMultiEnum[E enum.Enum[E]] struct {
	items []E
}

// NewOrderedMultiEnum returns a sequence holding a copy of values.
func NewOrderedMultiEnum[E enum.Enum[E]](values ...E) OrderedMultiEnum[E] {
	return OrderedMultiEnum[E]{items: slices.Clone(values)}
}

// Set replaces the sequence with the comma-separated list s, in the order the
// tokens appear.
//
// On error the sequence is left unchanged.
func (o *OrderedMultiEnum[E]) Set(s string) error {
	vs, err := parseList[E](s)
	if err != nil {
		return err
	}
	o.items = vs
	return nil
}

// Len returns the number of items.
func (o OrderedMultiEnum[E]) Len() int { return len(o.items) }

// At returns the item at position i. It panics if i is out of range [0, Len()).
func (o OrderedMultiEnum[E]) At(i int) E { return o.items[i] }

// Values returns a copy of the items.
func (o OrderedMultiEnum[E]) Values() []E { return slices.Clone(o.items) }

// Contains reports whether v occurs in the sequence.
func (o OrderedMultiEnum[E]) Contains(v E) bool { return slices.Contains(o.items, v) }

// Equal reports whether o and other hold the same items in the same order.
func (o OrderedMultiEnum[E]) Equal(other OrderedMultiEnum[E]) bool {
	return slices.Equal(o.items, other.items)
}

// String returns the names of the items, in stored order, joined by ",".
//
// Items with no known name are skipped.
func (o OrderedMultiEnum[E]) String() string {
	traits := traitsOf[E]()
	var sb strings.Builder
	for _, v := range o.items {
		n, ok := traits.Name(v)
		if !ok {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(n)
	}
	return sb.String()
}
