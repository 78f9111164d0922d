package setting

import "github.com/evan-idocoding/zsetting/enum"

// MultiEnumField is a setting holding an unordered set of constants of E.
//
// Changed is false for the zero value and for constructed fields. It becomes
// true after the first successful assignment and stays true; a failed
// assignment changes neither Value nor Changed.
//
// A MultiEnumField is a plain value with no internal synchronization.
type MultiEnumField[E enum.Enum[E]] struct {
	Value   MultiEnum[E]
	Changed bool
}

// NewMultiEnumField returns an unchanged field holding values.
func NewMultiEnumField[E enum.Enum[E]](values ...E) MultiEnumField[E] {
	return MultiEnumField[E]{Value: MultiEnumOf(values...)}
}

// MultiEnumFieldFromBits returns an unchanged field holding the raw bitmask b.
// b is not validated, see NewMultiEnum.
func MultiEnumFieldFromBits[E enum.Enum[E]](b uint64) MultiEnumField[E] {
	return MultiEnumField[E]{Value: NewMultiEnum[E](b)}
}

// Set assigns the comma-separated list s.
func (f *MultiEnumField[E]) Set(s string) error {
	if err := f.Value.Set(s); err != nil {
		return err
	}
	f.Changed = true
	return nil
}

// SetBits assigns the raw bitmask b.
func (f *MultiEnumField[E]) SetBits(b uint64) {
	f.Value = NewMultiEnum[E](b)
	f.Changed = true
}

// SetValues assigns the set of values.
func (f *MultiEnumField[E]) SetValues(values ...E) {
	f.Value = MultiEnumOf(values...)
	f.Changed = true
}

// SetAny assigns a generic configuration value.
//
// Supported value types:
//   - E, []E, MultiEnum[E]
//   - string, []byte, []string, []any holding strings (comma-separated list)
//   - fmt.Stringer (its String form is parsed)
//   - non-negative integers (raw bitmask)
//
// Other types fail with ErrTypeMismatch.
func (f *MultiEnumField[E]) SetAny(v any) error {
	switch x := v.(type) {
	case E:
		f.SetValues(x)
		return nil
	case []E:
		f.SetValues(x...)
		return nil
	case MultiEnum[E]:
		f.Value = x
		f.Changed = true
		return nil
	}
	if b, ok := bitsOf(v); ok {
		f.SetBits(b)
		return nil
	}
	s, ok := textOf(v)
	if !ok {
		return typeMismatch("string, list of strings or bitmask", v)
	}
	return f.Set(s)
}

// String returns the canonical comma-separated form.
func (f MultiEnumField[E]) String() string { return f.Value.String() }

// Get implements flag.Getter.
func (f MultiEnumField[E]) Get() any { return f.Value }

// Any converts the field to a generic configuration value (its string form).
func (f MultiEnumField[E]) Any() any { return f.String() }

// Equal reports whether the string form of the generic value v equals the
// string form of f. Integers never compare equal.
func (f MultiEnumField[E]) Equal(v any) bool {
	s, ok := textOf(v)
	return ok && s == f.String()
}

// OrderedMultiEnumField is a setting holding an ordered sequence of constants
// of E. It follows the same Changed rules as MultiEnumField.
type OrderedMultiEnumField[E enum.Enum[E]] struct {
	Value   OrderedMultiEnum[E]
	Changed bool
}

// NewOrderedMultiEnumField returns an unchanged field holding values.
func NewOrderedMultiEnumField[E enum.Enum[E]](values ...E) OrderedMultiEnumField[E] {
	return OrderedMultiEnumField[E]{Value: NewOrderedMultiEnum(values...)}
}

// Set assigns the comma-separated list s.
func (f *OrderedMultiEnumField[E]) Set(s string) error {
	if err := f.Value.Set(s); err != nil {
		return err
	}
	f.Changed = true
	return nil
}

// SetValues assigns the sequence values.
func (f *OrderedMultiEnumField[E]) SetValues(values ...E) {
	f.Value = NewOrderedMultiEnum(values...)
	f.Changed = true
}

// SetAny assigns a generic configuration value.
//
// It accepts the same types as MultiEnumField.SetAny except integers.
func (f *OrderedMultiEnumField[E]) SetAny(v any) error {
	switch x := v.(type) {
	case E:
		f.SetValues(x)
		return nil
	case []E:
		f.SetValues(x...)
		return nil
	case OrderedMultiEnum[E]:
		f.Value = x
		f.Changed = true
		return nil
	}
	s, ok := textOf(v)
	if !ok {
		return typeMismatch("string or list of strings", v)
	}
	return f.Set(s)
}

// String returns the names in stored order, joined by ",".
func (f OrderedMultiEnumField[E]) String() string { return f.Value.String() }

// Get implements flag.Getter.
func (f OrderedMultiEnumField[E]) Get() any { return f.Value }

// Any converts the field to a generic configuration value (its string form).
func (f OrderedMultiEnumField[E]) Any() any { return f.String() }

// Equal reports whether the string form of the generic value v equals the
// string form of f.
func (f OrderedMultiEnumField[E]) Equal(v any) bool {
	s, ok := textOf(v)
	return ok && s == f.String()
}
