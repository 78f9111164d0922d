package enum

import (
	"errors"
	"testing"
)

type color uint8

const (
	red color = iota
	green
	blue
)

var colorNames = [...]string{"red", "green", "blue"}

func colorName(c color) string { return colorNames[c] }

func TestNewAndLookup(t *testing.T) {
	tr, err := New([]color{blue, red, green}, colorName)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Len(); got != 3 {
		t.Fatalf("expected 3 values, got %d", got)
	}

	if n, ok := tr.Name(green); !ok || n != "green" {
		t.Fatalf("expected green, got %q %v", n, ok)
	}
	if v, ok := tr.Lookup("blue"); !ok || v != blue {
		t.Fatalf("expected blue, got %v %v", v, ok)
	}
	if _, ok := tr.Lookup("Blue"); ok {
		t.Fatalf("lookup must be case-sensitive")
	}
	if _, ok := tr.Lookup(""); ok {
		t.Fatalf("empty name must not resolve")
	}

	// Canonical order is the order given to New, not the ordinal order.
	if r, ok := tr.Rank(blue); !ok || r != 0 {
		t.Fatalf("expected blue rank 0, got %d %v", r, ok)
	}
	if r, ok := tr.Rank(green); !ok || r != 2 {
		t.Fatalf("expected green rank 2, got %d %v", r, ok)
	}
	if _, ok := tr.Rank(color(7)); ok {
		t.Fatalf("unknown ordinal must have no rank")
	}
	if _, ok := tr.Name(color(200)); ok {
		t.Fatalf("out of range ordinal must have no name")
	}

	names := tr.Names()
	if len(names) != 3 || names[0] != "blue" || names[1] != "red" || names[2] != "green" {
		t.Fatalf("unexpected names: %v", names)
	}
	if got := tr.Mask(); got != 0b111 {
		t.Fatalf("expected mask 0b111, got %b", got)
	}
}

func TestValuesReturnsCopy(t *testing.T) {
	tr := Must(New([]color{red, green}, colorName))
	vs := tr.Values()
	vs[0] = blue
	if tr.ValueAt(0) != red {
		t.Fatalf("Values must return a copy")
	}
	ns := tr.Names()
	ns[0] = "x"
	if tr.NameAt(0) != "red" {
		t.Fatalf("Names must return a copy")
	}
}

func TestNewRejectsInvalidTables(t *testing.T) {
	cases := []struct {
		name   string
		values []color
		fn     func(color) string
	}{
		{"empty", nil, colorName},
		{"nil name func", []color{red}, nil},
		{"duplicate ordinal", []color{red, red}, colorName},
		{"empty name", []color{red}, func(color) string { return "" }},
		{"comma", []color{red}, func(color) string { return "a,b" }},
		{"space", []color{red}, func(color) string { return "a b" }},
		{"duplicate name", []color{red, green}, func(color) string { return "same" }},
		{"ordinal too large", []color{red, color(MaxOrdinals)}, func(c color) string {
			if c == red {
				return "red"
			}
			return "big"
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.values, tc.fn); !errors.Is(err, ErrInvalidTraits) {
				t.Fatalf("expected ErrInvalidTraits, got %v", err)
			}
		})
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = Must(New([]color{}, colorName))
}

func TestLargestOrdinal(t *testing.T) {
	type wide uint64
	tr, err := New([]wide{0, MaxOrdinals - 1}, func(w wide) string {
		if w == 0 {
			return "low"
		}
		return "high"
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Mask(); got != 1|1<<63 {
		t.Fatalf("unexpected mask %x", got)
	}
}
