package intconv

import (
	"strconv"
	"testing"
)

func TestTrim(t *testing.T) {
	td := []struct {
		in   string
		neg  bool
		base int
		n    int
	}{
		{"42", false, 10, 0},
		{"+42", false, 10, 1},
		{"-42", true, 10, 1},
		{" \t-42", true, 10, 3},
		{"0x1f", false, 16, 2},
		{"0X1F", false, 16, 2},
		{"0b101", false, 2, 2},
		{"0o17", false, 8, 2},
		{" -0x2", true, 16, 4},
		{"0.5", false, 10, 0}, // a lone leading zero stays in place
		{"0", false, 10, 0},
		{"", false, 10, 0},
		{"-", true, 10, 1},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			neg, base, n := Trim(d.in)
			if neg != d.neg || base != d.base || n != d.n {
				t.Fatalf("Trim(%q) = %v, %d, %d, expected %v, %d, %d",
					d.in, neg, base, n, d.neg, d.base, d.n)
			}
		})
	}
}

func TestParse(t *testing.T) {
	td := []struct {
		in   string
		base int
		v    int64
		n    int
	}{
		{"123", 0, 123, 3},
		{"-123", 0, -123, 4},
		{" +5", 0, 5, 3},
		{"12z", 0, 12, 2},
		{"0x1f", 0, 31, 4},
		{"0b101", 0, 5, 5},
		{"0o17", 0, 15, 4},
		{"ff", 16, 255, 2},
		{"-ff", 16, -255, 3},
		{"777", 8, 511, 3},
		{"z", 36, 35, 1},
		{"", 0, 0, 0},
		{"+", 0, 0, 1},
		{"0x", 0, 0, 2},
		// wrap-around keeps full 64-bit patterns intact
		{"ffffffffffffffff", 16, -1, 16},
		{"bff0000000000000", 16, -4616189618054758400, 16},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			v, n := Parse(d.in, d.base)
			if v != d.v || n != d.n {
				t.Fatalf("Parse(%q, %d) = %d, %d, expected %d, %d", d.in, d.base, v, n, d.v, d.n)
			}
		})
	}
}

func TestParseBadBase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for base 1")
		}
	}()
	Parse("1", 1)
}
