// Package intconv is the integer text scanner behind package floatconv:
// prefix trimming (whitespace, sign, radix markers) and radix-aware digit
// accumulation with consumed-length reporting.
package intconv

import "fmt"

// Trim reports the sign, numeric base and length of the non-numeric prefix
// of s. It skips ASCII whitespace and at most one '+' or '-', then looks
// for one of the radix prefixes 0b, 0o or 0x (either case); without a
// prefix the base is 10. A lone leading '0' is left in place so that a
// decimal like "0.5" keeps its zero digit.
func Trim(s string) (neg bool, base, n int) {
	base = 10
	for n < len(s) && isSpace(s[n]) {
		n++
	}
	if n < len(s) {
		switch s[n] {
		case '-':
			neg = true
			n++
		case '+':
			n++
		}
	}
	if n+1 < len(s) && s[n] == '0' {
		switch s[n+1] {
		case 'b', 'B':
			base, n = 2, n+2
		case 'o', 'O':
			base, n = 8, n+2
		case 'x', 'X':
			base, n = 16, n+2
		}
	}
	return
}

// Parse parses a signed integer at the start of s and returns its value
// and the number of bytes consumed, including anything skipped by Trim.
// base selects the digit base; 0 means use the base detected from a radix
// prefix. Accumulation wraps around on overflow rather than failing, so a
// full 64-bit pattern written in hexadecimal survives the round trip.
//
// A base outside 0 and 2 through 36 is a caller error and panics.
func Parse(s string, base int) (v int64, n int) {
	neg, b, n := Trim(s)
	if base != 0 {
		b = base
	}
	if b < 2 || b > 36 {
		panic(fmt.Sprintf("invalid number base %d", b))
	}
	u := uint64(0)
	for n < len(s) {
		d := digitVal(s[n])
		if d < 0 || d >= b {
			break
		}
		u = u*uint64(b) + uint64(d)
		n++
	}
	v = int64(u)
	if neg {
		v = -v
	}
	return
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'Z':
		return int(c - 'A' + 10)
	}
	return -1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}
