package floatconv

import (
	"math"
	"strings"

	"github.com/db47h/floatconv/intconv"
)

// Parse interprets the longest numeric prefix of s as a floating-point
// value and returns the value and the number of bytes consumed. Trailing
// non-numeric input is not an error; n reports where the numeral ended.
// Sign-only or empty input yields 0 with n = 0.
//
// The only error condition is ErrExponentTooLarge, reported when the net
// decimal exponent falls outside the power-of-ten table.
func Parse(s string) (f float64, n int, err error) {
	neg, base, n := intconv.Trim(s)

	// A radix prefix selects the raw bit-pattern path: the digits are
	// parsed as an integer in that base and the integer's bits are
	// reinterpreted as a float64, with no numeric conversion. See the
	// package documentation; this is intentional, not a defect.
	if base != 10 {
		v, vn := intconv.Parse(s, 0)
		return math.Float64frombits(uint64(v)), vn, nil
	}

	var (
		value float64
		exp   int
	)
	begin := n
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		value = value*10 + float64(s[n]-'0')
		n++
	}
	if n < len(s) && s[n] == '.' {
		// fractional digits fold into the mantissa like integer digits,
		// each one lowering the net decimal exponent; there is no length
		// cap, long tails just saturate the mantissa's precision
		for n++; n < len(s) && '0' <= s[n] && s[n] <= '9'; n++ {
			value = value*10 + float64(s[n]-'0')
			exp--
		}
	}

	switch {
	case value != 0:
		if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
			e, en := intconv.Parse(s[n+1:], 10)
			exp += int(e)
			n += 1 + en
		}
		var p float64
		if exp < 0 {
			if p, err = pow10(-exp); err != nil {
				return 0, n, err
			}
			value /= p
		} else if exp > 0 {
			if p, err = pow10(exp); err != nil {
				return 0, n, err
			}
			value *= p
		}
	case n == begin:
		// no digit moved the cursor; the only remaining candidates are
		// the literal special values (a run of zero digits never ends up
		// here, it parses above as ±0)
		switch {
		case strings.HasPrefix(s[n:], "inf"):
			value = math.Inf(1)
			n += 3
		case strings.HasPrefix(s[n:], "nan"):
			value = math.NaN()
			n += 3
		default:
			return 0, 0, nil
		}
	}

	if neg {
		value = -value
	}
	return value, n, nil
}

// ParseFloat converts s to a float64. Unlike Parse, the entire string must
// be consumed by the numeral; anything less fails with ErrInvalidNumber.
func ParseFloat(s string) (float64, error) {
	f, n, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if n == 0 || n != len(s) {
		return 0, ErrInvalidNumber
	}
	return f, nil
}
