package floatconv

import (
	"math"
	"unicode/utf16"
)

// Format writes the text representation of x into dst and returns the
// written prefix of dst. decimals selects the number of fractional digits
// (negative counts as 0) and scientific selects d.ddde±NN notation over
// the default ddd.ddd form. When the fixed form would not fit dst the
// notation switches to scientific regardless of the request.
//
// dst must be at least MinBufLen bytes long; a shorter buffer is a caller
// contract violation and panics. Rounding at the requested precision is
// round-half-up. The only error condition is ErrExponentTooLarge,
// propagated from the power-of-ten scaling.
func Format(dst []byte, x float64, decimals int, scientific bool) ([]byte, error) {
	if len(dst) < MinBufLen {
		panic("floatconv: destination buffer shorter than MinBufLen")
	}
	if decimals < 0 {
		decimals = 0
	}

	sign := math.Float64bits(x)&(1<<63) != 0
	if sign {
		x = -x
	}

	p := dst[:0]

	// NaN is the only value unordered with itself
	if x != x {
		if sign {
			p = append(p, '-')
		}
		return append(p, "nan"...), nil
	}
	if x == math.Inf(1) {
		if sign {
			p = append(p, '-')
		}
		return append(p, "inf"...), nil
	}

	exp := 0
	if x != 0 {
		// pre-round with half a unit in the last requested decimal place;
		// halves round up, never to even
		scale, err := pow10(decimals)
		if err != nil {
			return nil, err
		}
		x += 0.5 / scale

		// estimate the decimal exponent of the rounded value; the digit
		// extractor tolerates a mantissa below 1, so truncation toward
		// zero is close enough
		exp = int(math.Log10(x))
		if exp < 0 {
			if scale, err = pow10(-exp); err != nil {
				return nil, err
			}
			x *= scale
		} else if exp > 0 {
			if scale, err = pow10(exp); err != nil {
				return nil, err
			}
			x /= scale
		}
	}

	// the fixed form needs a byte per unit of exponent on top of the
	// minimum working space; fall back to scientific instead of
	// overrunning dst
	mag := exp
	if mag < 0 {
		mag = -mag
	}
	if mag+MinBufLen > len(dst) {
		scientific = true
	}

	// next yields the mantissa's decimal digits left to right, and zeros
	// once the reliable precision is exhausted
	digits := 0
	next := func() byte {
		digits++
		if digits >= maxDigits {
			return '0'
		}
		d := int(x)
		x = (x - float64(d)) * 10
		return byte('0' + d)
	}

	if sign {
		p = append(p, '-')
	}

	if scientific {
		p = append(p, next(), '.')
		for ; decimals > 0; decimals-- {
			p = append(p, next())
		}
		if exp != 0 {
			p = append(p, 'e')
			if exp < 0 {
				p = append(p, '-')
				exp = -exp
			} else {
				p = append(p, '+')
			}
			if exp >= 100 {
				p = append(p, byte('0'+exp/100))
				exp %= 100
			}
			p = append(p, byte('0'+exp/10), byte('0'+exp%10))
		}
		return p, nil
	}

	if exp < 0 {
		p = append(p, '0', '.')
		// a mantissa scaled from below 0.1 owes the fraction leading
		// zeros before its first significant digit
		for z := -exp - 1; z > 0 && decimals > 0; z-- {
			p = append(p, '0')
			decimals--
		}
	} else {
		for i := 0; i <= exp; i++ {
			p = append(p, next())
		}
		p = append(p, '.')
	}
	for ; decimals > 0; decimals-- {
		p = append(p, next())
	}
	return p, nil
}

// FormatFloat formats x as a string through a fixed-size scratch buffer.
func FormatFloat(x float64, decimals int, scientific bool) (string, error) {
	var buf [2 * MinBufLen]byte
	p, err := Format(buf[:], x, decimals, scientific)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

// AppendFloat appends the text representation of x to dst and returns the
// extended slice.
func AppendFloat(dst []byte, x float64, decimals int, scientific bool) ([]byte, error) {
	var buf [2 * MinBufLen]byte
	p, err := Format(buf[:], x, decimals, scientific)
	if err != nil {
		return dst, err
	}
	return append(dst, p...), nil
}

// FormatUTF16 is FormatFloat with the result widened to UTF-16 units.
func FormatUTF16(x float64, decimals int, scientific bool) ([]uint16, error) {
	s, err := FormatFloat(x, decimals, scientific)
	if err != nil {
		return nil, err
	}
	return utf16.Encode([]rune(s)), nil
}

// FormatRunes is FormatFloat with the result widened to 32-bit units.
func FormatRunes(x float64, decimals int, scientific bool) ([]rune, error) {
	s, err := FormatFloat(x, decimals, scientific)
	if err != nil {
		return nil, err
	}
	return []rune(s), nil
}
