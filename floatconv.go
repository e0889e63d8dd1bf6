package floatconv

import "errors"

// MinBufLen is the smallest destination buffer accepted by Format.
const MinBufLen = 32

// maxDigits is the number of decimal digits a float64 mantissa resolves
// reliably. Digit extraction stops one short of it; anything past that
// point is noise, not data.
const maxDigits = 15

// Conversion errors.
var (
	// ErrInvalidNumber is returned by ParseFloat when the input is not
	// entirely consumed by a numeral.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrExponentTooLarge is returned when a decimal exponent exceeds the
	// range of the power-of-ten table (10**511).
	ErrExponentTooLarge = errors.New("exponent too large")
)
