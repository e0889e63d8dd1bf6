package floatconv

// pow10tab holds 10**(2**k) for k = 0..8; each entry is the square of the
// one before it. The table is never written after initialization, so it is
// safe for concurrent readers.
var pow10tab = [9]float64{1e1, 1e2, 1e4, 1e8, 1e16, 1e32, 1e64, 1e128, 1e256}

// pow10 returns 10**e for a non-negative e, computed by binary
// decomposition of e over pow10tab. Exponents beyond the table range
// (e >= 512) return ErrExponentTooLarge.
func pow10(e int) (float64, error) {
	if e >= 1<<len(pow10tab) {
		return 0, ErrExponentTooLarge
	}
	p := 1.0
	for i := 0; e != 0; i, e = i+1, e>>1 {
		if e&1 != 0 {
			p *= pow10tab[i]
		}
	}
	return p, nil
}
