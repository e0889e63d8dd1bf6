package floatconv

import (
	"math/rand"
	"testing"
)

func TestPow10Table(t *testing.T) {
	p, err := pow10(0)
	if err != nil || p != 1.0 {
		t.Fatalf("pow10(0) = %v, %v, expected 1, nil", p, err)
	}
	for i, want := range pow10tab {
		e := 1 << uint(i)
		got, err := pow10(e)
		if err != nil || got != want {
			t.Fatalf("pow10(%d) = %v, %v, expected %v, nil", e, got, err, want)
		}
	}
}

func TestPow10Range(t *testing.T) {
	if _, err := pow10(511); err != nil {
		t.Fatalf("pow10(511) failed: %v", err)
	}
	if _, err := pow10(512); err != ErrExponentTooLarge {
		t.Fatalf("pow10(512): got %v, expected ErrExponentTooLarge", err)
	}
	if _, err := pow10(1 << 20); err != ErrExponentTooLarge {
		t.Fatalf("pow10(1<<20): got %v, expected ErrExponentTooLarge", err)
	}
}

// pow10(a+b) must match pow10(a)*pow10(b) up to the working type's
// rounding error. Exponents are kept under 300 so that products stay
// finite.
func TestPow10Additive(t *testing.T) {
	for i := 0; i < 10000; i++ {
		a := rand.Intn(300)
		b := rand.Intn(300 - a)
		pa, _ := pow10(a)
		pb, _ := pow10(b)
		pab, err := pow10(a + b)
		if err != nil {
			t.Fatalf("pow10(%d) failed: %v", a+b, err)
		}
		if d := (pab - pa*pb) / pab; d > 1e-13 || d < -1e-13 {
			t.Fatalf("pow10(%d)*pow10(%d) = %v, expected %v", a, b, pa*pb, pab)
		}
	}
}

var benchF float64

func BenchmarkPow10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchF, _ = pow10(i & 511)
	}
}
