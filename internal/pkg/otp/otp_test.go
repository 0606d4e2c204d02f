package otp

import (
	"strings"
	"testing"
)

func TestNumericGeneratorLength(t *testing.T) {
	for _, digits := range []int{4, 6, 8} {
		gen := NewNumericGenerator(digits)

		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(code) != digits {
			t.Errorf("Generate() = %q, want %d digits", code, digits)
		}
	}
}

func TestNumericGeneratorCharsetAndUniformity(t *testing.T) {
	gen := NewNumericGenerator(6)

	const samples = 10000
	var freq [10]int

	for range samples {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("Generate() = %q, want 6 digits", code)
		}
		for _, c := range code {
			if !strings.ContainsRune("0123456789", c) {
				t.Fatalf("Generate() = %q, contains non-digit %q", code, c)
			}
			freq[c-'0']++
		}
	}

	// 60k digit draws, ~6k expected per digit. A 20% band is far looser than
	// the statistical noise, so this only catches gross bias.
	expected := samples * 6 / 10
	for digit, n := range freq {
		if n < expected*8/10 || n > expected*12/10 {
			t.Errorf("digit %d drawn %d times, expected around %d", digit, n, expected)
		}
	}
}
