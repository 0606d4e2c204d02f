// Package otp generates the short numeric codes delivered over email or SMS
// during password recovery.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generator produces one-time codes.
type Generator interface {
	// Generate returns a new code. Each call is independent of prior calls.
	Generate() (string, error)
}

// NumericGenerator generates fixed-length decimal codes drawn uniformly from
// [0, 10^digits) using crypto/rand.
type NumericGenerator struct {
	digits int
	max    *big.Int
}

// NewNumericGenerator returns a generator for codes of the given length.
// Lengths outside 4..10 fall back to 6 digits.
func NewNumericGenerator(digits int) *NumericGenerator {
	if digits < 4 || digits > 10 {
		digits = 6
	}

	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)

	return &NumericGenerator{digits: digits, max: max}
}

// Generate returns a left-zero-padded decimal string of exactly the configured
// length, e.g. "042917" for six digits.
func (g *NumericGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", g.digits, n), nil
}
