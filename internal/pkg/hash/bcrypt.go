package hash

import "golang.org/x/crypto/bcrypt"

// Bcrypt is the bcrypt-backed Hash implementation.
//
// A configured pepper is concatenated onto every plaintext before hashing
// and verification. The pepper lives in configuration only, never alongside
// the stored hashes.
type Bcrypt struct {
	cost   int
	pepper string
}

// NewBcrypt builds a hasher with the given work factor and pepper.
// The pepper may be empty, though production configs should set one.
func NewBcrypt(cost int, pepper string) *Bcrypt {
	return &Bcrypt{cost: cost, pepper: pepper}
}

// Hash derives a bcrypt hash from the peppered plaintext.
func (h *Bcrypt) Hash(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext+h.pepper), h.cost)
}

// Verify reports whether plaintext, once peppered, matches hashed.
func (h *Bcrypt) Verify(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext+h.pepper)) == nil
}
