package hash

// Hash hashes and verifies secrets.
type Hash interface {
	// Hash returns the encoded hash of plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the encoded hash.
	Verify(hashed, plaintext string) bool
}
