package uid

import "github.com/google/uuid"

// UUID produces RFC 4122 identifiers as strings, preferring the
// time-ordered v7 layout so generated values sort by creation time.
type UUID struct{}

// NewUUID constructs a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a UUIDv7 string, or a random v4 when v7 generation fails.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
