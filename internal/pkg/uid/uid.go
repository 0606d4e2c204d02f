// Package uid provides ID generators used across modules: snowflake for
// numeric row IDs and UUID for string correlation IDs.
package uid

// NumberID generates unique int64 identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
