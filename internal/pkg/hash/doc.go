// Package hash provides password hashing behind a small interface so the
// algorithm can be swapped or faked in tests.
package hash
