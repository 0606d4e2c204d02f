// Package jwt issues and verifies the access tokens used by the HTTP layer.
//
// It provides a Claims type combining the registered claim set with the
// application payload, an HS512 symmetric signer, and context helpers so
// handlers can read the authenticated claims after middleware has run.
package jwt
