// Package mail holds the email sending contract and its SMTP implementation.
//
// Use cases depend only on the Mail interface and the Message payload, so
// swapping SMTP for an API-backed provider is a wiring change, not a code
// change in the callers.
package mail
