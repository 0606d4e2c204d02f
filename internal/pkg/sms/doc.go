// Package sms defines the contracts for sending short text messages.
//
// Use cases depend on the SMS interface only; the concrete delivery mechanism
// (an HTTP gateway, a provider SDK, a noop for development) is implemented in
// this package and wired during application startup.
package sms
