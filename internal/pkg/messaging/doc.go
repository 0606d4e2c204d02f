// Package messaging abstracts the message broker behind small publish and
// consume interfaces.
//
// Business code never imports a broker client directly; it talks to the
// Messaging interface, and the concrete backend (NSQ, Kafka, NATS or Google
// Pub/Sub) is chosen from configuration at startup.
package messaging
