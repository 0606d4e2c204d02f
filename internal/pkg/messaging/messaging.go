package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrUnsupported reports a capability the selected broker does not offer,
// such as delayed delivery.
var ErrUnsupported = errors.New("messaging: unsupported operation")

// Messaging combines publishing and consuming behind one closable client.
type Messaging interface {
	io.Closer

	Publisher
	Consumer
}

// Publisher sends messages to a named destination: a topic, subject or queue
// depending on the broker.
type Publisher interface {
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

// Consumer receives messages from a named source and feeds them to a Handler.
type Consumer interface {
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes one received message. What a returned error means for
// redelivery depends on the broker and the auto-ack option.
type Handler func(ctx context.Context, msg Message) error

// OutgoingMessage is a broker-neutral publish payload. Brokers read only the
// fields they understand.
type OutgoingMessage struct {
	// Body is the payload.
	Body []byte

	// Key selects the partition on Kafka.
	Key []byte

	// Headers carry binary values and allow duplicate keys.
	Headers []Header

	// Attributes map to string metadata on brokers that have it (Pub/Sub).
	Attributes map[string]string

	// OrderingKey groups messages for in-order delivery on Pub/Sub.
	OrderingKey string

	// Delay defers delivery on brokers that support it.
	Delay time.Duration
}

// Header is one message header entry.
type Header struct {
	Key   string
	Value []byte
}

// PublishResult reports broker-assigned metadata for a published message.
type PublishResult struct {
	MessageID string
	Topic     string
	Timestamp time.Time
}

// Message is a received message plus its acknowledgement controls.
type Message interface {
	// Body returns the payload.
	Body() []byte
	// Key returns the partition key when the broker has one.
	Key() []byte
	// Attributes returns string metadata or flattened headers.
	Attributes() map[string]string

	// ID returns the broker message ID.
	ID() string
	// Topic returns the topic or subject the message arrived on.
	Topic() string
	// Timestamp returns when the broker accepted the message.
	Timestamp() time.Time

	// Ack marks the message processed.
	Ack(ctx context.Context) error
	// Nack asks the broker to redeliver.
	Nack(ctx context.Context) error
}
