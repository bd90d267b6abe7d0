package bus

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/segmentio/kafka-go"

	"screencat/internal/event"
)

// EnvelopeHandler processes one decoded envelope along with its topic
// position.
type EnvelopeHandler func(env event.Envelope, partition int, offset int64)

// Consumer reads envelopes from one topic as part of a consumer group,
// starting from the earliest retained offset for a new group.
type Consumer struct {
	reader *kafka.Reader
}

// NewConsumer builds a consumer for the given brokers, topic, and group.
func NewConsumer(brokers []string, topic, groupID string) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("topic is required")
	}
	if groupID == "" {
		return nil, errors.New("group id is required")
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     groupID,
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10 << 20,
	})
	return &Consumer{reader: reader}, nil
}

// Run delivers envelopes to handle until the context ends. Messages that do
// not decode as envelopes are skipped with a warning; the bus does not
// interpret content beyond the envelope shape.
func (c *Consumer) Run(ctx context.Context, handle EnvelopeHandler) error {
	if c == nil || c.reader == nil {
		return errors.New("consumer is not configured")
	}
	if handle == nil {
		return errors.New("handler is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		var env event.Envelope
		if err := json.Unmarshal(msg.Value, &env); err != nil {
			log.Printf("skip malformed envelope at %s[%d]@%d: %v", msg.Topic, msg.Partition, msg.Offset, err)
			continue
		}
		handle(env, msg.Partition, msg.Offset)
	}
}

// Close releases the underlying reader.
func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}
