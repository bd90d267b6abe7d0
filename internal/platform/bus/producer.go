// Package bus wraps the Kafka producer and consumer used for catalog
// notifications.
package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"screencat/internal/event"
)

const defaultCloseTimeout = 5 * time.Second

// Producer publishes envelopes to one topic. It is safe for concurrent use.
type Producer struct {
	writer       *kafka.Writer
	closeTimeout time.Duration
}

// NewProducer builds a producer for the given brokers and topic. Messages are
// spread by a least-bytes balancer; no partition key is derived from the
// movie id, so per-movie ordering across partitions is not guaranteed.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("topic is required")
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer, closeTimeout: defaultCloseTimeout}, nil
}

// Publish writes one envelope to the topic.
func (p *Producer) Publish(ctx context.Context, env event.Envelope) error {
	if p == nil || p.writer == nil {
		return errors.New("producer is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: value}); err != nil {
		return fmt.Errorf("publish %s: %w", env.Type, err)
	}
	return nil
}

// Close flushes and releases the writer. The wait is bounded so shutdown
// cannot hang on an unreachable broker.
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	timeout := p.closeTimeout
	if timeout <= 0 {
		timeout = defaultCloseTimeout
	}

	done := make(chan error, 1)
	go func() {
		done <- p.writer.Close()
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("close producer: timed out after %s", timeout)
	}
}

// Probe dials each broker once so processes can fail fast at startup instead
// of serving with an unreachable bus.
func Probe(ctx context.Context, brokers []string) error {
	if len(brokers) == 0 {
		return errors.New("at least one broker is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	for _, broker := range brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			return fmt.Errorf("probe broker %s: %w", broker, err)
		}
		_ = conn.Close()
	}
	return nil
}
