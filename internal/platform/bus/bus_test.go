package bus

import (
	"context"
	"testing"
	"time"

	"screencat/internal/event"
)

func TestNewProducerValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewProducer(nil, "movies_topic"); err == nil {
		t.Fatal("expected error for missing brokers")
	}
	if _, err := NewProducer([]string{"localhost:9092"}, ""); err == nil {
		t.Fatal("expected error for missing topic")
	}
}

func TestNilProducerIsSafe(t *testing.T) {
	t.Parallel()

	var p *Producer
	if err := p.Publish(context.Background(), event.Envelope{Type: event.TypeMovieCreated}); err == nil {
		t.Fatal("expected error publishing on nil producer")
	}
	if err := p.Close(); err != nil {
		t.Fatalf("nil producer close: %v", err)
	}
}

func TestProducerCloseIsBounded(t *testing.T) {
	t.Parallel()

	// Broker address is a TEST-NET address that never answers; Close must
	// still return within its bound.
	p, err := NewProducer([]string{"192.0.2.1:9092"}, "movies_topic")
	if err != nil {
		t.Fatalf("new producer: %v", err)
	}
	p.closeTimeout = 500 * time.Millisecond

	start := time.Now()
	_ = p.Close()
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("close took %v, want bounded wait", elapsed)
	}
}

func TestPublishFailsFastWhenBrokerUnreachable(t *testing.T) {
	t.Parallel()

	p, err := NewProducer([]string{"192.0.2.1:9092"}, "movies_topic")
	if err != nil {
		t.Fatalf("new producer: %v", err)
	}
	defer func() { p.closeTimeout = 100 * time.Millisecond; _ = p.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := p.Publish(ctx, event.MovieCreated(event.MovieSnapshot{ID: "m-1"})); err == nil {
		t.Fatal("expected publish error for unreachable broker")
	}
}

func TestNewConsumerValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewConsumer(nil, "movies_topic", "group"); err == nil {
		t.Fatal("expected error for missing brokers")
	}
	if _, err := NewConsumer([]string{"localhost:9092"}, "", "group"); err == nil {
		t.Fatal("expected error for missing topic")
	}
	if _, err := NewConsumer([]string{"localhost:9092"}, "movies_topic", ""); err == nil {
		t.Fatal("expected error for missing group id")
	}
}

func TestConsumerRunRequiresHandler(t *testing.T) {
	t.Parallel()

	c, err := NewConsumer([]string{"192.0.2.1:9092"}, "movies_topic", "group")
	if err != nil {
		t.Fatalf("new consumer: %v", err)
	}
	defer c.Close()

	if err := c.Run(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil handler")
	}
}

func TestConsumerRunStopsOnContextEnd(t *testing.T) {
	t.Parallel()

	c, err := NewConsumer([]string{"192.0.2.1:9092"}, "movies_topic", "group")
	if err != nil {
		t.Fatalf("new consumer: %v", err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := c.Run(ctx, func(event.Envelope, int, int64) {}); err != nil {
		t.Fatalf("run after context end: %v", err)
	}
}

func TestProbeFailsForUnreachableBroker(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := Probe(ctx, []string{"192.0.2.1:9092"}); err == nil {
		t.Fatal("expected probe error")
	}
}
