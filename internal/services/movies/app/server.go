// Package server wires the movie service runtime: storage, bus, and the gRPC
// lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"screencat/internal/api/wire/moviev1"
	"screencat/internal/event"
	"screencat/internal/platform/bus"
	moviesservice "screencat/internal/services/movies/api/grpc/movies"
	moviesqlite "screencat/internal/services/movies/storage/sqlite"
)

// Config holds everything the movie service process needs to start.
type Config struct {
	Addr    string
	DBPath  string
	Brokers []string
	Topic   string
	GroupID string
}

// Server hosts the movie gRPC API plus its storage and bus lifecycles.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *moviesqlite.Store
	producer   *bus.Producer
	consumer   *bus.Consumer
}

// New creates a configured movie server. It fails instead of starting
// degraded when the store cannot open or the brokers are unreachable.
func New(ctx context.Context, cfg Config) (*Server, error) {
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	store, err := openMovieStore(cfg.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	if err := bus.Probe(ctx, cfg.Brokers); err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("bus startup probe: %w", err)
	}
	producer, err := bus.NewProducer(cfg.Brokers, cfg.Topic)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("create producer: %w", err)
	}
	consumer, err := bus.NewConsumer(cfg.Brokers, cfg.Topic, cfg.GroupID)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		_ = producer.Close()
		return nil, fmt.Errorf("create consumer: %w", err)
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := moviesservice.NewService(store, producer)
	healthServer := health.NewServer()
	moviev1.RegisterMovieServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(moviev1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
		producer:   producer,
		consumer:   consumer,
	}, nil
}

// Addr returns the listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a movie server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs the gRPC server and the topic consumer until context
// cancellation, then drains the bus connections.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("movie server listening at %v", s.listener.Addr())

	consumeCtx, stopConsumer := context.WithCancel(ctx)
	defer stopConsumer()
	consumeErr := make(chan error, 1)
	go func() {
		consumeErr <- s.consumer.Run(consumeCtx, logEnvelope)
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-consumeErr:
		if err == nil {
			return nil
		}
		return fmt.Errorf("consume topic: %w", err)
	}
}

// Close releases server resources, draining the producer with a bounded wait.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.consumer != nil {
		if err := s.consumer.Close(); err != nil {
			log.Printf("close consumer: %v", err)
		}
	}
	if s.producer != nil {
		if err := s.producer.Close(); err != nil {
			log.Printf("close producer: %v", err)
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close movie store: %v", err)
		}
	}
}

// logEnvelope mirrors every envelope on the topic into the service log. The
// service does not react to events yet; the hook exists for cache
// invalidation once another producer mutates movie state.
func logEnvelope(env event.Envelope, partition int, offset int64) {
	switch {
	case env.Error != "":
		log.Printf("bus event type=%s error=%q partition=%d offset=%d", env.Type, env.Error, partition, offset)
	case env.Data != nil:
		log.Printf("bus event type=%s movie=%s partition=%d offset=%d", env.Type, env.Data.ID, partition, offset)
	default:
		log.Printf("bus event type=%s partition=%d offset=%d", env.Type, partition, offset)
	}
}

func openMovieStore(path string) (*moviesqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := moviesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open movie sqlite store: %w", err)
	}
	return store, nil
}
