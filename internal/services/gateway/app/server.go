// Package server wires the gateway runtime: backend connections, the event
// producer, and the HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gogrpc "google.golang.org/grpc"

	"screencat/internal/api/wire/moviev1"
	"screencat/internal/api/wire/tvshowv1"
	"screencat/internal/platform/bus"
	platformgrpc "screencat/internal/platform/grpc"
	"screencat/internal/services/gateway/audit"
	gatewaygraphql "screencat/internal/services/gateway/graphql"
	"screencat/internal/services/gateway/rest"
)

const shutdownTimeout = 10 * time.Second

// Config holds everything the gateway process needs to start.
type Config struct {
	Addr        string
	MoviesAddr  string
	TVShowsAddr string
	Brokers     []string
	Topic       string
	DialTimeout time.Duration
}

// Server hosts the HTTP API over long-lived backend connections.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	movieConn  *gogrpc.ClientConn
	tvshowConn *gogrpc.ClientConn
	producer   *bus.Producer
}

// New creates a configured gateway. Both backends must be reachable and
// healthy before the gateway accepts traffic, and the brokers are probed so
// the process fails fast instead of serving without its audit trail.
func New(ctx context.Context, cfg Config) (*Server, error) {
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	opts := platformgrpc.ClientOptions()
	movieConn, err := platformgrpc.DialBackend(ctx, nil, cfg.MoviesAddr, cfg.DialTimeout, log.Printf, opts...)
	if err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("dial movie service at %s: %w", cfg.MoviesAddr, err)
	}
	tvshowConn, err := platformgrpc.DialBackend(ctx, nil, cfg.TVShowsAddr, cfg.DialTimeout, log.Printf, opts...)
	if err != nil {
		_ = movieConn.Close()
		_ = listener.Close()
		return nil, fmt.Errorf("dial tv show service at %s: %w", cfg.TVShowsAddr, err)
	}

	if err := bus.Probe(ctx, cfg.Brokers); err != nil {
		_ = tvshowConn.Close()
		_ = movieConn.Close()
		_ = listener.Close()
		return nil, fmt.Errorf("bus startup probe: %w", err)
	}
	producer, err := bus.NewProducer(cfg.Brokers, cfg.Topic)
	if err != nil {
		_ = tvshowConn.Close()
		_ = movieConn.Close()
		_ = listener.Close()
		return nil, fmt.Errorf("create producer: %w", err)
	}

	movies := moviev1.NewMovieServiceClient(movieConn)
	tvshows := tvshowv1.NewTVShowServiceClient(tvshowConn)
	recorder := audit.NewRecorder(producer)

	router, err := newRouter(movies, tvshows, recorder)
	if err != nil {
		_ = producer.Close()
		_ = tvshowConn.Close()
		_ = movieConn.Close()
		_ = listener.Close()
		return nil, err
	}

	return &Server{
		listener:   listener,
		httpServer: &http.Server{Handler: router},
		movieConn:  movieConn,
		tvshowConn: tvshowConn,
		producer:   producer,
	}, nil
}

func newRouter(movies moviev1.MovieServiceClient, tvshows tvshowv1.TVShowServiceClient, recorder *audit.Recorder) (chi.Router, error) {
	graphqlHandler, err := gatewaygraphql.NewResolver(movies, tvshows, recorder).Handler()
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	rest.NewHandler(movies, tvshows, recorder).Mount(router)
	router.Handle("/graphql", graphqlHandler)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return router, nil
}

// Addr returns the listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a gateway until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs the HTTP server until context cancellation, then shuts down
// gracefully with a bounded wait.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("gateway listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown HTTP server: %v", err)
		}
		err := <-serveErr
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve HTTP: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve HTTP: %w", err)
	}
}

// Close releases backend connections and drains the producer.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.producer != nil {
		if err := s.producer.Close(); err != nil {
			log.Printf("close producer: %v", err)
		}
	}
	if s.tvshowConn != nil {
		_ = s.tvshowConn.Close()
	}
	if s.movieConn != nil {
		_ = s.movieConn.Close()
	}
}
