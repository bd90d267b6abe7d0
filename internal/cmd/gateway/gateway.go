// Package gateway parses gateway flags and launches the HTTP process.
package gateway

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "screencat/internal/platform/cmd"
	server "screencat/internal/services/gateway/app"
)

// Config holds gateway command configuration.
type Config struct {
	Port        int           `env:"SCREENCAT_GATEWAY_PORT" envDefault:"8080"`
	MoviesAddr  string        `env:"SCREENCAT_MOVIES_ADDR" envDefault:"localhost:50051"`
	TVShowsAddr string        `env:"SCREENCAT_TVSHOWS_ADDR" envDefault:"localhost:50052"`
	Brokers     []string      `env:"SCREENCAT_KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic       string        `env:"SCREENCAT_MOVIES_TOPIC" envDefault:"movies_topic"`
	DialTimeout time.Duration `env:"SCREENCAT_GRPC_DIAL_TIMEOUT" envDefault:"10s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The gateway HTTP port")
	fs.StringVar(&cfg.MoviesAddr, "movies-addr", cfg.MoviesAddr, "Movie service gRPC address")
	fs.StringVar(&cfg.TVShowsAddr, "tvshows-addr", cfg.TVShowsAddr, "TV show service gRPC address")
	fs.StringVar(&cfg.Topic, "topic", cfg.Topic, "Kafka topic for catalog events")
	fs.DurationVar(&cfg.DialTimeout, "dial-timeout", cfg.DialTimeout, "Timeout for backend dial and health checks")
	fs.Func("brokers", "Comma-separated Kafka broker addresses", func(v string) error {
		cfg.Brokers = strings.Split(v, ",")
		return nil
	})
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the gateway HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGateway, func(context.Context) error {
		return server.Run(ctx, server.Config{
			Addr:        fmt.Sprintf(":%d", cfg.Port),
			MoviesAddr:  cfg.MoviesAddr,
			TVShowsAddr: cfg.TVShowsAddr,
			Brokers:     cfg.Brokers,
			Topic:       cfg.Topic,
			DialTimeout: cfg.DialTimeout,
		})
	})
}
