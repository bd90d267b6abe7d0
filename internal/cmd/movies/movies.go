// Package movies parses movie service flags and launches the service.
package movies

import (
	"context"
	"flag"
	"fmt"
	"strings"

	entrypoint "screencat/internal/platform/cmd"
	server "screencat/internal/services/movies/app"
)

// Config holds movie command configuration.
type Config struct {
	Port    int      `env:"SCREENCAT_MOVIES_PORT" envDefault:"50051"`
	DBPath  string   `env:"SCREENCAT_MOVIES_DB_PATH" envDefault:"data/movies.db"`
	Brokers []string `env:"SCREENCAT_KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"SCREENCAT_MOVIES_TOPIC" envDefault:"movies_topic"`
	GroupID string   `env:"SCREENCAT_MOVIES_GROUP_ID" envDefault:"movies-service"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The movie gRPC server port")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the movie sqlite database")
	fs.StringVar(&cfg.Topic, "topic", cfg.Topic, "Kafka topic for catalog events")
	fs.StringVar(&cfg.GroupID, "group", cfg.GroupID, "Kafka consumer group id")
	fs.Func("brokers", "Comma-separated Kafka broker addresses", func(v string) error {
		cfg.Brokers = strings.Split(v, ",")
		return nil
	})
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the movie gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMovies, func(context.Context) error {
		return server.Run(ctx, server.Config{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			DBPath:  cfg.DBPath,
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
			GroupID: cfg.GroupID,
		})
	})
}
