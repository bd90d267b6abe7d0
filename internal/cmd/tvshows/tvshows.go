// Package tvshows parses TV show service flags and launches the service.
package tvshows

import (
	"context"
	"flag"
	"fmt"

	entrypoint "screencat/internal/platform/cmd"
	server "screencat/internal/services/tvshows/app"
)

// Config holds TV show command configuration.
type Config struct {
	Port int `env:"SCREENCAT_TVSHOWS_PORT" envDefault:"50052"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The TV show gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the TV show gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTVShows, func(context.Context) error {
		return server.Run(ctx, fmt.Sprintf(":%d", cfg.Port))
	})
}
