// Package movies exposes movie.v1 RPC operations over movie storage.
package movies

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"screencat/internal/api/wire/moviev1"
	"screencat/internal/event"
	"screencat/internal/services/movies/storage"
)

// How long a best-effort publish may take once the RPC outcome is decided.
const publishTimeout = 2 * time.Second

// Service implements moviev1.MovieServiceServer.
type Service struct {
	moviev1.UnimplementedMovieServiceServer
	store  storage.MovieStore
	events event.Publisher
	logf   func(format string, args ...any)
}

// NewService creates a movie service backed by store, publishing domain
// events through events.
func NewService(store storage.MovieStore, events event.Publisher) *Service {
	return &Service{
		store:  store,
		events: events,
		logf:   log.Printf,
	}
}

// GetMovie returns one movie by id.
func (s *Service) GetMovie(ctx context.Context, in *moviev1.GetMovieRequest) (*moviev1.GetMovieResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get movie request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "movie store is not configured")
	}
	id := strings.TrimSpace(in.MovieID)
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "movie id is required")
	}

	record, err := s.store.GetMovie(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "movie not found")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get movie: %v", err)
	}
	return &moviev1.GetMovieResponse{Movie: toWire(record)}, nil
}

// SearchMovies returns a snapshot of matching movies, newest-created first.
func (s *Service) SearchMovies(ctx context.Context, in *moviev1.SearchMoviesRequest) (*moviev1.SearchMoviesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "search movies request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "movie store is not configured")
	}

	records, err := s.store.SearchMovies(ctx, in.Query)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "search movies: %v", err)
	}
	movies := make([]*moviev1.Movie, 0, len(records))
	for _, record := range records {
		movies = append(movies, toWire(record))
	}
	return &moviev1.SearchMoviesResponse{Movies: movies}, nil
}

// CreateMovie persists one movie and then publishes MOVIE_CREATED.
//
// Persistence is authoritative: when the store write fails the RPC fails and
// no success event exists. When the write succeeds but the publish does not,
// the RPC still succeeds and the lost notification is only logged. Field
// presence is the gateway's responsibility and is not re-checked here.
func (s *Service) CreateMovie(ctx context.Context, in *moviev1.CreateMovieRequest) (*moviev1.CreateMovieResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create movie request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "movie store is not configured")
	}

	record, err := s.store.CreateMovie(ctx, in.Title, in.Description)
	if err != nil {
		s.publish(ctx, event.MovieCreationFailed(err.Error(), event.CreateMovieInput{
			Title:       in.Title,
			Description: in.Description,
		}))
		return nil, status.Errorf(codes.Internal, "create movie: %v", err)
	}

	s.publish(ctx, event.MovieCreated(toSnapshot(record)))
	return &moviev1.CreateMovieResponse{Movie: toWire(record)}, nil
}

// publish sends one envelope best-effort. The RPC outcome is already decided
// when this runs, so a client disconnect must not suppress the notification
// and a bus failure degrades to a warning.
func (s *Service) publish(ctx context.Context, env event.Envelope) {
	if s.events == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.events.Publish(pubCtx, env); err != nil && s.logf != nil {
		s.logf("publish %s: %v", env.Type, err)
	}
}

func toWire(record storage.Movie) *moviev1.Movie {
	return &moviev1.Movie{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func toSnapshot(record storage.Movie) event.MovieSnapshot {
	return event.MovieSnapshot{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
