// Package storage defines the persistence contract for movie records.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested movie record is missing.
var ErrNotFound = errors.New("movie not found")

// Movie is one persisted catalog record. The store assigns the id at
// creation; records are never mutated or deleted afterwards.
type Movie struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MovieReader carries the read half of the catalog contract.
type MovieReader interface {
	// GetMovie returns one movie by id or ErrNotFound.
	GetMovie(ctx context.Context, id string) (Movie, error)
	// SearchMovies returns a finite snapshot of movies whose title or
	// description contains query case-insensitively, newest-created first.
	// An empty query matches every record.
	SearchMovies(ctx context.Context, query string) ([]Movie, error)
}

// MovieStore adds the write capability to the read contract.
type MovieStore interface {
	MovieReader
	// CreateMovie persists a new record and returns it with its assigned id
	// and timestamps.
	CreateMovie(ctx context.Context, title, description string) (Movie, error)
}
