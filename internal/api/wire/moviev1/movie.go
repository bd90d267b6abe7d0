// Package moviev1 defines the movie catalog RPC contract.
package moviev1

import "time"

// Movie is one catalog record. The id is assigned by the movie store at
// creation and never changes.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetMovieRequest asks for one movie by id.
type GetMovieRequest struct {
	MovieID string `json:"movie_id"`
}

// GetMovieResponse carries the requested movie.
type GetMovieResponse struct {
	Movie *Movie `json:"movie,omitempty"`
}

// SearchMoviesRequest filters the catalog. An empty query matches everything.
type SearchMoviesRequest struct {
	Query string `json:"query,omitempty"`
}

// SearchMoviesResponse carries matches ordered newest-created first.
type SearchMoviesResponse struct {
	Movies []*Movie `json:"movies"`
}

// CreateMovieRequest adds one movie to the catalog. Field presence is
// validated by the gateway before the call is made.
type CreateMovieRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateMovieResponse carries the persisted movie.
type CreateMovieResponse struct {
	Movie *Movie `json:"movie,omitempty"`
}
