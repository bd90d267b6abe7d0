// Package tvshows exposes tvshow.v1 RPC operations over a fixed dataset.
//
// The service carries the read half of the catalog contract only; there is
// no write path and no event emission. The dataset is loaded once at process
// start and never mutated, and unique ids are a precondition of the data,
// not enforced at runtime.
package tvshows

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"screencat/internal/api/wire/tvshowv1"
)

// Service implements tvshowv1.TVShowServiceServer.
type Service struct {
	tvshowv1.UnimplementedTVShowServiceServer
	shows []tvshowv1.TVShow
}

// NewService creates a TV show service over the given dataset.
func NewService(shows []tvshowv1.TVShow) *Service {
	dataset := make([]tvshowv1.TVShow, len(shows))
	copy(dataset, shows)
	return &Service{shows: dataset}
}

// DefaultCatalog returns the built-in dataset.
func DefaultCatalog() []tvshowv1.TVShow {
	return []tvshowv1.TVShow{
		{ID: "1", Title: "Breaking Bad", Description: "A chemistry teacher turned drug kingpin."},
		{ID: "2", Title: "Game of Thrones", Description: "Noble families vie for control of Westeros."},
		{ID: "3", Title: "The Expanse", Description: "A detective and a crew uncover a solar-system-wide conspiracy."},
		{ID: "4", Title: "Severance", Description: "Office workers whose memories are split between work and home."},
	}
}

// GetTVShow returns one show by id.
func (s *Service) GetTVShow(_ context.Context, in *tvshowv1.GetTVShowRequest) (*tvshowv1.GetTVShowResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get tv show request is required")
	}
	id := strings.TrimSpace(in.TVShowID)
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "tv show id is required")
	}

	for _, show := range s.dataset() {
		if show.ID == id {
			return &tvshowv1.GetTVShowResponse{TVShow: &show}, nil
		}
	}
	return nil, status.Error(codes.NotFound, "tv show not found")
}

// SearchTVShows returns shows whose title or description contains the query
// case-insensitively. An empty query matches every show.
func (s *Service) SearchTVShows(_ context.Context, in *tvshowv1.SearchTVShowsRequest) (*tvshowv1.SearchTVShowsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "search tv shows request is required")
	}

	query := strings.ToLower(in.Query)
	matches := make([]*tvshowv1.TVShow, 0, len(s.dataset()))
	for _, show := range s.dataset() {
		if query == "" ||
			strings.Contains(strings.ToLower(show.Title), query) ||
			strings.Contains(strings.ToLower(show.Description), query) {
			match := show
			matches = append(matches, &match)
		}
	}
	return &tvshowv1.SearchTVShowsResponse{TVShows: matches}, nil
}

func (s *Service) dataset() []tvshowv1.TVShow {
	if s == nil {
		return nil
	}
	return s.shows
}
