package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"screencat/internal/api/wire/moviev1"
	"screencat/internal/api/wire/tvshowv1"
)

type stubMovieClient struct{}

func (stubMovieClient) GetMovie(_ context.Context, _ *moviev1.GetMovieRequest, _ ...grpc.CallOption) (*moviev1.GetMovieResponse, error) {
	return nil, status.Error(codes.NotFound, "movie not found")
}

func (stubMovieClient) SearchMovies(_ context.Context, _ *moviev1.SearchMoviesRequest, _ ...grpc.CallOption) (*moviev1.SearchMoviesResponse, error) {
	return &moviev1.SearchMoviesResponse{}, nil
}

func (stubMovieClient) CreateMovie(_ context.Context, in *moviev1.CreateMovieRequest, _ ...grpc.CallOption) (*moviev1.CreateMovieResponse, error) {
	return &moviev1.CreateMovieResponse{Movie: &moviev1.Movie{ID: "m-1", Title: in.Title, Description: in.Description}}, nil
}

type stubTVShowClient struct{}

func (stubTVShowClient) GetTVShow(_ context.Context, _ *tvshowv1.GetTVShowRequest, _ ...grpc.CallOption) (*tvshowv1.GetTVShowResponse, error) {
	return nil, status.Error(codes.NotFound, "tv show not found")
}

func (stubTVShowClient) SearchTVShows(_ context.Context, _ *tvshowv1.SearchTVShowsRequest, _ ...grpc.CallOption) (*tvshowv1.SearchTVShowsResponse, error) {
	return &tvshowv1.SearchTVShowsResponse{}, nil
}

func TestRouterWiring(t *testing.T) {
	t.Parallel()

	router, err := newRouter(stubMovieClient{}, stubTVShowClient{}, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("movies status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	body := strings.NewReader(`{"query":"{ movies { id } }"}`)
	req := httptest.NewRequest(http.MethodPost, "/graphql", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("graphql status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "movies") {
		t.Fatalf("graphql body = %q, want movies payload", rec.Body.String())
	}
}
