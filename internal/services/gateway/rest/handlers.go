// Package rest maps the gateway's HTTP surface onto the catalog RPC
// contract, one RPC call per endpoint.
package rest

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"screencat/internal/api/wire/moviev1"
	"screencat/internal/api/wire/tvshowv1"
	"screencat/internal/event"
	"screencat/internal/services/gateway/audit"
)

// Handler serves the REST surface over long-lived backend clients.
type Handler struct {
	movies  moviev1.MovieServiceClient
	tvshows tvshowv1.TVShowServiceClient
	audit   *audit.Recorder
}

// NewHandler creates a REST handler over the given clients. The audit
// recorder may be nil, which disables audit events.
func NewHandler(movies moviev1.MovieServiceClient, tvshows tvshowv1.TVShowServiceClient, recorder *audit.Recorder) *Handler {
	return &Handler{movies: movies, tvshows: tvshows, audit: recorder}
}

// Mount registers the REST routes on r.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/movies", h.searchMovies)
	r.Post("/movies", h.createMovie)
	r.Get("/movies/{id}", h.getMovie)
	r.Get("/tvshows", h.searchTVShows)
	r.Get("/tvshows/{id}", h.getTVShow)
}

func (h *Handler) searchMovies(w http.ResponseWriter, r *http.Request) {
	resp, err := h.movies.SearchMovies(r.Context(), &moviev1.SearchMoviesRequest{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		writeRPCError(w, r, err)
		return
	}
	movies := resp.Movies
	if movies == nil {
		movies = []*moviev1.Movie{}
	}
	writeJSON(w, http.StatusOK, movies)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	resp, err := h.movies.GetMovie(r.Context(), &moviev1.GetMovieRequest{
		MovieID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeRPCError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Movie)
}

type createMovieBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	var body createMovieBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.Title = strings.TrimSpace(body.Title)
	body.Description = strings.TrimSpace(body.Description)
	// Rejected here: no RPC call is made and no event is published for
	// invalid input.
	if body.Title == "" || body.Description == "" {
		writeError(w, http.StatusBadRequest, "title and description are required")
		return
	}

	resp, err := h.movies.CreateMovie(r.Context(), &moviev1.CreateMovieRequest{
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		h.audit.CreateFailed(r.Context(), status.Convert(err).Message(), event.CreateMovieInput{
			Title:       body.Title,
			Description: body.Description,
		})
		writeRPCError(w, r, err)
		return
	}

	h.audit.CreateProcessed(r.Context(), snapshotOf(resp.Movie))
	writeJSON(w, http.StatusCreated, resp.Movie)
}

func (h *Handler) searchTVShows(w http.ResponseWriter, r *http.Request) {
	resp, err := h.tvshows.SearchTVShows(r.Context(), &tvshowv1.SearchTVShowsRequest{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		writeRPCError(w, r, err)
		return
	}
	shows := resp.TVShows
	if shows == nil {
		shows = []*tvshowv1.TVShow{}
	}
	writeJSON(w, http.StatusOK, shows)
}

func (h *Handler) getTVShow(w http.ResponseWriter, r *http.Request) {
	resp, err := h.tvshows.GetTVShow(r.Context(), &tvshowv1.GetTVShowRequest{
		TVShowID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeRPCError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.TVShow)
}

func snapshotOf(m *moviev1.Movie) event.MovieSnapshot {
	if m == nil {
		return event.MovieSnapshot{}
	}
	return event.MovieSnapshot{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// writeRPCError converts an RPC failure into the protocol error shape:
// NOT_FOUND becomes 404, everything else a generic 500. The status message
// is kept as diagnostic detail rather than swallowed.
func writeRPCError(w http.ResponseWriter, r *http.Request, err error) {
	st := status.Convert(err)
	httpStatus := http.StatusInternalServerError
	if st.Code() == codes.NotFound {
		httpStatus = http.StatusNotFound
	} else {
		log.Printf("%s %s backend error: %v", r.Method, r.URL.Path, err)
	}
	writeError(w, httpStatus, st.Message())
}

func writeError(w http.ResponseWriter, httpStatus int, message string) {
	writeJSON(w, httpStatus, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}
