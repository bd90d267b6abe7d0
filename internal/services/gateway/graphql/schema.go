// Package graphql exposes the catalog over a single GraphQL endpoint,
// resolving against the same backend clients as the REST surface.
package graphql

import (
	"errors"
	"net/http"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"google.golang.org/grpc/status"

	"screencat/internal/api/wire/moviev1"
	"screencat/internal/api/wire/tvshowv1"
	"screencat/internal/event"
	"screencat/internal/services/gateway/audit"
)

// Resolver resolves GraphQL fields via the backend clients. The audit
// recorder may be nil, which disables audit events.
type Resolver struct {
	movies  moviev1.MovieServiceClient
	tvshows tvshowv1.TVShowServiceClient
	audit   *audit.Recorder
}

// NewResolver creates a resolver over the given clients.
func NewResolver(movies moviev1.MovieServiceClient, tvshows tvshowv1.TVShowServiceClient, recorder *audit.Recorder) *Resolver {
	return &Resolver{movies: movies, tvshows: tvshows, audit: recorder}
}

// Schema builds the executable schema for this resolver.
func (r *Resolver) Schema() (graphql.Schema, error) {
	movieType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Movie",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt":   &graphql.Field{Type: graphql.DateTime, Resolve: movieField(func(m *moviev1.Movie) any { return m.CreatedAt })},
			"updatedAt":   &graphql.Field{Type: graphql.DateTime, Resolve: movieField(func(m *moviev1.Movie) any { return m.UpdatedAt })},
		},
	})

	tvShowType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TVShow",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"movie": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveMovie,
			},
			"movies": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(movieType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveMovies,
			},
			"tvShow": &graphql.Field{
				Type: tvShowType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveTVShow,
			},
			"tvShows": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(tvShowType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveTVShows,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createMovie": &graphql.Field{
				Type: graphql.NewNonNull(movieType),
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveCreateMovie,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// Handler builds the HTTP handler for the /graphql endpoint.
func (r *Resolver) Handler() (http.Handler, error) {
	schema, err := r.Schema()
	if err != nil {
		return nil, err
	}
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	}), nil
}

func (r *Resolver) resolveMovie(p graphql.ResolveParams) (any, error) {
	id, _ := p.Args["id"].(string)
	resp, err := r.movies.GetMovie(p.Context, &moviev1.GetMovieRequest{MovieID: id})
	if err != nil {
		return nil, rpcError(err)
	}
	return resp.Movie, nil
}

func (r *Resolver) resolveMovies(p graphql.ResolveParams) (any, error) {
	query, _ := p.Args["query"].(string)
	resp, err := r.movies.SearchMovies(p.Context, &moviev1.SearchMoviesRequest{Query: query})
	if err != nil {
		return nil, rpcError(err)
	}
	if resp.Movies == nil {
		return []*moviev1.Movie{}, nil
	}
	return resp.Movies, nil
}

func (r *Resolver) resolveTVShow(p graphql.ResolveParams) (any, error) {
	id, _ := p.Args["id"].(string)
	resp, err := r.tvshows.GetTVShow(p.Context, &tvshowv1.GetTVShowRequest{TVShowID: id})
	if err != nil {
		return nil, rpcError(err)
	}
	return resp.TVShow, nil
}

func (r *Resolver) resolveTVShows(p graphql.ResolveParams) (any, error) {
	query, _ := p.Args["query"].(string)
	resp, err := r.tvshows.SearchTVShows(p.Context, &tvshowv1.SearchTVShowsRequest{Query: query})
	if err != nil {
		return nil, rpcError(err)
	}
	if resp.TVShows == nil {
		return []*tvshowv1.TVShow{}, nil
	}
	return resp.TVShows, nil
}

func (r *Resolver) resolveCreateMovie(p graphql.ResolveParams) (any, error) {
	title, _ := p.Args["title"].(string)
	description, _ := p.Args["description"].(string)
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	// Rejected here: no RPC call is made and no event is published for
	// invalid input.
	if title == "" || description == "" {
		return nil, errors.New("title and description are required")
	}

	resp, err := r.movies.CreateMovie(p.Context, &moviev1.CreateMovieRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		r.audit.CreateFailed(p.Context, status.Convert(err).Message(), event.CreateMovieInput{
			Title:       title,
			Description: description,
		})
		return nil, rpcError(err)
	}

	r.audit.CreateProcessed(p.Context, snapshotOf(resp.Movie))
	return resp.Movie, nil
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

// movieField adapts a typed accessor to a graphql resolver so the DateTime
// scalars serialize from time.Time rather than the struct's JSON tags.
func movieField(get func(*moviev1.Movie) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		m, ok := p.Source.(*moviev1.Movie)
		if !ok || m == nil {
			return nil, nil
		}
		return get(m), nil
	}
}

// rpcError strips transport detail so GraphQL errors carry the status
// message only.
func rpcError(err error) error {
	return errors.New(status.Convert(err).Message())
}
