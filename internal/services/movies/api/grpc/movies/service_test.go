package movies

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"screencat/internal/api/wire/moviev1"
	"screencat/internal/event"
	"screencat/internal/services/movies/storage"
)

type fakeMovieStore struct {
	mu      sync.Mutex
	seq     int
	records []storage.Movie

	createErr error
	searchErr error
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{}
}

func (f *fakeMovieStore) CreateMovie(_ context.Context, title, description string) (storage.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return storage.Movie{}, f.createErr
	}
	f.seq++
	now := time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Second)
	record := storage.Movie{
		ID:          fmt.Sprintf("movie-%d", f.seq),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeMovieStore) GetMovie(_ context.Context, id string) (storage.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, record := range f.records {
		if record.ID == id {
			return record, nil
		}
	}
	return storage.Movie{}, storage.ErrNotFound
}

func (f *fakeMovieStore) SearchMovies(_ context.Context, _ string) ([]storage.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	out := make([]storage.Movie, len(f.records))
	copy(out, f.records)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

type fakePublisher struct {
	mu         sync.Mutex
	published  []event.Envelope
	publishErr error
}

func (f *fakePublisher) Publish(_ context.Context, env event.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, env)
	return nil
}

func (f *fakePublisher) envelopes() []event.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]event.Envelope, len(f.published))
	copy(out, f.published)
	return out
}

func TestGetMovieNilRequest(t *testing.T) {
	svc := NewService(newFakeMovieStore(), &fakePublisher{})
	_, err := svc.GetMovie(context.Background(), nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestGetMovieMissMapsToNotFound(t *testing.T) {
	svc := NewService(newFakeMovieStore(), &fakePublisher{})
	_, err := svc.GetMovie(context.Background(), &moviev1.GetMovieRequest{MovieID: "nonexistent-id"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	store := newFakeMovieStore()
	svc := NewService(store, &fakePublisher{})

	created, err := svc.CreateMovie(context.Background(), &moviev1.CreateMovieRequest{
		Title:       "Dune",
		Description: "Spice and sandworms.",
	})
	if err != nil {
		t.Fatalf("create movie: %v", err)
	}
	if created.Movie == nil || created.Movie.ID == "" {
		t.Fatal("expected assigned id")
	}

	got, err := svc.GetMovie(context.Background(), &moviev1.GetMovieRequest{MovieID: created.Movie.ID})
	if err != nil {
		t.Fatalf("get movie: %v", err)
	}
	if got.Movie.Title != "Dune" || got.Movie.Description != "Spice and sandworms." {
		t.Fatalf("got %q/%q, want created values", got.Movie.Title, got.Movie.Description)
	}
}

func TestCreateMoviePublishesCreatedEvent(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewService(newFakeMovieStore(), pub)

	resp, err := svc.CreateMovie(context.Background(), &moviev1.CreateMovieRequest{
		Title:       "Alien",
		Description: "In space.",
	})
	if err != nil {
		t.Fatalf("create movie: %v", err)
	}

	envs := pub.envelopes()
	if len(envs) != 1 {
		t.Fatalf("published %d envelopes, want 1", len(envs))
	}
	if envs[0].Type != event.TypeMovieCreated {
		t.Fatalf("type = %q, want %q", envs[0].Type, event.TypeMovieCreated)
	}
	if envs[0].Data == nil || envs[0].Data.ID != resp.Movie.ID {
		t.Fatalf("event snapshot = %+v, want persisted movie %q", envs[0].Data, resp.Movie.ID)
	}
}

func TestCreateMovieSucceedsWhenPublishFails(t *testing.T) {
	pub := &fakePublisher{publishErr: errors.New("broker unreachable")}
	var logged []string
	svc := NewService(newFakeMovieStore(), pub)
	svc.logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	resp, err := svc.CreateMovie(context.Background(), &moviev1.CreateMovieRequest{
		Title:       "Solaris",
		Description: "An ocean that thinks.",
	})
	if err != nil {
		t.Fatalf("create must not fail on publish error, got %v", err)
	}
	if resp.Movie == nil || resp.Movie.ID == "" {
		t.Fatal("expected persisted movie in response")
	}
	if len(logged) != 1 {
		t.Fatalf("logged %d warnings, want 1", len(logged))
	}
}

func TestCreateMovieStoreFailureEmitsFailureEvent(t *testing.T) {
	store := newFakeMovieStore()
	store.createErr = errors.New("disk full")
	pub := &fakePublisher{}
	svc := NewService(store, pub)

	_, err := svc.CreateMovie(context.Background(), &moviev1.CreateMovieRequest{
		Title:       "Arrival",
		Description: "Heptapods.",
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Internal)
	}

	envs := pub.envelopes()
	if len(envs) != 1 {
		t.Fatalf("published %d envelopes, want 1", len(envs))
	}
	if envs[0].Type != event.TypeMovieCreationFailed {
		t.Fatalf("type = %q, want %q", envs[0].Type, event.TypeMovieCreationFailed)
	}
	if envs[0].RequestData == nil || envs[0].RequestData.Title != "Arrival" {
		t.Fatalf("requestData = %+v, want original input", envs[0].RequestData)
	}
}

func TestCreateMoviePublishOutlivesRequestCancellation(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewService(newFakeMovieStore(), pub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The fake store ignores the context, mimicking a write that completed
	// just as the client went away; the notification must still go out.
	if _, err := svc.CreateMovie(ctx, &moviev1.CreateMovieRequest{Title: "Dune", Description: "d"}); err != nil {
		t.Fatalf("create movie: %v", err)
	}
	if len(pub.envelopes()) != 1 {
		t.Fatal("expected event despite canceled request context")
	}
}

func TestSearchMoviesPassesQueryThrough(t *testing.T) {
	store := newFakeMovieStore()
	svc := NewService(store, &fakePublisher{})
	for _, title := range []string{"Dune", "Alien"} {
		if _, err := svc.CreateMovie(context.Background(), &moviev1.CreateMovieRequest{Title: title, Description: "d"}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	resp, err := svc.SearchMovies(context.Background(), &moviev1.SearchMoviesRequest{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(resp.Movies) != 2 {
		t.Fatalf("len = %d, want 2", len(resp.Movies))
	}
	if resp.Movies[0].Title != "Alien" {
		t.Fatalf("order[0] = %q, want newest first", resp.Movies[0].Title)
	}
}

// End-to-end over bufconn: exercises the hand-maintained service descriptor,
// client stubs, and JSON codec against a real gRPC server.
func TestMovieServiceOverBufconn(t *testing.T) {
	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	moviev1.RegisterMovieServiceServer(server, NewService(newFakeMovieStore(), &fakePublisher{}))
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	client := moviev1.NewMovieServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := client.CreateMovie(ctx, &moviev1.CreateMovieRequest{Title: "Dune", Description: "Spice."})
	if err != nil {
		t.Fatalf("create over wire: %v", err)
	}
	if created.Movie == nil || created.Movie.Title != "Dune" {
		t.Fatalf("created = %+v, want Dune", created.Movie)
	}

	got, err := client.GetMovie(ctx, &moviev1.GetMovieRequest{MovieID: created.Movie.ID})
	if err != nil {
		t.Fatalf("get over wire: %v", err)
	}
	if got.Movie.ID != created.Movie.ID {
		t.Fatalf("id = %q, want %q", got.Movie.ID, created.Movie.ID)
	}
	if !got.Movie.CreatedAt.Equal(created.Movie.CreatedAt) {
		t.Fatalf("created_at = %v, want %v to survive the wire", got.Movie.CreatedAt, created.Movie.CreatedAt)
	}

	_, err = client.GetMovie(ctx, &moviev1.GetMovieRequest{MovieID: "nonexistent-id"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.NotFound)
	}

	results, err := client.SearchMovies(ctx, &moviev1.SearchMoviesRequest{Query: "du"})
	if err != nil {
		t.Fatalf("search over wire: %v", err)
	}
	if len(results.Movies) != 1 {
		t.Fatalf("len = %d, want 1", len(results.Movies))
	}
}
