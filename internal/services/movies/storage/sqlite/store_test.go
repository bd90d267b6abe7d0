package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"screencat/internal/services/movies/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "movies.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(" "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestCreateGetMovieRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
	store.clock = func() time.Time { return now }

	created, err := store.CreateMovie(context.Background(), "Dune", "Spice and sandworms.")
	if err != nil {
		t.Fatalf("create movie: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps = %v/%v, want %v", created.CreatedAt, created.UpdatedAt, now)
	}

	got, err := store.GetMovie(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get movie: %v", err)
	}
	if got.Title != "Dune" || got.Description != "Spice and sandworms." {
		t.Fatalf("got %q/%q, want stored values", got.Title, got.Description)
	}
	if got.ID != created.ID {
		t.Fatalf("id = %q, want %q", got.ID, created.ID)
	}
}

func TestGetMovieMissReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.GetMovie(context.Background(), "nonexistent-id")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestSearchMoviesEmptyQueryReturnsAllNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	base := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	titles := []string{"Dune", "Alien", "Solaris"}
	for i, title := range titles {
		tick := base.Add(time.Duration(i) * time.Second)
		store.clock = func() time.Time { return tick }
		if _, err := store.CreateMovie(context.Background(), title, "desc"); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	got, err := store.SearchMovies(context.Background(), "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []string{"Solaris", "Alien", "Dune"}
	for i, record := range got {
		if record.Title != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, record.Title, want[i])
		}
	}
}

func TestSearchMoviesMatchesTitleOrDescriptionCaseInsensitively(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seed := []struct{ title, description string }{
		{"Dune", "Spice and sandworms."},
		{"Alien", "In space no one can hear you scream."},
		{"Arrival", "Linguistics meets heptapods in the DUNES."},
	}
	for _, m := range seed {
		if _, err := store.CreateMovie(context.Background(), m.title, m.description); err != nil {
			t.Fatalf("create %s: %v", m.title, err)
		}
	}

	testCases := []struct {
		query string
		want  []string
	}{
		{query: "du", want: []string{"Arrival", "Dune"}},
		{query: "SCREAM", want: []string{"Alien"}},
		{query: "zebra", want: nil},
	}
	for _, tc := range testCases {
		got, err := store.SearchMovies(context.Background(), tc.query)
		if err != nil {
			t.Fatalf("search %q: %v", tc.query, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("search %q len = %d, want %d", tc.query, len(got), len(tc.want))
		}
		for i, record := range got {
			if record.Title != tc.want[i] {
				t.Fatalf("search %q [%d] = %q, want %q", tc.query, i, record.Title, tc.want[i])
			}
		}
	}
}

func TestConcurrentCreatesAssignDistinctIDs(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)

	const workers = 8
	var wg sync.WaitGroup
	ids := make([]string, workers)
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := store.CreateMovie(context.Background(), "Same Title", "Same description.")
			ids[i] = record.ID
			errs[i] = err
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for i := range workers {
		if errs[i] != nil {
			t.Fatalf("create %d: %v", i, errs[i])
		}
		if ids[i] == "" || seen[ids[i]] {
			t.Fatalf("id %d = %q, want unique non-empty", i, ids[i])
		}
		seen[ids[i]] = true
	}

	got, err := store.SearchMovies(context.Background(), "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != workers {
		t.Fatalf("record count = %d, want %d", len(got), workers)
	}
}

func TestSearchMoviesRespectsCanceledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.SearchMovies(ctx, ""); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
