// Package sqlite provides a SQLite-backed movie storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"screencat/internal/platform/storage/sqlitemigrate"
	"screencat/internal/services/movies/storage"
	"screencat/internal/services/movies/storage/sqlite/migrations"
)

// Store persists movie records in SQLite.
type Store struct {
	sqlDB *sql.DB
	clock func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite movie store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, clock: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateMovie inserts one record with a freshly assigned id.
func (s *Store) CreateMovie(ctx context.Context, title, description string) (storage.Movie, error) {
	if err := ctx.Err(); err != nil {
		return storage.Movie{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Movie{}, fmt.Errorf("storage is not configured")
	}

	now := time.Now().UTC()
	if s.clock != nil {
		now = s.clock().UTC()
	}
	record := storage.Movie{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO movies (id, title, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		record.ID,
		record.Title,
		record.Description,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return storage.Movie{}, fmt.Errorf("create movie: %w", err)
	}
	return record, nil
}

// GetMovie returns one movie by id.
func (s *Store) GetMovie(ctx context.Context, id string) (storage.Movie, error) {
	if err := ctx.Err(); err != nil {
		return storage.Movie{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Movie{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, title, description, created_at, updated_at FROM movies WHERE id = ?`,
		strings.TrimSpace(id),
	)
	record, err := scanMovie(row)
	if err == sql.ErrNoRows {
		return storage.Movie{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Movie{}, fmt.Errorf("get movie: %w", err)
	}
	return record, nil
}

// SearchMovies returns matching movies ordered newest-created first. The
// match is a case-insensitive substring check on title or description; an
// empty query matches every record.
func (s *Store) SearchMovies(ctx context.Context, query string) ([]storage.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	const base = `SELECT id, title, description, created_at, updated_at FROM movies`
	const order = ` ORDER BY created_at DESC, rowid DESC`

	var (
		rows *sql.Rows
		err  error
	)
	if query == "" {
		rows, err = s.sqlDB.QueryContext(ctx, base+order)
	} else {
		rows, err = s.sqlDB.QueryContext(
			ctx,
			base+` WHERE instr(lower(title), lower(?)) > 0 OR instr(lower(description), lower(?)) > 0`+order,
			query,
			query,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	defer rows.Close()

	var records []storage.Movie
	for rows.Next() {
		record, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (storage.Movie, error) {
	var (
		record    storage.Movie
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&record.ID, &record.Title, &record.Description, &createdAt, &updatedAt); err != nil {
		return storage.Movie{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
